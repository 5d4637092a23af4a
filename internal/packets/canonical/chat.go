package canonical

const (
	ChannelMessageHeaderSize   = 140
	EmoteSize                  = 1028
	EmoteHeaderSize            = 4
	FormattedMessageHeaderSize = 12
	SpecialMesgHeaderSize      = 11
	SpecialMesgLocationSize    = 12
	TaskDescriptionHeaderSize  = 17
	TaskDescriptionData1Size   = 12
	TaskDescriptionData2Size   = 13
	TaskDescriptionTrailerSize = 5
	OnLevelMessageSize         = 4292
)

// EmoteMessageSize is the capacity of the fixed emote text, terminator included.
const EmoteMessageSize = 1024

// ChannelMessageHeader precedes the NUL-terminated message text.
type ChannelMessageHeader struct {
	TargetName      [64]byte
	Sender          [64]byte
	Language        uint32
	ChanNum         uint32
	SkillInLanguage uint32
}

type Emote struct {
	Type    uint32
	Message [EmoteMessageSize]byte
}

// EmoteHeader is the part of Emote before the message.
type EmoteHeader struct {
	Type uint32
}

// FormattedMessageHeader precedes a run of NUL-terminated arguments.
type FormattedMessageHeader struct {
	Unknown0 uint32
	StringID uint32
	Type     uint32
}

// SpecialMesgHeader is followed by the sayer name, a SpecialMesgLocation and the message.
type SpecialMesgHeader struct {
	SpeakMode     uint8
	JournalMode   uint8
	Language      uint8
	MessageType   uint32
	TargetSpawnID uint32
}

type SpecialMesgLocation struct {
	X int32
	Y int32
	Z int32
}

// TaskDescriptionHeader starts a task window update. The layout that follows is
// title, Data1, description, Data2, reward text, item link and Trailer.
type TaskDescriptionHeader struct {
	SequenceNumber uint32
	TaskID         uint32
	OpenWindow     uint8
	TaskType       uint32
	RewardType     uint32
}

type TaskDescriptionData1 struct {
	Duration     uint32
	DurationCode uint32
	StartTime    uint32
}

type TaskDescriptionData2 struct {
	HasRewards uint8
	Coin       uint32
	XP         uint32
	Faction    uint32
}

type TaskDescriptionTrailer struct {
	Points             uint32
	HasRewardSelection uint8
}

type OnLevelMessage struct {
	Title         [128]byte
	Text          [4096]byte
	Buttons       uint32
	Duration      uint32
	PopupID       uint32
	NegativeID    uint32
	ButtonName0   [25]byte
	ButtonName1   [25]byte
	SoundControls uint8
	Unknown4263   uint8
}
