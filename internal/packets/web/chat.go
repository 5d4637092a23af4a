package web

const (
	ChannelMessageHeaderSize   = 140
	EmoteHeaderSize            = 4
	FormattedMessageHeaderSize = 8
	SpecialMesgHeaderSize      = 11
	SpecialMesgLocationSize    = 12
	TaskDescriptionHeaderSize  = 17
	TaskDescriptionData1Size   = 12
	TaskDescriptionData2Size   = 13
	TaskDescriptionTrailerSize = 5
	OnLevelMessageSize         = 4232
)

type ChannelMessageHeader struct {
	TargetName      [64]byte
	Sender          [64]byte
	Language        uint32
	ChanNum         uint32
	SkillInLanguage uint32
}

// EmoteHeader is followed by the NUL-terminated message.
type EmoteHeader struct {
	Type uint32
}

type FormattedMessageHeader struct {
	StringID uint32
	Type     uint32
}

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
	Title    [128]byte
	Text     [4096]byte
	Buttons  uint32
	Duration uint32
}
