package web

const (
	SpawnSize          = 329
	SpawnsHeaderSize   = 4
	DoorSize           = 66
	DeleteSpawnSize    = 4
	ObjectSize         = 72
	IllusionSize       = 84
	FaceChangeSize     = 8
	WearChangeSize     = 11
	PositionUpdateSize = 38
	ClientPositionSize = 40
	TrackSize          = 8
	MarkNPCSize        = 72
)

// MaxRace is the highest race id the client can render. Higher races are shown as human.
const MaxRace = 473

type Spawn struct {
	GM            uint8
	AATitle       uint8
	Anon          uint8
	Face          uint8
	Name          [64]byte
	Deity         uint16
	Size          float32
	NPC           uint8
	Invis         uint8
	HairColor     uint8
	CurHP         uint8
	MaxHP         uint8
	Findable      uint8
	Y             float32
	X             float32
	Z             float32
	Heading       float32
	DeltaY        float32
	DeltaX        float32
	DeltaZ        float32
	DeltaHeading  float32
	EyeColor1     uint8
	ShowHelm      uint8
	HairStyle     uint8
	BeardColor    uint8
	Level         uint8
	PlayerState   uint32
	Beard         uint8
	Suffix        [32]byte
	PetOwnerID    uint32
	GuildRank     uint8
	Equipment     [MaterialSlots]uint32
	RunSpeed      float32
	AFK           uint8
	GuildID       uint32
	Title         [32]byte
	Helm          uint8
	Race          uint32
	LastName      [32]byte
	WalkSpeed     float32
	IsPet         uint8
	Light         uint8
	Class         uint8
	EyeColor2     uint8
	FlyMode       uint8
	Gender        uint8
	BodyType      uint8
	SpawnID       uint32
	EquipmentTint [MaterialSlots]Tint
	LFG           uint8
	Next          uint32
}

// SpawnsHeader precedes SpawnCount chained Spawn records.
type SpawnsHeader struct {
	SpawnCount uint32
}

type Door struct {
	Name      [32]byte
	Y         float32
	X         float32
	Z         float32
	Heading   float32
	Incline   uint32
	Size      uint16
	DoorID    uint8
	OpenType  uint8
	State     uint8
	Invert    uint8
	DoorParam uint32
	Next      uint32
}

type DeleteSpawn struct {
	SpawnID uint32
}

// Object is a ground spawn.
type Object struct {
	LinkedListAddr [2]uint32
	DropID         uint32
	ZoneID         uint16
	ZoneInstance   uint16
	Heading        float32
	Z              float32
	X              float32
	Y              float32
	ObjectName     [32]byte
	ObjectType     uint32
	SpawnID        uint32
}

// Illusion fields set to -1 (or 0 for Size) leave the current appearance unchanged.
type Illusion struct {
	SpawnID     uint32
	CharName    [64]byte
	Race        int32
	Gender      int8
	Texture     int8
	HelmTexture int8
	Face        uint8
	HairStyle   uint8
	HairColor   uint8
	Beard       uint8
	BeardColor  uint8
	Size        float32
}

type FaceChange struct {
	HairColor  uint8
	BeardColor uint8
	EyeColor1  uint8
	EyeColor2  uint8
	HairStyle  uint8
	Beard      uint8
	Face       uint8
	Unused     uint8
}

type WearChange struct {
	SpawnID    uint16
	Material   uint32
	Color      Tint
	WearSlotID uint8
}

// PositionUpdate is a server-sent position update.
type PositionUpdate struct {
	SpawnID      uint16
	Y            float32
	X            float32
	Z            float32
	Heading      float32
	DeltaY       float32
	DeltaX       float32
	DeltaZ       float32
	DeltaHeading float32
	Animation    int32
}

// ClientPosition is a client-sent position update.
type ClientPosition struct {
	SpawnID      uint16
	Sequence     uint16
	Y            float32
	X            float32
	Z            float32
	Heading      float32
	DeltaY       float32
	DeltaX       float32
	DeltaZ       float32
	DeltaHeading float32
	Animation    int32
}

type Track struct {
	EntityID uint32
	Distance float32
}

type MarkNPC struct {
	TargetID uint32
	Number   uint32
	Name     [64]byte
}
