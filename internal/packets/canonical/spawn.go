package canonical

const (
	SpawnSize           = 482
	DoorSize            = 80
	DeleteSpawnSize     = 5
	GroundSpawnSize     = 100
	IllusionSize        = 140
	FaceChangeSize      = 24
	WearChangeSize      = 27
	ClientUpdateSize    = 40
	ClientUpdateReqSize = 44
	TrackSize           = 76
	MarkNPCSize         = 72
)

// Spawn describes one entity entering the zone.
type Spawn struct {
	GM              uint8
	AATitle         uint8
	Anon            uint8
	Face            uint8
	Name            [64]byte
	Deity           uint16
	Size            float32
	NPC             uint8
	Invis           uint8
	HairColor       uint8
	CurHP           uint8
	MaxHP           uint8
	Findable        uint8
	Y               float32
	X               float32
	Z               float32
	Heading         float32
	DeltaY          float32
	DeltaX          float32
	DeltaZ          float32
	DeltaHeading    float32
	EyeColor1       uint8
	EyeColor2       uint8
	ShowHelm        uint8
	Level           uint8
	PlayerState     uint32
	BeardColor      uint8
	Suffix          [32]byte
	PetOwnerID      uint32
	GuildRank       uint8
	Equipment       [MaterialSlots]Texture
	RunSpeed        float32
	AFK             uint8
	GuildID         uint32
	Title           [32]byte
	Helm            uint8
	Race            uint32
	LastName        [32]byte
	WalkSpeed       float32
	IsPet           uint8
	Light           uint8
	Class           uint8
	EquipmentTint   [MaterialSlots]Tint
	Gender          uint8
	BodyType        uint8
	SpawnID         uint32
	FlyMode         uint8
	DrakkinHeritage uint32
	DrakkinTattoo   uint32
	DrakkinDetails  uint32
	LFG             uint8
	HairStyle       uint8
	Beard           uint8
	IsMercenary     uint8
}

type Door struct {
	Name       [32]byte
	Y          float32
	X          float32
	Z          float32
	Heading    float32
	Incline    uint32
	Size       uint16
	Unknown038 [6]uint8
	DoorID     uint8
	OpenType   uint8
	State      uint8
	Invert     uint8
	DoorParam  uint32
	Unknown056 [12]uint8
}

type DeleteSpawn struct {
	SpawnID uint32
	Decay   uint8
}

// GroundSpawn places a world object.
type GroundSpawn struct {
	Linked       uint32
	Size         float32
	Solid        uint16
	Unknown010   uint16
	DropID       uint32
	ZoneID       uint16
	ZoneInstance uint16
	Incline      uint32
	Unknown024   uint32
	TiltX        float32
	TiltY        float32
	Heading      float32
	Z            float32
	X            float32
	Y            float32
	ObjectName   [32]byte
	Unknown080   uint32
	ObjectType   uint32
	Unknown088   uint32
	SpawnID      uint32
}

type Illusion struct {
	SpawnID         uint32
	CharName        [64]byte
	Race            int32
	Gender          uint8
	Texture         uint8
	HelmTexture     uint8
	Unknown075      uint8
	Face            uint8
	HairStyle       uint8
	HairColor       uint8
	Beard           uint8
	BeardColor      uint8
	Unknown081      [3]uint8
	Size            float32
	DrakkinHeritage uint32
	DrakkinTattoo   uint32
	DrakkinDetails  uint32
	ArmorTint       [MaterialSlots]Tint
	EyeColor1       uint8
	EyeColor2       uint8
	Unknown138      [2]uint8
}

type FaceChange struct {
	HairColor       uint8
	BeardColor      uint8
	EyeColor1       uint8
	EyeColor2       uint8
	HairStyle       uint8
	Beard           uint8
	Face            uint8
	Unused          uint8
	DrakkinHeritage uint32
	DrakkinTattoo   uint32
	DrakkinDetails  uint32
	EntityID        uint32
}

type WearChange struct {
	SpawnID        uint16
	Material       uint32
	Unknown06      uint32
	EliteMaterial  uint32
	HeroForgeModel uint32
	Unknown18      uint32
	Color          Tint
	WearSlotID     uint8
}

// ClientUpdate is a position update sent to clients.
type ClientUpdate struct {
	SpawnID      uint16
	VehicleID    uint16
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

// ClientUpdateReq is a position update received from a client.
type ClientUpdateReq struct {
	SpawnID      uint16
	VehicleID    uint16
	Sequence     uint16
	Unknown006   uint16
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
	Level    uint8
	IsNPC    uint8
	Name     [64]byte
	IsPet    uint8
	IsMerc   uint8
}

type MarkNPC struct {
	TargetID uint32
	Number   uint32
	Name     [64]byte
}
