package slots

// InvalidIndex is the "no inventory slot" marker carried in spell cast requests.
const InvalidIndex uint32 = 0xFFFFFFFF

// Server casting slots.
const (
	ServerCastGem1       uint32 = 0
	ServerCastGem9       uint32 = 8
	ServerCastGem12      uint32 = 11
	ServerCastAbility    uint32 = 12
	ServerCastPotionBelt uint32 = 13
	ServerCastItem       uint32 = 14
	ServerCastDiscipline uint32 = 15
)

// Web casting slots. Item and Discipline share a number on this client.
const (
	WebCastGem1       uint32 = 0
	WebCastGem9       uint32 = 8
	WebCastAbility    uint32 = 9
	WebCastItem       uint32 = 10
	WebCastDiscipline uint32 = 10
	WebCastPotionBelt uint32 = 11
)

// CastAltAbility has the same value in both schemes.
const CastAltAbility uint32 = 0xFF

// CastingServerToWeb translates a server casting slot. Gems the web client does not have
// fall back to Discipline.
func CastingServerToWeb(slot uint32) uint32 {
	switch {
	case slot <= ServerCastGem9:
		return slot
	case slot == ServerCastAbility:
		return WebCastAbility
	case slot == ServerCastItem:
		return WebCastItem
	case slot == ServerCastPotionBelt:
		return WebCastPotionBelt
	case slot == ServerCastDiscipline:
		return WebCastDiscipline
	case slot == CastAltAbility:
		return CastAltAbility
	default:
		return WebCastDiscipline
	}
}

// CastingWebToServer translates a web casting slot. The web Item slot doubles as the
// Discipline slot; an invalid inventory slot means the cast came from a discipline.
func CastingWebToServer(slot, inventorySlot uint32) uint32 {
	switch {
	case slot <= WebCastGem9:
		return slot
	case slot == WebCastAbility:
		return ServerCastAbility
	case slot == WebCastItem:
		if inventorySlot == InvalidIndex {
			return ServerCastDiscipline
		}
		return ServerCastItem
	case slot == WebCastPotionBelt:
		return ServerCastPotionBelt
	case slot == CastAltAbility:
		return CastAltAbility
	default:
		return ServerCastDiscipline
	}
}
