package serializer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GoFFXI/webcodec/internal/items"
)

const (
	slotBitPowerSource = 1 << 21
	slotBitAmmo        = 1 << 22
)

// fields appends pipe-separated values. The first value is written without a separator.
type fields struct {
	sb    *strings.Builder
	first bool
}

func (f *fields) sep() {
	if f.first {
		f.first = false
		return
	}
	f.sb.WriteByte('|')
}

func (f *fields) num(v int64) {
	f.sep()
	f.sb.WriteString(strconv.FormatInt(v, 10))
}

func (f *fields) unum(v uint64) {
	f.sep()
	f.sb.WriteString(strconv.FormatUint(v, 10))
}

func (f *fields) flag(v bool) {
	f.num(boolInt(v))
}

func (f *fields) text(v string) {
	f.sep()
	f.sb.WriteString(v)
}

func (f *fields) effect(e items.Effect) {
	f.num(int64(e.Effect))
	f.unum(uint64(e.Type))
	f.unum(uint64(e.Level2))
	f.unum(uint64(e.Level))
	f.text("0")
}

// webSlotMask moves the ammo bit into the power source position, which is where this
// client expects it, and drops the bit it has no slot for.
func webSlotMask(mask uint32) uint32 {
	if (mask&slotBitPowerSource != 0) != (mask&slotBitAmmo != 0) {
		mask ^= slotBitPowerSource | slotBitAmmo
	}

	return mask &^ slotBitAmmo
}

func writeStatic(sb *strings.Builder, item *items.Data) {
	f := &fields{sb: sb, first: true}

	f.unum(uint64(item.ItemClass))
	f.text(item.Name)
	f.text(item.Lore)
	f.text(item.IDFile)
	f.unum(uint64(item.ID))
	f.num(int64(min(item.Weight, 255)))

	f.unum(uint64(item.NoRent))
	f.unum(uint64(item.NoDrop))
	f.unum(uint64(item.Size))
	f.unum(uint64(webSlotMask(item.Slots)))
	f.unum(uint64(item.Price))
	f.unum(uint64(item.Icon))
	f.text("0")
	f.text("0")
	f.num(int64(item.BenefitFlag))
	f.flag(item.Tradeskills)

	for _, v := range []int8{item.CR, item.DR, item.PR, item.MR, item.FR, item.AStr, item.ASta, item.AAgi, item.ADex, item.ACha, item.AInt, item.AWis} {
		f.num(int64(v))
	}

	f.num(int64(item.HP))
	f.num(int64(item.Mana))
	f.num(int64(item.AC))
	f.unum(uint64(item.Deity))

	f.num(int64(item.SkillModValue))
	f.num(int64(item.SkillModMax))
	f.unum(uint64(item.SkillModType))

	f.unum(uint64(item.BaneDmgRace))
	f.num(int64(min(item.BaneDmgAmt, 255)))
	f.unum(uint64(item.BaneDmgBody))

	f.flag(item.Magic)
	f.num(int64(item.CastTime))
	f.unum(uint64(item.ReqLevel))
	f.unum(uint64(item.BardType))
	f.num(int64(item.BardValue))
	f.num(int64(item.Light))
	f.unum(uint64(item.Delay))
	f.unum(uint64(item.RecLevel))
	f.unum(uint64(item.RecSkill))

	f.unum(uint64(item.ElemDmgType))
	f.unum(uint64(item.ElemDmgAmt))
	f.unum(uint64(item.Range))
	f.unum(uint64(item.Damage))

	f.unum(uint64(item.Color))
	f.unum(uint64(item.Classes))
	f.unum(uint64(item.Races))
	f.text("0")

	f.num(int64(item.MaxCharges))
	f.unum(uint64(item.ItemType))
	f.unum(uint64(item.Material))
	f.text(fmt.Sprintf("%f", item.SellRate))

	f.text("0")
	f.num(int64(item.CastTime))
	f.text("0")

	f.num(int64(item.ProcRate))
	f.num(int64(item.CombatEffects))
	f.num(int64(item.Shielding))
	f.num(int64(item.StunResist))
	f.num(int64(item.StrikeThrough))
	f.unum(uint64(item.ExtraDmgSkill))
	f.unum(uint64(item.ExtraDmgAmt))
	f.num(int64(item.SpellShield))
	f.num(int64(item.Avoidance))
	f.num(int64(item.Accuracy))

	f.unum(uint64(item.CharmFileID))

	for _, v := range []int32{item.FactionMod1, item.FactionMod2, item.FactionMod3, item.FactionMod4, item.FactionAmt1, item.FactionAmt2, item.FactionAmt3, item.FactionAmt4} {
		f.num(int64(v))
	}

	f.text(item.CharmFile)
	f.unum(uint64(item.AugType))
	for i := range items.AugmentSlots {
		f.unum(uint64(item.AugSlotType[i]))
		f.unum(uint64(item.AugSlotVisible[i]))
	}

	f.unum(uint64(item.LDoNTheme))
	f.unum(uint64(item.LDoNPrice))
	f.unum(uint64(item.LDoNSold))

	f.unum(uint64(item.BagType))
	f.unum(uint64(item.BagSlots))
	f.unum(uint64(item.BagSize))
	f.unum(uint64(item.BagWR))

	f.unum(uint64(item.Book))
	f.unum(uint64(item.BookType))
	f.text(item.Filename)

	f.num(int64(item.BaneDmgRaceAmt))
	f.unum(uint64(item.AugRestrict))
	f.num(int64(item.LoreGroup))
	f.flag(item.PendingLoreFlag)
	f.flag(item.ArtifactFlag)
	f.flag(item.SummonedFlag)

	f.unum(uint64(item.Favor))
	f.flag(item.FVNoDrop)
	f.num(int64(item.Endur))
	f.num(int64(item.DotShielding))
	f.num(int64(item.Attack))
	f.num(int64(item.Regen))
	f.num(int64(item.ManaRegen))
	f.num(int64(item.EnduranceRegen))
	f.num(int64(item.Haste))
	f.num(int64(item.DamageShield))
	f.unum(uint64(item.RecastDelay))
	f.unum(uint64(item.RecastType))
	f.unum(uint64(item.GuildFavor))

	f.unum(uint64(item.AugDistiller))

	f.flag(item.Attuneable)
	f.flag(item.NoPet)
	f.unum(uint64(item.PointType))

	f.flag(item.PotionBelt)
	f.unum(uint64(item.PotionBeltSlots))
	f.num(int64(item.StackSize))
	f.flag(item.NoTransfer)
	f.flag(item.Stackable)

	f.effect(item.Click)
	f.effect(item.Proc)
	f.effect(item.Worn)
	f.effect(item.Focus)
	f.effect(item.Scroll)
}
