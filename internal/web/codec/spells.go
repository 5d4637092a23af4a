package codec

import (
	"context"

	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/slots"
)

// scribingSpellBar marks a MemorizeSpell whose slot is a casting slot rather than a book page.
const scribingSpellBar = 3

// petCommands maps web pet window buttons to server pet commands. Unlisted values pass as is.
var petCommands = map[uint32]uint32{
	1:  28, // back off
	2:  29, // get lost
	3:  4,  // as you were, treated as follow
	4:  0,  // health report
	5:  5,  // guard here
	6:  4,  // guard me, treated as follow
	7:  2,  // attack
	8:  4,  // follow
	9:  7,  // sit down
	10: 8,  // stand up
	11: 12, // taunt toggle
	12: 15, // hold toggle
	13: 13, // taunt on
	14: 14, // no taunt
	16: 1,  // leader
	17: 27, // feign
	18: 21, // no cast toggle
	19: 24, // focus toggle
}

func (c *Codec) encodeAction(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.Action](p.Data, canonical.ActionSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.Action{
		Target:        in.Target,
		Source:        in.Source,
		Level:         in.Level,
		InstrumentMod: in.InstrumentMod,
		Force:         in.Force,
		HitHeading:    in.HitHeading,
		HitPitch:      in.HitPitch,
		Type:          in.Type,
		Spell:         uint16(in.Spell), //nolint:gosec // spell ids fit in 16 bits on this client
		SpellLevel:    in.SpellLevel,
		EffectFlag:    in.EffectFlag,
	})
}

func (c *Codec) encodeDamage(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.CombatDamage](p.Data, canonical.CombatDamageSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.CombatDamage{
		Target:     in.Target,
		Source:     in.Source,
		Type:       in.Type,
		SpellID:    in.SpellID,
		Damage:     in.Damage,
		Force:      in.Force,
		HitHeading: in.HitHeading,
		HitPitch:   in.HitPitch,
	})
}

func (c *Codec) encodeBuff(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.SpellBuffPacket](p.Data, canonical.SpellBuffPacketSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.SpellBuffPacket{
		EntityID: in.EntityID,
		Buff: web.SpellBuff{
			EffectType:   in.Buff.EffectType,
			Level:        in.Buff.Level,
			BardModifier: in.Buff.BardModifier,
			SpellID:      in.Buff.SpellID,
			Duration:     in.Buff.Duration,
			Counters:     in.Buff.Counters,
			PlayerID:     in.Buff.PlayerID,
		},
		SlotID:   uint32(slots.BuffServerToWeb(int(in.SlotID))), //nolint:gosec // buff indices are small
		BuffFade: in.BuffFade,
	})
}

func (c *Codec) decodeBuff(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.SpellBuffPacket](p.Data, web.SpellBuffPacketSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.SpellBuffPacket{
		EntityID: in.EntityID,
		Buff: canonical.SpellBuff{
			EffectType:   in.Buff.EffectType,
			Level:        in.Buff.Level,
			BardModifier: in.Buff.BardModifier,
			SpellID:      in.Buff.SpellID,
			Duration:     in.Buff.Duration,
			Counters:     in.Buff.Counters,
			PlayerID:     in.Buff.PlayerID,
		},
		SlotID:   uint32(slots.BuffWebToServer(int(in.SlotID))), //nolint:gosec // buff indices are small
		BuffFade: in.BuffFade,
	})
}

func (c *Codec) decodeCastSpell(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.CastSpell](p.Data, web.CastSpellSize)
	if err != nil {
		return dropped(err)
	}

	inventorySlot := in.InventorySlot
	if inventorySlot != slots.InvalidIndex {
		inventorySlot = toServer(ctx, c, slots.Inventory, inventorySlot)
	}

	return replaceWith(p.Opcode, &canonical.CastSpell{
		Slot:          slots.CastingWebToServer(in.Slot, in.InventorySlot),
		SpellID:       in.SpellID,
		InventorySlot: inventorySlot,
		TargetID:      in.TargetID,
	})
}

func (c *Codec) encodeMemorizeSpell(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.MemorizeSpell](p.Data, canonical.MemorizeSpellSize)
	if err != nil {
		return dropped(err)
	}

	slot := in.Slot
	if in.Scribing == scribingSpellBar {
		slot = slots.CastingServerToWeb(slot)
	}

	return replaceWith(p.Opcode, &web.MemorizeSpell{
		Slot:     slot,
		SpellID:  in.SpellID,
		Scribing: in.Scribing,
	})
}

func (c *Codec) encodeManaChange(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.ManaChange](p.Data, canonical.ManaChangeSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.ManaChange{
		NewMana:     in.NewMana,
		Stamina:     in.Stamina,
		SpellID:     in.SpellID,
		KeepCasting: in.KeepCasting,
	})
}

func (c *Codec) decodeLoadSpellSet(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.LoadSpellSet](p.Data, web.LoadSpellSetSize)
	if err != nil {
		return dropped(err)
	}

	var out canonical.LoadSpellSet
	copy(out.Spells[:], in.Spells[:])
	for i := web.SpellGems; i < canonical.SpellGems; i++ {
		out.Spells[i] = canonical.InvalidIndex
	}

	return replaceWith(p.Opcode, &out)
}

// encodePetBuffWindow packs the pet's buffs to the front of the window.
func (c *Codec) encodePetBuffWindow(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.PetBuff](p.Data, canonical.PetBuffSize)
	if err != nil {
		return dropped(err)
	}

	out := web.PetBuff{PetID: in.PetID, BuffCount: in.BuffCount}
	n := 0
	for i, spell := range in.SpellIDs {
		if spell == 0 {
			continue
		}
		out.SpellIDs[n] = spell
		out.TicsRemaining[n] = in.TicsRemaining[i]
		n++
	}

	return replaceWith(p.Opcode, &out)
}

func (c *Codec) decodePetCommands(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.PetCommand](p.Data, web.PetCommandSize)
	if err != nil {
		return dropped(err)
	}

	command, ok := petCommands[in.Command]
	if !ok {
		command = in.Command
	}

	return replaceWith(p.Opcode, &canonical.PetCommand{Command: command, Target: in.Target})
}
