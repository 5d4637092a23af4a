package codec

import (
	"context"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/slots"
)

func (c *Codec) encodeMoveItem(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.MoveItem](p.Data, canonical.MoveItemSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.MoveItem{
		FromSlot:      toWeb(ctx, c, slots.Inventory, in.FromSlot),
		ToSlot:        toWeb(ctx, c, slots.Inventory, in.ToSlot),
		NumberInStack: in.NumberInStack,
	})
}

func (c *Codec) decodeMoveItem(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.MoveItem](p.Data, web.MoveItemSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.MoveItem{
		FromSlot:      toServer(ctx, c, slots.Inventory, in.FromSlot),
		ToSlot:        toServer(ctx, c, slots.Inventory, in.ToSlot),
		NumberInStack: in.NumberInStack,
	})
}

func (c *Codec) encodeDeleteCharge(ctx context.Context, p packets.Packet) Result {
	return c.forward(ctx, Encode, opcodes.MoveItem, p)
}

func (c *Codec) decodeConsume(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.Consume](p.Data, web.ConsumeSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.Consume{
		Slot:         toServer(ctx, c, slots.Inventory, in.Slot),
		AutoConsumed: in.AutoConsumed,
		Type:         in.Type,
	})
}

// Loot windows number their slots with the corpse mapping.
func (c *Codec) encodeLootItem(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.LootingItem](p.Data, canonical.LootingItemSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.LootingItem{
		Lootee:   in.Lootee,
		Looter:   in.Looter,
		SlotID:   toWeb(ctx, c, slots.Corpse, in.SlotID),
		AutoLoot: in.AutoLoot,
	})
}

func (c *Codec) decodeLootItem(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.LootingItem](p.Data, web.LootingItemSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.LootingItem{
		Lootee:   in.Lootee,
		Looter:   in.Looter,
		SlotID:   toServer(ctx, c, slots.Corpse, in.SlotID),
		AutoLoot: in.AutoLoot,
	})
}

func (c *Codec) encodeApplyPoison(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.ApplyPoison](p.Data, canonical.ApplyPoisonSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.ApplyPoison{
		InventorySlot: toWeb(ctx, c, slots.Inventory, in.InventorySlot),
		Success:       in.Success,
	})
}

func (c *Codec) decodeApplyPoison(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.ApplyPoison](p.Data, web.ApplyPoisonSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.ApplyPoison{
		InventorySlot: toServer(ctx, c, slots.Inventory, in.InventorySlot),
		Success:       in.Success,
	})
}

func (c *Codec) encodeAdventureMerchantSell(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.AdventureMerchantSell](p.Data, canonical.AdventureMerchantSellSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.AdventureMerchantSell{
		Unknown000:  in.Unknown000,
		NPCID:       in.NPCID,
		Slot:        toWeb(ctx, c, slots.Inventory, in.Slot),
		ChargesSold: in.ChargesSold,
		SellPrice:   in.SellPrice,
	})
}

func (c *Codec) decodeAdventureMerchantSell(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.AdventureMerchantSell](p.Data, web.AdventureMerchantSellSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.AdventureMerchantSell{
		Unknown000:  in.Unknown000,
		NPCID:       in.NPCID,
		Slot:        toServer(ctx, c, slots.Inventory, in.Slot),
		ChargesSold: in.ChargesSold,
		SellPrice:   in.SellPrice,
	})
}

func (c *Codec) encodeShopPlayerSell(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.ShopPlayerSell](p.Data, canonical.ShopPlayerSellSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.ShopPlayerSell{
		NPCID:    in.NPCID,
		Slot:     toWeb(ctx, c, slots.Inventory, in.Slot),
		Quantity: in.Quantity,
		Price:    in.Price,
	})
}

func (c *Codec) decodeShopPlayerSell(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.ShopPlayerSell](p.Data, web.ShopPlayerSellSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.ShopPlayerSell{
		NPCID:    in.NPCID,
		Slot:     toServer(ctx, c, slots.Inventory, in.Slot),
		Quantity: in.Quantity,
		Price:    in.Price,
	})
}

func (c *Codec) encodeTributeItem(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.TributeItem](p.Data, canonical.TributeItemSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.TributeItem{
		Slot:            toWeb(ctx, c, slots.Inventory, in.Slot),
		Quantity:        in.Quantity,
		TributeMasterID: in.TributeMasterID,
		TributePoints:   in.TributePoints,
	})
}

func (c *Codec) decodeTributeItem(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.TributeItem](p.Data, web.TributeItemSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.TributeItem{
		Slot:            toServer(ctx, c, slots.Inventory, in.Slot),
		Quantity:        in.Quantity,
		TributeMasterID: in.TributeMasterID,
		TributePoints:   in.TributePoints,
	})
}

func (c *Codec) decodeAugmentItem(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.AugmentItem](p.Data, web.AugmentItemSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.AugmentItem{
		ContainerSlot: toServer(ctx, c, slots.Inventory, in.ContainerSlot),
		AugmentSlot:   in.AugmentSlot,
	})
}

func (c *Codec) decodeTradeSkillCombine(ctx context.Context, p packets.Packet) Result {
	in, err := readExact[web.NewCombine](p.Data, web.NewCombineSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.NewCombine{
		ContainerSlot:    toServer(ctx, c, slots.Inventory, in.ContainerSlot),
		GuildTributeSlot: in.GuildTributeSlot,
	})
}

// The web inspect window has no power source entry and keeps ammo last.
func (c *Codec) encodeInspectAnswer(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.InspectResponse](p.Data, canonical.InspectResponseSize)
	if err != nil {
		return dropped(err)
	}

	out := web.InspectResponse{
		TargetID: in.TargetID,
		PlayerID: in.PlayerID,
	}
	for i := int(slots.ServerSlotCharm); i <= int(slots.ServerSlotWaist); i++ {
		out.ItemNames[i] = in.ItemNames[i]
		out.ItemIcons[i] = in.ItemIcons[i]
	}
	out.ItemNames[web.InspectAmmo] = in.ItemNames[slots.ServerSlotAmmo]
	out.ItemIcons[web.InspectAmmo] = in.ItemIcons[slots.ServerSlotAmmo]
	out.Text = in.Text

	return replaceWith(p.Opcode, &out)
}

func (c *Codec) decodeInspectAnswer(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.InspectResponse](p.Data, web.InspectResponseSize)
	if err != nil {
		return dropped(err)
	}

	out := canonical.InspectResponse{
		TargetID: in.TargetID,
		PlayerID: in.PlayerID,
	}
	for i := int(slots.ServerSlotCharm); i <= int(slots.ServerSlotWaist); i++ {
		out.ItemNames[i] = in.ItemNames[i]
		out.ItemIcons[i] = in.ItemIcons[i]
	}
	out.ItemNames[slots.ServerSlotAmmo] = in.ItemNames[web.InspectAmmo]
	out.ItemIcons[slots.ServerSlotAmmo] = in.ItemIcons[web.InspectAmmo]
	out.ItemIcons[slots.ServerSlotPowerSource] = canonical.InvalidIndex
	out.Text = in.Text

	return replaceWith(p.Opcode, &out)
}

func (c *Codec) encodeInspectRequest(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.InspectRequest](p.Data, canonical.InspectRequestSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.InspectRequest{TargetID: in.TargetID, PlayerID: in.PlayerID})
}

func (c *Codec) decodeInspectRequest(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.InspectRequest](p.Data, web.InspectRequestSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.InspectRequest{TargetID: in.TargetID, PlayerID: in.PlayerID})
}
