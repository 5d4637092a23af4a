package codec

import (
	"context"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
	"github.com/GoFFXI/webcodec/internal/web/collection"
)

func webTints(in [canonical.MaterialSlots]canonical.Tint) [web.MaterialSlots]web.Tint {
	var out [web.MaterialSlots]web.Tint
	for i := range out {
		out[i] = web.Tint(in[i])
	}

	return out
}

func (c *Codec) encodeNewSpawn(ctx context.Context, p packets.Packet) Result {
	return c.forward(ctx, Encode, opcodes.ZoneSpawns, p)
}

// encodeZoneSpawns rewrites a run of spawns as a counted, chained list. An empty run is
// still sent so the client knows the zone has no spawns.
func (c *Codec) encodeZoneSpawns(_ context.Context, p packets.Packet) Result {
	count, err := collection.Count(p.Data, canonical.SpawnSize)
	if err != nil {
		return dropped(err)
	}

	records := make([][]byte, 0, count)
	r := buffer.NewReader(p.Data)
	for range count {
		var in canonical.Spawn
		if err = r.Struct(&in); err != nil {
			return dropped(err)
		}

		data, err := buffer.Encode(webSpawn(&in))
		if err != nil {
			return dropped(err)
		}
		records = append(records, data)
	}

	w := buffer.NewWriter(web.SpawnsHeaderSize + count*web.SpawnSize)
	w.Uint32(uint32(count)) //nolint:gosec // bounded by packet size
	w.Bytes(collection.PackLinked(records, web.SpawnsHeaderSize))

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

func webSpawn(in *canonical.Spawn) *web.Spawn {
	out := &web.Spawn{
		GM:            in.GM,
		AATitle:       in.AATitle,
		Anon:          in.Anon,
		Face:          in.Face,
		Name:          in.Name,
		Deity:         in.Deity,
		Size:          in.Size,
		NPC:           in.NPC,
		Invis:         in.Invis,
		HairColor:     in.HairColor,
		CurHP:         in.CurHP,
		MaxHP:         in.MaxHP,
		Findable:      in.Findable,
		Y:             in.Y,
		X:             in.X,
		Z:             in.Z,
		Heading:       in.Heading,
		DeltaY:        in.DeltaY,
		DeltaX:        in.DeltaX,
		DeltaZ:        in.DeltaZ,
		DeltaHeading:  in.DeltaHeading,
		EyeColor1:     in.EyeColor1,
		ShowHelm:      in.ShowHelm,
		HairStyle:     in.HairStyle,
		BeardColor:    in.BeardColor,
		Level:         in.Level,
		PlayerState:   in.PlayerState,
		Beard:         in.Beard,
		Suffix:        in.Suffix,
		PetOwnerID:    in.PetOwnerID,
		GuildRank:     in.GuildRank,
		RunSpeed:      in.RunSpeed,
		AFK:           in.AFK,
		GuildID:       in.GuildID,
		Title:         in.Title,
		Helm:          in.Helm,
		Race:          clampRace(in.Race),
		LastName:      in.LastName,
		WalkSpeed:     in.WalkSpeed,
		IsPet:         in.IsPet,
		Light:         in.Light,
		Class:         in.Class,
		EyeColor2:     in.EyeColor2,
		FlyMode:       in.FlyMode,
		Gender:        in.Gender,
		BodyType:      in.BodyType,
		SpawnID:       in.SpawnID,
		EquipmentTint: webTints(in.EquipmentTint),
		LFG:           in.LFG,
	}

	for i := range out.Equipment {
		out.Equipment[i] = in.Equipment[i].Material
	}

	return out
}

// encodeSpawnDoor chains the doors of a zone. The web client has no door count, so an
// empty list cannot be expressed.
func (c *Codec) encodeSpawnDoor(_ context.Context, p packets.Packet) Result {
	count, err := collection.Count(p.Data, canonical.DoorSize)
	if err != nil {
		return dropped(err)
	}
	if count == 0 {
		return dropped(collection.ErrMalformedCount)
	}

	records := make([][]byte, 0, count)
	r := buffer.NewReader(p.Data)
	for range count {
		var in canonical.Door
		if err = r.Struct(&in); err != nil {
			return dropped(err)
		}

		data, err := buffer.Encode(&web.Door{
			Name:      in.Name,
			Y:         in.Y,
			X:         in.X,
			Z:         in.Z,
			Heading:   in.Heading,
			Incline:   in.Incline,
			Size:      in.Size,
			DoorID:    in.DoorID,
			OpenType:  in.OpenType,
			State:     in.State,
			Invert:    in.Invert,
			DoorParam: in.DoorParam,
		})
		if err != nil {
			return dropped(err)
		}
		records = append(records, data)
	}

	return replaced(packets.Packet{Opcode: p.Opcode, Data: collection.PackLinked(records, 0)})
}

func (c *Codec) encodeDeleteSpawn(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.DeleteSpawn](p.Data, canonical.DeleteSpawnSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.DeleteSpawn{SpawnID: in.SpawnID})
}

func (c *Codec) encodeGroundSpawn(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.GroundSpawn](p.Data, canonical.GroundSpawnSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.Object{
		DropID:       in.DropID,
		ZoneID:       in.ZoneID,
		ZoneInstance: in.ZoneInstance,
		Heading:      in.Heading,
		Z:            in.Z,
		X:            in.X,
		Y:            in.Y,
		ObjectName:   in.ObjectName,
		ObjectType:   in.ObjectType,
		SpawnID:      in.SpawnID,
	})
}

func (c *Codec) encodeIllusion(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.Illusion](p.Data, canonical.IllusionSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.Illusion{
		SpawnID:     in.SpawnID,
		CharName:    in.CharName,
		Race:        clampRace(in.Race),
		Gender:      int8(in.Gender),      //nolint:gosec // 0xFF means unchanged on both sides
		Texture:     int8(in.Texture),     //nolint:gosec // same
		HelmTexture: int8(in.HelmTexture), //nolint:gosec // same
		Face:        in.Face,
		HairStyle:   in.HairStyle,
		HairColor:   in.HairColor,
		Beard:       in.Beard,
		BeardColor:  in.BeardColor,
		Size:        in.Size,
	})
}

// encodeSetFace has no web counterpart; the client applies face changes through an
// illusion that leaves everything else as it is.
func (c *Codec) encodeSetFace(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.FaceChange](p.Data, canonical.FaceChangeSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(opcodes.Illusion, &web.Illusion{
		SpawnID:     in.EntityID,
		Race:        -1,
		Gender:      -1,
		Texture:     -1,
		HelmTexture: -1,
		Face:        in.Face,
		HairStyle:   in.HairStyle,
		HairColor:   in.HairColor,
		Beard:       in.Beard,
		BeardColor:  in.BeardColor,
	})
}

func (c *Codec) decodeFaceChange(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.FaceChange](p.Data, web.FaceChangeSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.FaceChange{
		HairColor:  in.HairColor,
		BeardColor: in.BeardColor,
		EyeColor1:  in.EyeColor1,
		EyeColor2:  in.EyeColor2,
		HairStyle:  in.HairStyle,
		Beard:      in.Beard,
		Face:       in.Face,
	})
}

func (c *Codec) encodeWearChange(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.WearChange](p.Data, canonical.WearChangeSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.WearChange{
		SpawnID:    in.SpawnID,
		Material:   in.Material,
		Color:      web.Tint(in.Color),
		WearSlotID: in.WearSlotID,
	})
}

func (c *Codec) decodeWearChange(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.WearChange](p.Data, web.WearChangeSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.WearChange{
		SpawnID:    in.SpawnID,
		Material:   in.Material,
		Color:      canonical.Tint(in.Color),
		WearSlotID: in.WearSlotID,
	})
}

func (c *Codec) encodeClientUpdate(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.ClientUpdate](p.Data, canonical.ClientUpdateSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.PositionUpdate{
		SpawnID:      in.SpawnID,
		Y:            in.Y,
		X:            in.X,
		Z:            in.Z,
		Heading:      in.Heading,
		DeltaY:       in.DeltaY,
		DeltaX:       in.DeltaX,
		DeltaZ:       in.DeltaZ,
		DeltaHeading: in.DeltaHeading,
		Animation:    in.Animation,
	})
}

func (c *Codec) decodeClientUpdate(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.ClientPosition](p.Data, web.ClientPositionSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &canonical.ClientUpdateReq{
		SpawnID:      in.SpawnID,
		Sequence:     in.Sequence,
		Y:            in.Y,
		X:            in.X,
		Z:            in.Z,
		Heading:      in.Heading,
		DeltaY:       in.DeltaY,
		DeltaX:       in.DeltaX,
		DeltaZ:       in.DeltaZ,
		DeltaHeading: in.DeltaHeading,
		Animation:    in.Animation,
	})
}

// encodeTrack keeps only what the tracking window can show.
func (c *Codec) encodeTrack(_ context.Context, p packets.Packet) Result {
	count, err := collection.Count(p.Data, canonical.TrackSize)
	if err != nil {
		return dropped(err)
	}
	if count == 0 {
		return dropped(collection.ErrMalformedCount)
	}

	w := buffer.NewWriter(count * web.TrackSize)
	r := buffer.NewReader(p.Data)
	for range count {
		var in canonical.Track
		if err = r.Struct(&in); err != nil {
			return dropped(err)
		}

		if err = w.Struct(&web.Track{EntityID: in.EntityID, Distance: in.Distance}); err != nil {
			return dropped(err)
		}
	}

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

// encodeMarkRaidNPC marks the target for the client and echoes the raid mark as well.
func (c *Codec) encodeMarkRaidNPC(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.MarkNPC](p.Data, canonical.MarkNPCSize)
	if err != nil {
		return dropped(err)
	}

	mark, err := record(opcodes.MarkNPC, &web.MarkNPC{TargetID: in.TargetID, Number: in.Number})
	if err != nil {
		return dropped(err)
	}

	raid, err := record(p.Opcode, &web.MarkNPC{TargetID: in.TargetID, Number: in.Number, Name: in.Name})
	if err != nil {
		return dropped(err)
	}

	return replaced(mark, raid)
}
