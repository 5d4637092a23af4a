package codec

import (
	"context"
	"fmt"

	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
)

// rewriteMessage copies a fixed header and re-encodes the links in the text that follows it.
func rewriteMessage(p packets.Packet, headerSize int, convert func(string) string) Result {
	if len(p.Data) < headerSize {
		return dropped(fmt.Errorf("%w: got %d bytes, want at least %d", buffer.ErrLengthTooShort, len(p.Data), headerSize))
	}

	msg := convert(buffer.FixedString(p.Data[headerSize:]))

	w := buffer.NewWriter(headerSize + len(msg) + 1)
	w.Bytes(p.Data[:headerSize])
	w.CString(msg)

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

func (c *Codec) encodeChannelMessage(_ context.Context, p packets.Packet) Result {
	return rewriteMessage(p, canonical.ChannelMessageHeaderSize, c.links.ServerToWeb)
}

func (c *Codec) decodeChannelMessage(_ context.Context, p packets.Packet) Result {
	return rewriteMessage(p, web.ChannelMessageHeaderSize, c.links.WebToServer)
}

// encodeEmote turns the fixed emote buffer into a NUL-terminated string.
func (c *Codec) encodeEmote(_ context.Context, p packets.Packet) Result {
	return rewriteMessage(p, canonical.EmoteHeaderSize, c.links.ServerToWeb)
}

func (c *Codec) decodeEmote(_ context.Context, p packets.Packet) Result {
	in, rest, err := readAtLeast[web.EmoteHeader](p.Data, web.EmoteHeaderSize)
	if err != nil {
		return dropped(err)
	}

	out := canonical.Emote{Type: in.Type}
	buffer.PutFixedString(out.Message[:], c.links.WebToServer(buffer.FixedString(rest)))

	return replaceWith(p.Opcode, &out)
}

func (c *Codec) encodeFormattedMessage(_ context.Context, p packets.Packet) Result {
	in, rest, err := readAtLeast[canonical.FormattedMessageHeader](p.Data, canonical.FormattedMessageHeaderSize)
	if err != nil {
		return dropped(err)
	}

	w := buffer.NewWriter(web.FormattedMessageHeaderSize + len(rest))
	if err = w.Struct(&web.FormattedMessageHeader{StringID: in.StringID, Type: in.Type}); err != nil {
		return dropped(err)
	}
	w.Bytes(rest)

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

func (c *Codec) encodeSpecialMesg(_ context.Context, p packets.Packet) Result {
	r := buffer.NewReader(p.Data)

	var header canonical.SpecialMesgHeader
	if err := r.Struct(&header); err != nil {
		return dropped(err)
	}

	sayer, err := r.CString()
	if err != nil {
		return dropped(err)
	}

	var loc canonical.SpecialMesgLocation
	if err = r.Struct(&loc); err != nil {
		return dropped(err)
	}

	msg := c.links.ServerToWeb(buffer.FixedString(r.Rest()))

	w := buffer.NewWriter(len(p.Data))
	if err = w.Struct(web.SpecialMesgHeader(header)); err != nil {
		return dropped(err)
	}
	w.CString(sayer)
	if err = w.Struct(web.SpecialMesgLocation(loc)); err != nil {
		return dropped(err)
	}
	w.CString(msg)

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

// encodeTaskDescription narrows the item link in a task window update. Everything before
// the link is copied as is.
func (c *Codec) encodeTaskDescription(_ context.Context, p packets.Packet) Result {
	r := buffer.NewReader(p.Data)

	if _, err := r.Bytes(canonical.TaskDescriptionHeaderSize); err != nil {
		return dropped(err)
	}
	if _, err := r.CString(); err != nil {
		return dropped(err)
	}
	if _, err := r.Bytes(canonical.TaskDescriptionData1Size); err != nil {
		return dropped(err)
	}
	if _, err := r.CString(); err != nil {
		return dropped(err)
	}
	if _, err := r.Bytes(canonical.TaskDescriptionData2Size); err != nil {
		return dropped(err)
	}
	if _, err := r.CString(); err != nil {
		return dropped(err)
	}

	prefix := p.Data[:r.Offset()]

	link, err := r.CString()
	if err != nil {
		return dropped(err)
	}

	trailer, err := r.Bytes(canonical.TaskDescriptionTrailerSize)
	if err != nil {
		return dropped(err)
	}

	link = c.links.ServerToWeb(link)

	w := buffer.NewWriter(len(prefix) + len(link) + 1 + web.TaskDescriptionTrailerSize)
	w.Bytes(prefix)
	w.CString(link)
	w.Bytes(trailer)

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

func (c *Codec) encodeOnLevelMessage(_ context.Context, p packets.Packet) Result {
	in, err := readExact[canonical.OnLevelMessage](p.Data, canonical.OnLevelMessageSize)
	if err != nil {
		return dropped(err)
	}

	return replaceWith(p.Opcode, &web.OnLevelMessage{
		Title:    in.Title,
		Text:     in.Text,
		Buttons:  in.Buttons,
		Duration: in.Duration,
	})
}
