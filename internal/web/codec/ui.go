package codec

import (
	"context"

	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
)

func (c *Codec) encodeReadBook(_ context.Context, p packets.Packet) Result {
	in, rest, err := readAtLeast[canonical.BookTextHeader](p.Data, canonical.BookTextHeaderSize)
	if err != nil {
		return dropped(err)
	}

	text := buffer.FixedString(rest)

	w := buffer.NewWriter(web.BookTextHeaderSize + len(text) + 1)
	if err = w.Struct(&web.BookTextHeader{Window: in.Window, Type: in.Type}); err != nil {
		return dropped(err)
	}
	w.CString(text)

	return replaced(packets.Packet{Opcode: p.Opcode, Data: w.Data()})
}

func (c *Codec) decodeReadBook(_ context.Context, p packets.Packet) Result {
	in, _, err := readAtLeast[web.BookRequest](p.Data, web.BookRequestSize)
	if err != nil {
		return dropped(err)
	}

	out := canonical.BookRequest{Window: in.Window, Type: in.Type}
	buffer.CopyFixed(out.TxtFile[:], in.TxtFile[:])

	return replaceWith(p.Opcode, &out)
}

// decodeSetServerFilter leaves the filters the client does not know about at zero.
func (c *Codec) decodeSetServerFilter(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.SetServerFilter](p.Data, web.SetServerFilterSize)
	if err != nil {
		return dropped(err)
	}

	var out canonical.SetServerFilter
	copy(out.Filters[:], in.Filters[:])

	return replaceWith(p.Opcode, &out)
}

func (c *Codec) decodeItemLinkClick(_ context.Context, p packets.Packet) Result {
	in, err := readExact[web.ItemViewRequest](p.Data, web.ItemViewRequestSize)
	if err != nil {
		return dropped(err)
	}

	out := canonical.ItemViewRequest{ItemID: in.ItemID, LinkHash: in.LinkHash}
	copy(out.Augments[:], in.Augments[:])

	return replaceWith(p.Opcode, &out)
}
