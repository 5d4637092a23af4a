package codec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/packets/canonical"
	"github.com/GoFFXI/webcodec/internal/packets/web"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
)

func TestEncodeReadBook(t *testing.T) {
	c := newTestCodec(t)

	data := append(encodeRecord(t, &canonical.BookTextHeader{Window: 1, Type: 2, InvSlot: 23}), "Chapter one\x00"...)
	res := c.Encode(context.Background(), packets.Packet{Opcode: opcodes.ReadBook, Data: data})

	assert.Equal(t, append([]byte{1, 2}, "Chapter one\x00"...), single(t, res).Data)
}

func TestDecodeReadBook(t *testing.T) {
	c := newTestCodec(t)

	in := web.BookRequest{Window: 0xFF, Type: 1}
	copy(in.TxtFile[:], "CRBook01")

	data := append(encodeRecord(t, &in), 0, 0)
	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.ReadBook, Data: data})

	out := decodeRecord[canonical.BookRequest](t, single(t, res).Data, canonical.BookRequestSize)
	assert.Equal(t, uint8(0xFF), out.Window)
	assert.Equal(t, "CRBook01", buffer.FixedString(out.TxtFile[:]))
	assert.Zero(t, out.InvSlot)
}

func TestDecodeSetServerFilter(t *testing.T) {
	c := newTestCodec(t)

	var in web.SetServerFilter
	for i := range in.Filters {
		in.Filters[i] = 1
	}

	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.SetServerFilter, Data: encodeRecord(t, &in)})
	out := decodeRecord[canonical.SetServerFilter](t, single(t, res).Data, canonical.SetServerFilterSize)

	for i := range canonical.ServerFilters {
		want := uint32(0)
		if i < web.ServerFilters {
			want = 1
		}
		assert.Equal(t, want, out.Filters[i], "filter %d", i)
	}
}

func TestDecodeItemLinkClick(t *testing.T) {
	c := newTestCodec(t)

	in := web.ItemViewRequest{ItemID: 1001, Augments: [5]uint32{1, 2, 3, 4, 5}, LinkHash: 0xABCD}
	res := c.Decode(context.Background(), packets.Packet{Opcode: opcodes.ItemLinkClick, Data: encodeRecord(t, &in)})

	out := decodeRecord[canonical.ItemViewRequest](t, single(t, res).Data, canonical.ItemViewRequestSize)
	assert.Equal(t, uint32(1001), out.ItemID)
	assert.Equal(t, [6]uint32{1, 2, 3, 4, 5, 0}, out.Augments)
	assert.Equal(t, uint32(0xABCD), out.LinkHash)
}
