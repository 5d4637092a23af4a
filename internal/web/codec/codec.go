// Package codec translates packets between the server's canonical layouts and the web
// client's wire layouts. A Codec is immutable once built and safe for concurrent use.
package codec

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/davecgh/go-spew/spew"

	"github.com/GoFFXI/webcodec/internal/items"
	"github.com/GoFFXI/webcodec/internal/metrics"
	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/web/saylink"
	"github.com/GoFFXI/webcodec/internal/web/serializer"
)

// Direction is the way a packet travels through the codec.
type Direction int

const (
	// Encode translates server packets for the client.
	Encode Direction = iota
	// Decode translates client packets for the server.
	Decode
)

func (d Direction) String() string {
	if d == Decode {
		return "decode"
	}

	return "encode"
}

// Transform consumes one packet and returns its translation.
type Transform func(c *Codec, ctx context.Context, p packets.Packet) Result

// Override holds the transforms for one opcode. Either may be nil.
type Override struct {
	Opcode opcodes.Opcode
	Encode Transform
	Decode Transform
}

type Codec struct {
	logger     *slog.Logger
	recorder   metrics.Recorder
	serializer *serializer.Serializer
	links      *saylink.Encoder
	encoders   map[opcodes.Opcode]Transform
	decoders   map[opcodes.Opcode]Transform
}

type options struct {
	logger    *slog.Logger
	recorder  metrics.Recorder
	catalog   items.Catalog
	maxDepth  int
	overrides []Override
	disabled  map[Direction][]opcodes.Opcode
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithRecorder(recorder metrics.Recorder) Option {
	return func(o *options) {
		o.recorder = recorder
	}
}

// WithCatalog sets the item catalog used to serialize items.
func WithCatalog(catalog items.Catalog) Option {
	return func(o *options) {
		o.catalog = catalog
	}
}

// WithMaxDepth bounds item nesting. Values outside 1..serializer.MaxDepth mean MaxDepth.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithOverrides registers transforms in addition to the web client set.
func WithOverrides(overrides ...Override) Option {
	return func(o *options) {
		o.overrides = append(o.overrides, overrides...)
	}
}

// WithDisabled removes transforms so that those opcodes pass through unchanged.
func WithDisabled(direction Direction, ops ...opcodes.Opcode) Option {
	return func(o *options) {
		o.disabled[direction] = append(o.disabled[direction], ops...)
	}
}

// New builds the web client codec. Registering two transforms for the same opcode and
// direction is an error.
func New(opts ...Option) (*Codec, error) {
	o := options{
		recorder: metrics.Noop{},
		catalog:  items.NewMemoryCatalog(),
		disabled: make(map[Direction][]opcodes.Opcode),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	logger := o.logger.With("component", "codec")

	c := &Codec{
		logger:     logger,
		recorder:   o.recorder,
		serializer: serializer.New(o.catalog, logger, o.maxDepth),
		links:      saylink.NewEncoder(logger),
		encoders:   make(map[opcodes.Opcode]Transform),
		decoders:   make(map[opcodes.Opcode]Transform),
	}

	for _, override := range append(webOverrides(), o.overrides...) {
		if err := c.register(override); err != nil {
			return nil, err
		}
	}

	for _, op := range o.disabled[Encode] {
		delete(c.encoders, op)
	}
	for _, op := range o.disabled[Decode] {
		delete(c.decoders, op)
	}

	return c, nil
}

func (c *Codec) register(override Override) error {
	if override.Encode != nil {
		if _, exists := c.encoders[override.Opcode]; exists {
			return fmt.Errorf("duplicate encode override for %s", override.Opcode)
		}
		c.encoders[override.Opcode] = override.Encode
	}

	if override.Decode != nil {
		if _, exists := c.decoders[override.Opcode]; exists {
			return fmt.Errorf("duplicate decode override for %s", override.Opcode)
		}
		c.decoders[override.Opcode] = override.Decode
	}

	return nil
}

// Encode translates a canonical packet into the web layout. Opcodes without a transform
// are forwarded unchanged.
func (c *Codec) Encode(ctx context.Context, p packets.Packet) Result {
	return c.dispatch(ctx, Encode, p)
}

// Decode translates a web packet into the canonical layout.
func (c *Codec) Decode(ctx context.Context, p packets.Packet) Result {
	return c.dispatch(ctx, Decode, p)
}

// Registered lists the opcodes that have a transform in the given direction.
func (c *Codec) Registered(direction Direction) []opcodes.Opcode {
	table := c.table(direction)

	ops := make([]opcodes.Opcode, 0, len(table))
	for op := range table {
		ops = append(ops, op)
	}
	slices.Sort(ops)

	return ops
}

func (c *Codec) table(direction Direction) map[opcodes.Opcode]Transform {
	if direction == Decode {
		return c.decoders
	}

	return c.encoders
}

func (c *Codec) dispatch(ctx context.Context, direction Direction, p packets.Packet) Result {
	transform, ok := c.table(direction)[p.Opcode]
	if !ok {
		return passthrough(p)
	}

	res := transform(c, ctx, p)
	c.observe(ctx, direction, p, res)

	return res
}

// forward runs the transform registered for target on p. The packet keeps its own opcode.
func (c *Codec) forward(ctx context.Context, direction Direction, target opcodes.Opcode, p packets.Packet) Result {
	transform, ok := c.table(direction)[target]
	if !ok {
		return passthrough(p)
	}

	res := transform(c, ctx, p)
	if res.Outcome == Replaced {
		res.Outcome = Forwarded
	}

	return res
}

func (c *Codec) observe(ctx context.Context, direction Direction, p packets.Packet, res Result) {
	c.recorder.PacketProcessed(ctx, direction.String(), p.Opcode.String(), res.Outcome.String(), res.Reason.String())

	if res.Outcome != Dropped {
		return
	}

	if res.Reason == Eaten {
		c.logger.Debug("packet eaten", "opcode", p.Opcode.String(), "direction", direction.String())
		return
	}

	c.logger.Warn("dropped packet",
		"opcode", p.Opcode.String(),
		"direction", direction.String(),
		"reason", res.Reason.String(),
		"size", len(p.Data),
		"error", res.Err,
	)

	if c.logger.Enabled(ctx, slog.LevelDebug) {
		c.logger.Debug("dropped packet contents", "opcode", p.Opcode.String(), "dump", spew.Sdump(p))
	}
}
