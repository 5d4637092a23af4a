// Package serializer renders item instances in the web client's pipe-delimited item format.
package serializer

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/GoFFXI/webcodec/internal/items"
)

// MaxDepth is the deepest nesting the quoting scheme can express.
const MaxDepth = 5

const protection = `\\\\\`

var (
	ErrUnknownItem = errors.New("serializer: unknown item")
	ErrMaxDepth    = errors.New("serializer: maximum nesting depth exceeded")
)

type Serializer struct {
	catalog  items.Catalog
	logger   *slog.Logger
	maxDepth int
}

// New returns a serializer that looks items up in catalog. maxDepth is clamped to MaxDepth.
func New(catalog items.Catalog, logger *slog.Logger, maxDepth int) *Serializer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	return &Serializer{
		catalog:  catalog,
		logger:   logger,
		maxDepth: maxDepth,
	}
}

// Serialize renders inst as it sits in slot. A top-level record (depth 0) is NUL terminated.
func (s *Serializer) Serialize(inst *items.Instance, slot int32) ([]byte, error) {
	var sb strings.Builder

	if err := s.serialize(&sb, inst, slot, 0); err != nil {
		return nil, err
	}
	sb.WriteByte(0)

	return []byte(sb.String()), nil
}

func (s *Serializer) serialize(sb *strings.Builder, inst *items.Instance, slot int32, depth int) error {
	if depth > s.maxDepth {
		return fmt.Errorf("%w: item %d at depth %d", ErrMaxDepth, inst.ItemID, depth)
	}

	item, ok := s.catalog.Item(inst.ItemID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownItem, inst.ItemID)
	}

	if depth > 0 {
		sb.WriteString(protection[:depth-1])
		sb.WriteByte('"')
	}

	writeInstance(sb, inst, item, slot)
	sb.WriteByte('|')

	if depth > 0 {
		sb.WriteString(protection[:depth])
		sb.WriteByte('"')
	}
	writeStatic(sb, item)
	if depth > 0 {
		sb.WriteString(protection[:depth])
		sb.WriteByte('"')
	}

	for index := range item.SubSlots() {
		sb.WriteByte('|')

		sub := inst.Sub(index)
		if sub == nil {
			continue
		}

		// render into a scratch builder so a failed sub-item leaves an empty field
		var nested strings.Builder
		if err := s.serialize(&nested, sub, 0, depth+1); err != nil {
			if errors.Is(err, ErrMaxDepth) {
				return err
			}

			s.logger.Warn("skipping unserializable sub-item", "parent", inst.ItemID, "subSlot", index, "error", err)
			continue
		}
		sb.WriteString(nested.String())
	}

	if depth > 0 {
		sb.WriteString(protection[:depth-1])
		sb.WriteByte('"')
	}

	return nil
}

func writeInstance(sb *strings.Builder, inst *items.Instance, item *items.Data, slot int32) {
	stackable := item.Stackable

	stack := int64(0)
	if stackable {
		stack = int64(inst.Charges)
	}

	slotOrMerchant := int64(slot)
	count := int64(1)
	serial := int64(inst.SerialNumber)
	if inst.OnSale() {
		slotOrMerchant = int64(inst.MerchantSlot)
		count = int64(inst.MerchantCount)
		serial = int64(inst.MerchantSlot)
	}

	exp := int64(0)
	if inst.Scaling {
		exp = int64(inst.Exp / 100)
	}

	charges := int64(inst.Charges)
	if stackable {
		charges = 0
		if item.ItemType == items.ItemTypePotion {
			charges = 1
		}
	}

	fields := []int64{
		stack,
		slotOrMerchant,
		int64(inst.Price),
		count,
		exp,
		serial,
		int64(inst.RecastTimestamp),
		charges,
		boolInt(inst.Attuned),
	}

	for i, v := range fields {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(strconv.FormatInt(v, 10))
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}

	return 0
}
