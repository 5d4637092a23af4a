package slots

// Range is a half-open interval [Begin, End) of source slots shifted by Offset.
type Range struct {
	Begin  int32
	End    int32
	Offset int32
}

func (r Range) contains(slot int32) bool {
	return slot >= r.Begin && slot < r.End
}

// Mapping translates slot numbers between the server and web numbering schemes.
// The inverse table is derived from the forward one, so both directions agree on
// every mapped slot.
type Mapping struct {
	name    string
	forward []Range
	inverse []Range
}

func newMapping(name string, forward []Range) *Mapping {
	inverse := make([]Range, len(forward))
	for i, r := range forward {
		inverse[i] = Range{
			Begin:  r.Begin + r.Offset,
			End:    r.End + r.Offset,
			Offset: -r.Offset,
		}
	}

	return &Mapping{
		name:    name,
		forward: forward,
		inverse: inverse,
	}
}

func (m *Mapping) Name() string {
	return m.name
}

// ServerRanges returns a copy of the server-to-web table.
func (m *Mapping) ServerRanges() []Range {
	return append([]Range(nil), m.forward...)
}

// WebRanges returns a copy of the web-to-server table.
func (m *Mapping) WebRanges() []Range {
	return append([]Range(nil), m.inverse...)
}

// LookupServerToWeb reports the web slot for a server slot and whether it was mapped.
func (m *Mapping) LookupServerToWeb(slot int32) (int32, bool) {
	return lookup(m.forward, slot)
}

// LookupWebToServer reports the server slot for a web slot and whether it was mapped.
func (m *Mapping) LookupWebToServer(slot int32) (int32, bool) {
	return lookup(m.inverse, slot)
}

func (m *Mapping) ServerToWeb(slot int32) int32 {
	v, _ := m.LookupServerToWeb(slot)
	return v
}

func (m *Mapping) WebToServer(slot int32) int32 {
	v, _ := m.LookupWebToServer(slot)
	return v
}

func lookup(ranges []Range, slot int32) (int32, bool) {
	if slot < 0 {
		return Invalid, false
	}

	for _, r := range ranges {
		if r.contains(slot) {
			return slot + r.Offset, true
		}
	}

	return Invalid, false
}
