package ufobridge

// ============================================================
// Dynamic Value Vocabulary
// ============================================================
//
// Values crossing to the host side are plain dynamic values: nil (explicit
// no-value marker), string, int64, float64, bool, []byte, []any, *Dict, or
// *PairMap. Go's built-in map is hash-ordered, so both mapping types here
// are entry slices: iteration order is exactly insertion order, which the
// converters guarantee to be the source model's (sorted) order.

// Entry is a key/value pair in a Dict.
type Entry struct {
	Key   string
	Value any
}

// Dict is an order-preserving string-keyed mapping of dynamic values.
type Dict struct {
	entries []Entry
}

// NewDict returns an empty Dict.
func NewDict() *Dict {
	return &Dict{}
}

// Set replaces the value for key if present, else appends the entry.
func (d *Dict) Set(key string, v any) {
	for i := range d.entries {
		if d.entries[i].Key == key {
			d.entries[i].Value = v
			return
		}
	}
	d.entries = append(d.entries, Entry{Key: key, Value: v})
}

// Get returns the value for key.
func (d *Dict) Get(key string) (any, bool) {
	for _, e := range d.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Keys returns the keys in entry order.
func (d *Dict) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, len(d.entries))
	for i, e := range d.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns the entries in order. The slice is shared; callers must
// not mutate it.
func (d *Dict) Entries() []Entry {
	if d == nil {
		return nil
	}
	return d.entries
}

// Each calls fn for every entry in order.
func (d *Dict) Each(fn func(key string, v any)) {
	if d == nil {
		return
	}
	for _, e := range d.entries {
		fn(e.Key, e.Value)
	}
}

// Pair is a flattened kerning key: (left group/glyph name, right group/glyph
// name).
type Pair struct {
	Left  string
	Right string
}

// PairEntry is one flattened kerning adjustment.
type PairEntry struct {
	Key   Pair
	Value float64
}

// PairMap is an order-preserving mapping from Pair to a kerning adjustment.
type PairMap struct {
	entries []PairEntry
}

// NewPairMap returns an empty PairMap.
func NewPairMap() *PairMap {
	return &PairMap{}
}

// Set replaces the value for key if present, else appends the entry.
func (m *PairMap) Set(key Pair, v float64) {
	for i := range m.entries {
		if m.entries[i].Key == key {
			m.entries[i].Value = v
			return
		}
	}
	m.entries = append(m.entries, PairEntry{Key: key, Value: v})
}

// Get returns the adjustment for key.
func (m *PairMap) Get(key Pair) (float64, bool) {
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return 0, false
}

// Len returns the number of pairs.
func (m *PairMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns the entries in order. The slice is shared; callers must
// not mutate it.
func (m *PairMap) Entries() []PairEntry {
	if m == nil {
		return nil
	}
	return m.entries
}

// Each calls fn for every pair in order.
func (m *PairMap) Each(fn func(key Pair, v float64)) {
	if m == nil {
		return
	}
	for _, e := range m.entries {
		fn(e.Key, e.Value)
	}
}
