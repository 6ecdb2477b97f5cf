package ufo

import "sort"

// ============================================================
// Kerning
// ============================================================

type kerningSecond struct {
	name  string
	value float64
}

type kerningFirst struct {
	name    string
	seconds []kerningSecond
}

// Kerning is a two-level mapping from left group/glyph name to right
// group/glyph name to a numeric adjustment. Both levels iterate in
// ascending name order.
type Kerning struct {
	firsts []kerningFirst
}

// Set inserts or replaces the adjustment for the (left, right) pair.
func (k *Kerning) Set(left, right string, value float64) {
	i := sort.Search(len(k.firsts), func(i int) bool {
		return k.firsts[i].name >= left
	})
	if i == len(k.firsts) || k.firsts[i].name != left {
		k.firsts = append(k.firsts, kerningFirst{})
		copy(k.firsts[i+1:], k.firsts[i:])
		k.firsts[i] = kerningFirst{name: left}
	}
	f := &k.firsts[i]

	j := sort.Search(len(f.seconds), func(j int) bool {
		return f.seconds[j].name >= right
	})
	if j < len(f.seconds) && f.seconds[j].name == right {
		f.seconds[j].value = value
		return
	}
	f.seconds = append(f.seconds, kerningSecond{})
	copy(f.seconds[j+1:], f.seconds[j:])
	f.seconds[j] = kerningSecond{name: right, value: value}
}

// Get returns the adjustment for the (left, right) pair.
func (k *Kerning) Get(left, right string) (float64, bool) {
	if k == nil {
		return 0, false
	}
	i := sort.Search(len(k.firsts), func(i int) bool {
		return k.firsts[i].name >= left
	})
	if i == len(k.firsts) || k.firsts[i].name != left {
		return 0, false
	}
	f := k.firsts[i]
	j := sort.Search(len(f.seconds), func(j int) bool {
		return f.seconds[j].name >= right
	})
	if j == len(f.seconds) || f.seconds[j].name != right {
		return 0, false
	}
	return f.seconds[j].value, true
}

// Len returns the number of (left, right) pairs.
func (k *Kerning) Len() int {
	if k == nil {
		return 0
	}
	n := 0
	for _, f := range k.firsts {
		n += len(f.seconds)
	}
	return n
}

// Each calls fn for every pair, left names ascending, then right names
// ascending within each left name.
func (k *Kerning) Each(fn func(left, right string, value float64)) {
	if k == nil {
		return
	}
	for _, f := range k.firsts {
		for _, s := range f.seconds {
			fn(f.name, s.name, s.value)
		}
	}
}

// ============================================================
// Groups
// ============================================================

// GroupEntry is one named group with its ordered member glyph names.
type GroupEntry struct {
	Name    string
	Members []string
}

// Groups maps group names to ordered lists of glyph names. Group names
// iterate in ascending order; member order within a group is preserved
// as given.
type Groups struct {
	entries []GroupEntry
}

// Set inserts or replaces the member list for a group name.
func (g *Groups) Set(name string, members []string) {
	i := sort.Search(len(g.entries), func(i int) bool {
		return g.entries[i].Name >= name
	})
	if i < len(g.entries) && g.entries[i].Name == name {
		g.entries[i].Members = members
		return
	}
	g.entries = append(g.entries, GroupEntry{})
	copy(g.entries[i+1:], g.entries[i:])
	g.entries[i] = GroupEntry{Name: name, Members: members}
}

// Get returns the member list for a group name.
func (g *Groups) Get(name string) ([]string, bool) {
	if g == nil {
		return nil, false
	}
	i := sort.Search(len(g.entries), func(i int) bool {
		return g.entries[i].Name >= name
	})
	if i < len(g.entries) && g.entries[i].Name == name {
		return g.entries[i].Members, true
	}
	return nil, false
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.entries)
}

// Each calls fn for every group in ascending name order.
func (g *Groups) Each(fn func(name string, members []string)) {
	if g == nil {
		return
	}
	for _, e := range g.entries {
		fn(e.Name, e.Members)
	}
}
