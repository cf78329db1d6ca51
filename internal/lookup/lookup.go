// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup provides immutable ordered capacity tables with ceiling
// resolution: a query resolves to the smallest breakpoint at or above it.
// Equipment sized from these tables is rated at or above demand, never under.
package lookup

import (
	"fmt"
	"math"
	"sort"
)

// Entry pairs an ordered breakpoint with its rated value.
type Entry[V any] struct {
	Breakpoint float64
	Value      V
}

// Table is an immutable series of entries ordered by strictly increasing
// breakpoint, safe for concurrent use. The zero value is empty and resolves
// nothing; build tables with New or MustNew.
type Table[V any] struct {
	entries []Entry[V]
}

// New builds a table from entries, which must be non-empty and ordered by
// strictly increasing finite breakpoints.
func New[V any](entries []Entry[V]) (Table[V], error) {
	if len(entries) == 0 {
		return Table[V]{}, fmt.Errorf("lookup: table needs at least one entry")
	}
	for i, e := range entries {
		if math.IsNaN(e.Breakpoint) || math.IsInf(e.Breakpoint, 0) {
			return Table[V]{}, fmt.Errorf("lookup: entry %d: breakpoint must be finite", i)
		}
		if i > 0 && e.Breakpoint <= entries[i-1].Breakpoint {
			return Table[V]{}, fmt.Errorf("lookup: entry %d: breakpoint %v does not increase from %v",
				i, e.Breakpoint, entries[i-1].Breakpoint)
		}
	}
	cp := make([]Entry[V], len(entries))
	copy(cp, entries)
	return Table[V]{entries: cp}, nil
}

// MustNew is New for static catalog tables; it panics on invalid entries.
func MustNew[V any](entries []Entry[V]) Table[V] {
	t, err := New(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of entries.
func (t Table[V]) Len() int { return len(t.entries) }

// Max returns the highest-capacity entry. It panics on an empty table.
func (t Table[V]) Max() Entry[V] { return t.entries[len(t.entries)-1] }

// Resolve returns the value at the smallest breakpoint >= key and true, or
// the zero value and false when key exceeds every breakpoint.
func (t Table[V]) Resolve(key float64) (V, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Breakpoint >= key
	})
	if i == len(t.entries) {
		var zero V
		return zero, false
	}
	return t.entries[i].Value, true
}

// ResolveClamp is Resolve with fail-safe overflow: a key above every
// breakpoint resolves to the maximum-capacity entry.
func (t Table[V]) ResolveClamp(key float64) V {
	if v, ok := t.Resolve(key); ok {
		return v
	}
	return t.Max().Value
}
