package attribute

import (
	"fmt"

	"github.com/tracefmt/otf2go/idref"
)

// ErrDuplicateAttribute is returned by List.Add when the attribute id is
// already present in the list (spec.md §3 invariant 4).
type ErrDuplicateAttribute struct {
	ID idref.AttributeRef
}

func (e *ErrDuplicateAttribute) Error() string {
	return fmt.Sprintf("attribute: duplicate attribute id %d in list", e.ID)
}

type entry struct {
	id  idref.AttributeRef
	val Value
}

// List is an insertion-order-preserving sidecar of (attribute id, value)
// pairs, attached to exactly one event dispatch at a time (spec.md §4.2).
// The zero value is an empty, ready-to-use List.
type List struct {
	entries []entry
	index   map[idref.AttributeRef]int
}

// Len reports the number of attributes currently attached.
func (l *List) Len() int { return len(l.entries) }

// Add inserts an (id, value) pair. It is rejected with
// ErrDuplicateAttribute if id is already present.
func (l *List) Add(id idref.AttributeRef, v Value) error {
	if l.index == nil {
		l.index = make(map[idref.AttributeRef]int)
	}
	if _, ok := l.index[id]; ok {
		return &ErrDuplicateAttribute{ID: id}
	}
	l.index[id] = len(l.entries)
	l.entries = append(l.entries, entry{id: id, val: v})
	return nil
}

// Get looks up the value for id, reporting ok=false if absent.
func (l *List) Get(id idref.AttributeRef) (Value, bool) {
	i, ok := l.index[id]
	if !ok {
		return Value{}, false
	}
	return l.entries[i].val, true
}

// Has reports whether id is present.
func (l *List) Has(id idref.AttributeRef) bool {
	_, ok := l.index[id]
	return ok
}

// Each calls fn once per entry in insertion order. Returning false from fn
// stops the iteration early.
func (l *List) Each(fn func(id idref.AttributeRef, v Value) bool) {
	for _, e := range l.entries {
		if !fn(e.id, e.val) {
			return
		}
	}
}

// Reset removes every entry, ready for reuse. UnmarshalInto calls it
// before decoding; the trace reader does not reuse lists, and instead
// attaches a freshly decoded List to the one event that follows it.
func (l *List) Reset() {
	l.entries = l.entries[:0]
	for k := range l.index {
		delete(l.index, k)
	}
}

// Clone returns an independent copy, for a callback that wants to retain
// the list past its own return (the shared List is cleared immediately
// after dispatch).
func (l *List) Clone() *List {
	c := &List{entries: make([]entry, len(l.entries)), index: make(map[idref.AttributeRef]int, len(l.index))}
	copy(c.entries, l.entries)
	for k, v := range l.index {
		c.index[k] = v
	}
	return c
}
