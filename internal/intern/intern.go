// Package intern implements string interning for the global-definitions
// stream, where the same string (a region name, a file path, a comm
// name, ...) is typically referenced by many definitions.
package intern

import (
	"github.com/cespare/xxhash/v2"

	"github.com/tracefmt/otf2go/idref"
)

// Table deduplicates strings and assigns each a stable idref.StringRef,
// so the global-definitions writer emits one String record per distinct
// value regardless of how many callers intern it.
type Table struct {
	byHash map[uint64][]entry
	values []string
}

type entry struct {
	hash uint64
	id   idref.StringRef
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{byHash: make(map[uint64][]entry)}
}

// Intern returns the StringRef for s, assigning a new one on first sight.
func (t *Table) Intern(s string) idref.StringRef {
	h := xxhash.Sum64String(s)
	for _, e := range t.byHash[h] {
		if t.values[e.id] == s {
			return e.id
		}
	}
	id := idref.StringRef(len(t.values))
	t.values = append(t.values, s)
	t.byHash[h] = append(t.byHash[h], entry{hash: h, id: id})
	return id
}

// Set registers s at an explicit id, overwriting any previous value
// there. Used by the global-definitions reader to populate the table
// from decoded String records, whose ids are assigned by the producer
// rather than by this table (spec.md §3).
func (t *Table) Set(id idref.StringRef, s string) {
	for int(id) >= len(t.values) {
		t.values = append(t.values, "")
	}
	t.values[id] = s
	h := xxhash.Sum64String(s)
	t.byHash[h] = append(t.byHash[h], entry{hash: h, id: id})
}

// Lookup returns the string previously assigned to id, if any.
func (t *Table) Lookup(id idref.StringRef) (string, bool) {
	if int(id) >= len(t.values) {
		return "", false
	}
	return t.values[id], true
}

// Len reports how many distinct strings have been interned.
func (t *Table) Len() int { return len(t.values) }

// Each calls fn once per interned string in assignment order, the order
// the global-definitions writer should emit String records in so ids
// stay stable across a write-then-read round trip.
func (t *Table) Each(fn func(id idref.StringRef, s string)) {
	for i, s := range t.values {
		fn(idref.StringRef(i), s)
	}
}
