// Package mapping implements per-location identifier remapping and clock
// correction (spec.md §4.5): translating a producer-local id in a given
// domain to its archive-global equivalent, and converting a location's
// local timestamp to global ticks via piecewise-linear interpolation
// between clock-offset samples.
package mapping

import (
	"fmt"

	"github.com/tracefmt/otf2go/idref"
)

// ErrMappingNotFound is returned by Context.Translate when the given
// domain has a mapping table but the local id is absent from it.
type ErrMappingNotFound struct {
	Domain idref.Domain
	Local  uint64
}

func (e *ErrMappingNotFound) Error() string {
	return fmt.Sprintf("mapping: no entry for local id %d in domain %s", e.Local, e.Domain)
}

// table is one domain's local-to-global lookup, built from a single
// record.MappingTable (spec.md §4.5: "a location's mapping tables are
// loaded before any of its events are decoded").
type table struct {
	local  []uint64
	global []uint64
}

func newTable(local, global []uint64) *table {
	return &table{local: local, global: global}
}

func (t *table) lookup(local uint64) (uint64, bool) {
	for i, l := range t.local {
		if l == local {
			return t.global[i], true
		}
	}
	return 0, false
}

// Context holds every mapping table and the clock-offset curve for one
// location, satisfying record.Translator. A Context is built once when a
// location's per-location definitions are read, then reused, read-only,
// for the lifetime of that location's event stream.
type Context struct {
	tables map[idref.Domain]*table
	clock  *Clock
}

// NewContext creates an empty mapping context; domains are populated with
// AddTable as MappingTable records are decoded.
func NewContext() *Context {
	return &Context{tables: make(map[idref.Domain]*table)}
}

// AddTable installs a domain's local-to-global table. A domain with no
// installed table is translated as the identity (spec.md §4.5: domains
// absent from the per-location mapping stream pass through unmapped).
func (c *Context) AddTable(dom idref.Domain, local, global []uint64) {
	c.tables[dom] = newTable(local, global)
}

// SetClock installs the location's clock-offset curve.
func (c *Context) SetClock(cl *Clock) { c.clock = cl }

// Translate resolves local to its global equivalent in domain dom. If no
// table was installed for dom, local is returned unchanged.
func (c *Context) Translate(dom idref.Domain, local uint64) (uint64, error) {
	t, ok := c.tables[dom]
	if !ok {
		return local, nil
	}
	g, ok := t.lookup(local)
	if !ok {
		return 0, &ErrMappingNotFound{Domain: dom, Local: local}
	}
	return g, nil
}

// CorrectTime converts a location-local timestamp to global ticks using
// the installed Clock, or returns it unchanged if no clock was set.
func (c *Context) CorrectTime(local uint64) uint64 {
	if c.clock == nil {
		return local
	}
	return c.clock.Correct(local)
}
