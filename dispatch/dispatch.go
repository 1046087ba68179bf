// Package dispatch implements callback-table driven delivery of decoded
// records (spec.md §4.7): one handler per record kind, automatic
// superseded-event fallback when the wire kind's own callback is unset,
// and a catch-all for kinds the caller never registered against.
package dispatch

import (
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/record"
)

// Action is returned by a callback to say whether iteration should
// continue or stop (spec.md §4.7: "callbacks return continue/interrupt").
type Action int

const (
	Continue Action = iota
	Interrupt
)

// Callback handles one decoded record. Returning Interrupt is not an
// error: it is cooperative, resumable iteration control.
type Callback func(rec record.Record) (Action, error)

// UnknownCallback handles a decoded record whose kind has neither a
// registered callback nor a usable superseded-event fallback.
type UnknownCallback func(rec record.Record) (Action, error)

// interruptedError wraps Interrupt so it can travel through a function
// returning error, while remaining distinguishable from a real failure
// via errors.Is.
type interruptedError struct{}

func (interruptedError) Error() string { return "dispatch: interrupted" }

// ErrInterrupted is the sentinel a trace/merge read loop checks for via
// errors.Is to distinguish cooperative interruption from a decode error.
var ErrInterrupted = interruptedError{}

// Table is a per-kind callback registry plus the superseded-event
// conversion rules wired up in convert.go. The zero Table is usable.
type Table struct {
	handlers    map[record.Kind]Callback
	unknown     UnknownCallback
	contextAttr idref.AttributeRef
}

// NewTable creates an empty Table. contextAttr names the attribute id
// used when downgrading a CallingContextEnter/Leave into a legacy
// Enter/Leave (spec.md §4.7's "may move fields into the attribute list").
func NewTable(contextAttr idref.AttributeRef) *Table {
	return &Table{handlers: make(map[record.Kind]Callback), contextAttr: contextAttr}
}

// Register installs cb as the handler for kind, replacing any previous
// handler. Passing a nil cb clears the kind's handler.
func (t *Table) Register(kind record.Kind, cb Callback) {
	if cb == nil {
		delete(t.handlers, kind)
		return
	}
	t.handlers[kind] = cb
}

// RegisterUnknown installs the catch-all handler.
func (t *Table) RegisterUnknown(cb UnknownCallback) { t.unknown = cb }

// Clear removes every registered handler, including the unknown handler.
// Used between build phases of a reader that is reconfigured before a
// second pass (spec.md's "registered before the first read call" lifecycle).
func (t *Table) Clear() {
	for k := range t.handlers {
		delete(t.handlers, k)
	}
	t.unknown = nil
}

// Dispatch delivers rec to the table: its own callback if registered,
// else an automatic superseded-event conversion if one applies and the
// converted kind's callback is registered. The unknown handler is
// reserved for a kind absent from record.Catalog entirely (spec.md §7);
// a cataloged kind with no handler and no usable conversion target is
// simply not dispatched (spec.md §4.7 step 3, "no callback is invoked").
func (t *Table) Dispatch(rec record.Record) (Action, error) {
	kind := rec.Kind()

	if cb, ok := t.handlers[kind]; ok {
		return cb(rec)
	}

	if _, known := record.Catalog[kind]; !known {
		if t.unknown != nil {
			return t.unknown(rec)
		}
		return Continue, nil
	}

	if up, ok := upgrades[kind]; ok {
		converted := up(rec)
		if cb, ok := t.handlers[converted.Kind()]; ok {
			return cb(converted)
		}
	}

	if down, ok := downgrades[kind]; ok {
		converted, err := down(rec, t.contextAttr)
		if err == nil {
			if cb, ok := t.handlers[converted.Kind()]; ok {
				return cb(converted)
			}
		}
		// Conversion failure or no surviving callback: record is skipped,
		// not reported as unknown (it is known, just unwanted here).
		return Continue, nil
	}

	return Continue, nil
}
