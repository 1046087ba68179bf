package record

import (
	"github.com/tracefmt/otf2go/attribute"
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

// Record is implemented by every concrete record type in this package.
type Record interface {
	Kind() Kind
	Marshal(w *chunk.Writer) error
}

// Translator resolves a producer-local identifier in the given domain to
// its global equivalent (spec.md §4.5). Implemented by *mapping.Context;
// declared here, rather than imported, so this package has no dependency
// on package mapping.
type Translator interface {
	Translate(dom idref.Domain, local uint64) (uint64, error)
}

// Translatable is implemented by every record type that carries at least
// one mapped identifier field. The trace reader calls Translate
// immediately after decoding raw fields, before the record is handed to
// the dispatcher or merger (spec.md §4.5: "Mapping is applied eagerly").
type Translatable interface {
	Translate(t Translator) error
}

func translate(t Translator, dom idref.Domain, id uint64) (uint64, error) {
	if idref.IsUndefined(id) {
		return id, nil
	}
	return t.Translate(dom, id)
}

// EventCommon is embedded by every event-kind record (spec.md §3: "Every
// event carries the owning location id, a timestamp, a per-stream
// position starting at 1, and an optional attribute list").
type EventCommon struct {
	Location   idref.LocationRef
	Timestamp  uint64 // global ticks, after clock correction (spec.md §4.5)
	Position   uint64 // 1-based position within this location's stream
	Attributes *attribute.List
}

// SetCommon overwrites the embedded EventCommon fields in one assignment.
// Every event-kind record embeds EventCommon by value, so this method is
// promoted onto each concrete event type's pointer method set, letting
// the trace reader fill Location/Timestamp/Position/Attributes without a
// per-kind switch (see trace.EventReader.setCommon).
func (c *EventCommon) SetCommon(v EventCommon) { *c = v }

// MetricValueType tags the variant held by a MetricValue (spec.md §3: "a
// three-way union (int64, uint64, float64) paired with an external type
// tag supplied by the enclosing record").
type MetricValueType uint8

const (
	MetricValueInt64 MetricValueType = iota + 1
	MetricValueUint64
	MetricValueFloat64
)

// MetricValue is one sample's value, interpreted according to Type.
type MetricValue struct {
	Type  MetricValueType
	I64   int64
	U64   uint64
	F64   float64
}
