package trace

import (
	"fmt"

	"github.com/tracefmt/otf2go/attribute"
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/record"
)

// EventWriter frames records into a location's chunk stream, flushing to
// sink before a record whenever a fixed worst-case record size no longer
// fits the current chunk's budget (spec.md §4.4's writer side: "per-chunk byte budget and EndOfChunk
// emission on overflow").
type EventWriter struct {
	location idref.LocationRef
	sink     ChunkSink
	w        *chunk.Writer
	pos      uint64
	closed   bool
}

// NewEventWriter creates a writer that flushes chunks of at most
// chunkSize bytes to sink.
func NewEventWriter(loc idref.LocationRef, sink ChunkSink, chunkSize int) *EventWriter {
	return &EventWriter{location: loc, sink: sink, w: chunk.NewWriter(chunkSize)}
}

// WriteAttributes buffers an AttributeList record ahead of the next
// event written with Write, when list is non-nil and non-empty
// (spec.md §4.2: the list is a side-channel record, not part of the
// event's own framing).
func (ew *EventWriter) WriteAttributes(list *attribute.List) error {
	if list == nil || list.Len() == 0 {
		return nil
	}
	return ew.writeFramed(record.KindAttributeList, list.Marshal)
}

// Write frames one event record: the record-type tag, the fixed
// timestamp, then the kind-specific payload under the kind's declared
// framing discipline (for Prefixed kinds the length prefix sits between
// the timestamp and the payload). Attributes are not written here; an
// AttributeList written with WriteAttributes just before attaches to it.
func (ew *EventWriter) Write(ts uint64, rec record.Record) error {
	entry, ok := record.Catalog[rec.Kind()]
	if !ok {
		return fmt.Errorf("trace: location %d: record kind %d not in catalog", ew.location, rec.Kind())
	}

	// Flush first unless a fixed worst-case estimate fits the remaining
	// budget: 8-byte timestamp, 9-byte reserved length prefix, and 256
	// payload bytes. The rendered record is not measured, so a record is
	// never split across chunks, and a payload over 256 bytes can grow the
	// chunk past chunkSize.
	if !ew.w.Fits(8 + 9 + 256) {
		if err := ew.flush(); err != nil {
			return err
		}
	}

	ew.w.WriteRecordType(byte(rec.Kind()))
	ew.w.WriteTimestampFull(ts)
	if entry.Framing == record.Prefixed {
		off := ew.w.ReserveRecordLength()
		if err := rec.Marshal(ew.w); err != nil {
			return err
		}
		ew.w.PatchRecordLength(off)
	} else {
		if err := rec.Marshal(ew.w); err != nil {
			return err
		}
	}
	ew.pos++
	return nil
}

func (ew *EventWriter) writeFramed(kind record.Kind, marshal func(w *chunk.Writer) error) error {
	if !ew.w.Fits(9 + 256) {
		if err := ew.flush(); err != nil {
			return err
		}
	}
	ew.w.WriteRecordType(byte(kind))
	off := ew.w.ReserveRecordLength()
	if err := marshal(ew.w); err != nil {
		return err
	}
	ew.w.PatchRecordLength(off)
	return nil
}

func (ew *EventWriter) flush() error {
	data := ew.w.Flush()
	return ew.sink.PutChunk(data)
}

// Close flushes any buffered bytes with the EndOfFile sentinel, ending
// the stream. It must be called exactly once.
func (ew *EventWriter) Close() error {
	if ew.closed {
		return nil
	}
	ew.closed = true
	data := ew.w.Close()
	return ew.sink.PutChunk(data)
}
