package trace

import (
	"fmt"
	"io"

	"github.com/tracefmt/otf2go/attribute"
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/mapping"
	"github.com/tracefmt/otf2go/record"
)

// EventReader iterates one location's event stream, lazily: Peek reads
// only as far as a record's timestamp, deferring the rest of the decode
// until Advance actually consumes it (spec.md §4.4, "lazy decode" —
// letting the global merger compare timestamps across many locations
// without paying for a full decode of every candidate).
//
// Typical standalone usage mirrors the teacher's Records iterator:
//
//	er := trace.NewEventReader(loc, src, ctx)
//	for er.Next() {
//		switch rec := er.Record.(type) {
//		...
//		}
//	}
//	if err := er.Err(); err != nil { ... }
type EventReader struct {
	location idref.LocationRef
	src      ChunkSource
	ctx      *mapping.Context

	r   *chunk.Reader
	buf []byte

	pending       *attribute.List
	pendingKind   record.Kind
	pendingTime   uint64
	pendingUnknown *record.Unknown
	havePending   bool

	pos uint64

	Record  record.Record
	err     error
	atEOF   bool
}

// NewEventReader creates a reader over one location's chunk stream. ctx
// may be nil if the location has no per-location mapping or clock data
// (identifiers and timestamps then pass through unchanged).
func NewEventReader(loc idref.LocationRef, src ChunkSource, ctx *mapping.Context) *EventReader {
	return &EventReader{location: loc, src: src, ctx: ctx, r: chunk.NewReader(nil)}
}

// Err returns the first error encountered, if any.
func (er *EventReader) Err() error { return er.err }

// Next advances to the next event record, decoding it fully, and reports
// whether one was available. Equivalent to Peek followed by Advance.
func (er *EventReader) Next() bool {
	if er.err != nil || er.atEOF {
		return false
	}
	if _, ok, err := er.Peek(); err != nil {
		er.err = err
		return false
	} else if !ok {
		er.atEOF = true
		return false
	}
	rec, err := er.Advance()
	if err != nil {
		er.err = err
		return false
	}
	er.Record = rec
	return true
}

// Peek ensures the next event record's timestamp is available without
// decoding its remaining fields, returning the location-local timestamp
// as read from the wire (not yet clock-corrected: the global merger
// compares corrected timestamps, computed when the caller calls
// CorrectedPeek). ok is false at end of stream.
func (er *EventReader) Peek() (ts uint64, ok bool, err error) {
	if er.havePending {
		return er.pendingTime, true, nil
	}
	if err := er.fillPending(); err != nil {
		if err == io.EOF {
			return 0, false, nil
		}
		return 0, false, err
	}
	return er.pendingTime, true, nil
}

// CorrectedPeek is Peek with the location's clock correction applied, the
// form the global merger keys its heap on (spec.md §4.5, §4.4).
func (er *EventReader) CorrectedPeek() (ts uint64, ok bool, err error) {
	ts, ok, err = er.Peek()
	if err != nil || !ok {
		return ts, ok, err
	}
	if er.ctx != nil {
		ts = er.ctx.CorrectTime(ts)
	}
	return ts, true, nil
}

// Location reports the location this reader belongs to, used by the
// global merger as the heap's tie-break key.
func (er *EventReader) Location() idref.LocationRef { return er.location }

// fillPending runs the read loop until a dispatchable event kind's tag
// and timestamp have been read, consuming and internally resolving every
// non-event record along the way: EndOfChunk triggers a chunk fetch,
// AttributeList is buffered for the next event, MappingTable feeds the
// mapping context (spec.md §4.5: "loaded before any of its events are
// decoded"), and ClockOffset is decoded and skipped: its sample is not
// added to any Clock, so timestamps are corrected only by a Clock already
// installed on the context (Context.SetClock). Returns io.EOF once
// EndOfFile is reached.
func (er *EventReader) fillPending() error {
	for {
		tag, err := er.r.ReadRecordType()
		if err == chunk.ErrUnderrun {
			if err := er.loadNextChunk(); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		switch tag {
		case chunk.EndOfChunk:
			if err := er.loadNextChunk(); err != nil {
				return err
			}
			continue
		case chunk.EndOfFile:
			return io.EOF
		}

		kind := record.Kind(tag)
		entry, ok := record.Catalog[kind]
		if !ok {
			// A tag absent from the catalog still carries the standard
			// record_data_length prefix, so it can be skipped and handed
			// to the dispatcher's unknown callback instead of aborting the
			// whole stream (spec.md §7, §4.7 "unknown-record fallback").
			_, dataLen, err := er.r.GuaranteeRecord()
			if err != nil {
				return err
			}
			data, err := er.r.ReadBytes(int(dataLen))
			if err != nil {
				return err
			}
			er.pendingKind = record.KindUnknown
			er.pendingUnknown = &record.Unknown{Tag: tag, Data: data}
			er.pendingTime = 0
			er.havePending = true
			return nil
		}

		if kind == record.KindAttributeList {
			if err := er.consumeAttributeList(); err != nil {
				return err
			}
			continue
		}
		if kind == record.KindMappingTable {
			if err := er.consumeMappingTable(); err != nil {
				return err
			}
			continue
		}
		if kind == record.KindClockOffset {
			if err := er.consumeClockOffset(); err != nil {
				return err
			}
			continue
		}
		if !entry.IsEvent {
			return fmt.Errorf("trace: location %d: unexpected non-event kind %s in event stream", er.location, entry.Name)
		}

		ts, err := er.r.ReadTimestampFull()
		if err != nil {
			return err
		}
		er.pendingKind = kind
		er.pendingTime = ts
		er.havePending = true
		return nil
	}
}

// Advance decodes the pending record's remaining fields and returns it,
// applying clock correction, attribute-list attachment, and identifier
// translation (spec.md §4.4, §4.5). Peek (directly or via Next) must have
// been called first.
func (er *EventReader) Advance() (record.Record, error) {
	if !er.havePending {
		return nil, fmt.Errorf("trace: Advance called without a pending record")
	}
	if er.pendingKind == record.KindUnknown {
		rec := er.pendingUnknown
		er.pendingUnknown = nil
		er.havePending = false
		return rec, nil
	}
	entry := record.Catalog[er.pendingKind]

	var endPos int
	if entry.Framing == record.Prefixed {
		var err error
		endPos, _, err = er.r.GuaranteeRecord()
		if err != nil {
			return nil, err
		}
	}

	decode, ok := record.Decoders[er.pendingKind]
	if !ok {
		return nil, fmt.Errorf("trace: no decoder registered for kind %s", entry.Name)
	}
	rec, err := decode(er.r)
	if err != nil {
		return nil, err
	}

	if entry.Framing == record.Prefixed {
		// Forward compatibility: skip any trailing fields this build
		// doesn't understand rather than treating them as framing errors.
		er.r.SetPosition(endPos)
	}

	if tr, ok := rec.(record.Translatable); ok && er.ctx != nil {
		if err := tr.Translate(er.ctx); err != nil {
			return nil, err
		}
	}

	ts := er.pendingTime
	if er.ctx != nil {
		ts = er.ctx.CorrectTime(ts)
	}
	er.pos++
	er.setCommon(rec, ts)

	er.havePending = false
	er.pending = nil
	return rec, nil
}

// commoner is implemented by every event record via its embedded
// EventCommon (promoted SetCommon), letting the reader fill the shared
// fields without a per-kind switch.
type commoner interface {
	SetCommon(c record.EventCommon)
}

func (er *EventReader) setCommon(rec record.Record, ts uint64) {
	var attrs *attribute.List
	if er.pending != nil {
		attrs = er.pending
		er.pending = nil
	}
	if c, ok := rec.(commoner); ok {
		c.SetCommon(record.EventCommon{
			Location:   er.location,
			Timestamp:  ts,
			Position:   er.pos,
			Attributes: attrs,
		})
	}
}

func (er *EventReader) consumeAttributeList() error {
	_, _, err := er.r.GuaranteeRecord()
	if err != nil {
		return err
	}
	list := &attribute.List{}
	if err := attribute.UnmarshalInto(er.r, list); err != nil {
		return err
	}
	er.pending = list
	return nil
}

func (er *EventReader) consumeMappingTable() error {
	endPos, _, err := er.r.GuaranteeRecord()
	if err != nil {
		return err
	}
	mt, err := record.UnmarshalMappingTable(er.r)
	if err != nil {
		return err
	}
	er.r.SetPosition(endPos)
	if er.ctx != nil {
		er.ctx.AddTable(mt.Domain, mt.Local, mt.Global)
	}
	return nil
}

func (er *EventReader) consumeClockOffset() error {
	endPos, _, err := er.r.GuaranteeRecord()
	if err != nil {
		return err
	}
	_, err = record.UnmarshalClockOffset(er.r)
	if err != nil {
		return err
	}
	er.r.SetPosition(endPos)
	// Individual samples accumulate into the location's Clock out of band
	// (mapping.NewClock is built once all samples are known); a single
	// reader pass only needs to skip the record here.
	return nil
}

func (er *EventReader) loadNextChunk() error {
	data, err := er.src.NextChunk()
	if err != nil {
		return err
	}
	er.buf = data
	er.r.Reset(er.buf)
	return nil
}
