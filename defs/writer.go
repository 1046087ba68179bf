package defs

import (
	"fmt"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/internal/intern"
	"github.com/tracefmt/otf2go/record"
	"github.com/tracefmt/otf2go/trace"
)

// Writer frames definition records into the global-definitions stream,
// flushing to sink on chunk overflow just like trace.EventWriter.
type Writer struct {
	sink    trace.ChunkSink
	w       *chunk.Writer
	strings *intern.Table
	closed  bool
}

// NewWriter creates a writer that flushes chunks of at most chunkSize
// bytes to sink.
func NewWriter(sink trace.ChunkSink, chunkSize int) *Writer {
	return &Writer{sink: sink, w: chunk.NewWriter(chunkSize), strings: intern.NewTable()}
}

// InternString returns a stable StringRef for s, deduplicating repeated
// values (region names, file paths, comm names, ...) via the same
// xxhash-keyed table the reader side uses, rather than making every
// caller track its own string numbering. The backing String records are
// emitted, one per distinct value, in assignment order, when Close runs.
func (w *Writer) InternString(s string) idref.StringRef {
	return w.strings.Intern(s)
}

func (w *Writer) flushStrings() error {
	var err error
	w.strings.Each(func(id idref.StringRef, s string) {
		if err != nil {
			return
		}
		err = w.Write(&record.String{Self: id, Value: s})
	})
	return err
}

// Write frames one definition record under its declared framing
// discipline.
func (w *Writer) Write(rec record.Record) error {
	entry, ok := record.Catalog[rec.Kind()]
	if !ok {
		return fmt.Errorf("defs: record kind %d not in catalog", rec.Kind())
	}
	if entry.IsEvent {
		return fmt.Errorf("defs: %s is an event kind, not a definition", entry.Name)
	}

	if !w.w.Fits(9 + 256) {
		if err := w.flush(); err != nil {
			return err
		}
	}

	w.w.WriteRecordType(byte(rec.Kind()))
	if entry.Framing == record.Prefixed {
		off := w.w.ReserveRecordLength()
		if err := rec.Marshal(w.w); err != nil {
			return err
		}
		w.w.PatchRecordLength(off)
	} else {
		if err := rec.Marshal(w.w); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) flush() error {
	data := w.w.Flush()
	return w.sink.PutChunk(data)
}

// Close flushes any buffered bytes with the EndOfFile sentinel. It must
// be called exactly once.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if err := w.flushStrings(); err != nil {
		return err
	}
	w.closed = true
	data := w.w.Close()
	return w.sink.PutChunk(data)
}
