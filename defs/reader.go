// Package defs implements the global-definitions stream (spec.md §3): a
// flat, unordered sequence of definition records, read and written as a
// single chunked stream rather than per-location like the event streams
// in package trace.
package defs

import (
	"fmt"
	"io"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/internal/intern"
	"github.com/tracefmt/otf2go/record"
	"github.com/tracefmt/otf2go/trace"
)

// Reader iterates the global-definitions stream, decoding one record at a
// time. Unlike trace.EventReader there is no timestamp, no attribute
// list, and no lazy Peek/Advance split: a definition's wire cost is
// already small relative to the event streams, so each Next call decodes
// fully.
type Reader struct {
	src trace.ChunkSource
	r   *chunk.Reader
	buf []byte

	strings *intern.Table

	Record record.Record
	err    error
	atEOF  bool
}

// NewReader creates a Reader over the given chunk source.
func NewReader(src trace.ChunkSource) *Reader {
	return &Reader{src: src, r: chunk.NewReader(nil), strings: intern.NewTable()}
}

// ResolveString returns the text previously registered under id by a
// decoded String record, for O(1) lookups when another definition (e.g.
// Region.Name) references it by StringRef instead of re-scanning the
// stream (SPEC_FULL.md's DOMAIN STACK, xxhash-keyed interning).
func (r *Reader) ResolveString(id idref.StringRef) (string, bool) {
	return r.strings.Lookup(id)
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error { return r.err }

// Next decodes the next definition record, reporting whether one was
// available.
func (r *Reader) Next() bool {
	if r.err != nil || r.atEOF {
		return false
	}
	rec, err := r.next()
	if err != nil {
		if err == io.EOF {
			r.atEOF = true
			return false
		}
		r.err = err
		return false
	}
	r.Record = rec
	return true
}

func (r *Reader) next() (record.Record, error) {
	for {
		tag, err := r.r.ReadRecordType()
		if err == chunk.ErrUnderrun {
			if err := r.loadNextChunk(); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}

		switch tag {
		case chunk.EndOfChunk:
			if err := r.loadNextChunk(); err != nil {
				return nil, err
			}
			continue
		case chunk.EndOfFile:
			return nil, io.EOF
		}

		kind := record.Kind(tag)
		entry, ok := record.Catalog[kind]
		if !ok {
			// A tag absent from the catalog still carries the standard
			// record_data_length prefix, so it can be skipped and handed
			// to the dispatcher's unknown callback instead of aborting the
			// whole stream (spec.md §7, §4.7 "unknown-record fallback").
			_, dataLen, err := r.r.GuaranteeRecord()
			if err != nil {
				return nil, err
			}
			data, err := r.r.ReadBytes(int(dataLen))
			if err != nil {
				return nil, err
			}
			return &record.Unknown{Tag: tag, Data: data}, nil
		}
		if entry.IsEvent {
			return nil, fmt.Errorf("defs: unexpected event kind %s in definitions stream", entry.Name)
		}

		var endPos int
		if entry.Framing == record.Prefixed {
			endPos, _, err = r.r.GuaranteeRecord()
			if err != nil {
				return nil, err
			}
		}

		decode, ok := record.Decoders[kind]
		if !ok {
			return nil, fmt.Errorf("defs: no decoder registered for kind %s", entry.Name)
		}
		rec, err := decode(r.r)
		if err != nil {
			return nil, err
		}
		if entry.Framing == record.Prefixed {
			r.r.SetPosition(endPos)
		}
		if s, ok := rec.(*record.String); ok {
			r.strings.Set(s.Self, s.Value)
		}
		return rec, nil
	}
}

func (r *Reader) loadNextChunk() error {
	data, err := r.src.NextChunk()
	if err != nil {
		return err
	}
	r.buf = data
	r.r.Reset(r.buf)
	return nil
}
