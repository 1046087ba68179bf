// Package merge implements the global event reader (spec.md §4.6): a
// k-way merge of per-location event readers into a single, timestamp-
// ordered stream, breaking ties by ascending location id.
package merge

import (
	"container/heap"
	"errors"
	"io"

	"github.com/tracefmt/otf2go/dispatch"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/record"
	"github.com/tracefmt/otf2go/trace"
)

// locationReader is the subset of *trace.EventReader the merger drives.
// Declared as an interface so tests can substitute a fake without a real
// chunk stream.
type locationReader interface {
	CorrectedPeek() (ts uint64, ok bool, err error)
	Advance() (record.Record, error)
	Location() idref.LocationRef
}

// item is one heap entry: a reader with a known-peeked, not-yet-consumed
// next timestamp (spec.md §4.4's "operated" distinction — peeked but not
// materialized).
type item struct {
	r  locationReader
	ts uint64
}

type itemHeap []*item

func (h itemHeap) Len() int { return len(h) }
func (h itemHeap) Less(i, j int) bool {
	if h[i].ts != h[j].ts {
		return h[i].ts < h[j].ts
	}
	return h[i].r.Location() < h[j].r.Location()
}
func (h itemHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x any)        { *h = append(*h, x.(*item)) }
func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// Reader merges many per-location EventReaders into one global,
// timestamp-ordered stream.
type Reader struct {
	heap itemHeap
	err  error
}

// NewReader builds a Reader over readers, peeking each one once to seed
// the heap. A reader already at end of stream is dropped silently.
func NewReader(readers []*trace.EventReader) (*Reader, error) {
	lrs := make([]locationReader, len(readers))
	for i, r := range readers {
		lrs[i] = r
	}
	return newReader(lrs)
}

func newReader(readers []locationReader) (*Reader, error) {
	gr := &Reader{}
	for _, r := range readers {
		ts, ok, err := r.CorrectedPeek()
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		gr.heap = append(gr.heap, &item{r: r, ts: ts})
	}
	heap.Init(&gr.heap)
	return gr, nil
}

// Err returns the first error encountered.
func (gr *Reader) Err() error { return gr.err }

// Next pops the earliest-timestamped, lowest-location-id-tied record,
// fully decodes it via Advance, and refills the heap from that location's
// next record if one exists. Once every reader is exhausted it reports
// ok=false with a nil error.
func (gr *Reader) Next() (record.Record, bool, error) {
	if gr.err != nil {
		return nil, false, gr.err
	}
	if gr.heap.Len() == 0 {
		return nil, false, nil
	}
	top := heap.Pop(&gr.heap).(*item)
	rec, err := top.r.Advance()
	if err != nil {
		gr.err = err
		return nil, false, err
	}
	ts, ok, err := top.r.CorrectedPeek()
	if err != nil {
		gr.err = err
		return nil, false, err
	}
	if ok {
		heap.Push(&gr.heap, &item{r: top.r, ts: ts})
	}
	return rec, true, nil
}

// Run drives the merged stream to completion (or interruption),
// dispatching every record through tbl. It returns nil on a clean end of
// stream, dispatch.ErrInterrupted if a callback asked to stop (the
// caller may call Run again later to resume from where it left off), or
// any decode error encountered.
func (gr *Reader) Run(tbl *dispatch.Table) error {
	for {
		rec, ok, err := gr.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !ok {
			return nil
		}
		action, err := tbl.Dispatch(rec)
		if err != nil {
			return err
		}
		if action == dispatch.Interrupt {
			return dispatch.ErrInterrupted
		}
	}
}
