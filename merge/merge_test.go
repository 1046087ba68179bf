package merge

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/dispatch"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/record"
)

// fakeReader is a locationReader driven by a fixed list of (timestamp,
// record) pairs, letting merge order be tested without a real chunk
// stream.
type fakeReader struct {
	loc     idref.LocationRef
	entries []fakeEntry
	i       int
}

type fakeEntry struct {
	ts  uint64
	rec record.Record
}

func (f *fakeReader) CorrectedPeek() (uint64, bool, error) {
	if f.i >= len(f.entries) {
		return 0, false, nil
	}
	return f.entries[f.i].ts, true, nil
}

func (f *fakeReader) Advance() (record.Record, error) {
	if f.i >= len(f.entries) {
		return nil, io.EOF
	}
	rec := f.entries[f.i].rec
	f.i++
	return rec, nil
}

func (f *fakeReader) Location() idref.LocationRef { return f.loc }

func enterAt(region uint64) record.Record {
	return &record.Enter{Region: idref.RegionRef(region)}
}

func TestMergeOrdersAscendingByTimestamp(t *testing.T) {
	a := &fakeReader{loc: 1, entries: []fakeEntry{{ts: 20, rec: enterAt(1)}, {ts: 40, rec: enterAt(2)}}}
	b := &fakeReader{loc: 2, entries: []fakeEntry{{ts: 10, rec: enterAt(3)}, {ts: 30, rec: enterAt(4)}}}

	gr, err := newReader([]locationReader{a, b})
	require.NoError(t, err)

	var order []uint64
	for {
		rec, ok, err := gr.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		order = append(order, uint64(rec.(*record.Enter).Region))
	}
	assert.Equal(t, []uint64{3, 1, 4, 2}, order)
}

func TestMergeBreaksTiesByAscendingLocationID(t *testing.T) {
	a := &fakeReader{loc: 5, entries: []fakeEntry{{ts: 100, rec: enterAt(1)}}}
	b := &fakeReader{loc: 1, entries: []fakeEntry{{ts: 100, rec: enterAt(2)}}}

	gr, err := newReader([]locationReader{a, b})
	require.NoError(t, err)

	rec, ok, err := gr.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 2, rec.(*record.Enter).Region, "location 1 must be delivered before location 5 at equal timestamps")
}

func TestMergeDropsExhaustedReadersAtConstruction(t *testing.T) {
	empty := &fakeReader{loc: 1}
	live := &fakeReader{loc: 2, entries: []fakeEntry{{ts: 10, rec: enterAt(1)}}}

	gr, err := newReader([]locationReader{empty, live})
	require.NoError(t, err)
	assert.Equal(t, 1, gr.heap.Len())
}

func TestRunDispatchesEveryRecordAndStopsCleanlyAtEOF(t *testing.T) {
	a := &fakeReader{loc: 1, entries: []fakeEntry{{ts: 10, rec: enterAt(1)}, {ts: 20, rec: enterAt(2)}}}
	gr, err := newReader([]locationReader{a})
	require.NoError(t, err)

	tbl := dispatch.NewTable(idref.AttributeRef(1))
	var seen []uint64
	tbl.Register(record.KindEnter, func(rec record.Record) (dispatch.Action, error) {
		seen = append(seen, uint64(rec.(*record.Enter).Region))
		return dispatch.Continue, nil
	})

	require.NoError(t, gr.Run(tbl))
	assert.Equal(t, []uint64{1, 2}, seen)
}

func TestRunStopsOnInterruptAndIsResumable(t *testing.T) {
	a := &fakeReader{loc: 1, entries: []fakeEntry{{ts: 10, rec: enterAt(1)}, {ts: 20, rec: enterAt(2)}}}
	gr, err := newReader([]locationReader{a})
	require.NoError(t, err)

	tbl := dispatch.NewTable(idref.AttributeRef(1))
	calls := 0
	tbl.Register(record.KindEnter, func(rec record.Record) (dispatch.Action, error) {
		calls++
		return dispatch.Interrupt, nil
	})

	err = gr.Run(tbl)
	assert.ErrorIs(t, err, dispatch.ErrInterrupted)
	assert.Equal(t, 1, calls)

	// Resuming delivers the remaining record.
	err = gr.Run(tbl)
	assert.ErrorIs(t, err, dispatch.ErrInterrupted)
	assert.Equal(t, 2, calls)
}
