package trace

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/attribute"
	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/mapping"
	"github.com/tracefmt/otf2go/record"
)

func TestEventWriterReaderRoundTrip(t *testing.T) {
	var chunks [][]byte
	w := NewEventWriter(idref.LocationRef(1), NewSliceSink(&chunks), 4096)
	require.NoError(t, w.Write(100, &record.Enter{Region: idref.RegionRef(5)}))
	require.NoError(t, w.Write(200, &record.Leave{Region: idref.RegionRef(5)}))
	require.NoError(t, w.Close())

	er := NewEventReader(idref.LocationRef(1), NewSliceSource(chunks), nil)

	require.True(t, er.Next())
	enter, ok := er.Record.(*record.Enter)
	require.True(t, ok)
	assert.EqualValues(t, 5, enter.Region)
	assert.EqualValues(t, 100, enter.Timestamp)
	assert.EqualValues(t, 1, enter.Position)

	require.True(t, er.Next())
	leave, ok := er.Record.(*record.Leave)
	require.True(t, ok)
	assert.EqualValues(t, 5, leave.Region)
	assert.EqualValues(t, 200, leave.Timestamp)
	assert.EqualValues(t, 2, leave.Position)

	assert.False(t, er.Next())
	require.NoError(t, er.Err())
}

func TestEventWriterAttachesAttributeListToNextEvent(t *testing.T) {
	var chunks [][]byte
	w := NewEventWriter(idref.LocationRef(1), NewSliceSink(&chunks), 4096)

	list := &attribute.List{}
	require.NoError(t, list.Add(idref.AttributeRef(1), attribute.NewUint64(42)))
	require.NoError(t, w.WriteAttributes(list))
	require.NoError(t, w.Write(100, &record.Enter{Region: idref.RegionRef(1)}))
	require.NoError(t, w.Close())

	er := NewEventReader(idref.LocationRef(1), NewSliceSource(chunks), nil)
	require.True(t, er.Next())
	enter := er.Record.(*record.Enter)
	require.NotNil(t, enter.Attributes)
	v, ok := enter.Attributes.Get(idref.AttributeRef(1))
	require.True(t, ok)
	n, err := v.AsUint64()
	require.NoError(t, err)
	assert.EqualValues(t, 42, n)
}

func TestEventReaderAppliesIdentifierTranslation(t *testing.T) {
	var chunks [][]byte
	w := NewEventWriter(idref.LocationRef(1), NewSliceSink(&chunks), 4096)
	require.NoError(t, w.Write(10, &record.Enter{Region: idref.RegionRef(3)}))
	require.NoError(t, w.Close())

	ctx := mapping.NewContext()
	ctx.AddTable(idref.Region, []uint64{3}, []uint64{300})

	er := NewEventReader(idref.LocationRef(1), NewSliceSource(chunks), ctx)
	require.True(t, er.Next())
	enter := er.Record.(*record.Enter)
	assert.EqualValues(t, 300, enter.Region)
}

func TestEventReaderAppliesClockCorrection(t *testing.T) {
	var chunks [][]byte
	w := NewEventWriter(idref.LocationRef(1), NewSliceSink(&chunks), 4096)
	require.NoError(t, w.Write(100, &record.Enter{Region: idref.RegionRef(1)}))
	require.NoError(t, w.Close())

	ctx := mapping.NewContext()
	ctx.SetClock(mapping.NewClock([]mapping.ClockSample{{Time: 0, Offset: 1000}}))

	er := NewEventReader(idref.LocationRef(1), NewSliceSource(chunks), ctx)
	require.True(t, er.Next())
	enter := er.Record.(*record.Enter)
	assert.EqualValues(t, 1100, enter.Timestamp)
}

func TestEventReaderPeekDoesNotConsumeRecord(t *testing.T) {
	var chunks [][]byte
	w := NewEventWriter(idref.LocationRef(1), NewSliceSink(&chunks), 4096)
	require.NoError(t, w.Write(100, &record.Enter{Region: idref.RegionRef(1)}))
	require.NoError(t, w.Close())

	er := NewEventReader(idref.LocationRef(1), NewSliceSource(chunks), nil)
	ts, ok, err := er.Peek()
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 100, ts)

	// Peeking again before Advance must return the same pending record.
	ts2, ok2, err := er.Peek()
	require.NoError(t, err)
	require.True(t, ok2)
	assert.Equal(t, ts, ts2)

	rec, err := er.Advance()
	require.NoError(t, err)
	assert.Equal(t, idref.RegionRef(1), rec.(*record.Enter).Region)

	_, ok3, err := er.Peek()
	require.NoError(t, err)
	assert.False(t, ok3)
}

func TestEventReaderEmptyStreamReturnsEOFImmediately(t *testing.T) {
	var chunks [][]byte
	w := NewEventWriter(idref.LocationRef(1), NewSliceSink(&chunks), 4096)
	require.NoError(t, w.Close())

	er := NewEventReader(idref.LocationRef(1), NewSliceSource(chunks), nil)
	assert.False(t, er.Next())
	require.NoError(t, er.Err())

	_, ok, err := er.Peek()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEventReaderPrefixedEventSeeksToRecordEnd(t *testing.T) {
	// Enter is Singleton-framed (no trailing-field skip applies); use a
	// Prefixed event (CollectiveEnd) so GuaranteeRecord's endPos is
	// exercised. The record is written as-is, with no extra trailing
	// bytes; the reader's seek to endPos must leave the stream aligned on
	// the next record.
	var chunks [][]byte
	w := NewEventWriter(idref.LocationRef(1), NewSliceSink(&chunks), 4096)
	require.NoError(t, w.Write(10, &record.CollectiveEnd{Type: 1, Comm: idref.CommRef(2), Root: 0, SizeSent: 8, SizeRecv: 8}))
	require.NoError(t, w.Write(20, &record.Enter{Region: idref.RegionRef(9)}))
	require.NoError(t, w.Close())

	er := NewEventReader(idref.LocationRef(1), NewSliceSource(chunks), nil)
	require.True(t, er.Next())
	_, ok := er.Record.(*record.CollectiveEnd)
	require.True(t, ok)

	require.True(t, er.Next())
	enter, ok := er.Record.(*record.Enter)
	require.True(t, ok)
	assert.EqualValues(t, 9, enter.Region)

	assert.False(t, er.Next())
	require.NoError(t, er.Err())
}

func TestEventReaderMultiChunkStream(t *testing.T) {
	var chunks [][]byte
	// A small chunk size forces rollover between the two writes.
	w := NewEventWriter(idref.LocationRef(1), NewSliceSink(&chunks), 24)
	require.NoError(t, w.Write(1, &record.Enter{Region: idref.RegionRef(1)}))
	require.NoError(t, w.Write(2, &record.Leave{Region: idref.RegionRef(1)}))
	require.NoError(t, w.Close())
	require.Greater(t, len(chunks), 1, "expected the writer to roll over into a second chunk")

	er := NewEventReader(idref.LocationRef(1), NewSliceSource(chunks), nil)
	count := 0
	for er.Next() {
		count++
	}
	require.NoError(t, er.Err())
	assert.Equal(t, 2, count)
}

func TestEventReaderRecoversFromUnknownRecordTag(t *testing.T) {
	// Hand-build a chunk with a tag this build's catalog has never heard
	// of (250, reserved for neither records nor the EndOfChunk/EndOfFile
	// sentinels), framed with the standard length prefix, followed by a
	// normal Enter. The reader must skip the unknown record rather than
	// aborting the whole stream (spec.md §7, §4.7).
	w := chunk.NewWriter(4096)
	w.WriteRecordType(250)
	off := w.ReserveRecordLength()
	w.WriteBytes([]byte{0xAA, 0xBB, 0xCC})
	w.PatchRecordLength(off)

	w.WriteRecordType(byte(record.KindEnter))
	w.WriteTimestampFull(20)
	require.NoError(t, (&record.Enter{Region: idref.RegionRef(9)}).Marshal(w))
	chunkBytes := w.Close()

	er := NewEventReader(idref.LocationRef(1), NewSliceSource([][]byte{chunkBytes}), nil)

	require.True(t, er.Next())
	unk, ok := er.Record.(*record.Unknown)
	require.True(t, ok)
	assert.EqualValues(t, 250, unk.Tag)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, unk.Data)

	require.True(t, er.Next())
	enter, ok := er.Record.(*record.Enter)
	require.True(t, ok)
	assert.EqualValues(t, 9, enter.Region)

	assert.False(t, er.Next())
	require.NoError(t, er.Err())
}

func TestSliceSourceReportsEOF(t *testing.T) {
	src := NewSliceSource(nil)
	_, err := src.NextChunk()
	assert.ErrorIs(t, err, io.EOF)
}
