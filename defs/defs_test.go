package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/record"
	"github.com/tracefmt/otf2go/trace"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	var chunks [][]byte
	w := NewWriter(trace.NewSliceSink(&chunks), 4096)
	require.NoError(t, w.Write(record.ClockProperties{TimerResolution: 1_000_000_000, GlobalOffset: 0, TraceLength: 5000}))
	require.NoError(t, w.Write(sampleRegion()))
	require.NoError(t, w.Close())

	r := NewReader(trace.NewSliceSource(chunks))

	require.True(t, r.Next())
	cp, ok := r.Record.(*record.ClockProperties)
	require.True(t, ok)
	assert.EqualValues(t, 1_000_000_000, cp.TimerResolution)

	require.True(t, r.Next())
	reg, ok := r.Record.(*record.Region)
	require.True(t, ok)
	assert.EqualValues(t, 7, reg.Self)

	assert.False(t, r.Next())
	require.NoError(t, r.Err())
}

func TestReaderRecoversFromUnknownRecordTag(t *testing.T) {
	w := chunk.NewWriter(4096)
	w.WriteRecordType(250)
	off := w.ReserveRecordLength()
	w.WriteBytes([]byte{0x01, 0x02})
	w.PatchRecordLength(off)

	w.WriteRecordType(byte(record.KindRegion))
	regOff := w.ReserveRecordLength()
	require.NoError(t, sampleRegion().Marshal(w))
	w.PatchRecordLength(regOff)
	chunkBytes := w.Close()

	r := NewReader(trace.NewSliceSource([][]byte{chunkBytes}))

	require.True(t, r.Next())
	unk, ok := r.Record.(*record.Unknown)
	require.True(t, ok)
	assert.EqualValues(t, 250, unk.Tag)
	assert.Equal(t, []byte{0x01, 0x02}, unk.Data)

	require.True(t, r.Next())
	reg, ok := r.Record.(*record.Region)
	require.True(t, ok)
	assert.EqualValues(t, 7, reg.Self)

	assert.False(t, r.Next())
	require.NoError(t, r.Err())
}

func TestWriterInternStringDeduplicatesAndFlushesOnClose(t *testing.T) {
	var chunks [][]byte
	w := NewWriter(trace.NewSliceSink(&chunks), 4096)

	id1 := w.InternString("main")
	id2 := w.InternString("main")
	assert.Equal(t, id1, id2)

	other := w.InternString("other")
	assert.NotEqual(t, id1, other)

	require.NoError(t, w.Close())

	r := NewReader(trace.NewSliceSource(chunks))
	seen := map[idref.StringRef]string{}
	for r.Next() {
		s, ok := r.Record.(*record.String)
		require.True(t, ok)
		seen[s.Self] = s.Value
	}
	require.NoError(t, r.Err())
	assert.Equal(t, "main", seen[id1])
	assert.Equal(t, "other", seen[other])
}

func TestReaderResolveStringReturnsDecodedValue(t *testing.T) {
	var chunks [][]byte
	w := NewWriter(trace.NewSliceSink(&chunks), 4096)
	id := w.InternString("region_name")
	require.NoError(t, w.Close())

	r := NewReader(trace.NewSliceSource(chunks))
	require.True(t, r.Next())
	_, ok := r.Record.(*record.String)
	require.True(t, ok)

	s, ok := r.ResolveString(id)
	require.True(t, ok)
	assert.Equal(t, "region_name", s)

	_, ok = r.ResolveString(idref.StringRef(999))
	assert.False(t, ok)
}

func TestWriterRejectsEventKinds(t *testing.T) {
	var chunks [][]byte
	w := NewWriter(trace.NewSliceSink(&chunks), 4096)
	err := w.Write(&record.Enter{Region: idref.RegionRef(1)})
	assert.Error(t, err)
}

func sampleRegion() record.Region {
	return record.Region{
		Self:        idref.RegionRef(7),
		Name:        idref.StringRef(1),
		Description: idref.StringRef(2),
		SourceFile:  idref.StringRef(3),
		BeginLine:   1,
		EndLine:     10,
	}
}
