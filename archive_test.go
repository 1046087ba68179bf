package otf2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/idref"
	"github.com/tracefmt/otf2go/record"
	"github.com/tracefmt/otf2go/trace"
)

func TestOpenAppliesOptionsAndDefaults(t *testing.T) {
	a, err := Open(WithChunkSize(2048), WithClockProperties(record.ClockProperties{TimerResolution: 1000}))
	require.NoError(t, err)
	assert.Equal(t, 2048, a.chunkSize)
	assert.EqualValues(t, 1000, a.ClockProperties().TimerResolution)
}

func TestOpenDefaultsChunkSizeAndLogger(t *testing.T) {
	a, err := Open()
	require.NoError(t, err)
	assert.Equal(t, defaultChunkSize, a.chunkSize)
	assert.NotNil(t, a.logger)
}

func TestOpenLocationReaderAndWriterRoundTrip(t *testing.T) {
	a, err := Open()
	require.NoError(t, err)

	var chunks [][]byte
	loc := idref.LocationRef(1)
	w, err := a.OpenLocationWriter(loc, trace.NewSliceSink(&chunks))
	require.NoError(t, err)
	require.NoError(t, w.Write(10, &record.Enter{Region: idref.RegionRef(1)}))
	require.NoError(t, a.Close())

	b, err := Open()
	require.NoError(t, err)
	r, err := b.OpenLocationReader(loc, trace.NewSliceSource(chunks))
	require.NoError(t, err)
	require.True(t, r.Next())
	enter, ok := r.Record.(*record.Enter)
	require.True(t, ok)
	assert.EqualValues(t, 1, enter.Region)
}

func TestOpenLocationReaderRejectsDuplicateLocation(t *testing.T) {
	a, err := Open()
	require.NoError(t, err)
	loc := idref.LocationRef(1)
	_, err = a.OpenLocationReader(loc, trace.NewSliceSource(nil))
	require.NoError(t, err)
	_, err = a.OpenLocationReader(loc, trace.NewSliceSource(nil))
	require.Error(t, err)
}

func TestOperationsFailAfterClose(t *testing.T) {
	a, err := Open()
	require.NoError(t, err)
	require.NoError(t, a.Close())

	_, err = a.OpenLocationReader(idref.LocationRef(1), trace.NewSliceSource(nil))
	var otfErr *Error
	require.ErrorAs(t, err, &otfErr)
	assert.Equal(t, ErrCodeClosed, otfErr.Code)
}

func TestCloseIsIdempotent(t *testing.T) {
	a, err := Open()
	require.NoError(t, err)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestCloseAggregatesWriterErrors(t *testing.T) {
	a, err := Open()
	require.NoError(t, err)

	_, err = a.OpenLocationWriter(idref.LocationRef(1), failingSink{})
	require.NoError(t, err)

	err = a.Close()
	require.Error(t, err)
	var otfErr *Error
	require.ErrorAs(t, err, &otfErr)
	assert.Equal(t, ErrCodeIO, otfErr.Code)
}

type failingSink struct{}

func (failingSink) PutChunk(data []byte) error { return assert.AnError }

func TestMappingContextIsPerLocation(t *testing.T) {
	a, err := Open()
	require.NoError(t, err)
	loc := idref.LocationRef(1)
	_, err = a.OpenLocationReader(loc, trace.NewSliceSource(nil))
	require.NoError(t, err)

	ctx, ok := a.MappingContext(loc)
	require.True(t, ok)
	require.NotNil(t, ctx)

	_, ok = a.MappingContext(idref.LocationRef(2))
	assert.False(t, ok)
}
