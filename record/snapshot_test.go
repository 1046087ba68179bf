package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

func TestSnapshotKindsAreEventsWithDecoders(t *testing.T) {
	for _, k := range []Kind{KindSnapshotStart, KindSnapshotEnd, KindMeasurementOnOffSnapshot, KindEnterSnapshot} {
		e, ok := Catalog[k]
		require.True(t, ok, "kind %v must be cataloged", k)
		assert.True(t, e.IsEvent, "kind %v must be an event for the per-location stream", k)
		_, ok = Decoders[k]
		assert.True(t, ok, "kind %v must have a decoder", k)
	}
}

func TestEnterSnapshotRoundTrip(t *testing.T) {
	in := EnterSnapshot{Region: idref.RegionRef(4), OriginTimestamp: 12345}
	data := marshalUnframed(t, in)
	out, err := UnmarshalEnterSnapshot(chunk.NewReader(data))
	require.NoError(t, err)
	assert.EqualValues(t, 4, out.Region)
	assert.EqualValues(t, 12345, out.OriginTimestamp)
}

func TestEnterSnapshotTranslatesRegion(t *testing.T) {
	rec := &EnterSnapshot{Region: idref.RegionRef(3)}
	require.NoError(t, rec.Translate(identityTranslator{}))
	assert.EqualValues(t, 6, rec.Region)
}
