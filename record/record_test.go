package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

func marshalUnframed(t *testing.T, rec Record) []byte {
	t.Helper()
	w := chunk.NewWriter(4096)
	require.NoError(t, rec.Marshal(w))
	return w.Bytes()
}

func TestRegionRoundTrip(t *testing.T) {
	in := Region{
		Self:        idref.RegionRef(3),
		Name:        idref.StringRef(1),
		Description: idref.StringRef(2),
		SourceFile:  idref.StringRef(4),
		BeginLine:   10,
		EndLine:     20,
	}
	data := marshalUnframed(t, in)
	out, err := UnmarshalRegion(chunk.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, &in, out)
}

func TestClockPropertiesRoundTrip(t *testing.T) {
	in := ClockProperties{TimerResolution: 1_000_000_000, GlobalOffset: 42, TraceLength: 9999}
	data := marshalUnframed(t, in)
	out, err := UnmarshalClockProperties(chunk.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, &in, out)
}

func TestEnterRoundTrip(t *testing.T) {
	in := Enter{Region: idref.RegionRef(7)}
	data := marshalUnframed(t, in)
	out, err := UnmarshalEnter(chunk.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, idref.RegionRef(7), out.Region)
}

func TestEnterTranslateIsEagerAndLeavesUndefinedAlone(t *testing.T) {
	e := &Enter{Region: idref.RegionRef(5)}
	require.NoError(t, e.Translate(identityTranslator{}))
	assert.EqualValues(t, 10, e.Region) // identityTranslator doubles, see helper below

	undef := &Enter{Region: idref.RegionRef(idref.Undefined)}
	require.NoError(t, undef.Translate(identityTranslator{}))
	assert.EqualValues(t, idref.Undefined, undef.Region)
}

// identityTranslator doubles every id, letting tests distinguish "was
// translated" from "was left alone" without a real mapping table.
type identityTranslator struct{}

func (identityTranslator) Translate(dom idref.Domain, local uint64) (uint64, error) {
	return local * 2, nil
}

func TestDecodersCoverEveryNonSpecialKind(t *testing.T) {
	for k, entry := range Catalog {
		if k == KindAttributeList {
			continue
		}
		_, ok := Decoders[k]
		assert.Truef(t, ok, "missing decoder for kind %s", entry.Name)
	}
}
