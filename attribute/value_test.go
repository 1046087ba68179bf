package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

func marshalValue(t *testing.T, v Value) Value {
	t.Helper()
	w := chunk.NewWriter(4096)
	require.NoError(t, v.Marshal(w))
	got, err := UnmarshalValue(chunk.NewReader(w.Bytes()))
	require.NoError(t, err)
	return got
}

func TestValueRoundTrip(t *testing.T) {
	cases := []Value{
		NewInt8(-12),
		NewInt16(-1234),
		NewInt32(-123456),
		NewInt64(-123456789),
		NewUint8(200),
		NewUint16(60000),
		NewUint32(4000000000),
		NewUint64(18000000000000000000),
		NewFloat(3.5),
		NewDouble(2.71828),
		NewStringRef(idref.StringRef(17)),
		NewIDRef(idref.Region, 99),
		NewSourceCodeLocation(SourceCodeLocation{File: idref.StringRef(3), Line: 42}),
	}
	for _, in := range cases {
		out := marshalValue(t, in)
		assert.Equal(t, in, out)
	}
}

func TestAsStringRefReturnsStringRefType(t *testing.T) {
	v := NewStringRef(idref.StringRef(5))
	got, err := v.AsStringRef()
	require.NoError(t, err)
	assert.IsType(t, idref.StringRef(0), got)
	assert.EqualValues(t, 5, got)
}

func TestAsIDRefRoundTripsDomain(t *testing.T) {
	v := NewIDRef(idref.Comm, 7)
	dom, id, err := v.AsIDRef()
	require.NoError(t, err)
	assert.Equal(t, idref.Comm, dom)
	assert.EqualValues(t, 7, id)
}

func TestExtractionTagMismatchFailsAtExtractionSite(t *testing.T) {
	v := NewInt64(5)
	_, err := v.AsDouble()
	var mismatch *ErrTagMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, TypeDouble, mismatch.Want)
	assert.Equal(t, TypeInt64, mismatch.Have)
}

func TestSourceCodeLocationFileIsStringRef(t *testing.T) {
	scl := SourceCodeLocation{File: idref.StringRef(9), Line: 1}
	v := NewSourceCodeLocation(scl)
	got, err := v.AsSourceCodeLocation()
	require.NoError(t, err)
	assert.IsType(t, idref.StringRef(0), got.File)
	assert.Equal(t, scl, got)
}
