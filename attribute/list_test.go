package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/chunk"
	"github.com/tracefmt/otf2go/idref"
)

func TestListAddRejectsDuplicateID(t *testing.T) {
	l := &List{}
	require.NoError(t, l.Add(idref.AttributeRef(1), NewInt64(1)))
	err := l.Add(idref.AttributeRef(1), NewInt64(2))
	var dup *ErrDuplicateAttribute
	require.ErrorAs(t, err, &dup)
	assert.EqualValues(t, 1, dup.ID)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	l := &List{}
	require.NoError(t, l.Add(idref.AttributeRef(3), NewInt64(1)))
	require.NoError(t, l.Add(idref.AttributeRef(1), NewInt64(2)))
	require.NoError(t, l.Add(idref.AttributeRef(2), NewInt64(3)))

	var ids []idref.AttributeRef
	l.Each(func(id idref.AttributeRef, v Value) bool {
		ids = append(ids, id)
		return true
	})
	assert.Equal(t, []idref.AttributeRef{3, 1, 2}, ids)
}

func TestListResetClearsEntriesAndIndex(t *testing.T) {
	l := &List{}
	require.NoError(t, l.Add(idref.AttributeRef(1), NewInt64(1)))
	l.Reset()
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Has(idref.AttributeRef(1)))
	// a fresh Add after Reset must not see a stale duplicate.
	require.NoError(t, l.Add(idref.AttributeRef(1), NewInt64(2)))
}

func TestListCloneIsIndependent(t *testing.T) {
	l := &List{}
	require.NoError(t, l.Add(idref.AttributeRef(1), NewInt64(1)))
	c := l.Clone()
	l.Reset()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 1, c.Len())
}

func TestListMarshalRoundTrip(t *testing.T) {
	l := &List{}
	require.NoError(t, l.Add(idref.AttributeRef(5), NewUint32(7)))
	require.NoError(t, l.Add(idref.AttributeRef(6), NewStringRef(idref.StringRef(2))))

	w := chunk.NewWriter(4096)
	require.NoError(t, l.Marshal(w))

	out := &List{}
	require.NoError(t, UnmarshalInto(chunk.NewReader(w.Bytes()), out))
	assert.Equal(t, l.Len(), out.Len())

	v, ok := out.Get(idref.AttributeRef(5))
	require.True(t, ok)
	n, err := v.AsUint64()
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
}

func TestUnmarshalIntoResetsDestinationFirst(t *testing.T) {
	out := &List{}
	require.NoError(t, out.Add(idref.AttributeRef(99), NewInt64(1)))

	src := &List{}
	require.NoError(t, src.Add(idref.AttributeRef(1), NewInt64(2)))
	w := chunk.NewWriter(4096)
	require.NoError(t, src.Marshal(w))

	require.NoError(t, UnmarshalInto(chunk.NewReader(w.Bytes()), out))
	assert.False(t, out.Has(idref.AttributeRef(99)))
	assert.True(t, out.Has(idref.AttributeRef(1)))
}
