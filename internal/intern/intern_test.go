package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/idref"
)

func TestInternDeduplicatesEqualStrings(t *testing.T) {
	tbl := NewTable()
	id1 := tbl.Intern("main")
	id2 := tbl.Intern("main")
	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, tbl.Len())
}

func TestInternAssignsStableIncreasingIDs(t *testing.T) {
	tbl := NewTable()
	a := tbl.Intern("alpha")
	b := tbl.Intern("beta")
	assert.NotEqual(t, a, b)
	assert.EqualValues(t, 0, a)
	assert.EqualValues(t, 1, b)
}

func TestLookupReturnsInternedString(t *testing.T) {
	tbl := NewTable()
	id := tbl.Intern("gamma")
	s, ok := tbl.Lookup(id)
	require.True(t, ok)
	assert.Equal(t, "gamma", s)
}

func TestLookupUnknownIDFails(t *testing.T) {
	tbl := NewTable()
	_, ok := tbl.Lookup(999)
	assert.False(t, ok)
}

func TestEachIteratesInAssignmentOrder(t *testing.T) {
	tbl := NewTable()
	tbl.Intern("one")
	tbl.Intern("two")
	tbl.Intern("three")

	var got []string
	tbl.Each(func(id idref.StringRef, s string) { got = append(got, s) })
	assert.Equal(t, []string{"one", "two", "three"}, got)
}
