package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracefmt/otf2go/idref"
)

func TestTranslateIdentityWhenNoTableInstalled(t *testing.T) {
	c := NewContext()
	got, err := c.Translate(idref.Region, 42)
	require.NoError(t, err)
	assert.EqualValues(t, 42, got)
}

func TestTranslateLooksUpInstalledTable(t *testing.T) {
	c := NewContext()
	c.AddTable(idref.Region, []uint64{1, 2, 3}, []uint64{100, 200, 300})
	got, err := c.Translate(idref.Region, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 200, got)
}

func TestTranslateMissingLocalIDErrors(t *testing.T) {
	c := NewContext()
	c.AddTable(idref.Region, []uint64{1}, []uint64{100})
	_, err := c.Translate(idref.Region, 99)
	var notFound *ErrMappingNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, idref.Region, notFound.Domain)
	assert.EqualValues(t, 99, notFound.Local)
}

func TestTranslateOnlyAppliesToItsOwnDomain(t *testing.T) {
	c := NewContext()
	c.AddTable(idref.Region, []uint64{1}, []uint64{100})
	got, err := c.Translate(idref.Comm, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, got) // Comm has no table, passes through
}

func TestCorrectTimeIdentityWithNoClock(t *testing.T) {
	c := NewContext()
	assert.EqualValues(t, 7, c.CorrectTime(7))
}

func TestCorrectTimeUsesInstalledClock(t *testing.T) {
	c := NewContext()
	c.SetClock(NewClock([]ClockSample{{Time: 0, Offset: 5}}))
	assert.EqualValues(t, 12, c.CorrectTime(7))
}
