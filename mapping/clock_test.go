package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockZeroSamplesPassesThrough(t *testing.T) {
	c := NewClock(nil)
	assert.EqualValues(t, 100, c.Correct(100))
}

func TestClockSingleSampleAppliesConstantOffset(t *testing.T) {
	c := NewClock([]ClockSample{{Time: 50, Offset: 10}})
	assert.EqualValues(t, 110, c.Correct(100))
	assert.EqualValues(t, 10, c.Correct(0))
}

func TestClockExactSampleMatch(t *testing.T) {
	c := NewClock([]ClockSample{
		{Time: 0, Offset: 0},
		{Time: 100, Offset: 20},
		{Time: 200, Offset: 50},
	})
	assert.EqualValues(t, 120, c.Correct(100))
}

func TestClockInterpolatesBetweenBracketingSamples(t *testing.T) {
	c := NewClock([]ClockSample{
		{Time: 0, Offset: 0},
		{Time: 100, Offset: 100},
	})
	// offset at local=50 interpolates to 50 (halfway between 0 and 100).
	assert.EqualValues(t, 100, c.Correct(50))
}

func TestClockClampsBeforeFirstSample(t *testing.T) {
	c := NewClock([]ClockSample{
		{Time: 100, Offset: 10},
		{Time: 200, Offset: 20},
	})
	// local=0 is before the first sample: clamp to the first sample's
	// offset rather than extrapolating (spec.md §4.5 rule b).
	assert.EqualValues(t, 10, c.Correct(0))
}

func TestClockClampsAfterLastSample(t *testing.T) {
	c := NewClock([]ClockSample{
		{Time: 0, Offset: 0},
		{Time: 100, Offset: 10},
	})
	// local=200 is after the last sample: clamp to the last sample's
	// offset rather than extrapolating (spec.md §4.5 rule c).
	assert.EqualValues(t, 210, c.Correct(200))
}
