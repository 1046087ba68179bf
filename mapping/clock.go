package mapping

import "sort"

// ClockSample is one point on a location's clock-offset curve: at local
// time Time, the location's clock read Offset ticks away from the
// archive's global clock (record.ClockOffset, spec.md §4.5).
type ClockSample struct {
	Time   uint64
	Offset int64
}

// Clock converts a location's local timestamps to global ticks by
// piecewise-linear interpolation over its recorded offset samples
// (spec.md §4.5). Samples must be supplied in ascending Time order.
type Clock struct {
	samples []ClockSample
}

// NewClock builds a Clock from samples already in ascending Time order.
func NewClock(samples []ClockSample) *Clock {
	return &Clock{samples: samples}
}

// Correct returns local + the interpolated offset at local. With zero
// samples, local passes through unchanged.
func (c *Clock) Correct(local uint64) uint64 {
	n := len(c.samples)
	switch {
	case n == 0:
		return local
	case n == 1:
		return applyOffset(local, c.samples[0].Offset)
	}

	// i is the first sample with Time >= local.
	i := sort.Search(n, func(i int) bool { return c.samples[i].Time >= local })

	switch {
	case i == 0:
		// Before the first sample: clamp to its offset (spec.md §4.5 rule b).
		return applyOffset(local, c.samples[0].Offset)
	case i == n:
		// After the last sample: clamp to its offset (spec.md §4.5 rule c).
		return applyOffset(local, c.samples[n-1].Offset)
	case c.samples[i].Time == local:
		return applyOffset(local, c.samples[i].Offset)
	default:
		return applyOffset(local, interpolate(c.samples[i-1], c.samples[i], local))
	}
}

func applyOffset(local uint64, offset int64) uint64 {
	return uint64(int64(local) + offset)
}

// interpolate returns the linearly interpolated offset at t, bracketed by
// a and b (a.Time < t < b.Time).
func interpolate(a, b ClockSample, t uint64) int64 {
	span := float64(b.Time - a.Time)
	if span == 0 {
		return a.Offset
	}
	frac := float64(t-a.Time) / span
	delta := float64(b.Offset - a.Offset)
	return a.Offset + int64(frac*delta)
}
