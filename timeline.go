package ledgerdocs

import (
	"github.com/etnz/ledgerdocs/date"
)

// OffsetRange is a uniform integer range of days to step back from an
// anchor date.
type OffsetRange struct {
	Min, Max int
}

// DeriveTimeline generates chronologically ordered synthetic dates around
// an anchor. Each offset is sampled uniformly from its range with the
// record-scoped generator and subtracted from the anchor, so ranges are
// given furthest-back first: a purchase order drawn from U(10,20) days
// before the anchor precedes a receipt drawn from U(2,5) days before it.
//
// Ranges must not overlap in the sampled direction (each range's Min at
// least the next range's Max); a violation returns a TimelineOrderError
// instead of silently producing out-of-order dates.
func DeriveTimeline(anchor date.Date, ranges []OffsetRange, synth *Synth) ([]date.Date, error) {
	for i, r := range ranges {
		if r.Min < 0 || r.Max < r.Min {
			return nil, &TimelineOrderError{Index: i}
		}
		if i+1 < len(ranges) && r.Min < ranges[i+1].Max {
			return nil, &TimelineOrderError{Index: i}
		}
	}

	dates := make([]date.Date, len(ranges))
	for i, r := range ranges {
		dates[i] = anchor.Add(-synth.IntBetween(r.Min, r.Max))
	}
	return dates, nil
}

// DaysRemaining computes the days left between the last known date and the
// end of the period. An accrual row is projected only when the result is
// positive.
func DaysRemaining(periodEnd, last date.Date) int {
	return periodEnd.Sub(last)
}
