package engine

import "time"

// Split decomposes an interval into one sub-interval per calendar day,
// partitioned at every midnight strictly between start and end. The result
// is chronological, contiguous, and covers the input exactly: no gaps, no
// overlaps. A same-day interval comes back as a single element equal to
// the input.
//
// Upstream parsing guarantees start < end; a degenerate interval is not
// expected here and would come back unchanged.
func Split(iv Interval) []Interval {
	if iv.SameDay() {
		return []Interval{iv}
	}

	var parts []Interval
	cur := iv.Start
	for {
		dayEnd := nextMidnight(cur)
		if !dayEnd.Before(iv.End) {
			parts = append(parts, Interval{Start: cur, End: iv.End})
			return parts
		}
		parts = append(parts, Interval{Start: cur, End: dayEnd})
		cur = dayEnd
	}
}

func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
