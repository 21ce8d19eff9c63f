/*
night.go - Night-window overlap

PURPOSE:
  Measures how much of a worked interval falls inside the configured night
  window. The window is a pair of clock hours and may wrap past midnight
  (22 -> 5 covers [22,24) and [0,5)).

ALGORITHM:
  Walk the interval in one-hour steps anchored at its start. Each stepped
  sub-segment is classified entirely by the clock hour it starts in, even
  when the step begins mid-minute; sub-segments are never split at a window
  edge. A shift starting 21:30 against a 22->5 window therefore counts
  22:30-23:30 as its first night hour, not 22:00-23:30. This start-anchored
  stepping is deliberate and must not be "improved" to edge-exact overlap;
  downstream premium math depends on it.

PRECONDITION:
  The interval lies within a single calendar day. Callers split at midnight
  first (split.go), so the walk is bounded by 24 steps.
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// IsNightHour reports whether a clock hour falls inside the night window
// [nightStart, nightEnd). A window with nightStart > nightEnd wraps
// midnight and covers [nightStart,24) plus [0,nightEnd).
func IsNightHour(hour, nightStart, nightEnd int) bool {
	if nightStart > nightEnd {
		return hour >= nightStart || hour < nightEnd
	}
	return hour >= nightStart && hour < nightEnd
}

// NightHours returns the duration of iv, in fractional hours, that falls
// inside the night window.
func NightHours(iv Interval, nightStart, nightEnd int) decimal.Decimal {
	night := decimal.Zero
	for cur := iv.Start; cur.Before(iv.End); {
		next := cur.Add(time.Hour)
		if IsNightHour(cur.Hour(), nightStart, nightEnd) {
			segEnd := next
			if iv.End.Before(segEnd) {
				segEnd = iv.End
			}
			night = night.Add(hoursOf(segEnd.Sub(cur)))
		}
		cur = next
	}
	return night
}
