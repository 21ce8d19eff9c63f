package engine

import "time"

// =============================================================================
// DATE SET - Date-only membership (holidays, free Saturdays)
// =============================================================================

// DateSet holds calendar dates keyed by year/month/day. Time-of-day is
// ignored on both insert and lookup.
type DateSet map[string]struct{}

const dateKeyLayout = "2006-01-02"

func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d.Format(dateKeyLayout)] = struct{}{}
	}
	return s
}

func (s DateSet) Contains(date time.Time) bool {
	if s == nil {
		return false
	}
	_, ok := s[date.Format(dateKeyLayout)]
	return ok
}

func (s DateSet) Add(date time.Time) {
	s[date.Format(dateKeyLayout)] = struct{}{}
}

// Keys returns the dates as "2006-01-02" strings in unspecified order.
func (s DateSet) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// =============================================================================
// DAY CLASSIFIER
// =============================================================================

// Classify maps a calendar date to its DayType. Pure and total.
//
// Priority: holiday > sunday > free-saturday > saturday > weekday. The
// holiday set is checked first, so a holiday that falls on a Sunday still
// classifies as holiday. Classification depends only on the date, never on
// the hours worked.
func Classify(date time.Time, holidays, freeSaturdays DateSet) DayType {
	if holidays.Contains(date) {
		return DayHoliday
	}
	switch date.Weekday() {
	case time.Sunday:
		return DaySunday
	case time.Saturday:
		if freeSaturdays.Contains(date) {
			return DayFreeSaturday
		}
		return DaySaturday
	default:
		return DayWeekday
	}
}
