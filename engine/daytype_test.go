package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/payroll-engine/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

// =============================================================================
// DAY CLASSIFICATION
// =============================================================================

func TestClassify_PlainDates(t *testing.T) {
	none := engine.NewDateSet()

	// 2024-01-16 is a Tuesday, 2024-01-20 a Saturday, 2024-01-21 a Sunday.
	assert.Equal(t, engine.DayWeekday, engine.Classify(date(2024, time.January, 16), none, none))
	assert.Equal(t, engine.DaySaturday, engine.Classify(date(2024, time.January, 20), none, none))
	assert.Equal(t, engine.DaySunday, engine.Classify(date(2024, time.January, 21), none, none))
}

func TestClassify_HolidayOverridesSunday(t *testing.T) {
	// GIVEN: A date that is both a Sunday and a listed holiday
	// WHEN: Classifying it
	// THEN: The holiday set wins (checked before the weekday)
	sunday := date(2024, time.January, 21)
	holidays := engine.NewDateSet(sunday)

	got := engine.Classify(sunday, holidays, engine.NewDateSet())
	assert.Equal(t, engine.DayHoliday, got)
}

func TestClassify_FreeSaturday(t *testing.T) {
	saturday := date(2024, time.January, 20)
	free := engine.NewDateSet(saturday)

	assert.Equal(t, engine.DayFreeSaturday, engine.Classify(saturday, engine.NewDateSet(), free))

	// A Saturday not in the free set stays a normal Saturday.
	other := date(2024, time.January, 27)
	assert.Equal(t, engine.DaySaturday, engine.Classify(other, engine.NewDateSet(), free))
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	// Membership is by calendar date; a holiday listed at midnight matches
	// a timestamp later in the day.
	holidays := engine.NewDateSet(date(2024, time.December, 25))

	evening := at(2024, time.December, 25, 23, 30)
	assert.Equal(t, engine.DayHoliday, engine.Classify(evening, holidays, nil))
}

func TestClassify_NilSetsAreEmpty(t *testing.T) {
	assert.Equal(t, engine.DayWeekday, engine.Classify(date(2024, time.January, 16), nil, nil))
}
