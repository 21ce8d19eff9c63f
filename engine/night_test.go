package engine_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/payroll-engine/engine"
)

func hrs(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// =============================================================================
// NIGHT-HOUR PREDICATE
// =============================================================================

func TestIsNightHour_WrappingWindow(t *testing.T) {
	// Window 22 -> 6 wraps midnight: [22,24) and [0,6).
	assert.True(t, engine.IsNightHour(23, 22, 6))
	assert.True(t, engine.IsNightHour(5, 22, 6))
	assert.True(t, engine.IsNightHour(0, 22, 6))
	assert.False(t, engine.IsNightHour(6, 22, 6))
	assert.False(t, engine.IsNightHour(12, 22, 6))
}

func TestIsNightHour_NonWrappingWindow(t *testing.T) {
	// Window 0 -> 6 stays inside one day.
	assert.True(t, engine.IsNightHour(0, 0, 6))
	assert.False(t, engine.IsNightHour(6, 0, 6))
	assert.False(t, engine.IsNightHour(23, 0, 6))
}

// =============================================================================
// NIGHT OVERLAP
// =============================================================================

func TestNightHours_FullyInsideWindow(t *testing.T) {
	// GIVEN: 22:00-24:00 with a 22->5 window
	// THEN: Both hours are night
	iv := engine.NewInterval(at(2024, time.January, 20, 22, 0), at(2024, time.January, 21, 0, 0))
	got := engine.NightHours(iv, 22, 5)
	assert.True(t, got.Equal(hrs(2)), "want 2h night, got %s", got)
}

func TestNightHours_DaytimeShiftHasNone(t *testing.T) {
	iv := engine.NewInterval(at(2024, time.January, 16, 9, 0), at(2024, time.January, 16, 17, 0))
	assert.True(t, engine.NightHours(iv, 22, 5).IsZero())
}

func TestNightHours_StartAnchoredStepping(t *testing.T) {
	// GIVEN: A 21:30-23:30 shift against a 22->5 window
	// WHEN: Walking in hour steps anchored at 21:30
	// THEN: The 21:30 step reads clock hour 21 (day) and the 22:30 step
	//       reads hour 22 (night), so exactly 1h counts - not the 1.5h an
	//       edge-exact overlap would give. This mirrors the stepping rule
	//       the engine must reproduce.
	iv := engine.NewInterval(at(2024, time.January, 16, 21, 30), at(2024, time.January, 16, 23, 30))
	got := engine.NightHours(iv, 22, 5)
	assert.True(t, got.Equal(hrs(1)), "want 1h night, got %s", got)
}

func TestNightHours_PartialFinalStep(t *testing.T) {
	// 23:00-23:45 inside the window: final step is clipped to 45 minutes.
	iv := engine.NewInterval(at(2024, time.January, 16, 23, 0), at(2024, time.January, 16, 23, 45))
	got := engine.NightHours(iv, 22, 5)
	assert.True(t, got.Equal(hrs(0.75)), "want 0.75h night, got %s", got)
}

func TestNightHours_EarlyMorningTail(t *testing.T) {
	// 03:00-07:00 against 22->5: hours 3 and 4 are night, 5 and 6 are not.
	iv := engine.NewInterval(at(2024, time.January, 17, 3, 0), at(2024, time.January, 17, 7, 0))
	got := engine.NightHours(iv, 22, 5)
	assert.True(t, got.Equal(hrs(2)), "want 2h night, got %s", got)
}
