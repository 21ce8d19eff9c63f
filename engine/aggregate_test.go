package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/engine"
)

func TestAggregate_EmptyIsZero(t *testing.T) {
	totals := engine.Aggregate(nil)
	assert.True(t, totals.TotalPay.IsZero())
	assert.True(t, totals.HoursWorked.IsZero())
}

func TestAggregate_PartitionAdditivity(t *testing.T) {
	// GIVEN: A batch of records across several day types
	// WHEN: Aggregating the whole batch vs merging aggregates of any split
	// THEN: The results match componentwise
	intervals := []engine.Interval{
		engine.NewInterval(at(2024, time.January, 16, 9, 0), at(2024, time.January, 16, 18, 30)),
		engine.NewInterval(at(2024, time.January, 20, 22, 0), at(2024, time.January, 21, 2, 0)),
		engine.NewInterval(at(2024, time.January, 22, 21, 15), at(2024, time.January, 23, 6, 0)),
	}
	records, whole, err := engine.Calculate(intervals, baseConfig())
	require.NoError(t, err)
	require.True(t, len(records) >= 4)

	for cut := 0; cut <= len(records); cut++ {
		left := engine.Aggregate(records[:cut])
		right := engine.Aggregate(records[cut:])
		merged := left.Merge(right)

		assert.True(t, merged.TotalPay.Equal(whole.TotalPay), "cut %d: total pay", cut)
		assert.True(t, merged.HoursWorked.Equal(whole.HoursWorked), "cut %d: hours", cut)
		assert.True(t, merged.NightPay.Equal(whole.NightPay), "cut %d: night pay", cut)
		assert.True(t, merged.OvertimePay.Equal(whole.OvertimePay), "cut %d: overtime pay", cut)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	intervals := []engine.Interval{
		engine.NewInterval(at(2024, time.January, 16, 9, 0), at(2024, time.January, 16, 17, 0)),
		engine.NewInterval(at(2024, time.January, 21, 9, 0), at(2024, time.January, 21, 13, 0)),
	}
	records, _, err := engine.Calculate(intervals, baseConfig())
	require.NoError(t, err)
	require.Len(t, records, 2)

	forward := engine.Aggregate(records)
	reversed := engine.Aggregate([]engine.PayRecord{records[1], records[0]})
	assert.True(t, forward.TotalPay.Equal(reversed.TotalPay))
	assert.True(t, forward.SundayPay.Equal(reversed.SundayPay))
}
