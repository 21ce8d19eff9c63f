/*
config.go - Rule configuration

PURPOSE:
  RuleConfig is the complete ruleset for pricing a worked day: how the
  hourly rate derives from the salary, where the daily overtime thresholds
  sit, which clock hours count as night, which premium percentages apply,
  and whether stacked premiums add or cascade.

DESIGN:
  The configuration is an explicit immutable value threaded through every
  call; there is no ambient or process-wide state. The engine does not
  supply defaults at call sites and does not range-check percentages -
  a 150% overtime premium is a valid input, and a negative one simply
  reduces pay. The single undefined case (monthly salary over zero monthly
  hours) is rejected eagerly by Validate, before any PayRecord is produced.

PREMIUM ACCUMULATION:
  AdditivePremiums true:  each premium applies to the base rate and the
                          results sum. OvertimeNightPct is read as the full
                          combined premium for night overtime hours.
  AdditivePremiums false: premiums cascade - the night premium applies on
                          top of the already-premium-adjusted rate.

SEE ALSO:
  - compute.go: consumes every field here
  - original defaults mirror a 220h/month, 8h/day jurisdiction with 50%
    overtime, 20% night and 100% Sunday/holiday premiums
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// SalaryMode selects how the hourly rate is derived.
type SalaryMode string

const (
	SalaryHourly  SalaryMode = "hourly"  // rate = SalaryAmount
	SalaryMonthly SalaryMode = "monthly" // rate = SalaryAmount / MonthlyHours
)

// RuleConfig holds the jurisdiction rules for one calculation batch.
type RuleConfig struct {
	SalaryMode   SalaryMode
	SalaryAmount decimal.Decimal
	MonthlyHours decimal.Decimal

	// Daily regular-hour thresholds; hours beyond them are overtime.
	RegularDailyHours  decimal.Decimal // Mon-Fri
	SaturdayDailyHours decimal.Decimal

	// Night window as clock hours 0-23; may wrap past midnight.
	NightStartHour int
	NightEndHour   int

	// Premium percentages (0-100 scale, values outside that range allowed).
	OvertimeDayPct   decimal.Decimal
	OvertimeNightPct decimal.Decimal
	SundayHolidayPct decimal.Decimal
	NightPct         decimal.Decimal

	// Night-premium applicability per day-type bucket.
	NightOnWeekday       bool
	NightOnSaturday      bool
	NightOnSundayHoliday bool

	// true: premiums sum. false: premiums compound (cascade).
	AdditivePremiums bool

	// When set, daily thresholds are ignored and every worked hour is
	// overtime-eligible.
	TreatAllAsOvertime bool

	Holidays      DateSet
	FreeSaturdays DateSet
}

// DefaultConfig returns the stock configuration: monthly salary over 220
// hours, 8h weekday / 4h Saturday thresholds, 50% overtime, 20% night,
// 100% Sunday/holiday, night window 22->5, additive premiums, night
// premium on every day type.
func DefaultConfig() RuleConfig {
	return RuleConfig{
		SalaryMode:           SalaryMonthly,
		SalaryAmount:         decimal.Zero,
		MonthlyHours:         decimal.NewFromInt(220),
		RegularDailyHours:    decimal.NewFromInt(8),
		SaturdayDailyHours:   decimal.NewFromInt(4),
		NightStartHour:       22,
		NightEndHour:         5,
		OvertimeDayPct:       decimal.NewFromInt(50),
		OvertimeNightPct:     decimal.NewFromInt(50),
		SundayHolidayPct:     decimal.NewFromInt(100),
		NightPct:             decimal.NewFromInt(20),
		NightOnWeekday:       true,
		NightOnSaturday:      true,
		NightOnSundayHoliday: true,
		AdditivePremiums:     true,
		Holidays:             NewDateSet(),
		FreeSaturdays:        NewDateSet(),
	}
}

// Validate rejects configurations that cannot yield a defined hourly rate.
// It runs before any record is produced, so a bad configuration never
// propagates NaN-like values through the arithmetic.
func (c RuleConfig) Validate() error {
	switch c.SalaryMode {
	case SalaryHourly:
	case SalaryMonthly:
		if c.MonthlyHours.IsZero() {
			return &ConfigError{Field: "MonthlyHours", Reason: "must be non-zero for monthly salary"}
		}
	default:
		return &ConfigError{Field: "SalaryMode", Reason: "must be hourly or monthly"}
	}
	if c.NightStartHour < 0 || c.NightStartHour > 23 {
		return &ConfigError{Field: "NightStartHour", Reason: "must be a clock hour 0-23"}
	}
	if c.NightEndHour < 0 || c.NightEndHour > 23 {
		return &ConfigError{Field: "NightEndHour", Reason: "must be a clock hour 0-23"}
	}
	return nil
}

// HourlyRate derives the base rate from the salary settings.
func (c RuleConfig) HourlyRate() (decimal.Decimal, error) {
	if err := c.Validate(); err != nil {
		return decimal.Zero, err
	}
	if c.SalaryMode == SalaryHourly {
		return c.SalaryAmount, nil
	}
	return c.SalaryAmount.Div(c.MonthlyHours), nil
}

// dailyThreshold returns the regular-hour threshold for a day type.
// Free Saturdays, Sundays and holidays have no regular hours.
func (c RuleConfig) dailyThreshold(dt DayType) decimal.Decimal {
	if c.TreatAllAsOvertime {
		return decimal.Zero
	}
	switch dt {
	case DayWeekday:
		return c.RegularDailyHours
	case DaySaturday:
		return c.SaturdayDailyHours
	default:
		return decimal.Zero
	}
}

// nightPremiumOn returns the applicability flag for a day-type bucket.
// A free Saturday uses the Saturday flag.
func (c RuleConfig) nightPremiumOn(dt DayType) bool {
	switch dt {
	case DayWeekday:
		return c.NightOnWeekday
	case DaySaturday, DayFreeSaturday:
		return c.NightOnSaturday
	default: // sunday, holiday
		return c.NightOnSundayHoliday
	}
}
