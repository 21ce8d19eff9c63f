/*
Package engine computes payroll amounts for hourly and shift workers.

PURPOSE:
  This package contains the pure pay-calculation core: classify a calendar
  date, split work intervals at midnight, measure night-window overlap, and
  price a single day's work under configurable overtime, night-shift and
  Sunday/holiday premium rules. Everything here is arithmetic over immutable
  inputs; parsing, persistence and display live in sibling packages.

KEY CONCEPTS IN THIS FILE (types.go):
  - Interval: an ordered (start, end) pair of wall-clock instants
  - DayType: closed classification of a calendar date
  - PayRecord: fully itemized pay for one intra-day interval
  - Totals: componentwise sums over a batch of records

DESIGN PRINCIPLES:
  1. Immutability: records are built once and never mutated
  2. Precision: decimal.Decimal for hours, rates and money
  3. Purity: no state is retained between calls; same inputs,
     bit-identical outputs
  4. Fail fast: a malformed interval aborts the whole batch

PIPELINE:
  intervals -> Split -> Classify (per day) -> ComputeDay -> Aggregate

SEE ALSO:
  - config.go: RuleConfig, the ruleset threaded through every call
  - compute.go: single-day calculator and the Calculate batch pipeline
  - night.go: night-window overlap
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shared decimal constants. Premium percentages divide by 100 everywhere.
var (
	decOne     = decimal.NewFromInt(1)
	decHundred = decimal.NewFromInt(100)
	decHalf    = decimal.New(5, -1) // flat free-Saturday premium: 50%
)

// =============================================================================
// INTERVAL - One worked time range
// =============================================================================

// Interval is an ordered pair of wall-clock instants. The upstream parser
// guarantees End is after Start (rolling End to the next day when needed);
// the engine only re-checks this where the invariant matters.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration { return iv.End.Sub(iv.Start) }

// Hours returns the interval length in fractional hours.
func (iv Interval) Hours() decimal.Decimal {
	return hoursOf(iv.Duration())
}

// SameDay reports whether start and end share a calendar date.
// Time-of-day is ignored; only year/month/day are compared.
func (iv Interval) SameDay() bool {
	return sameDate(iv.Start, iv.End)
}

func (iv Interval) String() string {
	return iv.Start.Format("2006-01-02 15:04") + " -> " + iv.End.Format("2006-01-02 15:04")
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// hoursOf converts a duration to decimal hours via milliseconds, keeping
// minute-granular inputs exact (8h30min -> 8.5).
func hoursOf(d time.Duration) decimal.Decimal {
	return decimal.New(d.Milliseconds(), 0).Div(decimal.New(3600000, 0))
}

// =============================================================================
// DAY TYPE - Mutually exclusive date classification
// =============================================================================

// DayType classifies a calendar date and selects which pay rules apply.
// The set is closed: ComputeDay switches exhaustively over it, so adding a
// day type forces an update everywhere it matters.
type DayType string

const (
	DayWeekday      DayType = "weekday"
	DaySaturday     DayType = "saturday"
	DayFreeSaturday DayType = "free_saturday"
	DaySunday       DayType = "sunday"
	DayHoliday      DayType = "holiday"
)

// =============================================================================
// PAY RECORD - Itemized output, one per intra-day interval
// =============================================================================

// PayRecord is the priced result for one intra-day interval.
//
// TotalPay = RegularPay + OvertimePay + NightPay. SundayPay and HolidayPay
// are labeled subsets of OvertimePay (the day-type premium), never
// additional terms.
type PayRecord struct {
	Interval Interval
	DayType  DayType

	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
	NightHours    decimal.Decimal

	RegularPay  decimal.Decimal
	OvertimePay decimal.Decimal
	NightPay    decimal.Decimal
	SundayPay   decimal.Decimal
	HolidayPay  decimal.Decimal
	TotalPay    decimal.Decimal
}

// =============================================================================
// TOTALS - Componentwise sums for a batch
// =============================================================================

// Totals is the componentwise sum over a batch of PayRecords. The zero
// value is the identity; Add is commutative and associative, so a batch may
// be summed in any order or partition.
type Totals struct {
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
	NightHours    decimal.Decimal

	RegularPay  decimal.Decimal
	OvertimePay decimal.Decimal
	NightPay    decimal.Decimal
	SundayPay   decimal.Decimal
	HolidayPay  decimal.Decimal
	TotalPay    decimal.Decimal
}

// Add returns the totals with one record folded in.
func (t Totals) Add(r PayRecord) Totals {
	return Totals{
		HoursWorked:   t.HoursWorked.Add(r.HoursWorked),
		OvertimeHours: t.OvertimeHours.Add(r.OvertimeHours),
		NightHours:    t.NightHours.Add(r.NightHours),
		RegularPay:    t.RegularPay.Add(r.RegularPay),
		OvertimePay:   t.OvertimePay.Add(r.OvertimePay),
		NightPay:      t.NightPay.Add(r.NightPay),
		SundayPay:     t.SundayPay.Add(r.SundayPay),
		HolidayPay:    t.HolidayPay.Add(r.HolidayPay),
		TotalPay:      t.TotalPay.Add(r.TotalPay),
	}
}

// Merge combines two totals componentwise.
func (t Totals) Merge(o Totals) Totals {
	return Totals{
		HoursWorked:   t.HoursWorked.Add(o.HoursWorked),
		OvertimeHours: t.OvertimeHours.Add(o.OvertimeHours),
		NightHours:    t.NightHours.Add(o.NightHours),
		RegularPay:    t.RegularPay.Add(o.RegularPay),
		OvertimePay:   t.OvertimePay.Add(o.OvertimePay),
		NightPay:      t.NightPay.Add(o.NightPay),
		SundayPay:     t.SundayPay.Add(o.SundayPay),
		HolidayPay:    t.HolidayPay.Add(o.HolidayPay),
		TotalPay:      t.TotalPay.Add(o.TotalPay),
	}
}
