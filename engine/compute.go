/*
compute.go - Single-day pay calculator and the batch pipeline

PURPOSE:
  ComputeDay prices one intra-day interval under a RuleConfig; Calculate
  runs the full pipeline over a batch of raw intervals (split at midnight,
  classify each day, compute, aggregate).

HOW A DAY IS PRICED:
  1. Hours above the day-type threshold are overtime; the rest are regular.
  2. Night hours come from the night-window walk (night.go).
  3. Night hours are split between the regular and overtime buckets
     PROPORTIONALLY to the regular/total ratio. This is a heuristic carried
     over from the system this engine reproduces, not a minute-accurate
     allocation. Keep it: an exact first-regular-then-overtime allocation
     would change totals for shifts that straddle the threshold inside the
     night window.
  4. Sundays and holidays skip the regular/overtime split entirely: the
     whole day earns base pay plus the Sunday/holiday premium on every
     hour. Free Saturdays work the same way with a flat 50% premium.
  5. Weekdays and normal Saturdays pay the overtime day-portion at the
     overtime premium and the night-portion per the accumulation policy
     (additive or cascading, see config.go).

ERROR BEHAVIOR:
  Fail fast. An interval with end <= start aborts the batch - there is no
  defined meaning for a skipped record inside an aggregate.
*/
package engine

import "github.com/shopspring/decimal"

// ComputeDay prices a single intra-day interval.
//
// Precondition: iv lies within one calendar day (Split enforces this for
// batch callers). dayType must be the classification of iv's date.
func ComputeDay(iv Interval, dayType DayType, cfg RuleConfig) (PayRecord, error) {
	if !iv.End.After(iv.Start) {
		return PayRecord{}, &IntervalError{Start: iv.Start, End: iv.End}
	}
	rate, err := cfg.HourlyRate()
	if err != nil {
		return PayRecord{}, err
	}

	hoursWorked := iv.Hours()

	// Overtime split against the day-type threshold.
	threshold := cfg.dailyThreshold(dayType)
	overtimeHours := hoursWorked.Sub(threshold)
	if overtimeHours.IsNegative() {
		overtimeHours = decimal.Zero
	}
	regularHours := hoursWorked.Sub(overtimeHours)

	nightHours := NightHours(iv, cfg.NightStartHour, cfg.NightEndHour)

	// Proportional night split between the regular and overtime buckets.
	// Guard the ratio: hoursWorked is positive here, but regularHours may
	// be zero (zero threshold day types).
	nightRegular := decimal.Zero
	if regularHours.IsPositive() && hoursWorked.IsPositive() {
		share := regularHours.Mul(nightHours).Div(hoursWorked)
		nightRegular = share
		if nightHours.LessThan(share) {
			nightRegular = nightHours
		}
	}
	nightOvertime := nightHours.Sub(nightRegular)

	applyNight := cfg.nightPremiumOn(dayType)

	var regularPay, overtimePay, nightPay, sundayPay, holidayPay decimal.Decimal

	switch dayType {
	case DaySunday, DayHoliday:
		// The whole day earns base pay plus the premium on every hour; no
		// regular/overtime split applies.
		regularPay = hoursWorked.Mul(rate)
		premium := hoursWorked.Mul(rate).Mul(cfg.SundayHolidayPct).Div(decHundred)
		overtimePay = premium
		if dayType == DaySunday {
			sundayPay = premium
		} else {
			holidayPay = premium
		}
		if applyNight && nightHours.IsPositive() {
			if cfg.AdditivePremiums {
				nightPay = nightHours.Mul(rate).Mul(cfg.NightPct).Div(decHundred)
			} else {
				// Cascade: night premium on the premium-adjusted rate.
				adjusted := rate.Mul(decOne.Add(cfg.SundayHolidayPct.Div(decHundred)))
				nightPay = nightHours.Mul(adjusted).Mul(cfg.NightPct).Div(decHundred)
			}
		}

	case DayFreeSaturday:
		// Flat 50% on all hours, not configurable.
		regularPay = hoursWorked.Mul(rate)
		overtimePay = hoursWorked.Mul(rate).Mul(decHalf)
		if applyNight && nightHours.IsPositive() {
			if cfg.AdditivePremiums {
				nightPay = nightHours.Mul(rate).Mul(cfg.NightPct).Div(decHundred)
			} else {
				adjusted := rate.Mul(decOne.Add(decHalf))
				nightPay = nightHours.Mul(adjusted).Mul(cfg.NightPct).Div(decHundred)
			}
		}

	case DayWeekday, DaySaturday:
		// Regular hours at base rate; the night premium on the regular
		// bucket is tracked separately in nightPay.
		regularPay = regularHours.Mul(rate)
		if applyNight {
			nightPay = nightRegular.Mul(rate).Mul(cfg.NightPct).Div(decHundred)
		}

		// Overtime day-portion.
		dayOvertime := overtimeHours.Sub(nightOvertime)
		overtimePay = dayOvertime.Mul(rate).Mul(decOne.Add(cfg.OvertimeDayPct.Div(decHundred)))

		// Overtime night-portion, per accumulation policy.
		if cfg.AdditivePremiums {
			// OvertimeNightPct already represents the full combined premium.
			overtimePay = overtimePay.Add(
				nightOvertime.Mul(rate).Mul(decOne.Add(cfg.OvertimeNightPct.Div(decHundred))))
		} else {
			hourValue := nightOvertime.Mul(rate).Mul(decOne.Add(cfg.OvertimeNightPct.Div(decHundred)))
			overtimePay = overtimePay.Add(hourValue)
			if applyNight {
				nightPay = nightPay.Add(hourValue.Mul(cfg.NightPct).Div(decHundred))
			}
		}
	}

	totalPay := regularPay.Add(overtimePay).Add(nightPay)

	return PayRecord{
		Interval:      iv,
		DayType:       dayType,
		HoursWorked:   hoursWorked,
		OvertimeHours: overtimeHours,
		NightHours:    nightHours,
		RegularPay:    regularPay,
		OvertimePay:   overtimePay,
		NightPay:      nightPay,
		SundayPay:     sundayPay,
		HolidayPay:    holidayPay,
		TotalPay:      totalPay,
	}, nil
}

// Calculate runs the full pipeline over a batch of raw intervals: split
// each at midnight, classify every sub-interval's date, price it, and sum
// the results. The first malformed interval or configuration problem
// aborts the batch with no partial output.
func Calculate(intervals []Interval, cfg RuleConfig) ([]PayRecord, Totals, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Totals{}, err
	}

	var records []PayRecord
	for _, iv := range intervals {
		if !iv.End.After(iv.Start) {
			return nil, Totals{}, &IntervalError{Start: iv.Start, End: iv.End}
		}
		for _, day := range Split(iv) {
			dt := Classify(day.Start, cfg.Holidays, cfg.FreeSaturdays)
			rec, err := ComputeDay(day, dt, cfg)
			if err != nil {
				return nil, Totals{}, err
			}
			records = append(records, rec)
		}
	}

	return records, Aggregate(records), nil
}
