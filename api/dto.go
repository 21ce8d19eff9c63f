/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's decimal-typed domain model from the external API contract:
  configuration comes in as plain numbers and date strings, results go out
  as raw decimal strings plus pre-formatted display fields.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.
*/
package api

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/engine"
	"github.com/warp/payroll-engine/format"
	"github.com/warp/payroll-engine/store/sqlite"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// ConfigDTO carries a rule configuration over the wire. Dates are
// "2006-01-02" strings; percentages are on the 0-100 scale.
type ConfigDTO struct {
	SalaryMode         string  `json:"salary_mode"`
	SalaryAmount       float64 `json:"salary_amount"`
	MonthlyHours       float64 `json:"monthly_hours"`
	RegularDailyHours  float64 `json:"regular_daily_hours"`
	SaturdayDailyHours float64 `json:"saturday_daily_hours"`

	NightStartHour int `json:"night_start_hour"`
	NightEndHour   int `json:"night_end_hour"`

	OvertimeDayPct   float64 `json:"overtime_day_pct"`
	OvertimeNightPct float64 `json:"overtime_night_pct"`
	SundayHolidayPct float64 `json:"sunday_holiday_pct"`
	NightPct         float64 `json:"night_pct"`

	NightOnWeekday       bool `json:"night_on_weekday"`
	NightOnSaturday      bool `json:"night_on_saturday"`
	NightOnSundayHoliday bool `json:"night_on_sunday_holiday"`

	AdditivePremiums   bool `json:"additive_premiums"`
	TreatAllAsOvertime bool `json:"treat_all_as_overtime"`

	Holidays      []string `json:"holidays,omitempty"`
	FreeSaturdays []string `json:"free_saturdays,omitempty"`

	// Display currency for formatted amounts: BRL, PYG or USD.
	Currency string `json:"currency,omitempty"`
}

// ToRuleConfig converts the DTO into an engine configuration.
func (d ConfigDTO) ToRuleConfig() (engine.RuleConfig, error) {
	holidays, err := parseDateSet(d.Holidays)
	if err != nil {
		return engine.RuleConfig{}, fmt.Errorf("holidays: %w", err)
	}
	freeSaturdays, err := parseDateSet(d.FreeSaturdays)
	if err != nil {
		return engine.RuleConfig{}, fmt.Errorf("free_saturdays: %w", err)
	}

	return engine.RuleConfig{
		SalaryMode:           engine.SalaryMode(d.SalaryMode),
		SalaryAmount:         decimal.NewFromFloat(d.SalaryAmount),
		MonthlyHours:         decimal.NewFromFloat(d.MonthlyHours),
		RegularDailyHours:    decimal.NewFromFloat(d.RegularDailyHours),
		SaturdayDailyHours:   decimal.NewFromFloat(d.SaturdayDailyHours),
		NightStartHour:       d.NightStartHour,
		NightEndHour:         d.NightEndHour,
		OvertimeDayPct:       decimal.NewFromFloat(d.OvertimeDayPct),
		OvertimeNightPct:     decimal.NewFromFloat(d.OvertimeNightPct),
		SundayHolidayPct:     decimal.NewFromFloat(d.SundayHolidayPct),
		NightPct:             decimal.NewFromFloat(d.NightPct),
		NightOnWeekday:       d.NightOnWeekday,
		NightOnSaturday:      d.NightOnSaturday,
		NightOnSundayHoliday: d.NightOnSundayHoliday,
		AdditivePremiums:     d.AdditivePremiums,
		TreatAllAsOvertime:   d.TreatAllAsOvertime,
		Holidays:             holidays,
		FreeSaturdays:        freeSaturdays,
	}, nil
}

// currency returns the display currency, defaulting to BRL.
func (d ConfigDTO) currency() format.Currency {
	if d.Currency == "" {
		return format.BRL
	}
	return format.Currency(d.Currency)
}

func parseDateSet(dates []string) (engine.DateSet, error) {
	set := engine.NewDateSet()
	for _, s := range dates {
		day, err := time.Parse(dateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q (want %s)", s, dateLayout)
		}
		set.Add(day)
	}
	return set, nil
}

// configDTOFrom serializes an engine configuration for responses.
func configDTOFrom(cfg engine.RuleConfig) ConfigDTO {
	return ConfigDTO{
		SalaryMode:           string(cfg.SalaryMode),
		SalaryAmount:         cfg.SalaryAmount.InexactFloat64(),
		MonthlyHours:         cfg.MonthlyHours.InexactFloat64(),
		RegularDailyHours:    cfg.RegularDailyHours.InexactFloat64(),
		SaturdayDailyHours:   cfg.SaturdayDailyHours.InexactFloat64(),
		NightStartHour:       cfg.NightStartHour,
		NightEndHour:         cfg.NightEndHour,
		OvertimeDayPct:       cfg.OvertimeDayPct.InexactFloat64(),
		OvertimeNightPct:     cfg.OvertimeNightPct.InexactFloat64(),
		SundayHolidayPct:     cfg.SundayHolidayPct.InexactFloat64(),
		NightPct:             cfg.NightPct.InexactFloat64(),
		NightOnWeekday:       cfg.NightOnWeekday,
		NightOnSaturday:      cfg.NightOnSaturday,
		NightOnSundayHoliday: cfg.NightOnSundayHoliday,
		AdditivePremiums:     cfg.AdditivePremiums,
		TreatAllAsOvertime:   cfg.TreatAllAsOvertime,
		Holidays:             sortedKeys(cfg.Holidays),
		FreeSaturdays:        sortedKeys(cfg.FreeSaturdays),
	}
}

func sortedKeys(s engine.DateSet) []string {
	keys := s.Keys()
	sort.Strings(keys)
	return keys
}

// =============================================================================
// CALCULATION
// =============================================================================

// IntervalDTO is a structured alternative to pasted entry text.
type IntervalDTO struct {
	Start string `json:"start"` // "2006-01-02 15:04", local wall clock
	End   string `json:"end"`
}

func (d IntervalDTO) toInterval() (engine.Interval, error) {
	start, err := time.ParseInLocation(dateTimeLayout, d.Start, time.Local)
	if err != nil {
		return engine.Interval{}, fmt.Errorf("invalid start %q (want %s)", d.Start, dateTimeLayout)
	}
	end, err := time.ParseInLocation(dateTimeLayout, d.End, time.Local)
	if err != nil {
		return engine.Interval{}, fmt.Errorf("invalid end %q (want %s)", d.End, dateTimeLayout)
	}
	return engine.NewInterval(start, end), nil
}

// CalculateRequest is the request body for POST /api/calculate. Exactly
// one of Entries (free text, one range per line) or Intervals must be set;
// Intervals wins when both are present.
type CalculateRequest struct {
	Config    ConfigDTO     `json:"config"`
	Entries   string        `json:"entries,omitempty"`
	Intervals []IntervalDTO `json:"intervals,omitempty"`
}

// PayRecordDTO is one priced intra-day interval. Numeric fields are raw
// decimal strings; Display* fields are pre-formatted for the UI.
type PayRecordDTO struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	DayType string `json:"day_type"`

	HoursWorked   string `json:"hours_worked"`
	OvertimeHours string `json:"overtime_hours"`
	NightHours    string `json:"night_hours"`

	RegularPay  string `json:"regular_pay"`
	OvertimePay string `json:"overtime_pay"`
	NightPay    string `json:"night_pay"`
	SundayPay   string `json:"sunday_pay"`
	HolidayPay  string `json:"holiday_pay"`
	TotalPay    string `json:"total_pay"`

	DisplayHours string `json:"display_hours"`
	DisplayTotal string `json:"display_total"`
}

// TotalsDTO summarizes the batch.
type TotalsDTO struct {
	HoursWorked   string `json:"hours_worked"`
	OvertimeHours string `json:"overtime_hours"`
	NightHours    string `json:"night_hours"`

	RegularPay  string `json:"regular_pay"`
	OvertimePay string `json:"overtime_pay"`
	NightPay    string `json:"night_pay"`
	SundayPay   string `json:"sunday_pay"`
	HolidayPay  string `json:"holiday_pay"`
	TotalPay    string `json:"total_pay"`

	DisplayHours    string `json:"display_hours"`
	DisplayOvertime string `json:"display_overtime"`
	DisplayNight    string `json:"display_night"`
	DisplayTotal    string `json:"display_total"`
}

// CalculateResponse is the response body for POST /api/calculate.
type CalculateResponse struct {
	HourlyRate        string         `json:"hourly_rate"`
	DisplayHourlyRate string         `json:"display_hourly_rate"`
	Records           []PayRecordDTO `json:"records"`
	Totals            TotalsDTO      `json:"totals"`
}

func payRecordDTO(r engine.PayRecord, cur format.Currency) PayRecordDTO {
	return PayRecordDTO{
		Start:         r.Interval.Start.Format(dateTimeLayout),
		End:           r.Interval.End.Format(dateTimeLayout),
		DayType:       string(r.DayType),
		HoursWorked:   r.HoursWorked.String(),
		OvertimeHours: r.OvertimeHours.String(),
		NightHours:    r.NightHours.String(),
		RegularPay:    r.RegularPay.String(),
		OvertimePay:   r.OvertimePay.String(),
		NightPay:      r.NightPay.String(),
		SundayPay:     r.SundayPay.String(),
		HolidayPay:    r.HolidayPay.String(),
		TotalPay:      r.TotalPay.String(),
		DisplayHours:  format.Hours(r.HoursWorked),
		DisplayTotal:  format.Money(r.TotalPay, cur),
	}
}

func totalsDTO(t engine.Totals, cur format.Currency) TotalsDTO {
	return TotalsDTO{
		HoursWorked:     t.HoursWorked.String(),
		OvertimeHours:   t.OvertimeHours.String(),
		NightHours:      t.NightHours.String(),
		RegularPay:      t.RegularPay.String(),
		OvertimePay:     t.OvertimePay.String(),
		NightPay:        t.NightPay.String(),
		SundayPay:       t.SundayPay.String(),
		HolidayPay:      t.HolidayPay.String(),
		TotalPay:        t.TotalPay.String(),
		DisplayHours:    format.Hours(t.HoursWorked),
		DisplayOvertime: format.Money(t.OvertimePay, cur),
		DisplayNight:    format.Money(t.NightPay, cur),
		DisplayTotal:    format.Money(t.TotalPay, cur),
	}
}

// =============================================================================
// PRESETS
// =============================================================================

// PresetDTO is a stored rule configuration in API responses.
type PresetDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Config    ConfigDTO `json:"config"`
	CreatedAt string    `json:"created_at,omitempty"`
}

// SavePresetRequest is the request to create a preset.
type SavePresetRequest struct {
	Name   string    `json:"name"`
	Config ConfigDTO `json:"config"`
}

func presetDTO(p sqlite.Preset, cfg ConfigDTO) PresetDTO {
	return PresetDTO{
		ID:        p.ID,
		Name:      p.Name,
		Config:    cfg,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
