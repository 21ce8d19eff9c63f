package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/payroll-engine/api"
	"github.com/warp/payroll-engine/store/sqlite"
)

func newTestServer(t *testing.T) *httptest.Server {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	router := api.NewRouter(api.NewHandler(store), []string{"*"})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func hourlyConfigDTO() api.ConfigDTO {
	return api.ConfigDTO{
		SalaryMode:           "hourly",
		SalaryAmount:         10,
		RegularDailyHours:    8,
		SaturdayDailyHours:   4,
		NightStartHour:       22,
		NightEndHour:         5,
		OvertimeDayPct:       50,
		OvertimeNightPct:     50,
		SundayHolidayPct:     100,
		NightPct:             20,
		NightOnWeekday:       true,
		NightOnSaturday:      true,
		NightOnSundayHoliday: true,
		AdditivePremiums:     true,
	}
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// =============================================================================
// CALCULATE
// =============================================================================

func TestCalculate_FromEntriesText(t *testing.T) {
	// GIVEN: A plain 8h Tuesday at 10/h pasted as free text
	// THEN: 80 total, no overtime, no night
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/calculate", api.CalculateRequest{
		Config:  hourlyConfigDTO(),
		Entries: "2024-01-16 09:00 - 17:00",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.CalculateResponse](t, resp)
	require.Len(t, out.Records, 1)
	assert.Equal(t, "weekday", out.Records[0].DayType)
	assert.Equal(t, "80", out.Records[0].TotalPay)
	assert.Equal(t, "80", out.Totals.TotalPay)
	assert.Equal(t, "8h00min", out.Totals.DisplayHours)
	assert.Equal(t, "R$ 80,00", out.Totals.DisplayTotal)
	assert.Equal(t, "10", out.HourlyRate)
}

func TestCalculate_MidnightCrossing_SplitsRecords(t *testing.T) {
	// Saturday 22:00 -> Sunday 02:00 yields one Saturday and one Sunday
	// record through the whole HTTP stack.
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/calculate", api.CalculateRequest{
		Config: hourlyConfigDTO(),
		Intervals: []api.IntervalDTO{
			{Start: "2024-01-20 22:00", End: "2024-01-21 02:00"},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.CalculateResponse](t, resp)
	require.Len(t, out.Records, 2)
	assert.Equal(t, "saturday", out.Records[0].DayType)
	assert.Equal(t, "sunday", out.Records[1].DayType)
	assert.Equal(t, "4", out.Totals.HoursWorked)
	assert.Equal(t, "68", out.Totals.TotalPay)
}

func TestCalculate_CurrencySelection(t *testing.T) {
	srv := newTestServer(t)

	cfg := hourlyConfigDTO()
	cfg.Currency = "PYG"
	resp := postJSON(t, srv.URL+"/api/calculate", api.CalculateRequest{
		Config:  cfg,
		Entries: "2024-01-16 09:00 - 17:00",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[api.CalculateResponse](t, resp)
	assert.Equal(t, "₲ 80", out.Totals.DisplayTotal)
}

func TestCalculate_BadEntryLine_Returns400(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/calculate", api.CalculateRequest{
		Config:  hourlyConfigDTO(),
		Entries: "2024-01-16 09:00 - 17:00\nnot a shift",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decode[api.ErrorResponse](t, resp)
	assert.Contains(t, out.Detail, "line 2")
}

func TestCalculate_InvalidConfig_Returns400(t *testing.T) {
	srv := newTestServer(t)

	cfg := hourlyConfigDTO()
	cfg.SalaryMode = "monthly"
	cfg.MonthlyHours = 0
	resp := postJSON(t, srv.URL+"/api/calculate", api.CalculateRequest{
		Config:  cfg,
		Entries: "2024-01-16 09:00 - 17:00",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestCalculate_NoInput_Returns400(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/calculate", api.CalculateRequest{
		Config: hourlyConfigDTO(),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// =============================================================================
// CONFIG + PRESETS
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/config/default")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cfg := decode[api.ConfigDTO](t, resp)
	assert.Equal(t, "monthly", cfg.SalaryMode)
	assert.Equal(t, float64(220), cfg.MonthlyHours)
	assert.Equal(t, 22, cfg.NightStartHour)
	assert.True(t, cfg.AdditivePremiums)
}

func TestPresets_Lifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Create
	cfg := hourlyConfigDTO()
	cfg.Holidays = []string{"2024-12-25"}
	resp := postJSON(t, srv.URL+"/api/presets", api.SavePresetRequest{
		Name:   "Night crew",
		Config: cfg,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[api.PresetDTO](t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Night crew", created.Name)

	// Get
	resp, err := http.Get(srv.URL + "/api/presets/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[api.PresetDTO](t, resp)
	assert.Equal(t, []string{"2024-12-25"}, got.Config.Holidays)

	// List
	resp, err = http.Get(srv.URL + "/api/presets")
	require.NoError(t, err)
	list := decode[[]api.PresetDTO](t, resp)
	require.Len(t, list, 1)

	// Delete
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/presets/"+created.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Gone
	resp, err = http.Get(srv.URL + "/api/presets/" + created.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestPresets_InvalidConfigRejected(t *testing.T) {
	srv := newTestServer(t)

	cfg := hourlyConfigDTO()
	cfg.NightStartHour = 24
	resp := postJSON(t, srv.URL+"/api/presets", api.SavePresetRequest{Name: "bad", Config: cfg})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
