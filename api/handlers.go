/*
handlers.go - HTTP handlers

PURPOSE:
  Implements the API endpoints: run a calculation over pasted entries or
  structured intervals, expose the default rule configuration, and manage
  stored presets.

HANDLER PATTERN:
  1. Parse/validate request
  2. Call domain logic (parse, engine, store)
  3. Serialize response
  4. Map errors to status codes

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: unparseable entries, invalid configuration, malformed intervals
  - 404: preset not found
  - 500: storage failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warp/payroll-engine/engine"
	"github.com/warp/payroll-engine/format"
	"github.com/warp/payroll-engine/parse"
	"github.com/warp/payroll-engine/store/sqlite"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// CALCULATION
// =============================================================================

// Calculate prices a batch of worked intervals under the supplied rules.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cfg, err := req.Config.ToRuleConfig()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid configuration", err)
		return
	}

	intervals, err := h.collectIntervals(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entries", err)
		return
	}

	records, totals, err := engine.Calculate(intervals, cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if engine.IsClientError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, "Calculation failed", err)
		return
	}

	rate, err := cfg.HourlyRate()
	if err != nil {
		// Calculate validated the config already; this cannot fail here.
		writeError(w, http.StatusInternalServerError, "Calculation failed", err)
		return
	}

	cur := req.Config.currency()
	resp := CalculateResponse{
		HourlyRate:        rate.String(),
		DisplayHourlyRate: format.Money(rate, cur),
		Records:           make([]PayRecordDTO, len(records)),
		Totals:            totalsDTO(totals, cur),
	}
	for i, rec := range records {
		resp.Records[i] = payRecordDTO(rec, cur)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) collectIntervals(req CalculateRequest) ([]engine.Interval, error) {
	if len(req.Intervals) > 0 {
		intervals := make([]engine.Interval, len(req.Intervals))
		for i, dto := range req.Intervals {
			iv, err := dto.toInterval()
			if err != nil {
				return nil, err
			}
			intervals[i] = iv
		}
		return intervals, nil
	}
	if strings.TrimSpace(req.Entries) != "" {
		return parse.ParseText(req.Entries)
	}
	return nil, errors.New("either entries text or intervals must be provided")
}

// DefaultConfig returns the stock rule configuration.
func (h *Handler) DefaultConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, configDTOFrom(engine.DefaultConfig()))
}

// =============================================================================
// PRESETS
// =============================================================================

// ListPresets returns all stored presets.
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := h.Store.ListPresets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list presets", err)
		return
	}

	dtos := make([]PresetDTO, 0, len(presets))
	for _, p := range presets {
		var cfg ConfigDTO
		if err := json.Unmarshal([]byte(p.ConfigJSON), &cfg); err != nil {
			continue // Skip unreadable presets
		}
		dtos = append(dtos, presetDTO(p, cfg))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreatePreset stores a named rule configuration.
func (h *Handler) CreatePreset(w http.ResponseWriter, r *http.Request) {
	var req SavePresetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Preset name is required", nil)
		return
	}

	// Reject configurations the engine would refuse to run with.
	cfg, err := req.Config.ToRuleConfig()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid configuration", err)
		return
	}

	raw, err := json.Marshal(req.Config)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to encode configuration", err)
		return
	}

	preset := sqlite.Preset{
		ID:         uuid.NewString(),
		Name:       req.Name,
		ConfigJSON: string(raw),
	}
	if err := h.Store.SavePreset(r.Context(), preset); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save preset", err)
		return
	}

	stored, err := h.Store.GetPreset(r.Context(), preset.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load saved preset", err)
		return
	}
	writeJSON(w, http.StatusCreated, presetDTO(stored, req.Config))
}

// GetPreset returns one preset by ID.
func (h *Handler) GetPreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	preset, err := h.Store.GetPreset(r.Context(), id)
	if errors.Is(err, sqlite.ErrPresetNotFound) {
		writeError(w, http.StatusNotFound, "Preset not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load preset", err)
		return
	}

	var cfg ConfigDTO
	if err := json.Unmarshal([]byte(preset.ConfigJSON), &cfg); err != nil {
		writeError(w, http.StatusInternalServerError, "Stored configuration is unreadable", err)
		return
	}
	writeJSON(w, http.StatusOK, presetDTO(preset, cfg))
}

// DeletePreset removes a preset by ID.
func (h *Handler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Store.DeletePreset(r.Context(), id)
	if errors.Is(err, sqlite.ErrPresetNotFound) {
		writeError(w, http.StatusNotFound, "Preset not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete preset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}
