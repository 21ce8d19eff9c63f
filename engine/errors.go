/*
errors.go - Centralized error types for the pay engine

PURPOSE:
  The engine is pure arithmetic over pre-validated inputs, so the error
  taxonomy is narrow: configuration errors (caught eagerly, before any
  record is produced) and interval invariant violations (fail fast, abort
  the batch). Percentages outside [0,100] are valid inputs and are never
  rejected; negative premiums simply reduce pay.

USAGE:
  Callers can branch with errors.Is:

    if errors.Is(err, engine.ErrInvalidConfig) { ... 400 ... }

SEE ALSO:
  - config.go: Validate returns ConfigError
  - compute.go: ComputeDay/Calculate return IntervalError
*/
package engine

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidConfig is returned when a rule configuration cannot yield a
	// defined hourly rate (e.g. monthly salary with zero monthly hours).
	ErrInvalidConfig = errors.New("invalid rule configuration")

	// ErrInvalidInterval is returned when an interval with end <= start
	// reaches the calculator. Upstream collaborators are contractually
	// responsible for normalization, so this is an invariant violation.
	ErrInvalidInterval = errors.New("invalid interval: end not after start")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ConfigError reports which configuration field made the rate undefined.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid rule configuration: %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// IntervalError reports the offending interval bounds.
type IntervalError struct {
	Start time.Time
	End   time.Time
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("invalid interval: end %s not after start %s",
		e.End.Format("2006-01-02 15:04"), e.Start.Format("2006-01-02 15:04"))
}

func (e *IntervalError) Unwrap() error { return ErrInvalidInterval }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrInvalidInterval)
}
