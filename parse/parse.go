/*
Package parse turns free-text time-range entries into engine intervals.

PURPOSE:
  The engine consumes structured (start, end) pairs; real input is pasted
  text, one worked range per line. This package recognizes the accepted
  formats and normalizes day rollover, so the engine's start < end contract
  holds downstream.

ACCEPTED FORMATS (one entry per line):
  2024-01-15 08:00 - 17:00
  2024-01-15 08:00, 2024-01-15 17:00
  15/01/2024 08:00 - 17:00
  15/01/2024 08:00, 15/01/2024 17:00
  2024-01-15 08:00	17:00            (tab or spaces between times)
  2024-01-15 12: 00 - 16:00           (stray space after the colon)

ROLLOVER:
  When the end time is before the start (a 22:00 - 06:00 night shift
  written against one date), the end rolls to the next day.

ERROR BEHAVIOR:
  Blank lines are skipped. A non-blank line matching no format fails the
  whole parse with a line-numbered ParseError; the engine has no semantics
  for a silently skipped record inside an aggregate.
*/
package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/warp/payroll-engine/engine"
)

// ErrUnrecognized is returned when a line matches none of the accepted
// time-range formats.
var ErrUnrecognized = errors.New("unrecognized time-range format")

// ParseError reports the offending line when a batch parse fails.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, trimmed
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, ErrUnrecognized, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrUnrecognized }

// =============================================================================
// FORMAT PATTERNS
// =============================================================================

type pattern struct {
	re    *regexp.Regexp
	build func(m []string) (start, end time.Time, err error)
}

// Ordered like the formats evolved: dash ranges first, explicit pairs
// next, loose whitespace pairs last. All hour captures tolerate a single
// digit and a stray space after the colon.
var patterns = []pattern{
	// 2024-01-15 08:00 - 17:00
	{
		re: regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{1,2}):\s*(\d{2})\s*[-–]\s*(\d{1,2}):\s*(\d{2})`),
		build: func(m []string) (time.Time, time.Time, error) {
			start, err := clock(m[1], m[2], m[3])
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			end, err := clock(m[1], m[4], m[5])
			return start, end, err
		},
	},
	// 2024-01-15 08:00, 2024-01-15 17:00
	{
		re: regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{1,2}):\s*(\d{2}),\s*(\d{4}-\d{2}-\d{2})\s+(\d{1,2}):\s*(\d{2})`),
		build: func(m []string) (time.Time, time.Time, error) {
			start, err := clock(m[1], m[2], m[3])
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			end, err := clock(m[4], m[5], m[6])
			return start, end, err
		},
	},
	// 2024-01-15 08:00	17:00 (tab or spaces between the times)
	{
		re: regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{1,2}):\s*(\d{2})\s+(\d{1,2}):\s*(\d{2})`),
		build: func(m []string) (time.Time, time.Time, error) {
			start, err := clock(m[1], m[2], m[3])
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			end, err := clock(m[1], m[4], m[5])
			return start, end, err
		},
	},
	// 15/01/2024 08:00 - 17:00
	{
		re: regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})\s+(\d{1,2}):\s*(\d{2})\s*[-–]\s*(\d{1,2}):\s*(\d{2})`),
		build: func(m []string) (time.Time, time.Time, error) {
			date := isoDate(m[3], m[2], m[1])
			start, err := clock(date, m[4], m[5])
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			end, err := clock(date, m[6], m[7])
			return start, end, err
		},
	},
	// 15/01/2024 08:00, 15/01/2024 17:00
	{
		re: regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})\s+(\d{1,2}):\s*(\d{2}),\s*(\d{2})/(\d{2})/(\d{4})\s+(\d{1,2}):\s*(\d{2})`),
		build: func(m []string) (time.Time, time.Time, error) {
			start, err := clock(isoDate(m[3], m[2], m[1]), m[4], m[5])
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			end, err := clock(isoDate(m[8], m[7], m[6]), m[9], m[10])
			return start, end, err
		},
	},
	// 15/01/2024 08:00	17:00
	{
		re: regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})\s+(\d{1,2}):\s*(\d{2})\s+(\d{1,2}):\s*(\d{2})`),
		build: func(m []string) (time.Time, time.Time, error) {
			date := isoDate(m[3], m[2], m[1])
			start, err := clock(date, m[4], m[5])
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			end, err := clock(date, m[6], m[7])
			return start, end, err
		},
	},
}

func isoDate(y, m, d string) string { return y + "-" + m + "-" + d }

// clock builds a local wall-clock instant from an ISO date and hour/minute
// captures.
func clock(isoDate, hh, mm string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", isoDate, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return time.Time{}, err
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return time.Time{}, err
	}
	if h > 23 || m > 59 {
		return time.Time{}, fmt.Errorf("invalid clock time %s:%s", hh, mm)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, time.Local), nil
}

// =============================================================================
// PARSING
// =============================================================================

// ParseLine parses one entry. The end rolls to the next day when it reads
// before the start (night shifts written against a single date).
func ParseLine(line string) (engine.Interval, error) {
	for _, p := range patterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		start, end, err := p.build(m)
		if err != nil {
			// Shape matched but the values are no clock time; try the
			// remaining formats before giving up.
			continue
		}
		if end.Before(start) {
			end = end.AddDate(0, 0, 1)
		}
		return engine.NewInterval(start, end), nil
	}
	return engine.Interval{}, ErrUnrecognized
}

// ParseText parses a whole pasted block, one entry per line. Blank lines
// are skipped; the first unparseable line aborts with a ParseError.
func ParseText(text string) ([]engine.Interval, error) {
	var intervals []engine.Interval
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		iv, err := ParseLine(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line}
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}
