// Package schedule computes how many occurrences a periodic session
// configuration produces between its start and end dates.  It is pure
// arithmetic: no I/O, no state, and it feeds the "sessions to be
// created" preview in the admin session form.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Period values accepted by the remote API for periodic sessions.
const (
	EveryDay  = "EVERY_DAY"
	EveryWeek = "EVERY_WEEK"
)

// ErrInvalidSchedule is returned when a schedule carries a malformed
// date string or an unknown period.  Callers should surface it instead
// of rendering a bogus count.
var ErrInvalidSchedule = errors.New("invalid schedule")

// Schedule is the recurrence configuration as edited in the session
// form.  StartAt uses the datetime-local layout ("2006-01-02T15:04"),
// EndDate a plain date ("2006-01-02").  Enabled mirrors the form's
// periodic checkbox; when it is off the schedule produces no preview.
type Schedule struct {
	StartAt string
	Period  string
	EndDate string
	Enabled bool
}

// startLayouts are the layouts accepted for StartAt.  Browsers submit
// datetime-local values; the remote API echoes RFC3339.
var startLayouts = []string{"2006-01-02T15:04", time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

const dateLayout = "2006-01-02"

// Count returns the number of sessions the schedule generates, or nil
// when the schedule is disabled or has no end date yet.  The count is
// inclusive of the start day and never negative: an end date before the
// start clamps to zero rather than propagating a negative value.
func Count(s Schedule) (*int, error) {
	if !s.Enabled || s.EndDate == "" {
		return nil, nil
	}
	start, err := parseStart(s.StartAt)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(s.EndDate)
	if err != nil {
		return nil, err
	}
	// Time-of-day is irrelevant to the preview: an end date equal to the
	// start's date always yields exactly one occurrence.
	diffDays := wholeDays(dateOf(start), end)

	var n int
	switch s.Period {
	case EveryDay:
		n = diffDays + 1
	case EveryWeek:
		n = floorDiv(diffDays, 7) + 1
	default:
		return nil, fmt.Errorf("%w: unknown period %q", ErrInvalidSchedule, s.Period)
	}
	if n < 0 {
		n = 0
	}
	return &n, nil
}

// Occurrences expands the schedule into the concrete start times it
// describes, preserving the time-of-day of StartAt.  The slice length
// always equals the value reported by Count.  A disabled schedule or a
// missing end date yields nil.
func Occurrences(s Schedule) ([]time.Time, error) {
	n, err := Count(s)
	if err != nil || n == nil {
		return nil, err
	}
	start, err := parseStart(s.StartAt)
	if err != nil {
		return nil, err
	}
	step := 1
	if s.Period == EveryWeek {
		step = 7
	}
	out := make([]time.Time, 0, *n)
	for i := 0; i < *n; i++ {
		out = append(out, start.AddDate(0, 0, i*step))
	}
	return out, nil
}

func parseStart(v string) (time.Time, error) {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: bad start %q", ErrInvalidSchedule, v)
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad end date %q", ErrInvalidSchedule, v)
	}
	return t, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// wholeDays returns the signed number of whole days from a to b, both
// taken at midnight.
func wholeDays(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// floorDiv divides rounding toward negative infinity, matching the
// floor semantics of the preview arithmetic for inverted ranges.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
