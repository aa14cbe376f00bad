package dates

import (
	"fmt"
	"time"
)

// Layout is the wire format for all calendar dates in the system.
const Layout = "2006-01-02"

// Parse reads an ISO calendar date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Format writes an ISO calendar date.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the current calendar date in UTC, truncated to midnight.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// Range expands an inclusive [start, end] range into individual dates. An
// empty end means the single start day. A stored end before start degrades
// to the single start day instead of erroring, and an unparseable start
// yields no days at all; the read path stays total on malformed data.
func Range(start, end string) []string {
	s, err := Parse(start)
	if err != nil {
		return nil
	}

	e := s
	if end != "" {
		if parsed, err := Parse(end); err == nil && !parsed.Before(s) {
			e = parsed
		}
	}

	var days []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, Format(d))
	}
	return days
}
