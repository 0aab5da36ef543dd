// Package timeutil holds calendar-date helpers shared by the CLI and the UI.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire encoding for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD. It identifies a day in the
// user's local calendar, not an instant.
type Date string

// Today returns the current date in the client's local calendar.
func Today() Date {
	return Date(time.Now().Format(DateLayout))
}

// ParseDate validates and canonicalizes a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date(t.Format(DateLayout)), nil
}

func (d Date) String() string {
	return string(d)
}

// Time returns midnight of the date. The zero time is returned for a
// malformed date.
func (d Date) Time() time.Time {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Prev returns the previous calendar day.
func (d Date) Prev() Date {
	return d.addDays(-1)
}

// Next returns the next calendar day.
func (d Date) Next() Date {
	return d.addDays(1)
}

func (d Date) addDays(n int) Date {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return d
	}
	return Date(t.AddDate(0, 0, n).Format(DateLayout))
}

// UTCOffsetMinutes reports the client's UTC offset for the given instant.
// Daily report boundaries are computed server-side in the user's local
// calendar, so the offset is derived fresh per request rather than cached;
// it can change under DST or travel.
func UTCOffsetMinutes(at time.Time) int {
	_, seconds := at.Zone()
	return seconds / 60
}
