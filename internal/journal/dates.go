package journal

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format entries are stored with.
// Lexical order of formatted dates equals chronological order.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate formats t as a calendar day in t's location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidDate reports whether s is a well-formed calendar day.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
