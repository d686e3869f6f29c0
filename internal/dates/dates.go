// Package dates handles the ISO-8601 calendar dates found in the content files.
package dates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01",
	"2006",
}

// Date is a point in time decoded from a JSON date string. Dates without a
// zone are read as UTC midnight. The zero Date means "not set".
type Date struct {
	time.Time
}

// Parse reads an ISO-8601 date or timestamp.
func Parse(s string) (Date, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t.UTC()}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

// MustParse is Parse for fixtures and tests; it panics on bad input.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Of wraps a time.Time.
func Of(t time.Time) Date { return Date{t.UTC()} }

// UnmarshalJSON accepts a date string, an empty string or null.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON writes the date as YYYY-MM-DD, or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Format("2006-01-02"))), nil
}

// Compare orders dates chronologically; unset dates sort first.
func (d Date) Compare(other Date) int { return d.Time.Compare(other.Time) }

// Display formats the date like "Mar 5, 2025". Unset dates display as "".
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("Jan 2, 2006")
}

// DaysUntil returns the number of days from now until t, rounded up. Past
// times give zero or negative values.
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// YearRange formats a start/end pair as "2021 - 2023", "2021 - Present" when
// end is unset, or a single year when both fall in the same year.
func YearRange(start, end Date) string {
	if start.IsZero() {
		return ""
	}
	from := strconv.Itoa(start.Year())
	if end.IsZero() {
		return from + " - Present"
	}
	if end.Year() == start.Year() {
		return from
	}
	return from + " - " + strconv.Itoa(end.Year())
}
