package event

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnparseable is returned when a scraped date token matches none of the
// accepted layouts. Callers skip the record rather than fail the batch.
var ErrUnparseable = errors.New("unparseable date")

// rangeTokenMinLen separates "Oct202025-Oct212025" style ranges from tokens
// that merely contain a hyphen.
const rangeTokenMinLen = 15

// ISODate is the layout used for CLI dates and range bounds
const ISODate = "2006-01-02"

var scheduleLayouts = []string{
	"Jan 2 2006",
	"Jan22006",
}

// NormalizeDateToken repairs a raw schedule date token into "Mon D YYYY".
//
//	"Sep222025"           -> "Sep 22 2025"
//	"Oct32025"            -> "Oct 3 2025"
//	"Oct202025-Oct212025" -> "Oct 20 2025"
//
// Tokens that are already spaced are returned with whitespace collapsed.
// A 7-digit run is split as a 2-digit day and a 5-digit year, which never
// parses; the split exists so the caller can log what was attempted.
func NormalizeDateToken(raw string) string {
	token := strings.Join(strings.Fields(raw), " ")

	if strings.Contains(token, "-") && len(token) > rangeTokenMinLen {
		token = strings.TrimSpace(strings.SplitN(token, "-", 2)[0])
	}

	if len(token) < 8 || !isDigits(token[3:]) {
		return token
	}

	month, rest := token[:3], token[3:]
	switch len(rest) {
	case 6:
		return fmt.Sprintf("%s %s %s", month, rest[:2], rest[2:])
	case 5:
		return fmt.Sprintf("%s %s %s", month, rest[:1], rest[1:])
	case 7:
		return fmt.Sprintf("%s %s %s", month, rest[:2], rest[2:])
	}
	return token
}

// ParseScheduleDate normalizes and parses a scraped date token. The result
// is midnight UTC of that calendar day.
func ParseScheduleDate(raw string) (time.Time, error) {
	token := NormalizeDateToken(raw)
	for _, layout := range scheduleLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, raw)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Midnight returns the calendar day of t as midnight UTC
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Range is an inclusive span of calendar days
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewRange builds a Range from two dates, truncating both to calendar days
func NewRange(start, end time.Time) Range {
	return Range{Start: Midnight(start), End: Midnight(end)}
}

// ParseRange parses two YYYY-MM-DD strings into a Range
func ParseRange(start, end string) (Range, error) {
	s, err := time.Parse(ISODate, start)
	if err != nil {
		return Range{}, fmt.Errorf("parsing start date %q: %w", start, err)
	}
	e, err := time.Parse(ISODate, end)
	if err != nil {
		return Range{}, fmt.Errorf("parsing end date %q: %w", end, err)
	}
	if e.Before(s) {
		return Range{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return NewRange(s, e), nil
}

// Contains reports whether the calendar day of t lies within the range,
// boundaries included.
func (r Range) Contains(t time.Time) bool {
	d := Midnight(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days lists every calendar day in the range in order
func (r Range) Days() []time.Time {
	days := make([]time.Time, 0, 7)
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ISOWeek returns the ISO 8601 week number of the range's first day
func (r Range) ISOWeek() int {
	_, week := r.Start.ISOWeek()
	return week
}

// String formats the range for display, e.g. "September 22–27, 2025"
func (r Range) String() string {
	s, e := r.Start, r.End
	switch {
	case s.Year() == e.Year() && s.Month() == e.Month():
		return fmt.Sprintf("%s %d–%d, %d", s.Month(), s.Day(), e.Day(), s.Year())
	case s.Year() == e.Year():
		return fmt.Sprintf("%s–%s, %d", s.Format("January 02"), e.Format("January 02"), s.Year())
	default:
		return fmt.Sprintf("%s–%s", s.Format("January 02, 2006"), e.Format("January 02, 2006"))
	}
}

// Week returns Monday through Sunday of the week containing now, shifted by
// offset weeks (0 = this week, 1 = next week).
func Week(now time.Time, offset int) Range {
	day := Midnight(now)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	monday := day.AddDate(0, 0, -sinceMonday+7*offset)
	return Range{Start: monday, End: monday.AddDate(0, 0, 6)}
}

// SingleDay returns a range covering only the calendar day of t
func SingleDay(t time.Time) Range {
	d := Midnight(t)
	return Range{Start: d, End: d}
}

// IsWeekday reports whether t falls Monday through Friday
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// FormatDayHeading formats a date as "Monday, September 22"
func FormatDayHeading(t time.Time) string {
	return t.Format("Monday, January 02")
}
