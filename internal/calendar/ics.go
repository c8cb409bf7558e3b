package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/kentdenver/events-digest/internal/event"
)

const (
	ProductID = "-//Events Digest//events-digest//EN"

	// DefaultDuration is the length given to timed events, which carry no end time
	DefaultDuration = 2 * time.Hour

	clockLayout = "3:04 PM"
	uidDomain   = "events-digest"
)

// uidNamespace scopes the name-based UIDs so re-exports of the same event
// keep the same UID.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://events-digest/ics"))

// Exporter writes events as an iCalendar file
type Exporter struct {
	// Name becomes X-WR-CALNAME
	Name string
	// Location anchors display clocks like "4:00 PM"; nil means UTC.
	Location *time.Location
	// URL is attached to every event when set
	URL string
	// Now stamps DTSTAMP; nil means time.Now.
	Now func() time.Time
}

// Calendar builds the VCALENDAR for events
func (x Exporter) Calendar(events []event.Event) *ics.Calendar {
	loc := x.Location
	if loc == nil {
		loc = time.UTC
	}
	now := time.Now
	if x.Now != nil {
		now = x.Now
	}
	stamp := now().UTC()

	cal := ics.NewCalendar()
	cal.SetProductId(ProductID)
	cal.SetMethod(ics.MethodPublish)
	if x.Name != "" {
		cal.SetXWRCalName(x.Name)
	}

	for _, e := range events {
		vevent := cal.AddEvent(UID(e))
		vevent.SetDtStampTime(stamp)

		if start, ok := StartTime(e, loc); ok {
			vevent.SetStartAt(start)
			vevent.SetEndAt(start.Add(DefaultDuration))
		} else {
			day := e.Day()
			vevent.SetAllDayStartAt(day)
			vevent.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}

		vevent.SetSummary(summary(e))
		if e.Venue() != "" {
			vevent.SetLocation(e.Venue())
		}
		vevent.SetDescription(description(e))
		vevent.SetProperty(ics.ComponentPropertyCategories, strings.ToUpper(e.Topic()))
		if x.URL != "" {
			vevent.SetURL(x.URL)
		}
		vevent.SetStatus(ics.ObjectStatusConfirmed)
	}
	return cal
}

// Export renders events as iCalendar text. No events yields an empty string.
func (x Exporter) Export(events []event.Event) string {
	if len(events) == 0 {
		return ""
	}
	return x.Calendar(events).Serialize()
}

// Encode writes the iCalendar text for events to w
func (x Exporter) Encode(w io.Writer, events []event.Event) error {
	if _, err := io.WriteString(w, x.Export(events)); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

// UID derives a stable identifier from the event's kind, label, date and clock
func UID(e event.Event) string {
	name := strings.Join([]string{
		string(e.Kind()),
		e.Label(),
		e.Day().Format(event.ISODate),
		e.Clock(),
	}, "|")
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@" + uidDomain
}

// StartTime combines an event's date with its display clock in loc.
// It returns false for "All Day", "TBD" and anything else that is not a clock.
func StartTime(e event.Event, loc *time.Location) (time.Time, bool) {
	clock, err := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(e.Clock())))
	if err != nil {
		return time.Time{}, false
	}
	d := e.Day()
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), true
}

// FileName is the companion file for a week starting on monday, e.g. "events-sep.ics"
func FileName(monday time.Time) string {
	return "events-" + strings.ToLower(monday.Format("Jan")) + ".ics"
}

func summary(e event.Event) string {
	if g, ok := e.(*event.Game); ok && g.Opponent != "" {
		return fmt.Sprintf("%s vs. %s", g.Team, g.Opponent)
	}
	return e.DisplayTitle()
}

func description(e event.Event) string {
	switch v := e.(type) {
	case *event.Game:
		return fmt.Sprintf("%s (%s)\n%s", v.Team, e.Badge().Text, e.Subtitle())
	case *event.Performance:
		return fmt.Sprintf("%s\nCategory: %s", v.Title, v.Category)
	default:
		return e.DisplayTitle()
	}
}
