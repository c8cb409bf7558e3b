package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/kentdenver/events-digest/internal/classify"
	"github.com/kentdenver/events-digest/internal/event"
	"github.com/kentdenver/events-digest/internal/fetch"
	"github.com/kentdenver/events-digest/internal/logger"
)

const (
	DefaultTitle    = "Untitled Event"
	DefaultLocation = "TBA"
	AllDay          = "All Day"

	ClockLayout = "3:04 PM"
)

const (
	dateLayout      = "20060102"
	localLayout     = "20060102T150405"
	utcLayout       = "20060102T150405Z"
	valueParam      = "VALUE"
	tzidParam       = "TZID"
	dateValueMarker = "DATE"
)

var errNoStart = errors.New("event has no DTSTART")

var textUnescaper = strings.NewReplacer(`\,`, ",", `\;`, ";", `\n`, " ", `\N`, " ", `\\`, `\`)

// Result is the outcome of parsing one feed
type Result struct {
	Performances []*event.Performance
	Components   int
	Skipped      int
}

// Parse reads a calendar and returns the performances dated within rng.
// Date-times are converted to loc before the range check; a nil loc means UTC.
func Parse(r io.Reader, rng event.Range, loc *time.Location) (Result, error) {
	if loc == nil {
		loc = time.UTC
	}

	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return Result{}, fmt.Errorf("parsing calendar: %w", err)
	}

	var res Result
	for _, vevent := range cal.Events() {
		res.Components++

		perf, err := parseEvent(vevent, loc)
		if err != nil {
			res.Skipped++
			logger.Warn("Skipping arts event", logger.Fields{
				"uid":   propertyValue(vevent, ics.ComponentPropertyUniqueId),
				"error": err.Error(),
			})
			continue
		}

		if rng.Contains(perf.Date) {
			res.Performances = append(res.Performances, perf)
		}
	}

	return res, nil
}

func parseEvent(vevent *ics.VEvent, loc *time.Location) (*event.Performance, error) {
	title := propertyValue(vevent, ics.ComponentPropertySummary)
	if title == "" {
		title = DefaultTitle
	}

	location := propertyValue(vevent, ics.ComponentPropertyLocation)
	if location == "" {
		location = DefaultLocation
	}

	start := vevent.GetProperty(ics.ComponentPropertyDtStart)
	if start == nil {
		return nil, errNoStart
	}

	date, clock, err := parseStart(start.Value, start.ICalParameters, loc)
	if err != nil {
		return nil, err
	}

	return event.NewPerformance(title, date, clock, location, classify.CategoryFor(title)), nil
}

// parseStart turns a DTSTART value into a calendar date and a display time
func parseStart(value string, params map[string][]string, loc *time.Location) (time.Time, string, error) {
	value = strings.TrimSpace(value)

	if strings.EqualFold(firstParam(params, valueParam), dateValueMarker) || len(value) == len(dateLayout) {
		t, err := time.Parse(dateLayout, value)
		if err != nil {
			return time.Time{}, "", fmt.Errorf("parsing all-day start %q: %w", value, err)
		}
		return t, AllDay, nil
	}

	var (
		t   time.Time
		err error
	)
	switch {
	case strings.HasSuffix(value, "Z"):
		t, err = time.Parse(utcLayout, value)
	case firstParam(params, tzidParam) != "":
		var zone *time.Location
		// zone names are case-sensitive
		zone, err = time.LoadLocation(strings.Trim(firstParam(params, tzidParam), `"`))
		if err != nil {
			return time.Time{}, "", fmt.Errorf("loading TZID: %w", err)
		}
		t, err = time.ParseInLocation(localLayout, value, zone)
	default:
		// floating time, read as school-local
		t, err = time.ParseInLocation(localLayout, value, loc)
	}
	if err != nil {
		return time.Time{}, "", fmt.Errorf("parsing start %q: %w", value, err)
	}

	t = t.In(loc)
	return event.Midnight(t), t.Format(ClockLayout), nil
}

func propertyValue(vevent *ics.VEvent, prop ics.ComponentProperty) string {
	p := vevent.GetProperty(prop)
	if p == nil {
		return ""
	}
	return strings.TrimSpace(textUnescaper.Replace(p.Value))
}

func firstParam(params map[string][]string, key string) string {
	if values := params[key]; len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// Client fetches and parses the feed
type Client struct {
	Getter   fetch.Getter
	URL      string
	Location *time.Location
}

// Fetch downloads the feed and returns performances within rng. Fetch and
// parse failures are logged and yield an empty result.
func (c *Client) Fetch(ctx context.Context, rng event.Range) Result {
	body, err := c.Getter.Get(ctx, c.URL)
	if err != nil {
		logger.Error("Arts feed fetch failed", logger.Fields{"url": c.URL}, err)
		return Result{}
	}

	res, err := Parse(bytes.NewReader(body), rng, c.Location)
	if err != nil {
		logger.Error("Arts feed parse failed", logger.Fields{"url": c.URL}, err)
		return Result{}
	}

	logger.Debug("Parsed arts feed", logger.Fields{
		"components":   res.Components,
		"performances": len(res.Performances),
		"skipped":      res.Skipped,
	})
	return res
}
