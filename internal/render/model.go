package render

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kentdenver/events-digest/internal/classify"
	"github.com/kentdenver/events-digest/internal/event"
	"github.com/kentdenver/events-digest/internal/layout"
)

// Branding is the school identity printed on every artifact
type Branding struct {
	Name         string
	Mascot       string
	AthleticsURL string
	Credit       string
}

// Card is one event as the templates see it
type Card struct {
	IsGame      bool
	Title       string
	Opponent    string
	Location    string
	Time        string
	Badge       event.Badge
	Visual      classify.Visual
	IsHome      bool
	Varsity     bool
	HomeVarsity bool
	Featured    bool
}

// Day is one dated section of an email
type Day struct {
	Date     time.Time
	Heading  string
	Featured [][]Card // rows of two
	Other    []Card
	Empty    bool // interior weekday with nothing scheduled
}

// Email is the full view model of a weekly email
type Email struct {
	Branding   Branding
	Level      classify.Level
	RangeText  string
	HasArts    bool
	Copy       layout.Copy
	Categories string
	Days       []Day
	Events     int
}

// PageTitle is the <title> of the email
func (e Email) PageTitle() string {
	kind := "Games This Week"
	if e.HasArts {
		kind = "Games and Performances This Week"
	}
	title := e.Branding.Name + " — " + kind + " (" + e.RangeText + ")"
	if e.Level != "" {
		title += " — " + string(e.Level)
	}
	return title
}

// EmailOptions are the inputs to BuildEmail besides the events
type EmailOptions struct {
	Branding   Branding
	Level      classify.Level
	Range      event.Range
	Variants   layout.Variants
	Classifier *classify.Classifier
}

// BuildEmail lays out one school level's events for the week. Days are in
// ascending order, interior weekdays without events get an empty section,
// and each day is split into featured cards and a compact list.
func BuildEmail(events []event.Event, opts EmailOptions) Email {
	cl := opts.Classifier
	if cl == nil {
		cl = classify.Default()
	}

	byDay := event.GroupByDay(events)
	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	days = append(days, classify.MissingWeekdays(days, opts.Range)...)
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	hasArts := event.HasPerformance(events)
	topics := classify.Topics(events)

	email := Email{
		Branding:   opts.Branding,
		Level:      opts.Level,
		RangeText:  opts.Range.String(),
		HasArts:    hasArts,
		Copy:       opts.Variants.Select(opts.Range.ISOWeek(), hasArts).WithSportCount(len(topics)),
		Categories: categoryList(topics),
		Events:     len(events),
	}

	for _, d := range days {
		day := Day{Date: d, Heading: event.FormatDayHeading(d)}

		dayEvents, ok := byDay[d]
		if !ok {
			day.Empty = true
			email.Days = append(email.Days, day)
			continue
		}

		featured, other := classify.Partition(dayEvents)
		day.Featured = layout.Pairs(cards(cl, featured))
		day.Other = cards(cl, other)
		email.Days = append(email.Days, day)
	}

	return email
}

// Signage is the view model of the daily display
type Signage struct {
	Branding    Branding
	DateDisplay string
	Layout      layout.Config
	Rows        [][]Card
	Events      int
}

// Empty reports whether there is nothing on today
func (s Signage) Empty() bool {
	return s.Events == 0
}

// SignageOptions are the inputs to BuildSignage besides the events
type SignageOptions struct {
	Branding   Branding
	Day        time.Time
	Classifier *classify.Classifier
}

// BuildSignage lays out one day's events, featured first, using the grid
// chosen for the event count.
func BuildSignage(events []event.Event, opts SignageOptions) Signage {
	cl := opts.Classifier
	if cl == nil {
		cl = classify.Default()
	}

	featured, other := classify.Partition(events)
	ordered := append(cards(cl, featured), cards(cl, other)...)
	cfg := layout.ForCount(len(ordered))

	s := Signage{
		Branding:    opts.Branding,
		DateDisplay: opts.Day.Format("Monday, January 2, 2006"),
		Layout:      cfg,
		Events:      len(ordered),
	}
	if len(ordered) > 0 {
		s.Rows = layout.Chunk(ordered, cfg.Rows)
	}
	return s
}

func cards(cl *classify.Classifier, events []event.Event) []Card {
	out := make([]Card, 0, len(events))
	for _, e := range events {
		out = append(out, newCard(cl, e))
	}
	return out
}

func newCard(cl *classify.Classifier, e event.Event) Card {
	c := Card{
		Title:       e.DisplayTitle(),
		Location:    e.Venue(),
		Time:        e.Clock(),
		Badge:       e.Badge(),
		Visual:      cl.Visual(e),
		Featured:    classify.Featured(e),
		HomeVarsity: classify.HomeVarsity(e),
	}
	if g, ok := e.(*event.Game); ok {
		c.IsGame = true
		c.Opponent = g.Opponent
		c.IsHome = g.IsHome
		c.Varsity = classify.IsVarsity(g.Team)
	}
	return c
}

var titleCaser = cases.Title(language.English)

func categoryList(topics []string) string {
	titled := make([]string, len(topics))
	for i, t := range topics {
		titled[i] = titleCaser.String(t)
	}
	return strings.Join(titled, ", ")
}
