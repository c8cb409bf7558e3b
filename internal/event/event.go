package event

import (
	"fmt"
	"time"
)

// Kind distinguishes the two event variants
type Kind string

const (
	KindGame        Kind = "game"
	KindPerformance Kind = "performance"
)

// Badge is the small label shown next to an event's time
type Badge struct {
	Text       string `json:"text"`
	Background string `json:"background"`
	Color      string `json:"color"`
}

var (
	HomeBadge  = Badge{Text: "Home", Background: "#dcfce7", Color: "#166534"}
	AwayBadge  = Badge{Text: "Away", Background: "#fef3c7", Color: "#92400e"}
	EventBadge = Badge{Text: "Event", Background: "#e0e7ff", Color: "#3730a3"}
)

// Event is implemented by *Game and *Performance only.
type Event interface {
	Kind() Kind
	// Day is the normalized calendar date (midnight UTC).
	Day() time.Time
	// Clock is the display time, e.g. "4:00 PM" or "All Day".
	Clock() string
	Venue() string
	DisplayTitle() string
	Subtitle() string
	Badge() Badge
	// Topic is the sport for games and the category for performances.
	Topic() string
	// Label is the free text inspected by the school-level classifiers.
	Label() string

	sealed()
}

// Game is a scheduled athletics contest
type Game struct {
	Team     string    `json:"team"`
	Opponent string    `json:"opponent"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Location string    `json:"location"`
	IsHome   bool      `json:"is_home"`
	Sport    string    `json:"sport"`
}

// NewGame creates a Game with its date truncated to a calendar day
func NewGame(team, opponent string, date time.Time, clock, location string, isHome bool, sport string) *Game {
	return &Game{
		Team:     team,
		Opponent: opponent,
		Date:     Midnight(date),
		Time:     clock,
		Location: location,
		IsHome:   isHome,
		Sport:    sport,
	}
}

func (g *Game) Kind() Kind           { return KindGame }
func (g *Game) Day() time.Time       { return g.Date }
func (g *Game) Clock() string        { return g.Time }
func (g *Game) Venue() string        { return g.Location }
func (g *Game) DisplayTitle() string { return g.Team }
func (g *Game) Topic() string        { return g.Sport }
func (g *Game) Label() string        { return g.Team }
func (g *Game) sealed()              {}

// Subtitle returns "vs. Opponent • Location", dropping empty parts
func (g *Game) Subtitle() string {
	switch {
	case g.Opponent != "" && g.Location != "":
		return fmt.Sprintf("vs. %s • %s", g.Opponent, g.Location)
	case g.Opponent != "":
		return "vs. " + g.Opponent
	default:
		return g.Location
	}
}

func (g *Game) Badge() Badge {
	if g.IsHome {
		return HomeBadge
	}
	return AwayBadge
}

// Performance is an arts calendar entry (concert, play, exhibit...)
type Performance struct {
	Title    string    `json:"title"`
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Location string    `json:"location"`
	Category string    `json:"category"`
}

// NewPerformance creates a Performance with its date truncated to a calendar day
func NewPerformance(title string, date time.Time, clock, location, category string) *Performance {
	return &Performance{
		Title:    title,
		Date:     Midnight(date),
		Time:     clock,
		Location: location,
		Category: category,
	}
}

func (p *Performance) Kind() Kind           { return KindPerformance }
func (p *Performance) Day() time.Time       { return p.Date }
func (p *Performance) Clock() string        { return p.Time }
func (p *Performance) Venue() string        { return p.Location }
func (p *Performance) DisplayTitle() string { return p.Title }
func (p *Performance) Subtitle() string     { return p.Location }
func (p *Performance) Badge() Badge         { return EventBadge }
func (p *Performance) Topic() string        { return p.Category }
func (p *Performance) Label() string        { return p.Title }
func (p *Performance) sealed()              {}

// Combine merges games and performances into one list, games first
func Combine(games []*Game, performances []*Performance) []Event {
	all := make([]Event, 0, len(games)+len(performances))
	for _, g := range games {
		all = append(all, g)
	}
	for _, p := range performances {
		all = append(all, p)
	}
	return all
}

// HasPerformance reports whether any event in the list is a performance
func HasPerformance(events []Event) bool {
	for _, e := range events {
		if _, ok := e.(*Performance); ok {
			return true
		}
	}
	return false
}

// GroupByDay buckets events by calendar date, preserving input order within a day
func GroupByDay(events []Event) map[time.Time][]Event {
	byDay := make(map[time.Time][]Event)
	for _, e := range events {
		byDay[e.Day()] = append(byDay[e.Day()], e)
	}
	return byDay
}
