package classify

import (
	"sort"
	"strings"
	"time"

	"github.com/kentdenver/events-digest/internal/event"
)

const (
	OtherSport          = "other"
	DefaultArtsCategory = "performance"
)

// Sports in match order. "field hockey" and "ice hockey" must stay multi-word.
var sports = []string{
	"soccer",
	"football",
	"tennis",
	"golf",
	"cross country",
	"field hockey",
	"volleyball",
	"basketball",
	"lacrosse",
	"baseball",
	"swimming",
	"track",
	"ice hockey",
}

var artsCategories = []string{
	"dance",
	"music",
	"theater",
	"theatre",
	"visual",
	"art",
	"concert",
	"performance",
	"showcase",
	"exhibit",
}

var middleSchoolIndicators = []string{
	"middle school", "ms", "6th", "7th", "8th",
	"sixth", "seventh", "eighth",
}

var varsityIndicators = []string{"varsity", "var"}

var nonVarsityIndicators = []string{
	"jv", "junior varsity", "c team",
	"6th", "7th", "8th", "middle school", "ms",
}

// SportFor maps a team name to a sport, falling back to "other"
func SportFor(team string) string {
	lower := strings.ToLower(team)
	for _, s := range sports {
		if strings.Contains(lower, s) {
			return s
		}
	}
	if strings.Contains(lower, "xc") {
		return "cross country"
	}
	return OtherSport
}

// CategoryFor maps an arts event title to a category, falling back to "performance"
func CategoryFor(title string) string {
	lower := strings.ToLower(title)
	for _, c := range artsCategories {
		if strings.Contains(lower, c) {
			return c
		}
	}
	return DefaultArtsCategory
}

func containsAny(s string, needles []string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

// IsMiddleSchool reports whether team or title text names a middle-school
// group. Matching is substring and case-insensitive, so "ms" also matches
// inside longer words.
func IsMiddleSchool(text string) bool {
	return containsAny(text, middleSchoolIndicators)
}

// IsVarsity reports whether team text names a varsity squad. Middle-school
// teams are never varsity; upper-school teams without any level marker are.
func IsVarsity(text string) bool {
	if IsMiddleSchool(text) {
		return false
	}
	if containsAny(text, varsityIndicators) {
		return true
	}
	if containsAny(text, nonVarsityIndicators) {
		return false
	}
	return true
}

// Featured reports whether an event gets prominent placement.
// Performances always do; middle-school games only when at home; other
// games when at home or varsity.
func Featured(e event.Event) bool {
	switch v := e.(type) {
	case *event.Performance:
		return true
	case *event.Game:
		if IsMiddleSchool(v.Team) {
			return v.IsHome
		}
		return v.IsHome || IsVarsity(v.Team)
	default:
		return false
	}
}

// HomeVarsity reports whether e is a home varsity game, which gets the
// strongest card emphasis.
func HomeVarsity(e event.Event) bool {
	g, ok := e.(*event.Game)
	return ok && g.IsHome && IsVarsity(g.Team)
}

// Partition splits events into featured and other, preserving order.
// Every input event lands in exactly one of the two slices.
func Partition(events []event.Event) (featured, other []event.Event) {
	featured = make([]event.Event, 0, len(events))
	other = make([]event.Event, 0, len(events))
	for _, e := range events {
		if Featured(e) {
			featured = append(featured, e)
		} else {
			other = append(other, e)
		}
	}
	return featured, other
}

// Level is a school-level bucket
type Level string

const (
	MiddleSchool Level = "Middle School"
	UpperSchool  Level = "Upper School"
)

// LevelOf assigns an event to exactly one school level
func LevelOf(e event.Event) Level {
	if IsMiddleSchool(e.Label()) {
		return MiddleSchool
	}
	return UpperSchool
}

// SplitBySchool separates events into middle-school and upper-school lists
func SplitBySchool(events []event.Event) (middle, upper []event.Event) {
	for _, e := range events {
		if LevelOf(e) == MiddleSchool {
			middle = append(middle, e)
		} else {
			upper = append(upper, e)
		}
	}
	return middle, upper
}

// MissingWeekdays returns the weekdays in r that have no events but fall
// strictly between two days that do. Gaps at the start or end of the range
// are not reported. At least two event days are needed to find a gap.
func MissingWeekdays(eventDays []time.Time, r event.Range) []time.Time {
	have := make(map[time.Time]bool, len(eventDays))
	for _, d := range eventDays {
		have[event.Midnight(d)] = true
	}
	if len(have) < 2 {
		return nil
	}

	sorted := make([]time.Time, 0, len(have))
	for d := range have {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	first, last := sorted[0], sorted[len(sorted)-1]

	var missing []time.Time
	for _, day := range r.Days() {
		if !event.IsWeekday(day) || have[day] {
			continue
		}
		if day.After(first) && day.Before(last) {
			missing = append(missing, day)
		}
	}
	return missing
}

// Topics returns the distinct sports/categories in events, sorted
func Topics(events []event.Event) []string {
	seen := make(map[string]bool)
	topics := make([]string, 0)
	for _, e := range events {
		if !seen[e.Topic()] {
			seen[e.Topic()] = true
			topics = append(topics, e.Topic())
		}
	}
	sort.Strings(topics)
	return topics
}
