package cli

import (
	"sort"
	"strings"
	"time"

	"github.com/kentdenver/events-digest/internal/calendar"
	"github.com/kentdenver/events-digest/internal/event"
)

// sortEvents orders events by day, then by clock, then by label.
// The sort is stable so events that tie keep their source order.
func sortEvents(events []event.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return compareEvents(events[i], events[j])
	})
}

// compareEvents returns true if event i should come before event j
func compareEvents(i, j event.Event) bool {
	if !i.Day().Equal(j.Day()) {
		return i.Day().Before(j.Day())
	}

	ci, cj := clockRank(i), clockRank(j)
	if ci != cj {
		return ci < cj
	}

	return strings.ToLower(i.Label()) < strings.ToLower(j.Label())
}

// clockRank puts all-day entries first and unparseable clocks ("TBD") last
func clockRank(e event.Event) int {
	if strings.EqualFold(e.Clock(), "All Day") {
		return -1
	}
	start, ok := calendar.StartTime(e, time.UTC)
	if !ok {
		return 24 * 60
	}
	return start.Hour()*60 + start.Minute()
}
