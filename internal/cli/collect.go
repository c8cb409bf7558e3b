package cli

import (
	"context"

	"github.com/kentdenver/events-digest/internal/event"
	"github.com/kentdenver/events-digest/internal/feed"
	"github.com/kentdenver/events-digest/internal/logger"
	"github.com/kentdenver/events-digest/internal/metrics"
	"github.com/kentdenver/events-digest/internal/scraper"
)

// Collection is everything gathered for one range
type Collection struct {
	Range    event.Range
	Events   []event.Event
	Schedule scraper.Outcome
	Arts     feed.Result
}

// collect scrapes the schedule, then reads the arts feed, and merges both
// into one chronologically sorted list. Source failures leave that source
// empty; they never abort the run.
func (a *app) collect(ctx context.Context, rng event.Range) Collection {
	esc := &scraper.Escalator{
		Fetcher:       a.getter,
		URL:           a.cfg.Sources.ScheduleURL,
		Pager:         a.pager(),
		MaxIterations: a.cfg.Browser.MaxIterations,
	}
	outcome := esc.Run(ctx, rng)

	arts := (&feed.Client{
		Getter:   a.getter,
		URL:      a.cfg.Sources.ArtsFeedURL,
		Location: a.cfg.Location(),
	}).Fetch(ctx, rng)

	a.rec.Events(metrics.SourceSchedule, len(outcome.Games))
	a.rec.Skipped(metrics.SourceSchedule, outcome.Skipped)
	a.rec.Escalation(outcome.Label(), outcome.Iterations)
	a.rec.Events(metrics.SourceArts, len(arts.Performances))
	a.rec.Skipped(metrics.SourceArts, arts.Skipped)

	events := event.Combine(outcome.Games, arts.Performances)
	sortEvents(events)

	logger.Info("Collected events", logger.Fields{
		"range":        rng.String(),
		"games":        len(outcome.Games),
		"performances": len(arts.Performances),
		"escalation":   outcome.Label(),
		"iterations":   outcome.Iterations,
	})

	return Collection{Range: rng, Events: events, Schedule: outcome, Arts: arts}
}
