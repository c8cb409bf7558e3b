package scraper

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/kentdenver/events-digest/internal/event"
	"github.com/kentdenver/events-digest/internal/fetch"
	"github.com/kentdenver/events-digest/internal/logger"
)

// DefaultMaxIterations bounds how many times Stage 2 presses "load more"
const DefaultMaxIterations = 50

// State is a step of the escalation state machine
type State string

const (
	StateFastPath   State = "fast_path"
	StateEscalating State = "escalating"
	StateDone       State = "done"
	StateExhausted  State = "exhausted"
)

// Pager drives a paginated view of the schedule page. Open and LoadMore
// return the full page HTML after the step.
type Pager interface {
	Open(ctx context.Context) (string, error)
	// LoadMore expands the page once. It reports false when there is
	// nothing left to load.
	LoadMore(ctx context.Context) (bool, string, error)
	Close() error
}

// Outcome is the final result of a scrape with its escalation bookkeeping
type Outcome struct {
	Result
	State      State
	Escalated  bool
	Iterations int
	Err        error // last fetch or pager error, if any
}

// Label names the outcome for metrics and the run summary
func (o Outcome) Label() string {
	switch {
	case !o.Escalated:
		return "fast_path"
	case o.State == StateExhausted:
		return "exhausted"
	default:
		return "escalated"
	}
}

// Escalator scrapes the schedule with a plain fetch and falls back to a Pager
// when the fetch does not reach the end of the requested range.
type Escalator struct {
	Fetcher fetch.Getter
	URL     string

	// Pager is the Stage 2 strategy. Nil disables escalation.
	Pager         Pager
	MaxIterations int
}

// Run scrapes games within rng
func (e *Escalator) Run(ctx context.Context, rng event.Range) Outcome {
	fast := e.fastPath(ctx, rng)
	if fast.Covers(rng) {
		fast.State = StateDone
		return fast
	}

	if e.Pager == nil {
		logger.Warn("Schedule does not cover requested range and escalation is disabled", logger.Fields{
			"latest": formatLatest(fast.Latest),
			"end":    rng.End.Format(event.ISODate),
		})
		fast.State = StateExhausted
		return fast
	}

	logger.Info("Escalating schedule scrape", logger.Fields{
		"latest": formatLatest(fast.Latest),
		"end":    rng.End.Format(event.ISODate),
		"rows":   fast.Rows,
	})

	return e.escalate(ctx, rng, fast)
}

func (e *Escalator) fastPath(ctx context.Context, rng event.Range) Outcome {
	out := Outcome{State: StateFastPath}

	body, err := e.Fetcher.Get(ctx, e.URL)
	if err != nil {
		logger.Error("Schedule fetch failed", logger.Fields{"url": e.URL}, err)
		out.Err = err
		return out
	}

	res, err := Parse(bytes.NewReader(body), rng)
	if err != nil {
		logger.Error("Schedule parse failed", logger.Fields{"url": e.URL}, err)
		out.Err = err
		return out
	}

	out.Result = res
	logger.Debug("Fast path parsed schedule", logger.Fields{
		"rows":   res.Rows,
		"games":  len(res.Games),
		"latest": formatLatest(res.Latest),
	})
	return out
}

func (e *Escalator) escalate(ctx context.Context, rng event.Range, fast Outcome) Outcome {
	defer func() {
		if err := e.Pager.Close(); err != nil {
			logger.Warn("Closing pager failed", logger.Fields{"error": err.Error()})
		}
	}()

	html, err := e.Pager.Open(ctx)
	if err != nil {
		logger.Error("Escalation failed to start, keeping fast path result", nil, err)
		fast.State = StateExhausted
		fast.Escalated = true
		fast.Err = err
		return fast
	}

	out := Outcome{State: StateEscalating, Escalated: true}
	out.Result = parseSnapshot(html, rng)

	limit := e.MaxIterations
	if limit <= 0 {
		limit = DefaultMaxIterations
	}

	for !out.Result.Covers(rng) {
		if out.Iterations >= limit {
			logger.Warn("Escalation hit iteration bound before covering range", logger.Fields{
				"iterations": out.Iterations,
				"latest":     formatLatest(out.Latest),
				"end":        rng.End.Format(event.ISODate),
			})
			out.State = StateExhausted
			return out
		}

		more, html, err := e.Pager.LoadMore(ctx)
		if err != nil {
			logger.Warn("Load more failed, keeping accumulated rows", logger.Fields{
				"iterations": out.Iterations,
				"error":      err.Error(),
			})
			out.Err = err
			out.State = StateExhausted
			return out
		}
		if !more {
			logger.Info("No more schedule pages to load", logger.Fields{"iterations": out.Iterations})
			out.State = StateDone
			return out
		}

		out.Iterations++
		next := parseSnapshot(html, rng)
		stalled := !next.Latest.After(out.Latest) && next.Rows <= out.Rows
		out.Result = next

		logger.Debug("Loaded more schedule rows", logger.Fields{
			"iteration": out.Iterations,
			"rows":      next.Rows,
			"latest":    formatLatest(next.Latest),
		})

		if stalled {
			logger.Info("Schedule stopped growing", logger.Fields{"iterations": out.Iterations})
			out.State = StateDone
			return out
		}
	}

	logger.Info("Escalation covered requested range", logger.Fields{
		"iterations": out.Iterations,
		"latest":     formatLatest(out.Latest),
	})
	out.State = StateDone
	return out
}

func parseSnapshot(html string, rng event.Range) Result {
	res, err := Parse(strings.NewReader(html), rng)
	if err != nil {
		logger.Warn("Could not parse schedule snapshot", logger.Fields{"error": err.Error()})
	}
	return res
}

func formatLatest(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(event.ISODate)
}
