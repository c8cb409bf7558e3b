package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/kentdenver/events-digest/internal/event"
	"github.com/kentdenver/events-digest/internal/publish"
	"github.com/kentdenver/events-digest/internal/scraper"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ArtifactSummary describes one file the run produced
type ArtifactSummary struct {
	Kind  publish.Kind `json:"kind"`
	Path  string       `json:"path"`
	Bytes int          `json:"bytes"`
}

// EscalationSummary reports how the schedule scrape went
type EscalationSummary struct {
	Outcome    string `json:"outcome"`
	State      string `json:"state"`
	Iterations int    `json:"iterations"`
	Error      string `json:"error,omitempty"`
}

// EventLine is one event in the verbose listing
type EventLine struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Badge    string `json:"badge"`
}

// RunSummary contains data to be output after a run
type RunSummary struct {
	Command      string            `json:"command"`
	GeneratedAt  time.Time         `json:"generated_at"`
	Range        string            `json:"range"`
	Start        string            `json:"start"`
	End          string            `json:"end"`
	EventCount   int               `json:"event_count"`
	Games        int               `json:"games"`
	Performances int               `json:"performances"`
	ByLevel      map[string]int    `json:"by_level,omitempty"`
	Escalation   EscalationSummary `json:"escalation"`
	SkippedRows  int               `json:"skipped_rows"`
	SkippedArts  int               `json:"skipped_arts"`
	Artifacts    []ArtifactSummary `json:"artifacts"`
	DryRun       bool              `json:"dry_run,omitempty"`
	Events       []EventLine       `json:"events,omitempty"`
}

// newSummary fills the counts of a summary from a collection
func newSummary(command string, c Collection, verbose bool) *RunSummary {
	s := &RunSummary{
		Command:      command,
		Range:        c.Range.String(),
		Start:        c.Range.Start.Format(event.ISODate),
		End:          c.Range.End.Format(event.ISODate),
		EventCount:   len(c.Events),
		Games:        len(c.Schedule.Games),
		Performances: len(c.Arts.Performances),
		Escalation:   escalationSummary(c.Schedule),
		SkippedRows:  c.Schedule.Skipped,
		SkippedArts:  c.Arts.Skipped,
		Artifacts:    []ArtifactSummary{},
	}
	if verbose {
		for _, e := range c.Events {
			s.Events = append(s.Events, EventLine{
				Date:     e.Day().Format(event.ISODate),
				Time:     e.Clock(),
				Kind:     string(e.Kind()),
				Title:    e.DisplayTitle(),
				Subtitle: e.Subtitle(),
				Badge:    e.Badge().Text,
			})
		}
	}
	return s
}

func escalationSummary(o scraper.Outcome) EscalationSummary {
	s := EscalationSummary{
		Outcome:    o.Label(),
		State:      string(o.State),
		Iterations: o.Iterations,
	}
	if o.Err != nil {
		s.Error = o.Err.Error()
	}
	return s
}

// WriteOutput writes the summary in the specified format
func WriteOutput(w io.Writer, summary *RunSummary, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeText(w, summary, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the summary as JSON
func writeJSON(w io.Writer, summary *RunSummary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, summary *RunSummary, verbose bool) error {
	fmt.Fprintf(w, "%s: %s\n", summary.Command, summary.Range)

	if summary.EventCount == 0 {
		fmt.Fprintln(w, "No events found.")
	} else {
		fmt.Fprintf(w, "Events: %d (%d games, %d performances)\n", summary.EventCount, summary.Games, summary.Performances)
	}

	if len(summary.ByLevel) > 0 {
		levels := make([]string, 0, len(summary.ByLevel))
		for level := range summary.ByLevel {
			levels = append(levels, level)
		}
		sort.Strings(levels)

		for _, level := range levels {
			fmt.Fprintf(w, "  %s: %d\n", level, summary.ByLevel[level])
		}
	}

	esc := summary.Escalation
	fmt.Fprintf(w, "Schedule: %s (%s, %d iterations)\n", esc.Outcome, esc.State, esc.Iterations)
	if esc.Error != "" {
		fmt.Fprintf(w, "  Last error: %s\n", esc.Error)
	}
	if summary.SkippedRows > 0 || summary.SkippedArts > 0 {
		fmt.Fprintf(w, "Skipped: %d schedule rows, %d arts entries\n", summary.SkippedRows, summary.SkippedArts)
	}

	if verbose && len(summary.Events) > 0 {
		fmt.Fprintln(w, "\nEvents:")
		for _, e := range summary.Events {
			fmt.Fprintf(w, "  %s %-8s %s [%s]\n", e.Date, e.Time, e.Title, e.Badge)
			if e.Subtitle != "" {
				fmt.Fprintf(w, "       %s\n", e.Subtitle)
			}
		}
	}

	verb := "Wrote"
	if summary.DryRun {
		verb = "Would write"
	}
	if len(summary.Artifacts) > 0 {
		fmt.Fprintf(w, "\n%s:\n", verb)
		for _, a := range summary.Artifacts {
			fmt.Fprintf(w, "  %-8s %s (%d bytes)\n", a.Kind, a.Path, a.Bytes)
		}
	}
	fmt.Fprintf(w, "\nTotal: %d artifacts\n", len(summary.Artifacts))

	return nil
}
