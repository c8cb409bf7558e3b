package cli

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kentdenver/events-digest/internal/calendar"
	"github.com/kentdenver/events-digest/internal/classify"
	"github.com/kentdenver/events-digest/internal/event"
	"github.com/kentdenver/events-digest/internal/logger"
	"github.com/kentdenver/events-digest/internal/publish"
	"github.com/kentdenver/events-digest/internal/render"
)

type emailOptions struct {
	week  weekSelection
	paths emailPaths
	ics   bool
}

func (a *app) emailCmd() *cobra.Command {
	opts := &emailOptions{}

	cmd := &cobra.Command{
		Use:   "email",
		Short: "Render the weekly emails, one per school level",
		Long: `Render the weekly events emails for a Monday-to-Sunday week.
Middle-school and upper-school events go to separate files; a level with no
events is skipped. Exits with code 2 when the week has no events at all.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEmail(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.week.thisWeek, "this-week", false, "Use the current week")
	cmd.Flags().BoolVar(&opts.week.nextWeek, "next-week", false, "Use next week (the default)")
	cmd.Flags().StringVar(&opts.week.startDate, "start-date", "", "Start date (YYYY-MM-DD), requires --end-date")
	cmd.Flags().StringVar(&opts.week.endDate, "end-date", "", "End date (YYYY-MM-DD), requires --start-date")
	cmd.Flags().StringVar(&opts.paths.outputDir, "output-dir", "", "Folder for both emails (default: the week's start, e.g. sep22)")
	cmd.Flags().StringVar(&opts.paths.middle, "output-ms", "", "Path for the middle-school email")
	cmd.Flags().StringVar(&opts.paths.upper, "output-us", "", "Path for the upper-school email")
	cmd.Flags().BoolVar(&opts.ics, "ics", false, "Also write an iCalendar file with every event of the week")

	cmd.MarkFlagsRequiredTogether("start-date", "end-date")
	cmd.MarkFlagsMutuallyExclusive("this-week", "next-week", "start-date")

	return cmd
}

func (a *app) runEmail(cmd *cobra.Command, opts *emailOptions) error {
	rng, err := opts.week.resolve(a.today())
	if err != nil {
		return err
	}

	logger.Info("Building weekly emails", logger.Fields{
		"start": rng.Start.Format(event.ISODate),
		"end":   rng.End.Format(event.ISODate),
	})

	coll := a.collect(cmd.Context(), rng)
	summary := newSummary("email", coll, a.opts.verbose)

	if len(coll.Events) == 0 {
		logger.Error("No events found for range", logger.Fields{"range": rng.String()}, ErrNoEvents)
		if err := a.finish(summary); err != nil {
			return err
		}
		return ErrNoEvents
	}

	middle, upper := classify.SplitBySchool(coll.Events)
	summary.ByLevel = map[string]int{
		string(classify.MiddleSchool): len(middle),
		string(classify.UpperSchool):  len(upper),
	}

	levels := []struct {
		level  classify.Level
		events []event.Event
	}{
		{classify.MiddleSchool, middle},
		{classify.UpperSchool, upper},
	}

	for _, l := range levels {
		if len(l.events) == 0 {
			logger.Warn("No events for school level, skipping email", logger.Fields{"level": l.level})
			continue
		}

		email := render.BuildEmail(l.events, render.EmailOptions{
			Branding: a.branding(),
			Level:    l.level,
			Range:    rng,
			Variants: a.cfg.Copy,
		})
		html, err := render.EmailHTML(email)
		if err != nil {
			return err
		}

		art := publish.Artifact{Kind: publish.KindEmail, Path: opts.paths.forLevel(l.level, rng.Start), Data: html}
		if err := a.publish(summary, art); err != nil {
			return err
		}
	}

	if opts.ics {
		if err := a.publishCalendar(summary, coll.Events, rng, opts.paths); err != nil {
			return err
		}
	}

	return a.finish(summary)
}

func (a *app) publishCalendar(summary *RunSummary, events []event.Event, rng event.Range, paths emailPaths) error {
	exporter := calendar.Exporter{
		Name:     fmt.Sprintf("%s Events (%s)", a.cfg.School.Name, rng.String()),
		Location: a.cfg.Location(),
		URL:      a.cfg.School.AthleticsURL,
		Now:      a.now,
	}

	var buf bytes.Buffer
	if err := exporter.Encode(&buf, events); err != nil {
		return err
	}

	art := publish.Artifact{
		Kind: publish.KindCalendar,
		Path: filepath.Join(paths.folder(rng.Start), calendar.FileName(rng.Start)),
		Data: buf.Bytes(),
	}
	return a.publish(summary, art)
}
