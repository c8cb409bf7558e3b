package cli

import (
	"github.com/spf13/cobra"

	"github.com/kentdenver/events-digest/internal/event"
	"github.com/kentdenver/events-digest/internal/logger"
	"github.com/kentdenver/events-digest/internal/publish"
	"github.com/kentdenver/events-digest/internal/render"
)

// DefaultSignagePath is where the signage page is written by default
const DefaultSignagePath = "index.html"

type signageOptions struct {
	date   string
	output string
}

func (a *app) signageCmd() *cobra.Command {
	opts := &signageOptions{}

	cmd := &cobra.Command{
		Use:   "signage",
		Short: "Render the digital-signage page for one day",
		Long: `Render today's events as a single fixed-size page for a lobby display.
A day with no events renders the "No Events Today" state and is not an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSignage(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "Day to render (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.output, "output", DefaultSignagePath, "Output path")

	return cmd
}

func (a *app) runSignage(cmd *cobra.Command, opts *signageOptions) error {
	day, err := parseDay(opts.date, a.today())
	if err != nil {
		return err
	}
	rng := event.SingleDay(day)

	logger.Info("Building signage", logger.Fields{"date": day.Format(event.ISODate)})

	coll := a.collect(cmd.Context(), rng)
	summary := newSummary("signage", coll, a.opts.verbose)

	if len(coll.Events) == 0 {
		logger.Info("No events today, rendering empty state", logger.Fields{"date": day.Format(event.ISODate)})
	}

	page := render.BuildSignage(coll.Events, render.SignageOptions{
		Branding: a.branding(),
		Day:      day,
	})
	html, err := render.SignageHTML(page)
	if err != nil {
		return err
	}

	art := publish.Artifact{Kind: publish.KindSignage, Path: opts.output, Data: html}
	if err := a.publish(summary, art); err != nil {
		return err
	}

	return a.finish(summary)
}
