package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kentdenver/events-digest/internal/config"
	"github.com/kentdenver/events-digest/internal/fetch"
	"github.com/kentdenver/events-digest/internal/logger"
	"github.com/kentdenver/events-digest/internal/metrics"
	"github.com/kentdenver/events-digest/internal/publish"
	"github.com/kentdenver/events-digest/internal/render"
	"github.com/kentdenver/events-digest/internal/scraper"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNoEvents = 2
)

// ErrNoEvents is returned when a weekly run finds nothing to send
var ErrNoEvents = errors.New("no events found for the requested range")

type rootOptions struct {
	configPath  string
	envFile     string
	format      string
	verbose     bool
	dryRun      bool
	metricsFile string
}

// app is the state shared by the subcommands once flags are parsed
type app struct {
	opts   *rootOptions
	stdout io.Writer
	stderr io.Writer
	now    func() time.Time

	cfg       *config.Config
	format    OutputFormat
	rec       *metrics.Recorder
	getter    fetch.Getter
	publisher publish.Publisher
	started   time.Time
}

// NewRootCmd creates the root command writing to stdout and stderr
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{opts: &rootOptions{}, stdout: stdout, stderr: stderr, now: time.Now}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events-digest",
		Short: "Build the weekly events emails and the daily signage page",
		Long: `A CLI tool that scrapes the athletics schedule and the arts calendar,
classifies each event, and renders static HTML: one weekly email per school
level, and a daily digital-signage page.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.opts.configPath, "config", "", "YAML file overlaid on the built-in configuration")
	flags.StringVar(&a.opts.envFile, "env-file", ".env", "Optional .env file loaded before the configuration")
	flags.StringVar(&a.opts.format, "format", "text", "Summary format: text or json")
	flags.BoolVar(&a.opts.verbose, "verbose", false, "Enable debug logging and list every event in the summary")
	flags.BoolVar(&a.opts.dryRun, "dry-run", false, "Print artifacts to stdout instead of writing files")
	flags.StringVar(&a.opts.metricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this path")

	cmd.AddCommand(a.emailCmd(), a.signageCmd())
	return cmd
}

// setup validates global flags and builds the shared collaborators
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.started = a.now()

	format := OutputFormat(strings.ToLower(a.opts.format))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", a.opts.format)
	}
	a.format = format

	logger.SetDefault(logger.New(a.logLevel(logger.LevelInfo), a.stderr))

	if err := config.LoadDotEnv(a.opts.envFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	a.cfg = cfg
	logger.SetDefault(logger.New(a.logLevel(cfg.Level()), a.stderr))

	a.rec = metrics.New()
	if a.getter == nil {
		a.getter = fetch.New(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}
	if a.publisher == nil {
		if a.opts.dryRun {
			a.publisher = publish.NewDryRun(a.stdout)
		} else {
			dir, err := publish.NewDir(".")
			if err != nil {
				return err
			}
			a.publisher = dir
		}
	}

	logger.Debug("Configuration loaded", logger.Fields{
		"config":   a.opts.configPath,
		"schedule": cfg.Sources.ScheduleURL,
		"arts":     cfg.Sources.ArtsFeedURL,
		"browser":  cfg.Browser.Enabled,
		"timezone": cfg.Timezone,
	})
	return nil
}

func (a *app) logLevel(configured logger.Level) logger.Level {
	if a.opts.verbose {
		return logger.LevelDebug
	}
	return configured
}

// today is the current calendar day in the configured timezone
func (a *app) today() time.Time {
	return a.now().In(a.cfg.Location())
}

func (a *app) branding() render.Branding {
	return render.Branding{
		Name:         a.cfg.School.Name,
		Mascot:       a.cfg.School.Mascot,
		AthleticsURL: a.cfg.School.AthleticsURL,
		Credit:       a.cfg.School.SignageCredit,
	}
}

// pager builds the Stage 2 browser strategy, or nil when it is disabled
func (a *app) pager() scraper.Pager {
	if !a.cfg.Browser.Enabled {
		return nil
	}
	return scraper.NewBrowserPager(scraper.BrowserOptions{
		URL:              a.cfg.Sources.ScheduleURL,
		ExecPath:         a.cfg.Browser.ExecPath,
		UserAgent:        a.cfg.HTTP.UserAgent,
		LoadMoreSelector: a.cfg.Browser.LoadMoreSelector,
		SettleDelay:      a.cfg.Browser.SettleDelay,
		StepTimeout:      a.cfg.Browser.StepTimeout,
	})
}

// publish delivers an artifact and records it in the summary and metrics
func (a *app) publish(summary *RunSummary, art publish.Artifact) error {
	path, err := a.publisher.Publish(art)
	if err != nil {
		return fmt.Errorf("publishing %s: %w", art.Path, err)
	}
	a.rec.Artifact(string(art.Kind))
	summary.Artifacts = append(summary.Artifacts, ArtifactSummary{Kind: art.Kind, Path: path, Bytes: len(art.Data)})
	logger.Info("Wrote artifact", logger.Fields{"kind": art.Kind, "path": path, "bytes": len(art.Data)})
	return nil
}

// finish prints the run summary and writes the metrics file if requested
func (a *app) finish(summary *RunSummary) error {
	finished := a.now()
	a.rec.Finish(a.started, finished)
	summary.GeneratedAt = finished.UTC()
	summary.DryRun = a.opts.dryRun

	if err := WriteOutput(a.stdout, summary, a.format, a.opts.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if a.opts.metricsFile != "" {
		if err := a.rec.WriteFile(a.opts.metricsFile); err != nil {
			return err
		}
	}
	return nil
}

// ExitCode maps an error returned by the command tree to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrNoEvents):
		return ExitNoEvents
	default:
		return ExitError
	}
}

// Run executes the CLI with args and returns the exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
