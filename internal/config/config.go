package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/kentdenver/events-digest/internal/layout"
	"github.com/kentdenver/events-digest/internal/logger"
)

//go:embed default.yaml
var defaultYAML []byte

// Environment variables that override the loaded file
const (
	EnvScheduleURL = "EVENTS_SCHEDULE_URL"
	EnvArtsFeedURL = "EVENTS_ARTS_FEED_URL"
	EnvChromePath  = "EVENTS_CHROME_PATH"
	EnvBrowser     = "EVENTS_BROWSER"
	EnvTimezone    = "EVENTS_TIMEZONE"
	EnvLogLevel    = "EVENTS_LOG_LEVEL"
)

type SchoolConfig struct {
	Name          string `yaml:"name"`
	Mascot        string `yaml:"mascot"`
	AthleticsURL  string `yaml:"athletics_url"`  // linked from the email CTA
	SignageCredit string `yaml:"signage_credit"` // footer line on signage
}

type SourcesConfig struct {
	ScheduleURL string `yaml:"schedule_url"`
	ArtsFeedURL string `yaml:"arts_feed_url"`
}

type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// BrowserConfig controls the headless-browser fallback for the schedule
type BrowserConfig struct {
	Enabled          bool          `yaml:"enabled"`
	ExecPath         string        `yaml:"exec_path"` // empty: find Chrome on PATH
	LoadMoreSelector string        `yaml:"load_more_selector"`
	SettleDelay      time.Duration `yaml:"settle_delay"`
	StepTimeout      time.Duration `yaml:"step_timeout"`
	MaxIterations    int           `yaml:"max_iterations"`
}

type Config struct {
	School   SchoolConfig    `yaml:"school"`
	Sources  SourcesConfig   `yaml:"sources"`
	HTTP     HTTPConfig      `yaml:"http"`
	Browser  BrowserConfig   `yaml:"browser"`
	Timezone string          `yaml:"timezone"`
	LogLevel string          `yaml:"log_level"` // --verbose overrides
	Copy     layout.Variants `yaml:"copy"`
}

// Default returns the built-in configuration
func Default() (*Config, error) {
	var c Config
	if err := decode(defaultYAML, &c); err != nil {
		return nil, fmt.Errorf("decoding built-in defaults: %w", err)
	}
	return &c, nil
}

// Load returns the defaults overlaid with the file at path (if any) and then
// with environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := decode(b, c); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}

	if err := c.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func decode(b []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides fields from environment variables read through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvScheduleURL); ok && v != "" {
		c.Sources.ScheduleURL = v
	}
	if v, ok := lookup(EnvArtsFeedURL); ok && v != "" {
		c.Sources.ArtsFeedURL = v
	}
	if v, ok := lookup(EnvChromePath); ok && v != "" {
		c.Browser.ExecPath = v
	}
	if v, ok := lookup(EnvTimezone); ok && v != "" {
		c.Timezone = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvBrowser); ok && v != "" {
		enabled, err := parseSwitch(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBrowser, err)
		}
		c.Browser.Enabled = enabled
	}
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(v)
}

// Validate reports every problem with the configuration at once
func (c *Config) Validate() error {
	var errs []error

	if c.Sources.ScheduleURL == "" {
		errs = append(errs, errors.New("sources.schedule_url is required"))
	}
	if c.Sources.ArtsFeedURL == "" {
		errs = append(errs, errors.New("sources.arts_feed_url is required"))
	}
	if c.HTTP.Timeout <= 0 {
		errs = append(errs, errors.New("http.timeout must be positive"))
	}
	if c.Browser.MaxIterations <= 0 {
		errs = append(errs, errors.New("browser.max_iterations must be positive"))
	}
	if _, err := time.LoadLocation(c.Timezone); c.Timezone == "" || err != nil {
		errs = append(errs, fmt.Errorf("timezone %q is not a known location", c.Timezone))
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if err := c.Copy.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Level returns the configured log level
func (c *Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelInfo
	}
	return level
}

// Location returns the configured timezone
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
