package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kentdenver/events-digest/internal/classify"
	"github.com/kentdenver/events-digest/internal/event"
)

// weekSelection is the range-selecting subset of the email flags
type weekSelection struct {
	thisWeek  bool
	nextWeek  bool
	startDate string
	endDate   string
}

// resolve turns the flags into a range. With no flags it picks next week.
func (w weekSelection) resolve(today time.Time) (event.Range, error) {
	explicit := w.startDate != "" || w.endDate != ""

	switch {
	case explicit && (w.startDate == "" || w.endDate == ""):
		return event.Range{}, errors.New("--start-date and --end-date must be given together")
	case explicit && (w.thisWeek || w.nextWeek):
		return event.Range{}, errors.New("--start-date/--end-date cannot be combined with --this-week or --next-week")
	case w.thisWeek && w.nextWeek:
		return event.Range{}, errors.New("--this-week and --next-week are mutually exclusive")
	case explicit:
		return event.ParseRange(w.startDate, w.endDate)
	case w.thisWeek:
		return event.Week(today, 0), nil
	default:
		return event.Week(today, 1), nil
	}
}

// parseDay parses a --date value, falling back to today when empty
func parseDay(value string, today time.Time) (time.Time, error) {
	if value == "" {
		return event.Midnight(today), nil
	}
	d, err := time.Parse(event.ISODate, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", value, err)
	}
	return d, nil
}

// folderName is the default email output folder, e.g. "sep22"
func folderName(start time.Time) string {
	return strings.ToLower(start.Format("Jan02"))
}

// emailFileName is e.g. "games-week-upper-school-sep22.html"
func emailFileName(level classify.Level, start time.Time) string {
	slug := strings.ReplaceAll(strings.ToLower(string(level)), " ", "-")
	return fmt.Sprintf("games-week-%s-%s.html", slug, folderName(start))
}

// emailPaths resolves where the two level emails go. Explicit per-level
// paths win over the folder.
type emailPaths struct {
	outputDir string
	middle    string
	upper     string
}

func (p emailPaths) forLevel(level classify.Level, start time.Time) string {
	switch {
	case level == classify.MiddleSchool && p.middle != "":
		return p.middle
	case level == classify.UpperSchool && p.upper != "":
		return p.upper
	}
	return filepath.Join(p.folder(start), emailFileName(level, start))
}

func (p emailPaths) folder(start time.Time) string {
	if p.outputDir != "" {
		return p.outputDir
	}
	return folderName(start)
}
