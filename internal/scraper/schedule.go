package scraper

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kentdenver/events-digest/internal/classify"
	"github.com/kentdenver/events-digest/internal/event"
	"github.com/kentdenver/events-digest/internal/logger"
)

// Cell positions in a schedule row
const (
	cellTeam = iota
	cellOpponent
	cellDate
	cellTime
	cellLocation
	cellAdvantage

	minCells
)

const opponentPrefix = "vs."

// ErrNoTable is returned when the page has no schedule table
var ErrNoTable = errors.New("schedule table not found")

// Result is the outcome of parsing one snapshot of the schedule page
type Result struct {
	Games []*event.Game

	// Latest is the latest date among all parseable rows, in range or not.
	// It is the progress signal for pagination.
	Latest time.Time

	Rows    int // data rows seen
	Parsed  int // rows with a usable date
	Skipped int // rows dropped as malformed
}

// Covers reports whether the snapshot reaches the end of rng
func (r Result) Covers(rng event.Range) bool {
	return r.Parsed > 0 && !r.Latest.Before(rng.End)
}

// ExtractRows reads the cell text of every data row in the first table.
// Header rows (no td cells) are dropped. Cell text has its whitespace collapsed.
func ExtractRows(r io.Reader) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return
		}

		row := make([]string, 0, cells.Length())
		cells.Each(func(_ int, td *goquery.Selection) {
			row = append(row, cleanText(td.Text()))
		})
		rows = append(rows, row)
	})

	return rows, nil
}

// ParseRows converts raw rows into games dated within rng. Rows that are too
// short or carry an unparseable date are skipped with a warning.
func ParseRows(rows [][]string, rng event.Range) Result {
	res := Result{Rows: len(rows)}

	for i, row := range rows {
		if len(row) < minCells {
			res.Skipped++
			logger.Warn("Skipping schedule row with too few cells", logger.Fields{
				"row":   i,
				"cells": len(row),
			})
			continue
		}

		date, err := event.ParseScheduleDate(row[cellDate])
		if err != nil {
			res.Skipped++
			logger.Warn("Skipping schedule row with unparseable date", logger.Fields{
				"row":        i,
				"date":       row[cellDate],
				"normalized": event.NormalizeDateToken(row[cellDate]),
			})
			continue
		}

		res.Parsed++
		if date.After(res.Latest) {
			res.Latest = date
		}

		if !rng.Contains(date) {
			continue
		}

		res.Games = append(res.Games, parseGame(row, date))
	}

	return res
}

// Parse extracts and parses a schedule page in one step
func Parse(r io.Reader, rng event.Range) (Result, error) {
	rows, err := ExtractRows(r)
	if err != nil {
		return Result{}, err
	}
	return ParseRows(rows, rng), nil
}

func parseGame(row []string, date time.Time) *event.Game {
	team := row[cellTeam]
	opponent := strings.TrimSpace(strings.TrimPrefix(row[cellOpponent], opponentPrefix))
	isHome := strings.EqualFold(row[cellAdvantage], "home")

	return event.NewGame(
		team,
		opponent,
		date,
		row[cellTime],
		row[cellLocation],
		isHome,
		classify.SportFor(team),
	)
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
