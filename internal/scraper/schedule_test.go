package scraper

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/kentdenver/events-digest/internal/classify"
	"github.com/kentdenver/events-digest/internal/event"
)

func mustRange(t *testing.T, start, end string) event.Range {
	t.Helper()
	rng, err := event.ParseRange(start, end)
	if err != nil {
		t.Fatalf("ParseRange(%q, %q) error = %v", start, end, err)
	}
	return rng
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_Fixture(t *testing.T) {
	f, err := os.Open("../../testdata/fixtures/schedule.html")
	if err != nil {
		t.Fatalf("Failed to open fixture: %v", err)
	}
	defer f.Close() // nolint:errcheck

	res, err := Parse(f, mustRange(t, "2025-09-20", "2025-09-26"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if res.Rows != 7 {
		t.Errorf("Rows = %d, want 7", res.Rows)
	}
	if res.Parsed != 5 {
		t.Errorf("Parsed = %d, want 5", res.Parsed)
	}
	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", res.Skipped)
	}
	if !res.Latest.Equal(date(2025, time.October, 3)) {
		t.Errorf("Latest = %v, want 2025-10-03", res.Latest)
	}

	wantTeams := []string{
		"Varsity Soccer",
		"JV Volleyball",
		"Middle School Girls Field Hockey",
		"Varsity Golf",
	}
	if len(res.Games) != len(wantTeams) {
		t.Fatalf("got %d games, want %d", len(res.Games), len(wantTeams))
	}
	for i, want := range wantTeams {
		if res.Games[i].Team != want {
			t.Errorf("Games[%d].Team = %q, want %q", i, res.Games[i].Team, want)
		}
	}

	hockey := res.Games[2]
	if hockey.Sport != "field hockey" || !hockey.IsHome || hockey.Opponent != "Graland" {
		t.Errorf("unexpected field hockey game: %+v", hockey)
	}

	golf := res.Games[3]
	if !golf.Date.Equal(date(2025, time.September, 26)) {
		t.Errorf("date range row should use its first day, got %v", golf.Date)
	}
}

func TestParseRows_Example(t *testing.T) {
	rows := [][]string{
		{"Varsity Soccer", "vs. Eagles", "Sep222025", "4:00 PM", "Home Field", "Home"},
	}

	res := ParseRows(rows, mustRange(t, "2025-09-20", "2025-09-26"))
	if len(res.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(res.Games))
	}

	g := res.Games[0]
	if g.Sport != "soccer" {
		t.Errorf("Sport = %q, want soccer", g.Sport)
	}
	if !g.IsHome {
		t.Error("expected home game")
	}
	if g.Opponent != "Eagles" {
		t.Errorf("Opponent = %q, want Eagles", g.Opponent)
	}
	if !g.Date.Equal(date(2025, time.September, 22)) {
		t.Errorf("Date = %v, want 2025-09-22", g.Date)
	}
	if !classify.IsVarsity(g.Team) {
		t.Error("expected varsity")
	}
	if !classify.Featured(g) {
		t.Error("expected featured")
	}
}

func TestParseRows_RangeBoundaries(t *testing.T) {
	rng := mustRange(t, "2025-09-22", "2025-09-26")
	rows := [][]string{
		{"Varsity Soccer", "vs. A", "Sep212025", "", "", "Home"}, // day before start
		{"Varsity Soccer", "vs. B", "Sep222025", "", "", "Home"}, // start
		{"Varsity Soccer", "vs. C", "Sep242025", "", "", "Home"},
		{"Varsity Soccer", "vs. D", "Sep262025", "", "", "Home"}, // end
		{"Varsity Soccer", "vs. E", "Sep272025", "", "", "Home"}, // day after end
	}

	res := ParseRows(rows, rng)

	var got []string
	for _, g := range res.Games {
		got = append(got, g.Opponent)
	}
	if strings.Join(got, ",") != "B,C,D" {
		t.Errorf("ParseRows() opponents = %v, want [B C D]", got)
	}
	if !res.Latest.Equal(date(2025, time.September, 27)) {
		t.Errorf("Latest should count out-of-range rows, got %v", res.Latest)
	}
}

func TestParseRows_SkipsMalformed(t *testing.T) {
	rows := [][]string{
		{"Varsity Soccer", "vs. Eagles"},
		{"Varsity Soccer", "vs. Eagles", "Sep2212025", "4:00 PM", "Field", "Home"},
		{"Varsity Soccer", "vs. Eagles", "", "4:00 PM", "Field", "Home"},
		{"Boys XC", "vs. Meet", "Sep232025", "9:00 AM", "Park", "away"},
	}

	res := ParseRows(rows, mustRange(t, "2025-09-22", "2025-09-26"))

	if res.Skipped != 3 {
		t.Errorf("Skipped = %d, want 3", res.Skipped)
	}
	if len(res.Games) != 1 {
		t.Fatalf("got %d games, want 1", len(res.Games))
	}
	if res.Games[0].Sport != "cross country" {
		t.Errorf("Sport = %q, want cross country", res.Games[0].Sport)
	}
	if res.Games[0].IsHome {
		t.Error("away game marked home")
	}
}

func TestResult_Covers(t *testing.T) {
	rng := mustRange(t, "2025-09-22", "2025-09-28")

	tests := []struct {
		name string
		res  Result
		want bool
	}{
		{"empty", Result{}, false},
		{"short", Result{Parsed: 3, Latest: date(2025, time.September, 27)}, false},
		{"exact end", Result{Parsed: 3, Latest: date(2025, time.September, 28)}, true},
		{"past end", Result{Parsed: 3, Latest: date(2025, time.October, 3)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.Covers(rng); got != tt.want {
				t.Errorf("Covers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractRows_NoTable(t *testing.T) {
	_, err := ExtractRows(strings.NewReader("<html><body><p>Closed for summer</p></body></html>"))
	if err != ErrNoTable {
		t.Errorf("ExtractRows() error = %v, want ErrNoTable", err)
	}
}

func TestExtractRows_WhitespaceCollapsed(t *testing.T) {
	html := `<table><tr><td>  Varsity
	   Soccer </td><td>vs.   Eagles</td></tr></table>`

	rows, err := ExtractRows(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ExtractRows() error = %v", err)
	}
	if len(rows) != 1 || rows[0][0] != "Varsity Soccer" || rows[0][1] != "vs. Eagles" {
		t.Errorf("ExtractRows() = %q", rows)
	}
}
