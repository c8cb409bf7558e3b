package calendar

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/kentdenver/events-digest/internal/event"
)

func denver(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Denver")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return loc
}

func fixedNow() time.Time {
	return time.Date(2025, time.September, 20, 12, 0, 0, 0, time.UTC)
}

func sampleEvents() []event.Event {
	return []event.Event{
		event.NewGame("Varsity Soccer", "Eagles", time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), "4:00 PM", "Home Field", true, "soccer"),
		event.NewPerformance("Upper School Art Exhibit", time.Date(2025, 9, 25, 0, 0, 0, 0, time.UTC), "All Day", "Gallery", "art"),
		event.NewGame("JV Tennis", "Regis", time.Date(2025, 9, 26, 0, 0, 0, 0, time.UTC), "TBD", "Courts", false, "tennis"),
	}
}

func TestExport(t *testing.T) {
	x := Exporter{Name: "Kent Denver Events", Location: denver(t), URL: "https://example.org/athletics", Now: fixedNow}

	ics := x.Export(sampleEvents())

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + ProductID,
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Kent Denver Events",
		"DTSTAMP:20250920T120000Z",
		"SUMMARY:Varsity Soccer vs. Eagles",
		"LOCATION:Home Field",
		"CATEGORIES:SOCCER",
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 3 {
		t.Errorf("Expected 3 BEGIN:VEVENT, got %d", got)
	}
	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}
}

func TestExport_EventTimes(t *testing.T) {
	x := Exporter{Location: denver(t), Now: fixedNow}
	ics := x.Export(sampleEvents()[:1])

	// 4:00 PM MDT is 22:00 UTC
	if !strings.Contains(ics, "DTSTART:20250922T220000Z") {
		t.Error("timed event should start at 4 PM Denver time")
	}
	if !strings.Contains(ics, "DTEND:20250923T000000Z") {
		t.Error("timed event should last two hours")
	}
}

func TestExport_AllDay(t *testing.T) {
	x := Exporter{Now: fixedNow}
	ics := x.Export(sampleEvents()[1:])

	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20250925") {
		t.Error("All Day performance should be exported as a date")
	}
	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20250926") {
		t.Error("TBD game should fall back to an all-day entry")
	}
	if strings.Contains(ics, "X-WR-CALNAME:") {
		t.Error("Should not include X-WR-CALNAME when name is empty")
	}
}

func TestExport_SpecialCharacters(t *testing.T) {
	events := []event.Event{
		event.NewPerformance("Band; Choir, Strings", time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), "7:00 PM", "Hall", "music"),
	}
	ics := Exporter{Now: fixedNow}.Export(events)

	if strings.Contains(ics, "SUMMARY:Band; Choir, Strings") {
		t.Error("Special characters should be escaped in SUMMARY")
	}
	if !strings.Contains(ics, `SUMMARY:Band\; Choir\, Strings`) {
		t.Error("SUMMARY should carry escaped text")
	}
}

func TestExport_Empty(t *testing.T) {
	if ics := (Exporter{}).Export(nil); ics != "" {
		t.Error("Empty events should return empty string")
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := (Exporter{Now: fixedNow}).Encode(&buf, sampleEvents()); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "BEGIN:VCALENDAR") {
		t.Errorf("Encode() wrote %q", buf.String()[:min(40, buf.Len())])
	}
}

func TestUID(t *testing.T) {
	events := sampleEvents()

	first := UID(events[0])
	if first != UID(events[0]) {
		t.Error("UID should be stable for the same event")
	}
	if !strings.HasSuffix(first, "@"+uidDomain) {
		t.Errorf("UID() = %q, want domain suffix", first)
	}

	seen := map[string]bool{}
	for _, e := range events {
		seen[UID(e)] = true
	}
	if len(seen) != len(events) {
		t.Errorf("expected %d distinct UIDs, got %d", len(events), len(seen))
	}
}

func TestStartTime(t *testing.T) {
	day := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		clock  string
		ok     bool
		hour   int
		minute int
	}{
		{"4:00 PM", true, 16, 0},
		{"10:30 AM", true, 10, 30},
		{"7:15 pm", true, 19, 15},
		{"12:00 PM", true, 12, 0},
		{"All Day", false, 0, 0},
		{"TBD", false, 0, 0},
		{"", false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			e := event.NewGame("Varsity Soccer", "", day, tt.clock, "", true, "soccer")
			got, ok := StartTime(e, time.UTC)
			if ok != tt.ok {
				t.Fatalf("StartTime(%q) ok = %v, want %v", tt.clock, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Hour() != tt.hour || got.Minute() != tt.minute || got.Day() != 22 {
				t.Errorf("StartTime(%q) = %v", tt.clock, got)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	monday := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
	if got := FileName(monday); got != "events-sep.ics" {
		t.Errorf("FileName() = %q, want %q", got, "events-sep.ics")
	}
}
