package event

import (
	"testing"
	"time"
)

func TestNewGame(t *testing.T) {
	date := time.Date(2025, time.September, 22, 16, 30, 0, 0, time.UTC)
	g := NewGame("Varsity Soccer", "Eagles", date, "4:00 PM", "Home Field", true, "soccer")

	if g.Kind() != KindGame {
		t.Errorf("expected kind %q, got %q", KindGame, g.Kind())
	}

	if !g.Day().Equal(time.Date(2025, time.September, 22, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date truncated to midnight, got %v", g.Day())
	}

	if g.DisplayTitle() != "Varsity Soccer" {
		t.Errorf("expected title 'Varsity Soccer', got '%s'", g.DisplayTitle())
	}

	if g.Badge() != HomeBadge {
		t.Errorf("expected home badge, got %+v", g.Badge())
	}
}

func TestGame_Subtitle(t *testing.T) {
	tests := []struct {
		name     string
		opponent string
		location string
		want     string
	}{
		{"opponent and location", "Eagles", "Home Field", "vs. Eagles • Home Field"},
		{"opponent only", "Eagles", "", "vs. Eagles"},
		{"location only", "", "Track", "Track"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Game{Opponent: tt.opponent, Location: tt.location}
			if got := g.Subtitle(); got != tt.want {
				t.Errorf("Subtitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGame_AwayBadge(t *testing.T) {
	g := &Game{IsHome: false}
	if g.Badge() != AwayBadge {
		t.Errorf("expected away badge, got %+v", g.Badge())
	}
}

func TestPerformance(t *testing.T) {
	p := NewPerformance("Fall Choir Concert", time.Date(2025, time.October, 2, 19, 0, 0, 0, time.UTC), "7:00 PM", "Theater", "concert")

	if p.Kind() != KindPerformance {
		t.Errorf("expected kind %q, got %q", KindPerformance, p.Kind())
	}
	if p.Badge() != EventBadge {
		t.Errorf("expected event badge, got %+v", p.Badge())
	}
	if p.Subtitle() != "Theater" {
		t.Errorf("expected subtitle 'Theater', got '%s'", p.Subtitle())
	}
	if p.Label() != "Fall Choir Concert" {
		t.Errorf("expected label to be the title, got '%s'", p.Label())
	}
}

func TestCombineAndGroup(t *testing.T) {
	mon := time.Date(2025, time.September, 22, 0, 0, 0, 0, time.UTC)
	tue := mon.AddDate(0, 0, 1)

	games := []*Game{
		NewGame("Varsity Soccer", "Eagles", mon, "4:00 PM", "Field", true, "soccer"),
		NewGame("JV Tennis", "Hawks", tue, "3:30 PM", "Courts", false, "tennis"),
	}
	perfs := []*Performance{
		NewPerformance("Jazz Night", mon, "7:00 PM", "Hall", "music"),
	}

	all := Combine(games, perfs)
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if !HasPerformance(all) {
		t.Error("expected HasPerformance to be true")
	}
	if HasPerformance(all[:2]) {
		t.Error("expected HasPerformance to be false for games only")
	}

	byDay := GroupByDay(all)
	if len(byDay[mon]) != 2 {
		t.Errorf("expected 2 events on Monday, got %d", len(byDay[mon]))
	}
	if len(byDay[tue]) != 1 {
		t.Errorf("expected 1 event on Tuesday, got %d", len(byDay[tue]))
	}
}
