package event

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeDateToken(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Sep222025", "Sep 22 2025"},
		{"Oct32025", "Oct 3 2025"},
		{"Oct202025-Oct212025", "Oct 20 2025"},
		{"Sep 22 2025", "Sep 22 2025"},
		{"  Sep   22  2025 ", "Sep 22 2025"},
		{"Nov1032025", "Nov 10 32025"},
		{"Sep-22", "Sep-22"},
		{"TBD", "TBD"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeDateToken(tt.raw); got != tt.want {
				t.Errorf("NormalizeDateToken(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseScheduleDate(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantYear  int
		wantMonth time.Month
		wantDay   int
		wantErr   bool
	}{
		{
			name:      "concatenated two-digit day",
			raw:       "Sep222025",
			wantYear:  2025,
			wantMonth: time.September,
			wantDay:   22,
		},
		{
			name:      "concatenated single-digit day",
			raw:       "Oct32025",
			wantYear:  2025,
			wantMonth: time.October,
			wantDay:   3,
		},
		{
			name:      "date range takes first date",
			raw:       "Oct202025-Oct212025",
			wantYear:  2025,
			wantMonth: time.October,
			wantDay:   20,
		},
		{
			name:      "already spaced",
			raw:       "Mar 13 2026",
			wantYear:  2026,
			wantMonth: time.March,
			wantDay:   13,
		},
		{
			name:      "upper case month",
			raw:       "DEC52025",
			wantYear:  2025,
			wantMonth: time.December,
			wantDay:   5,
		},
		{
			name:    "seven digit run is unparseable",
			raw:     "Nov1032025",
			wantErr: true,
		},
		{
			name:    "day out of range",
			raw:     "Sep452025",
			wantErr: true,
		},
		{
			name:    "not a date",
			raw:     "Postponed",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScheduleDate(tt.raw)

			if tt.wantErr {
				if !errors.Is(err, ErrUnparseable) {
					t.Errorf("ParseScheduleDate(%q) error = %v, want ErrUnparseable", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScheduleDate(%q) unexpected error: %v", tt.raw, err)
			}

			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth || got.Day() != tt.wantDay {
				t.Errorf("ParseScheduleDate(%q) = %v, want %d-%02d-%02d", tt.raw, got, tt.wantYear, tt.wantMonth, tt.wantDay)
			}
		})
	}
}

func TestParseScheduleDate_Idempotent(t *testing.T) {
	for _, raw := range []string{"Sep222025", "Oct32025", "Jan 1 2026"} {
		first, err := ParseScheduleDate(raw)
		if err != nil {
			t.Fatalf("ParseScheduleDate(%q): %v", raw, err)
		}

		formatted := first.Format("Jan 2 2006")
		second, err := ParseScheduleDate(formatted)
		if err != nil {
			t.Fatalf("ParseScheduleDate(%q): %v", formatted, err)
		}

		if !first.Equal(second) {
			t.Errorf("re-parsing %q gave %v, want %v", formatted, second, first)
		}
		if NormalizeDateToken(formatted) != formatted {
			t.Errorf("NormalizeDateToken(%q) changed an already normalized token", formatted)
		}
	}
}

func TestRange_Contains(t *testing.T) {
	r, err := ParseRange("2025-09-20", "2025-09-26")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"day before start", time.Date(2025, 9, 19, 23, 59, 0, 0, time.UTC), false},
		{"exactly start", time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC), true},
		{"inside", time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC), true},
		{"exactly end with time of day", time.Date(2025, 9, 26, 18, 0, 0, 0, time.UTC), true},
		{"day after end", time.Date(2025, 9, 27, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestParseRange_Errors(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"bad start", "2025/09/20", "2025-09-26"},
		{"bad end", "2025-09-20", "tomorrow"},
		{"end before start", "2025-09-26", "2025-09-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRange(tt.start, tt.end); err == nil {
				t.Errorf("ParseRange(%q, %q) expected error", tt.start, tt.end)
			}
		})
	}
}

func TestRange_String(t *testing.T) {
	tests := []struct {
		start, end string
		want       string
	}{
		{"2025-09-22", "2025-09-27", "September 22–27, 2025"},
		{"2025-09-29", "2025-10-05", "September 29–October 05, 2025"},
		{"2025-12-29", "2026-01-04", "December 29, 2025–January 04, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			r, err := ParseRange(tt.start, tt.end)
			if err != nil {
				t.Fatalf("ParseRange: %v", err)
			}
			if got := r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeek(t *testing.T) {
	// Wednesday
	now := time.Date(2025, time.September, 24, 10, 0, 0, 0, time.UTC)

	this := Week(now, 0)
	if this.Start.Format(ISODate) != "2025-09-22" || this.End.Format(ISODate) != "2025-09-28" {
		t.Errorf("Week(now, 0) = %s..%s, want 2025-09-22..2025-09-28", this.Start.Format(ISODate), this.End.Format(ISODate))
	}

	next := Week(now, 1)
	if next.Start.Format(ISODate) != "2025-09-29" || next.End.Format(ISODate) != "2025-10-05" {
		t.Errorf("Week(now, 1) = %s..%s, want 2025-09-29..2025-10-05", next.Start.Format(ISODate), next.End.Format(ISODate))
	}

	// Sunday belongs to the week that started the previous Monday
	sunday := time.Date(2025, time.September, 28, 10, 0, 0, 0, time.UTC)
	if got := Week(sunday, 0).Start.Format(ISODate); got != "2025-09-22" {
		t.Errorf("Week(sunday, 0).Start = %s, want 2025-09-22", got)
	}
}

func TestRange_DaysAndWeek(t *testing.T) {
	r := Week(time.Date(2025, time.September, 22, 0, 0, 0, 0, time.UTC), 0)

	days := r.Days()
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Weekday() != time.Monday || days[6].Weekday() != time.Sunday {
		t.Errorf("expected Monday..Sunday, got %s..%s", days[0].Weekday(), days[6].Weekday())
	}

	if r.ISOWeek() != 39 {
		t.Errorf("ISOWeek() = %d, want 39", r.ISOWeek())
	}

	if !IsWeekday(days[4]) || IsWeekday(days[5]) {
		t.Error("expected Friday to be a weekday and Saturday not")
	}
}
