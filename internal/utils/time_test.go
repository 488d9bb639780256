package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-09-01")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.September || got.Day() != 1 {
		t.Errorf("ParseDate() = %v, want 2026-09-01", got)
	}

	for _, bad := range []string{"", "09/01/2026", "2026-9-1", "not-a-date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDiffDays(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    MustDate("2026-09-01"),
			b:    MustDate("2026-09-01"),
			want: 0,
		},
		{
			name: "one day apart",
			a:    MustDate("2026-09-02"),
			b:    MustDate("2026-09-01"),
			want: 1,
		},
		{
			name: "negative when a before b",
			a:    MustDate("2026-08-29"),
			b:    MustDate("2026-09-01"),
			want: -3,
		},
		{
			name: "partial days truncated",
			a:    time.Date(2026, 9, 2, 0, 30, 0, 0, time.UTC),
			b:    time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "across month boundary",
			a:    MustDate("2026-09-03"),
			b:    MustDate("2026-08-28"),
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiffDays(tt.a, tt.b); got != tt.want {
				t.Errorf("DiffDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-09-01", 3)
	if err != nil {
		t.Fatalf("AddDays() error = %v", err)
	}
	if got != "2026-09-04" {
		t.Errorf("AddDays(+3) = %s, want 2026-09-04", got)
	}

	got, err = AddDays("2026-09-01", -5)
	if err != nil {
		t.Fatalf("AddDays() error = %v", err)
	}
	if got != "2026-08-27" {
		t.Errorf("AddDays(-5) = %s, want 2026-08-27", got)
	}

	if _, err := AddDays("bogus", 1); err == nil {
		t.Error("AddDays() should fail on an unparseable date")
	}
}

func TestValidateDateFormat(t *testing.T) {
	if !ValidateDateFormat("2026-09-01") {
		t.Error("ValidateDateFormat() should accept YYYY-MM-DD")
	}
	if ValidateDateFormat("01-09-2026") {
		t.Error("ValidateDateFormat() should reject DD-MM-YYYY")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{1500, "25:00"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
