package scheduler

import (
	"testing"
	"time"
)

func TestNewScheduler(t *testing.T) {
	s, err := NewScheduler("America/New_York")
	if err != nil {
		t.Fatalf("NewScheduler failed: %v", err)
	}
	defer s.Stop()

	if s.location.String() != "America/New_York" {
		t.Errorf("location = %q, want 'America/New_York'", s.location.String())
	}
}

func TestNewSchedulerInvalidTimezone(t *testing.T) {
	_, err := NewScheduler("Invalid/Zone")
	if err == nil {
		t.Fatal("expected error for invalid timezone")
	}
}

func TestDailyAndStop(t *testing.T) {
	s, _ := NewScheduler("UTC")
	defer s.Stop()

	if err := s.Daily("rollover", "00:00", func() {}); err != nil {
		t.Fatalf("Daily failed: %v", err)
	}
	if err := s.Daily("report", "12:00", func() {}); err != nil {
		t.Fatalf("Daily failed: %v", err)
	}

	s.Start()

	if entries := s.cron.Entries(); len(entries) != 2 {
		t.Errorf("expected 2 cron entries, got %d", len(entries))
	}
}

func TestDailyReplacesSameName(t *testing.T) {
	s, _ := NewScheduler("UTC")
	defer s.Stop()

	s.Daily("rollover", "00:00", func() {})
	s.Daily("rollover", "00:05", func() {})

	if entries := s.cron.Entries(); len(entries) != 1 {
		t.Errorf("expected 1 cron entry, got %d", len(entries))
	}

	next, ok := s.Next("rollover")
	if !ok {
		t.Fatal("Next reported unknown job")
	}
	if next.Hour() != 0 || next.Minute() != 5 {
		t.Errorf("next run = %v, want hh:mm 00:05", next)
	}
}

func TestNextUsesLocation(t *testing.T) {
	s, _ := NewScheduler("Asia/Tokyo")
	defer s.Stop()

	s.Daily("rollover", "00:00", func() {})
	next, ok := s.Next("rollover")
	if !ok {
		t.Fatal("Next reported unknown job")
	}
	local := next.In(s.location)
	if local.Hour() != 0 || local.Minute() != 0 {
		t.Errorf("next run = %v, want local midnight", local)
	}
	if !next.After(time.Now()) {
		t.Errorf("next run %v is not in the future", next)
	}

	if _, ok := s.Next("missing"); ok {
		t.Error("Next reported a job that was never scheduled")
	}
}

func TestDailyInvalidTime(t *testing.T) {
	s, _ := NewScheduler("UTC")
	defer s.Stop()

	tests := []string{
		"invalid",
		"25:00",
		"12:60",
		"9:00",
		"12:0",
	}

	for _, tt := range tests {
		if err := s.Daily("job", tt, func() {}); err == nil {
			t.Errorf("expected error for invalid time %q", tt)
		}
	}
}

func TestStopWithoutStart(t *testing.T) {
	s, _ := NewScheduler("UTC")
	s.Stop()
	s.Stop()
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		input   string
		hour    int
		minute  int
		wantErr bool
	}{
		{"09:00", 9, 0, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"25:00", 0, 0, true},
		{"invalid", 0, 0, true},
	}

	for _, tt := range tests {
		hour, minute, err := parseTime(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseTime(%q) should return error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
		}
		if hour != tt.hour || minute != tt.minute {
			t.Errorf("parseTime(%q) = (%d, %d), want (%d, %d)",
				tt.input, hour, minute, tt.hour, tt.minute)
		}
	}
}

func TestBuildCronSpec(t *testing.T) {
	if spec := buildCronSpec(0, 0); spec != "0 0 * * *" {
		t.Errorf("buildCronSpec(0, 0) = %q, want %q", spec, "0 0 * * *")
	}
	if spec := buildCronSpec(23, 59); spec != "59 23 * * *" {
		t.Errorf("buildCronSpec(23, 59) = %q, want %q", spec, "59 23 * * *")
	}
}
