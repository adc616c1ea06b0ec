package domain

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:00": 540,
		"09:05": 545,
		"23:59": 1439,
	}
	for timeOfDay, want := range cases {
		got, err := ToMinutes(timeOfDay)
		if err != nil {
			t.Fatalf("failed to parse %s : %v", timeOfDay, err)
		}
		if got != want {
			t.Fatalf("parsed %s to %d, expected %d", timeOfDay, got, want)
		}
	}
}

func TestToMinutesInvalid(t *testing.T) {
	for _, timeOfDay := range []string{"", "9", "12:60", "ab:cd", "12:00:00", "-1:30"} {
		if _, err := ToMinutes(timeOfDay); err == nil {
			t.Fatalf("expected error for time of day %q", timeOfDay)
		}
	}
}

func TestToTimeOfDayRoundTrip(t *testing.T) {
	for minutes := 0; minutes < 1440; minutes++ {
		back, err := ToMinutes(ToTimeOfDay(minutes))
		if err != nil {
			t.Fatalf("failed to parse %s : %v", ToTimeOfDay(minutes), err)
		}
		if back != minutes {
			t.Fatalf("round trip of %d returned %d", minutes, back)
		}
	}
}

func TestToTimeOfDayPastMidnight(t *testing.T) {
	// simulated clocks can run past midnight, hours keep counting upward
	if got := ToTimeOfDay(1500); got != "25:00" {
		t.Fatalf("expected 25:00 for 1500 minutes, got %s", got)
	}
	if got := ToTimeOfDay(1439); got != "23:59" {
		t.Fatalf("expected 23:59 for 1439 minutes, got %s", got)
	}
	back, err := ToMinutes("25:00")
	if err != nil || back != 1500 {
		t.Fatalf("expected 25:00 to parse back to 1500, got %d (%v)", back, err)
	}
}

func TestNewTask(t *testing.T) {
	task, err := NewTask(1, "09:30", 5, 2, "2024-01-15", 0)
	if err != nil {
		t.Fatalf("failed to create task : %v", err)
	}
	if task.ArrivalMinutes != 570 {
		t.Fatalf("expected arrival minutes 570, got %d", task.ArrivalMinutes)
	}
	if task.TimeQuantum != DefaultTimeQuantum {
		t.Fatalf("expected default time quantum %d, got %d", DefaultTimeQuantum, task.TimeQuantum)
	}
}

func TestNewTaskValidation(t *testing.T) {
	cases := []struct {
		name        string
		pid         int
		arrivalTime string
		burstTime   int
		priority    int
		date        string
	}{
		{"non positive pid", 0, "09:00", 5, 1, "2024-01-15"},
		{"non positive burst", 1, "09:00", 0, 1, "2024-01-15"},
		{"negative priority", 1, "09:00", 5, -1, "2024-01-15"},
		{"empty date", 1, "09:00", 5, 1, ""},
		{"bad arrival time", 1, "9am", 5, 1, "2024-01-15"},
	}
	for _, c := range cases {
		_, err := NewTask(c.pid, c.arrivalTime, c.burstTime, c.priority, c.date, 2)
		if err == nil {
			t.Fatalf("expected validation error for case %q", c.name)
		}
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("expected ValidationError for case %q, got %T", c.name, err)
		}
	}
}
