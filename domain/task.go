package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTimeQuantum is the Round Robin quantum used when a task does not set one
const DefaultTimeQuantum = 2

// Task represents one schedulable unit of work. Tasks are never mutated after
// construction; preemptive algorithms keep their own remaining-burst copies.
type Task struct {
	Pid            int    `json:"pid"`
	ArrivalTime    string `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	ScheduledDate  string `json:"scheduled_date"`
	TimeQuantum    int    `json:"time_quantum"`
	ArrivalMinutes int    `json:"arrival_minutes"`
}

// NewTask validates task fields, derives arrival minutes and returns an immutable task
func NewTask(pid int, arrivalTime string, burstTime, priority int, scheduledDate string, timeQuantum int) (*Task, error) {
	if pid <= 0 {
		return nil, &ValidationError{Field: "pid", Reason: "must be positive"}
	}
	if burstTime <= 0 {
		return nil, &ValidationError{Field: "burst_time", Reason: "must be positive"}
	}
	if priority < 0 {
		return nil, &ValidationError{Field: "priority", Reason: "must be non-negative"}
	}
	if scheduledDate == "" {
		return nil, &ValidationError{Field: "scheduled_date", Reason: "must not be empty"}
	}
	if timeQuantum <= 0 {
		timeQuantum = DefaultTimeQuantum
	}
	arrivalMinutes, err := ToMinutes(arrivalTime)
	if err != nil {
		return nil, &ValidationError{Field: "arrival_time", Reason: err.Error()}
	}
	return &Task{
		Pid:            pid,
		ArrivalTime:    arrivalTime,
		BurstTime:      burstTime,
		Priority:       priority,
		ScheduledDate:  scheduledDate,
		TimeQuantum:    timeQuantum,
		ArrivalMinutes: arrivalMinutes,
	}, nil
}

// ToMinutes parses a HH:MM time of day into minutes since midnight
func ToMinutes(timeOfDay string) (int, error) {
	parts := strings.Split(timeOfDay, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", timeOfDay)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours in %q", timeOfDay)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q", timeOfDay)
	}
	// hours past 23 are allowed so ToMinutes stays the exact inverse of
	// ToTimeOfDay for simulated clocks that ran past midnight
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q out of range", timeOfDay)
	}
	return hours*60 + minutes, nil
}

// ToTimeOfDay formats minutes since midnight as HH:MM. Values past 1439 keep
// counting hours upward ("25:00"), they never roll over into a new day.
func ToTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
