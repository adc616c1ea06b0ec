package domain

import "fmt"

// ValidationError represents a malformed or invalid task field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NoTasksError represents an empty task list handed to an algorithm
type NoTasksError struct {
	Date string
}

func (e *NoTasksError) Error() string {
	if e.Date == "" {
		return "no tasks to schedule"
	}
	return fmt.Sprintf("no tasks to schedule for date %s", e.Date)
}

// NotFoundError represents a pid/date pair missing from the task store
type NotFoundError struct {
	Pid  int
	Date string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task P%d not found for date %s", e.Pid, e.Date)
}
