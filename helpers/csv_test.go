package helpers

import (
	"strings"
	"testing"

	"schedsim/domain"
)

func TestBuildResultsCSV(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "09:00", 5, 1, "2024-01-15"),
		mustTask(t, 2, "09:02", 3, 2, "2024-01-15"),
	}
	batch := &domain.BatchResult{
		SimulationID: "test",
		Date:         "2024-01-15",
		Results: map[string]domain.AlgorithmResult{
			"fcfs": {Result: &domain.ScheduleResult{
				Algorithm:         "FCFS (First Come First Serve)",
				CompletionTimes:   map[int]int{1: 545, 2: 548},
				WaitingTimes:      map[int]int{1: 0, 2: 3},
				TurnaroundTimes:   map[int]int{1: 5, 2: 6},
				AvgWaitingTime:    1.5,
				AvgTurnaroundTime: 5.5,
			}},
			"round_robin": {Error: "no tasks to schedule"},
		},
		BestAlgorithm: "fcfs",
	}

	report, err := BuildResultsCSV(tasks, batch, []string{"fcfs", "round_robin"})
	if err != nil {
		t.Fatalf("failed to build csv : %v", err)
	}
	content := string(report)
	for _, want := range []string{
		"Task Information",
		"PID,Arrival Time,Burst Time,Priority,Scheduled Date",
		"1,09:00,5,1,2024-01-15",
		"Algorithm: FCFS (First Come First Serve)",
		"1,545,0,5",
		"Average Waiting Time,1.50",
		"Best Algorithm,fcfs",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("csv report missing %q :\n%s", want, content)
		}
	}
	// error-shaped entries produce no table
	if strings.Contains(content, "Round Robin") {
		t.Fatalf("csv report should skip failed algorithms :\n%s", content)
	}
}
