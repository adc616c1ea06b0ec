package schedule_algorithms

import (
	"testing"

	"schedsim/domain"

	"go.uber.org/zap/zaptest"
)

func TestRoundRobin(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "00:00", 5, 1, 3),
		mustTask(t, 2, "00:00", 3, 1, 3),
	}
	result, err := RoundRobin(tasks, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to run round robin : %v", err)
	}
	checkCompletionTimes(t, result, map[int]int{2: 6, 1: 8})
	checkMetricsIdentity(t, result, tasks)

	want := []domain.GanttEntry{
		{Pid: 1, Start: "00:00", End: "00:03", Duration: 3},
		{Pid: 2, Start: "00:03", End: "00:06", Duration: 3},
		{Pid: 1, Start: "00:06", End: "00:08", Duration: 2},
	}
	if len(result.GanttData) != len(want) {
		t.Fatalf("expected %d gantt entries, got %v", len(want), result.GanttData)
	}
	for i, entry := range want {
		if result.GanttData[i] != entry {
			t.Fatalf("gantt entry %d mismatch : expected %v, got %v", i, entry, result.GanttData[i])
		}
	}
	if result.Algorithm != "Round Robin (Time Quantum: 3)" {
		t.Fatalf("unexpected algorithm label %q", result.Algorithm)
	}
}

func TestRoundRobinAdmitsArrivalsBeforePreempted(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "00:00", 4, 1, 2),
		mustTask(t, 2, "00:01", 2, 1, 2),
	}
	result, err := RoundRobin(tasks, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to run round robin : %v", err)
	}
	// P2 arrives during P1's first slice and is queued ahead of it
	want := []domain.GanttEntry{
		{Pid: 1, Start: "00:00", End: "00:02", Duration: 2},
		{Pid: 2, Start: "00:02", End: "00:04", Duration: 2},
		{Pid: 1, Start: "00:04", End: "00:06", Duration: 2},
	}
	for i, entry := range want {
		if result.GanttData[i] != entry {
			t.Fatalf("gantt entry %d mismatch : expected %v, got %v", i, entry, result.GanttData[i])
		}
	}
	checkCompletionTimes(t, result, map[int]int{2: 4, 1: 6})
}

func TestRoundRobinIdleGap(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "00:00", 2, 1, 4),
		mustTask(t, 2, "00:10", 3, 1, 4),
	}
	result, err := RoundRobin(tasks, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to run round robin : %v", err)
	}
	checkCompletionTimes(t, result, map[int]int{1: 2, 2: 13})
	if result.WaitingTimes[2] != 0 {
		t.Fatalf("expected zero waiting time after idle gap, got %d", result.WaitingTimes[2])
	}
}

func TestRoundRobinQuantumFromFirstTask(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "00:00", 3, 1, 5),
		mustTask(t, 2, "00:00", 3, 1, 1),
	}
	result, err := RoundRobin(tasks, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to run round robin : %v", err)
	}
	// the quantum is a property of the run, taken from the batch's first task
	if result.Algorithm != "Round Robin (Time Quantum: 5)" {
		t.Fatalf("unexpected algorithm label %q", result.Algorithm)
	}
	if result.GanttData[0].Duration != 3 {
		t.Fatalf("expected first slice capped at remaining burst, got %v", result.GanttData[0])
	}
}
