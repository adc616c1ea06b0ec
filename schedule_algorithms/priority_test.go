package schedule_algorithms

import (
	"testing"

	"schedsim/domain"

	"go.uber.org/zap/zaptest"
)

func TestPriorityNonPreemptive(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "00:00", 4, 2, 2),
		mustTask(t, 2, "00:01", 3, 1, 2),
		mustTask(t, 3, "00:02", 2, 3, 2),
	}
	result, err := PriorityNonPreemptive(tasks, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to run priority non-preemptive : %v", err)
	}
	// P1 is alone at time 0; at its completion the lowest priority value wins
	checkCompletionTimes(t, result, map[int]int{1: 4, 2: 7, 3: 9})
	checkMetricsIdentity(t, result, tasks)
}

func TestPriorityNonPreemptiveTieBreak(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "00:01", 2, 1, 2),
		mustTask(t, 2, "00:00", 4, 1, 2),
	}
	result, err := PriorityNonPreemptive(tasks, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to run priority non-preemptive : %v", err)
	}
	// equal priorities resolve by arrival order
	checkCompletionTimes(t, result, map[int]int{2: 4, 1: 6})
}

func TestPriorityPreemptive(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "00:00", 3, 2, 2),
		mustTask(t, 2, "00:01", 2, 1, 2),
	}
	result, err := PriorityPreemptive(tasks, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to run priority preemptive : %v", err)
	}
	// P2 arrives with a higher priority and preempts at the tick boundary
	checkCompletionTimes(t, result, map[int]int{2: 3, 1: 5})
	checkMetricsIdentity(t, result, tasks)
	if result.WaitingTimes[1] != 2 || result.WaitingTimes[2] != 0 {
		t.Fatalf("unexpected waiting times : %v", result.WaitingTimes)
	}
}

func TestPriorityPreemptiveBurstConservation(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "00:00", 5, 3, 2),
		mustTask(t, 2, "00:02", 3, 1, 2),
		mustTask(t, 3, "00:04", 2, 2, 2),
	}
	result, err := PriorityPreemptive(tasks, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to run priority preemptive : %v", err)
	}
	executed := make(map[int]int)
	for _, entry := range result.GanttData {
		executed[entry.Pid] += entry.Duration
	}
	for _, task := range tasks {
		if executed[task.Pid] != task.BurstTime {
			t.Fatalf("P%d executed %d minutes, expected burst %d", task.Pid, executed[task.Pid], task.BurstTime)
		}
	}
	checkMetricsIdentity(t, result, tasks)
}
