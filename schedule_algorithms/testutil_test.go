package schedule_algorithms

import (
	"testing"

	"schedsim/domain"
)

const testDate = "2024-01-15"

func mustTask(t *testing.T, pid int, arrivalTime string, burstTime, priority, timeQuantum int) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(pid, arrivalTime, burstTime, priority, testDate, timeQuantum)
	if err != nil {
		t.Fatalf("failed to create task P%d : %v", pid, err)
	}
	return task
}

func checkCompletionTimes(t *testing.T, result *domain.ScheduleResult, want map[int]int) {
	t.Helper()
	if len(result.CompletionTimes) != len(want) {
		t.Fatalf("expected %d completion times, got %v", len(want), result.CompletionTimes)
	}
	for pid, completion := range want {
		if result.CompletionTimes[pid] != completion {
			t.Fatalf("expected completion %d for P%d, got %d", completion, pid, result.CompletionTimes[pid])
		}
	}
}

// checkMetricsIdentity asserts turnaround == waiting + burst and that both
// metrics are non-negative, for every task of the run
func checkMetricsIdentity(t *testing.T, result *domain.ScheduleResult, tasks []*domain.Task) {
	t.Helper()
	for _, task := range tasks {
		waiting, ok := result.WaitingTimes[task.Pid]
		if !ok {
			t.Fatalf("missing waiting time for P%d", task.Pid)
		}
		turnaround, ok := result.TurnaroundTimes[task.Pid]
		if !ok {
			t.Fatalf("missing turnaround time for P%d", task.Pid)
		}
		if waiting < 0 || turnaround < 0 {
			t.Fatalf("negative metric for P%d : waiting %d turnaround %d", task.Pid, waiting, turnaround)
		}
		if turnaround != waiting+task.BurstTime {
			t.Fatalf("turnaround identity broken for P%d : %d != %d + %d", task.Pid, turnaround, waiting, task.BurstTime)
		}
	}
}
