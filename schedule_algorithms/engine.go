package schedule_algorithms

import (
	"container/heap"
	"math"
	"sort"

	"schedsim/domain"
	"schedsim/priority_queue"
)

// taskCopy holds the per-run mutable scheduling state for one task so the
// shared Task objects are never written to during a simulation.
type taskCopy struct {
	task      *domain.Task
	remaining int
	seq       int
}

// selectionKey extracts the value an algorithm competes on from a task copy
type selectionKey func(c *taskCopy) int

// sortedByArrival returns a stable arrival-ordered copy of the input slice
func sortedByArrival(tasks []*domain.Task) []*domain.Task {
	sorted := make([]*domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ArrivalMinutes < sorted[j].ArrivalMinutes
	})
	return sorted
}

// newTaskCopies snapshots tasks into private remaining-burst counters,
// numbered by their position in the given slice
func newTaskCopies(tasks []*domain.Task) []*taskCopy {
	copies := make([]*taskCopy, len(tasks))
	for i, task := range tasks {
		copies[i] = &taskCopy{task: task, remaining: task.BurstTime, seq: i}
	}
	return copies
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// buildResult assembles the metrics maps and averages of one finished run
func buildResult(label string, completionTimes map[int]int, tasks []*domain.Task, ganttData []domain.GanttEntry) *domain.ScheduleResult {
	waitingTimes := make(map[int]int, len(tasks))
	turnaroundTimes := make(map[int]int, len(tasks))
	totalWaiting := 0
	totalTurnaround := 0
	for _, task := range tasks {
		completion := completionTimes[task.Pid]
		turnaround := completion - task.ArrivalMinutes
		waiting := turnaround - task.BurstTime
		waitingTimes[task.Pid] = waiting
		turnaroundTimes[task.Pid] = turnaround
		totalWaiting += waiting
		totalTurnaround += turnaround
	}
	count := float64(len(tasks))
	return &domain.ScheduleResult{
		Algorithm:         label,
		CompletionTimes:   completionTimes,
		WaitingTimes:      waitingTimes,
		TurnaroundTimes:   turnaroundTimes,
		AvgWaitingTime:    round2(float64(totalWaiting) / count),
		AvgTurnaroundTime: round2(float64(totalTurnaround) / count),
		GanttData:         ganttData,
	}
}

// runNonPreemptive drives SJF and Priority non-preemptive runs: at every
// completion it picks the arrived task with the smallest key, ties resolved
// by position in the arrival-ordered snapshot, and runs it to completion.
func runNonPreemptive(tasks []*domain.Task, label string, key selectionKey) (*domain.ScheduleResult, error) {
	if len(tasks) == 0 {
		return nil, &domain.NoTasksError{}
	}

	staged := newTaskCopies(sortedByArrival(tasks))
	currentTime := staged[0].task.ArrivalMinutes
	completionTimes := make(map[int]int, len(tasks))
	ganttData := make([]domain.GanttEntry, 0, len(tasks))

	ready := make(priority_queue.PriorityQueue, 0, len(staged))
	heap.Init(&ready)
	next := 0

	// count scheduled runs, not completion-map keys: duplicate pids collapse
	// into one map entry and must not stall the loop
	completed := 0
	for completed < len(tasks) {
		for next < len(staged) && staged[next].task.ArrivalMinutes <= currentTime {
			heap.Push(&ready, &priority_queue.Item{
				Pid: staged[next].task.Pid,
				Key: key(staged[next]),
				Seq: next,
			})
			next++
		}
		if ready.Len() == 0 {
			// idle gap, jump the clock to the next arrival
			currentTime = staged[next].task.ArrivalMinutes
			continue
		}

		item := heap.Pop(&ready).(*priority_queue.Item)
		selected := staged[item.Seq].task
		startTime := currentTime
		completionTime := currentTime + selected.BurstTime
		completionTimes[selected.Pid] = completionTime
		completed++
		ganttData = append(ganttData, domain.GanttEntry{
			Pid:      selected.Pid,
			Start:    domain.ToTimeOfDay(startTime),
			End:      domain.ToTimeOfDay(completionTime),
			Duration: selected.BurstTime,
		})
		currentTime = completionTime
	}

	return buildResult(label, completionTimes, tasks, ganttData), nil
}

// runPreemptive drives SRTF and Priority preemptive runs in 1-minute steps:
// every tick it re-selects the arrived unfinished task with the smallest key,
// ties resolved by input order, and emits one 1-minute execution interval.
func runPreemptive(tasks []*domain.Task, label string, key selectionKey) (*domain.ScheduleResult, error) {
	if len(tasks) == 0 {
		return nil, &domain.NoTasksError{}
	}

	copies := newTaskCopies(tasks)
	staged := make([]*taskCopy, len(copies))
	copy(staged, copies)
	sort.SliceStable(staged, func(i, j int) bool {
		return staged[i].task.ArrivalMinutes < staged[j].task.ArrivalMinutes
	})

	currentTime := staged[0].task.ArrivalMinutes
	completionTimes := make(map[int]int, len(tasks))
	ganttData := make([]domain.GanttEntry, 0)

	ready := make(priority_queue.PriorityQueue, 0, len(copies))
	heap.Init(&ready)
	next := 0

	completed := 0
	for completed < len(tasks) {
		for next < len(staged) && staged[next].task.ArrivalMinutes <= currentTime {
			heap.Push(&ready, &priority_queue.Item{
				Pid: staged[next].task.Pid,
				Key: key(staged[next]),
				Seq: staged[next].seq,
			})
			next++
		}
		if ready.Len() == 0 {
			currentTime = staged[next].task.ArrivalMinutes
			continue
		}

		item := ready[0]
		selected := copies[item.Seq]

		// run for exactly one minute, then re-evaluate
		startTime := currentTime
		currentTime++
		selected.remaining--
		ganttData = append(ganttData, domain.GanttEntry{
			Pid:      selected.task.Pid,
			Start:    domain.ToTimeOfDay(startTime),
			End:      domain.ToTimeOfDay(currentTime),
			Duration: 1,
		})

		if selected.remaining == 0 {
			heap.Pop(&ready)
			completionTimes[selected.task.Pid] = currentTime
			completed++
			continue
		}
		ready.Update(item, key(selected))
	}

	return buildResult(label, completionTimes, tasks, ganttData), nil
}
