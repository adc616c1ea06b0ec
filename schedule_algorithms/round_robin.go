package schedule_algorithms

import (
	"fmt"
	"sort"

	"schedsim/domain"

	"go.uber.org/zap"
)

// RoundRobin cycles a FIFO ready queue with a fixed time quantum taken from
// the batch's first task. Tasks arriving while a slice runs are enqueued
// before the preempted task is re-appended.
func RoundRobin(tasks []*domain.Task, logger *zap.Logger) (*domain.ScheduleResult, error) {
	if len(tasks) == 0 {
		return nil, &domain.NoTasksError{}
	}

	timeQuantum := tasks[0].TimeQuantum
	if timeQuantum <= 0 {
		timeQuantum = domain.DefaultTimeQuantum
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
	readyQueue := make([]*taskCopy, 0, len(copies))
	next := 0

	admitArrived := func() {
		for next < len(staged) && staged[next].task.ArrivalMinutes <= currentTime {
			readyQueue = append(readyQueue, staged[next])
			next++
		}
	}

	for next < len(staged) || len(readyQueue) > 0 {
		admitArrived()
		if len(readyQueue) == 0 {
			currentTime = staged[next].task.ArrivalMinutes
			continue
		}

		current := readyQueue[0]
		readyQueue = readyQueue[1:]

		startTime := currentTime
		executionTime := timeQuantum
		if current.remaining < executionTime {
			executionTime = current.remaining
		}
		currentTime += executionTime
		current.remaining -= executionTime
		ganttData = append(ganttData, domain.GanttEntry{
			Pid:      current.task.Pid,
			Start:    domain.ToTimeOfDay(startTime),
			End:      domain.ToTimeOfDay(currentTime),
			Duration: executionTime,
		})

		if current.remaining == 0 {
			completionTimes[current.task.Pid] = currentTime
			continue
		}
		// arrivals during the slice enter the queue ahead of the preempted task
		admitArrived()
		readyQueue = append(readyQueue, current)
	}

	logger.Debug("round robin run finished", zap.Int("tasks", len(tasks)), zap.Int("time_quantum", timeQuantum))
	label := fmt.Sprintf("Round Robin (Time Quantum: %d)", timeQuantum)
	return buildResult(label, completionTimes, tasks, ganttData), nil
}
