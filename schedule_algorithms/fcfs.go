package schedule_algorithms

import (
	"schedsim/domain"

	"go.uber.org/zap"
)

const fcfsLabel = "FCFS (First Come First Serve)"

// FirstComeFirstServe runs tasks to completion strictly in arrival order,
// jumping the clock over idle gaps between arrivals.
func FirstComeFirstServe(tasks []*domain.Task, logger *zap.Logger) (*domain.ScheduleResult, error) {
	if len(tasks) == 0 {
		return nil, &domain.NoTasksError{}
	}

	sorted := sortedByArrival(tasks)
	currentTime := sorted[0].ArrivalMinutes
	completionTimes := make(map[int]int, len(sorted))
	ganttData := make([]domain.GanttEntry, 0, len(sorted))

	for _, task := range sorted {
		if currentTime < task.ArrivalMinutes {
			currentTime = task.ArrivalMinutes
		}
		startTime := currentTime
		completionTime := currentTime + task.BurstTime
		completionTimes[task.Pid] = completionTime
		ganttData = append(ganttData, domain.GanttEntry{
			Pid:      task.Pid,
			Start:    domain.ToTimeOfDay(startTime),
			End:      domain.ToTimeOfDay(completionTime),
			Duration: task.BurstTime,
		})
		currentTime = completionTime
	}

	logger.Debug("fcfs run finished", zap.Int("tasks", len(tasks)))
	return buildResult(fcfsLabel, completionTimes, tasks, ganttData), nil
}
