package schedule_algorithms

import (
	"schedsim/domain"

	"go.uber.org/zap"
)

const (
	sjfNonPreemptiveLabel = "SJF Non-Preemptive (Shortest Job First)"
	sjfPreemptiveLabel    = "SJF Preemptive (Shortest Remaining Time First)"
)

// ShortestJobFirst picks, at every completion, the arrived task with the
// smallest burst time and runs it without preemption.
func ShortestJobFirst(tasks []*domain.Task, logger *zap.Logger) (*domain.ScheduleResult, error) {
	result, err := runNonPreemptive(tasks, sjfNonPreemptiveLabel, func(c *taskCopy) int {
		return c.task.BurstTime
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("sjf non-preemptive run finished", zap.Int("tasks", len(tasks)))
	return result, nil
}

// ShortestRemainingTimeFirst re-evaluates every minute and runs the arrived
// task with the smallest remaining burst, preempting on tick boundaries.
func ShortestRemainingTimeFirst(tasks []*domain.Task, logger *zap.Logger) (*domain.ScheduleResult, error) {
	result, err := runPreemptive(tasks, sjfPreemptiveLabel, func(c *taskCopy) int {
		return c.remaining
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("sjf preemptive run finished", zap.Int("tasks", len(tasks)))
	return result, nil
}
