package schedule_algorithms

import (
	"schedsim/domain"

	"go.uber.org/zap"
)

const (
	priorityNonPreemptiveLabel = "Priority Non-Preemptive"
	priorityPreemptiveLabel    = "Priority Preemptive"
)

// PriorityNonPreemptive picks, at every completion, the arrived task with the
// lowest priority value and runs it without preemption.
func PriorityNonPreemptive(tasks []*domain.Task, logger *zap.Logger) (*domain.ScheduleResult, error) {
	result, err := runNonPreemptive(tasks, priorityNonPreemptiveLabel, func(c *taskCopy) int {
		return c.task.Priority
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("priority non-preemptive run finished", zap.Int("tasks", len(tasks)))
	return result, nil
}

// PriorityPreemptive re-evaluates every minute and runs the arrived task with
// the lowest priority value, so a newly arrived higher-priority task preempts
// the running one at the next tick boundary.
func PriorityPreemptive(tasks []*domain.Task, logger *zap.Logger) (*domain.ScheduleResult, error) {
	result, err := runPreemptive(tasks, priorityPreemptiveLabel, func(c *taskCopy) int {
		return c.task.Priority
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("priority preemptive run finished", zap.Int("tasks", len(tasks)))
	return result, nil
}
