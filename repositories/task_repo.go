package repositories

import (
	"sort"
	"sync"

	"schedsim/domain"

	"go.uber.org/zap"
)

// TaskRepo represents the in-memory, insertion-ordered task store shared by
// the api layer. Tasks live for the lifetime of the process only.
type TaskRepo struct {
	mu         sync.RWMutex
	tasks      []*domain.Task
	taskLogger *zap.Logger
}

// NewTaskRepo returns a TaskRepo
func NewTaskRepo(logger *zap.Logger) *TaskRepo {
	return &TaskRepo{
		tasks:      make([]*domain.Task, 0),
		taskLogger: logger,
	}
}

// AddTask appends a task to the store
func (r *TaskRepo) AddTask(task *domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
	r.taskLogger.Debug("task added", zap.Int("pid", task.Pid), zap.String("date", task.ScheduledDate))
}

// GetAllTasks returns a snapshot of every stored task in insertion order
func (r *TaskRepo) GetAllTasks() []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]*domain.Task, len(r.tasks))
	copy(snapshot, r.tasks)
	return snapshot
}

// GetTasksByDate returns the tasks scheduled for one date, insertion order
func (r *TaskRepo) GetTasksByDate(date string) []*domain.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]*domain.Task, 0)
	for _, task := range r.tasks {
		if task.ScheduledDate == date {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// HasTask reports whether a pid is already scheduled on the given date
func (r *TaskRepo) HasTask(pid int, date string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, task := range r.tasks {
		if task.Pid == pid && task.ScheduledDate == date {
			return true
		}
	}
	return false
}

// Dates returns the sorted unique scheduled dates present in the store
func (r *TaskRepo) Dates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	dates := make([]string, 0)
	for _, task := range r.tasks {
		if !seen[task.ScheduledDate] {
			seen[task.ScheduledDate] = true
			dates = append(dates, task.ScheduledDate)
		}
	}
	sort.Strings(dates)
	return dates
}

// DeleteTask removes the task identified by pid and date
func (r *TaskRepo) DeleteTask(pid int, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, task := range r.tasks {
		if task.Pid == pid && task.ScheduledDate == date {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			r.taskLogger.Debug("task deleted", zap.Int("pid", pid), zap.String("date", date))
			return nil
		}
	}
	return &domain.NotFoundError{Pid: pid, Date: date}
}

// Clear removes every stored task
func (r *TaskRepo) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := len(r.tasks)
	r.tasks = r.tasks[:0]
	r.taskLogger.Debug("task store cleared", zap.Int("removed", removed))
	return removed
}
