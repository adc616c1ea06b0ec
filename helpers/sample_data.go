package helpers

import (
	"fmt"
	"math/rand"
	"time"

	"schedsim/domain"
)

type sampleTask struct {
	pid         int
	arrivalTime string
	burstTime   int
	priority    int
	date        string
	timeQuantum int
}

var sampleTasks = []sampleTask{
	// simple FCFS scenario
	{1, "09:00", 5, 1, "2024-01-15", 2},
	{2, "09:02", 3, 2, "2024-01-15", 2},
	{3, "09:05", 8, 3, "2024-01-15", 2},
	// priority scheduling scenario
	{4, "10:00", 4, 5, "2024-01-16", 2},
	{5, "10:01", 6, 1, "2024-01-16", 2},
	{6, "10:03", 2, 3, "2024-01-16", 2},
	{7, "10:05", 7, 2, "2024-01-16", 2},
	// round robin scenario
	{8, "14:00", 10, 4, "2024-01-17", 3},
	{9, "14:02", 6, 2, "2024-01-17", 3},
	{10, "14:05", 8, 1, "2024-01-17", 3},
	{11, "14:08", 4, 3, "2024-01-17", 3},
	// complex mixed scenario
	{12, "16:00", 12, 1, "2024-01-18", 2},
	{13, "16:01", 3, 5, "2024-01-18", 2},
	{14, "16:03", 7, 2, "2024-01-18", 2},
	{15, "16:05", 5, 4, "2024-01-18", 2},
	{16, "16:07", 9, 3, "2024-01-18", 2},
	// short bursts for SRTF
	{17, "18:00", 2, 2, "2024-01-19", 1},
	{18, "18:01", 4, 1, "2024-01-19", 1},
	{19, "18:02", 1, 3, "2024-01-19", 1},
	{20, "18:03", 3, 2, "2024-01-19", 1},
}

// GenerateSampleTasks returns the fixed demo task set, five dates covering
// one scenario per algorithm family
func GenerateSampleTasks() ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(sampleTasks))
	for _, s := range sampleTasks {
		task, err := domain.NewTask(s.pid, s.arrivalTime, s.burstTime, s.priority, s.date, s.timeQuantum)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GenerateRandomTasks builds 2-6 random tasks per date for numDates days
// starting today; a fixed seed yields a reproducible set
func GenerateRandomTasks(numDates int, seed int64) ([]*domain.Task, error) {
	rng := rand.New(rand.NewSource(seed))
	tasks := make([]*domain.Task, 0)
	pid := 1
	baseDate := time.Now()

	for day := 0; day < numDates; day++ {
		date := baseDate.AddDate(0, 0, day).Format("2006-01-02")
		perDate := 2 + rng.Intn(5)
		for i := 0; i < perDate; i++ {
			arrivalTime := fmt.Sprintf("%02d:%02d", 9+rng.Intn(9), rng.Intn(60))
			task, err := domain.NewTask(pid, arrivalTime, 1+rng.Intn(15), 1+rng.Intn(5), date, 1+rng.Intn(4))
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task)
			pid++
		}
	}
	return tasks, nil
}
