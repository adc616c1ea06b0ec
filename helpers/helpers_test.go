package helpers

import (
	"bytes"
	"testing"

	"schedsim/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func mustTask(t *testing.T, pid int, arrivalTime string, burstTime, priority int, date string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(pid, arrivalTime, burstTime, priority, date, 2)
	if err != nil {
		t.Fatalf("failed to create task P%d : %v", pid, err)
	}
	return task
}

func testLogger(t *testing.T) *zap.Logger {
	var buf bytes.Buffer
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.Hooks(func(entry zapcore.Entry) error {
		buf.WriteString(entry.Message)
		buf.WriteByte('\n')
		return nil
	})))
}

func TestParseFQLFilter(t *testing.T) {
	filter := `priority<"3"&&burst_time>"5"||scheduled_date="2024-01-15"`
	listFilters, err := ParseFQLFilter(filter, testLogger(t))
	if err != nil {
		t.Fatalf("error in parsing filter : %s", err.Error())
	}
	if len(listFilters) != 5 {
		t.Fatalf("failed to parse filter . Invalid filter resulted : %v", listFilters)
	}
	if listFilters[0][0] != "priority" || listFilters[0][1] != "<" || listFilters[0][2] != "3" {
		t.Fatalf("unexpected first clause : %v", listFilters[0])
	}
	if listFilters[1][0] != "&&" || listFilters[3][0] != "||" {
		t.Fatalf("unexpected join markers : %v", listFilters)
	}
}

func TestInvalidParseFQLFilter(t *testing.T) {
	for _, filter := range []string{
		`owner="admin"`,
		`priority<`,
		`priority<"3`,
		``,
	} {
		if _, err := ParseFQLFilter(filter, testLogger(t)); err == nil {
			t.Fatalf("expected error for filter %q", filter)
		}
	}
}

func TestFilterTasks(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 1, "09:00", 5, 1, "2024-01-15"),
		mustTask(t, 2, "09:05", 8, 4, "2024-01-15"),
		mustTask(t, 3, "10:00", 2, 2, "2024-01-16"),
	}
	listFilters, err := ParseFQLFilter(`priority<"3"&&scheduled_date="2024-01-15"`, testLogger(t))
	if err != nil {
		t.Fatalf("error in parsing filter : %v", err)
	}
	filtered := FilterTasks(tasks, listFilters)
	if len(filtered) != 1 || filtered[0].Pid != 1 {
		t.Fatalf("unexpected filtered tasks : %+v", filtered)
	}

	listFilters, err = ParseFQLFilter(`pid="3"||burst_time>="8"`, testLogger(t))
	if err != nil {
		t.Fatalf("error in parsing filter : %v", err)
	}
	filtered = FilterTasks(tasks, listFilters)
	if len(filtered) != 2 || filtered[0].Pid != 2 || filtered[1].Pid != 3 {
		t.Fatalf("unexpected filtered tasks : %+v", filtered)
	}
}

func TestSortTasks(t *testing.T) {
	tasks := []*domain.Task{
		mustTask(t, 3, "11:00", 2, 2, "2024-01-15"),
		mustTask(t, 1, "09:00", 5, 1, "2024-01-15"),
		mustTask(t, 2, "10:00", 8, 4, "2024-01-15"),
	}
	sorted := SortTasks(tasks, "burst_time", "asc")
	if sorted[0].Pid != 3 || sorted[1].Pid != 1 || sorted[2].Pid != 2 {
		t.Fatalf("unexpected sort order : %+v", sorted)
	}
	sorted = SortTasks(tasks, "pid", "desc")
	if sorted[0].Pid != 3 || sorted[2].Pid != 1 {
		t.Fatalf("unexpected sort order : %+v", sorted)
	}
}

func TestGenerateSampleTasks(t *testing.T) {
	tasks, err := GenerateSampleTasks()
	if err != nil {
		t.Fatalf("failed to generate sample tasks : %v", err)
	}
	if len(tasks) != 20 {
		t.Fatalf("expected 20 sample tasks, got %d", len(tasks))
	}
	dates := make(map[string]bool)
	for _, task := range tasks {
		dates[task.ScheduledDate] = true
	}
	if len(dates) != 5 {
		t.Fatalf("expected 5 sample dates, got %d", len(dates))
	}
}

func TestGenerateRandomTasks(t *testing.T) {
	first, err := GenerateRandomTasks(3, 42)
	if err != nil {
		t.Fatalf("failed to generate random tasks : %v", err)
	}
	second, err := GenerateRandomTasks(3, 42)
	if err != nil {
		t.Fatalf("failed to generate random tasks : %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("same seed produced different sizes : %d != %d", len(first), len(second))
	}
	for i := range first {
		if *first[i] != *second[i] {
			t.Fatalf("same seed produced different tasks at %d : %+v != %+v", i, first[i], second[i])
		}
	}
	for _, task := range first {
		if task.BurstTime < 1 || task.BurstTime > 15 || task.Priority < 1 || task.Priority > 5 {
			t.Fatalf("random task out of range : %+v", task)
		}
	}
}
