package helpers

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"schedsim/domain"

	fql "github.com/ganigeorgiev/fexpr"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// SortTasks orders tasks by the given field and direction, stable for ties
func SortTasks(tasks []*domain.Task, sortBy, sortDir string) []*domain.Task {
	less := func(i, j int) bool { return false }
	switch sortBy {
	case "pid":
		less = func(i, j int) bool { return tasks[i].Pid < tasks[j].Pid }
	case "arrival_time":
		less = func(i, j int) bool { return tasks[i].ArrivalMinutes < tasks[j].ArrivalMinutes }
	case "burst_time":
		less = func(i, j int) bool { return tasks[i].BurstTime < tasks[j].BurstTime }
	case "priority":
		less = func(i, j int) bool { return tasks[i].Priority < tasks[j].Priority }
	default:
		return tasks
	}
	if sortDir == "desc" {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(tasks, less)
	return tasks
}

/*
example of combined filters
priority<"3"&&burst_time>"5"
scheduled_date="2024-01-15"||pid="4"
*/

// ParseFQLFilter scans a task filter expression into [field, operator, value]
// clauses separated by "&&"/"||" join markers
func ParseFQLFilter(fqlString string, logger *zap.Logger) ([][]string, error) {
	s := fql.NewScanner(strings.NewReader(fqlString))

	listFilters := make([][]string, 0)
	clause := make([]string, 0, 3)

	for {
		t, err := s.Scan()
		if t.Type == fql.TokenEOF {
			logger.Debug("end of filter parsing")
			break
		}
		if err != nil {
			logger.Error("error in scanning filter", zap.Error(err))
			return nil, err
		}

		switch t.Type {
		case fql.TokenWS:
			continue
		case fql.TokenIdentifier:
			if !slices.Contains(GetTasksFilters, t.Literal) {
				logger.Error("invalid filter field", zap.String("field", t.Literal))
				return nil, fmt.Errorf("invalid filter field %q", t.Literal)
			}
			clause = append(clause, t.Literal)
		case fql.TokenSign:
			clause = append(clause, t.Literal)
		case fql.TokenText, fql.TokenNumber:
			clause = append(clause, t.Literal)
			if len(clause) != 3 {
				logger.Error("incomplete filter clause", zap.String("filter", fqlString))
				return nil, fmt.Errorf("incomplete filter clause in %q", fqlString)
			}
			listFilters = append(listFilters, clause)
			clause = make([]string, 0, 3)
		case fql.TokenJoin:
			listFilters = append(listFilters, []string{t.Literal})
		default:
			logger.Error("unsupported filter token", zap.String("literal", t.Literal))
			return nil, fmt.Errorf("unsupported filter token %q", t.Literal)
		}
	}
	if len(clause) != 0 {
		return nil, fmt.Errorf("incomplete filter clause in %q", fqlString)
	}
	if len(listFilters) == 0 {
		return nil, fmt.Errorf("empty filter %q", fqlString)
	}
	return listFilters, nil
}

// FilterTasks keeps the tasks matching the parsed clause list, evaluating
// "&&" chains first and joining chains with "||"
func FilterTasks(tasks []*domain.Task, listFilters [][]string) []*domain.Task {
	filtered := make([]*domain.Task, 0)
	for _, task := range tasks {
		if matchFilters(task, listFilters) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

func matchFilters(task *domain.Task, listFilters [][]string) bool {
	anyChain := false
	chain := true
	for _, entry := range listFilters {
		if len(entry) == 1 {
			if entry[0] == "||" {
				anyChain = anyChain || chain
				chain = true
			}
			continue
		}
		chain = chain && matchClause(task, entry[0], entry[1], entry[2])
	}
	return anyChain || chain
}

func matchClause(task *domain.Task, field, operator, value string) bool {
	if slices.Contains(NumericTaskFields, field) {
		want, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		var got int
		switch field {
		case "pid":
			got = task.Pid
		case "burst_time":
			got = task.BurstTime
		case "priority":
			got = task.Priority
		case "time_quantum":
			got = task.TimeQuantum
		}
		return compareInts(got, operator, want)
	}

	var got string
	switch field {
	case "arrival_time":
		got = task.ArrivalTime
	case "scheduled_date":
		got = task.ScheduledDate
	default:
		return false
	}
	return compareStrings(got, operator, value)
}

func compareInts(got int, operator string, want int) bool {
	switch operator {
	case "=":
		return got == want
	case "!=":
		return got != want
	case ">":
		return got > want
	case ">=":
		return got >= want
	case "<":
		return got < want
	case "<=":
		return got <= want
	}
	return false
}

func compareStrings(got, operator, want string) bool {
	switch operator {
	case "=":
		return got == want
	case "!=":
		return got != want
	case ">":
		return got > want
	case ">=":
		return got >= want
	case "<":
		return got < want
	case "<=":
		return got <= want
	}
	return false
}
