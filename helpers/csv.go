package helpers

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"schedsim/domain"
)

// BuildResultsCSV renders the task table and every algorithm's metrics table
// of one batch run as a CSV report
func BuildResultsCSV(tasks []*domain.Task, batch *domain.BatchResult, algorithmKeys []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Task Information"},
		{"PID", "Arrival Time", "Burst Time", "Priority", "Scheduled Date"},
	}
	for _, task := range tasks {
		records = append(records, []string{
			strconv.Itoa(task.Pid),
			task.ArrivalTime,
			strconv.Itoa(task.BurstTime),
			strconv.Itoa(task.Priority),
			task.ScheduledDate,
		})
	}
	records = append(records, []string{""})

	for _, key := range algorithmKeys {
		entry, ok := batch.Results[key]
		if !ok || entry.Result == nil {
			continue
		}
		result := entry.Result
		records = append(records,
			[]string{"Algorithm: " + result.Algorithm},
			[]string{"PID", "Completion Time", "Waiting Time", "Turnaround Time"},
		)
		for _, task := range tasks {
			completion, ok := result.CompletionTimes[task.Pid]
			if !ok {
				continue
			}
			records = append(records, []string{
				strconv.Itoa(task.Pid),
				strconv.Itoa(completion),
				strconv.Itoa(result.WaitingTimes[task.Pid]),
				strconv.Itoa(result.TurnaroundTimes[task.Pid]),
			})
		}
		records = append(records,
			[]string{"Average Waiting Time", strconv.FormatFloat(result.AvgWaitingTime, 'f', 2, 64)},
			[]string{"Average Turnaround Time", strconv.FormatFloat(result.AvgTurnaroundTime, 'f', 2, 64)},
			[]string{""},
		)
	}

	records = append(records, []string{"Best Algorithm", batch.BestAlgorithm})

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
