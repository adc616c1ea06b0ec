package schedule_algorithms

import (
	"schedsim/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NoValidResults is reported as the best algorithm when every run failed
const NoValidResults = "No valid results"

// Algorithm is the common signature every scheduling algorithm satisfies
type Algorithm func(tasks []*domain.Task, logger *zap.Logger) (*domain.ScheduleResult, error)

// AlgorithmKeys lists the batch keys in declaration order; best-algorithm
// ties resolve to the first minimum in this order
var AlgorithmKeys = []string{
	"fcfs",
	"sjf_non_preemptive",
	"sjf_preemptive",
	"priority_non_preemptive",
	"priority_preemptive",
	"round_robin",
}

var algorithms = map[string]Algorithm{
	"fcfs":                    FirstComeFirstServe,
	"sjf_non_preemptive":      ShortestJobFirst,
	"sjf_preemptive":          ShortestRemainingTimeFirst,
	"priority_non_preemptive": PriorityNonPreemptive,
	"priority_preemptive":     PriorityPreemptive,
	"round_robin":             RoundRobin,
}

// RunAllAlgorithms runs every algorithm independently over the same task
// list, keeps per-algorithm failures as error-shaped entries and selects the
// algorithm with the lowest combined average waiting + turnaround time.
func RunAllAlgorithms(tasks []*domain.Task, date string, logger *zap.Logger) *domain.BatchResult {
	simulationID := uuid.New().String()
	batchLogger := logger.With(zap.String("simulation_id", simulationID), zap.String("date", date))

	results := make(map[string]domain.AlgorithmResult, len(AlgorithmKeys))
	for _, key := range AlgorithmKeys {
		result, err := algorithms[key](tasks, batchLogger)
		if err != nil {
			batchLogger.Warn("algorithm run failed", zap.String("algorithm", key), zap.Error(err))
			results[key] = domain.AlgorithmResult{Error: err.Error()}
			continue
		}
		results[key] = domain.AlgorithmResult{Result: result}
	}

	best := FindBestAlgorithm(results)
	batchLogger.Info("batch simulation finished", zap.Int("tasks", len(tasks)), zap.String("best_algorithm", best))

	return &domain.BatchResult{
		SimulationID:  simulationID,
		Date:          date,
		Results:       results,
		BestAlgorithm: best,
	}
}

// FindBestAlgorithm scores every valid result by avg waiting + avg turnaround
// and returns the key with the minimum score, or NoValidResults.
func FindBestAlgorithm(results map[string]domain.AlgorithmResult) string {
	best := NoValidResults
	bestScore := 0.0
	for _, key := range AlgorithmKeys {
		entry, ok := results[key]
		if !ok || entry.Result == nil {
			continue
		}
		score := entry.Result.AvgWaitingTime + entry.Result.AvgTurnaroundTime
		if best == NoValidResults || score < bestScore {
			best = key
			bestScore = score
		}
	}
	return best
}
