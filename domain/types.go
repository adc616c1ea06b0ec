package domain

// GanttEntry represents one execution interval on the timeline
type GanttEntry struct {
	Pid      int    `json:"pid"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Duration int    `json:"duration"`
}

// ScheduleResult represents per-task metrics and the execution timeline
// produced by one algorithm run
type ScheduleResult struct {
	Algorithm         string       `json:"algorithm"`
	CompletionTimes   map[int]int  `json:"completion_times"`
	WaitingTimes      map[int]int  `json:"waiting_times"`
	TurnaroundTimes   map[int]int  `json:"turnaround_times"`
	AvgWaitingTime    float64      `json:"avg_waiting_time"`
	AvgTurnaroundTime float64      `json:"avg_turnaround_time"`
	GanttData         []GanttEntry `json:"gantt_data,omitempty"`
}

// AlgorithmResult represents the tagged outcome of one algorithm inside a
// batch: either a result or an error message, never both
type AlgorithmResult struct {
	Result *ScheduleResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// BatchResult represents the outcome of running all algorithms over one date
type BatchResult struct {
	SimulationID  string                     `json:"simulation_id"`
	Date          string                     `json:"date,omitempty"`
	Results       map[string]AlgorithmResult `json:"results"`
	BestAlgorithm string                     `json:"best_algorithm"`
}

// AlgorithmStats represents aggregated wins of one algorithm across dates
type AlgorithmStats struct {
	Name      string  `json:"name"`
	Wins      int     `json:"wins"`
	BestScore float64 `json:"best_score"`
}

// AllDatesResult represents batch results for every known date
type AllDatesResult struct {
	Dates          []string                   `json:"dates"`
	Results        map[string]*BatchResult    `json:"results"`
	AlgorithmStats map[string]*AlgorithmStats `json:"algorithm_stats"`
}

// TasksMetaInfo represents meta info about the task listing
type TasksMetaInfo struct {
	Total int `json:"total"`
	Dates int `json:"dates"`
}

// GetTasksData represents the task listing response
type GetTasksData struct {
	Response  []*Task       `json:"response"`
	QueryInfo TasksMetaInfo `json:"query_info"`
}

// ErrorResponse represents error info
type ErrorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// QueryResponse represents info for add/delete/clear task requests
type QueryResponse struct {
	Message           string   `json:"message"`
	ResourcesAffected []string `json:"resources_affected,omitempty"`
}
