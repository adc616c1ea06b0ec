package helpers

var (
	// GetTasksFilters represents filters that can be used for GetTasks
	GetTasksFilters = []string{"pid", "arrival_time", "burst_time", "priority", "scheduled_date", "time_quantum"}
	// GetTasksSortFields represents sort fields that can be used for GetTasks
	GetTasksSortFields = []string{"pid", "arrival_time", "burst_time", "priority"}
	// SortDirections represents sort directions
	SortDirections = []string{"asc", "desc"}
	// NumericTaskFields represents task fields compared as integers in filters
	NumericTaskFields = []string{"pid", "burst_time", "priority", "time_quantum"}
	// MetricsName represents slice of metrics that are unregistered when closing app
	MetricsName = []string{"tasks.add", "tasks.get", "tasks.delete", "tasks.clear",
		"schedule.simulate", "schedule.simulate_all", "schedule.export", "schedule.gantt",
		"reports.list", "reports.delete", "simulate_latency.response"}
	// GanttColors represents the palette used for process blocks, picked by pid
	GanttColors = []string{
		"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4",
		"#FFEAA7", "#DDA0DD", "#98D8C8", "#F7DC6F",
		"#BB8FCE", "#85C1E9", "#F8C471", "#82E0AA",
	}
)
