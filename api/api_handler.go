package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"schedsim/domain"
	"schedsim/helpers"
	"schedsim/schedule_algorithms"

	"github.com/emicklei/go-restful/v3"
	"github.com/rcrowley/go-metrics"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

const cacheCost = 300

// RateLimit rejects clients that exceed the per-minute request limit
func (api *API) RateLimit(request *restful.Request, response *restful.Response, chain *restful.FilterChain) {
	errorData := domain.ErrorResponse{}

	api.requestCountMutex.Lock()
	if time.Since(api.lastRequestReset) >= time.Minute {
		api.requestCount = make(map[string]int)
		api.lastRequestReset = time.Now()
	}
	clientAddr := request.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(clientAddr); err == nil {
		clientAddr = host
	}
	api.requestCount[clientAddr]++
	count := api.requestCount[clientAddr]
	api.requestCountMutex.Unlock()

	if count > api.maxRequestPerMinute {
		api.apiLogger.Warn("client exceeded request limit", zap.String("client", clientAddr), zap.Int("count", count))
		errorData.Message = "Too many requests, please try again later"
		errorData.StatusCode = http.StatusTooManyRequests
		response.WriteHeader(http.StatusTooManyRequests)
		response.WriteEntity(errorData)
		return
	}
	chain.ProcessFilter(request, response)
}

// AddTask creates a task
func (api *API) AddTask(request *restful.Request, response *restful.Response) {
	errorData := domain.ErrorResponse{}

	taskInput := domain.Task{}
	err := request.ReadEntity(&taskInput)
	if err != nil {
		api.apiLogger.Error("Couldn't read body", zap.Error(err))
		errorData.Message = "Bad Request/ could not read body"
		errorData.StatusCode = http.StatusBadRequest
		response.WriteHeader(http.StatusBadRequest)
		response.WriteEntity(errorData)
		return
	}

	task, err := domain.NewTask(taskInput.Pid, taskInput.ArrivalTime, taskInput.BurstTime,
		taskInput.Priority, taskInput.ScheduledDate, taskInput.TimeQuantum)
	if err != nil {
		api.apiLogger.Error("Invalid task", zap.Error(err))
		errorData.Message = "Bad Request/ " + err.Error()
		errorData.StatusCode = http.StatusBadRequest
		response.WriteHeader(http.StatusBadRequest)
		response.WriteEntity(errorData)
		return
	}

	if api.taskRepo.HasTask(task.Pid, task.ScheduledDate) {
		api.apiLogger.Error("Task already exists", zap.Int("pid", task.Pid), zap.String("date", task.ScheduledDate))
		errorData.Message = "Task already exists"
		errorData.StatusCode = http.StatusFound
		response.WriteHeader(http.StatusFound)
		response.WriteEntity(errorData)
		return
	}

	api.taskRepo.AddTask(task)
	api.apiCache.Clear()
	metrics.GetOrRegisterCounter("tasks.add", nil).Inc(1)

	response.WriteHeader(http.StatusCreated)
	response.WriteEntity(domain.QueryResponse{
		Message:           "Task added succesfully",
		ResourcesAffected: []string{strconv.Itoa(task.Pid)},
	})
}

// GetTasksInfo retrieves tasks information, optionally filtered and sorted
func (api *API) GetTasksInfo(request *restful.Request, response *restful.Response) {
	errorData := domain.ErrorResponse{}

	// calculate key and use cache to get the response
	marshalledRequest, err := json.Marshal(request.Request.URL)
	if err != nil {
		api.apiLogger.Error("Couldn't marshal request", zap.Any("url", request.Request.URL))
		errorData.Message = "Internal server error/Cannot marshal request"
		errorData.StatusCode = http.StatusInternalServerError
		response.WriteHeader(http.StatusInternalServerError)
		response.WriteEntity(errorData)
		return
	}
	tasksDataCache, found := api.apiCache.Get(marshalledRequest)
	if found {
		tasksData := domain.GetTasksData{}
		err = json.Unmarshal(tasksDataCache.([]byte), &tasksData)
		if err != nil {
			api.apiLogger.Error("Couldn't unmarshal tasks from cache", zap.Error(err))
			errorData.Message = "Internal server error/Cannot unmarshal tasks from cache"
			errorData.StatusCode = http.StatusInternalServerError
			response.WriteHeader(http.StatusInternalServerError)
			response.WriteEntity(errorData)
			return
		}
		api.apiLogger.Debug("Tasks found in cache")
		response.WriteEntity(tasksData)
		return
	}

	date := request.QueryParameter("date")

	var tasks []*domain.Task
	if date == "" {
		tasks = api.taskRepo.GetAllTasks()
	} else {
		tasks = api.taskRepo.GetTasksByDate(date)
	}

	filter := request.QueryParameter("filter")
	if filter != "" {
		listFilters, err := helpers.ParseFQLFilter(filter, api.apiLogger)
		if err != nil {
			api.apiLogger.Error("Invalid fql filter", zap.String("filter", filter), zap.Error(err))
			errorData.Message = "Bad Request / Invalid filter"
			errorData.StatusCode = http.StatusBadRequest
			response.WriteHeader(http.StatusBadRequest)
			response.WriteEntity(errorData)
			return
		}
		tasks = helpers.FilterTasks(tasks, listFilters)
	}

	sortBy := request.QueryParameter("sort")
	sortDir := request.QueryParameter("dir")
	if sortBy != "" {
		if !slices.Contains(helpers.GetTasksSortFields, sortBy) {
			api.apiLogger.Error("Invalid sort field", zap.String("sort", sortBy))
			errorData.Message = "Bad Request / Invalid sort field"
			errorData.StatusCode = http.StatusBadRequest
			response.WriteHeader(http.StatusBadRequest)
			response.WriteEntity(errorData)
			return
		}
		if sortDir == "" {
			sortDir = "asc"
		}
		if !slices.Contains(helpers.SortDirections, sortDir) {
			api.apiLogger.Error("Invalid sort direction", zap.String("dir", sortDir))
			errorData.Message = "Bad Request / Invalid sort direction"
			errorData.StatusCode = http.StatusBadRequest
			response.WriteHeader(http.StatusBadRequest)
			response.WriteEntity(errorData)
			return
		}
		tasks = helpers.SortTasks(tasks, sortBy, sortDir)
	}

	tasksData := domain.GetTasksData{
		Response: tasks,
		QueryInfo: domain.TasksMetaInfo{
			Total: len(tasks),
			Dates: len(api.taskRepo.Dates()),
		},
	}
	metrics.GetOrRegisterCounter("tasks.get", nil).Inc(1)
	response.WriteEntity(tasksData)

	marshalledTasksData, err := json.Marshal(tasksData)
	if err != nil {
		api.apiLogger.Error("Couldn't marshal tasks data", zap.Error(err))
		return
	}
	// If not in cache, set it
	api.apiCache.Set(marshalledRequest, marshalledTasksData, cacheCost)
}

// DeleteTask deletes a task identified by pid and scheduled date
func (api *API) DeleteTask(request *restful.Request, response *restful.Response) {
	errorData := domain.ErrorResponse{}

	pidParam := request.QueryParameter("pid")
	pid, err := strconv.Atoi(pidParam)
	if err != nil {
		api.apiLogger.Error("Couldn't parse pid query parameter", zap.String("pid", pidParam))
		errorData.Message = "Bad Request/ invalid pid"
		errorData.StatusCode = http.StatusBadRequest
		response.WriteHeader(http.StatusBadRequest)
		response.WriteEntity(errorData)
		return
	}

	date := request.QueryParameter("date")
	if date == "" {
		api.apiLogger.Error("Couldn't read date query parameter")
		errorData.Message = "Bad Request/ empty date"
		errorData.StatusCode = http.StatusBadRequest
		response.WriteHeader(http.StatusBadRequest)
		response.WriteEntity(errorData)
		return
	}

	err = api.taskRepo.DeleteTask(pid, date)
	if err != nil {
		api.apiLogger.Error("Task not found", zap.Int("pid", pid), zap.String("date", date))
		errorData.Message = err.Error()
		errorData.StatusCode = http.StatusNotFound
		response.WriteHeader(http.StatusNotFound)
		response.WriteEntity(errorData)
		return
	}

	api.apiCache.Clear()
	metrics.GetOrRegisterCounter("tasks.delete", nil).Inc(1)
	response.WriteEntity(domain.QueryResponse{
		Message:           "Task deleted succesfully",
		ResourcesAffected: []string{pidParam},
	})
}

// ClearTasks deletes every stored task
func (api *API) ClearTasks(request *restful.Request, response *restful.Response) {
	removed := api.taskRepo.Clear()
	api.apiCache.Clear()
	metrics.GetOrRegisterCounter("tasks.clear", nil).Inc(1)
	response.WriteEntity(domain.QueryResponse{
		Message:           "Removed " + strconv.Itoa(removed) + " tasks",
		ResourcesAffected: []string{},
	})
}

// SimulateSchedule runs every algorithm over the tasks of one date
func (api *API) SimulateSchedule(request *restful.Request, response *restful.Response) {
	errorData := domain.ErrorResponse{}

	marshalledRequest, err := json.Marshal(request.Request.URL)
	if err != nil {
		api.apiLogger.Error("Couldn't marshal request", zap.Any("url", request.Request.URL))
		errorData.Message = "Internal server error/Cannot marshal request"
		errorData.StatusCode = http.StatusInternalServerError
		response.WriteHeader(http.StatusInternalServerError)
		response.WriteEntity(errorData)
		return
	}
	batchCache, found := api.apiCache.Get(marshalledRequest)
	if found {
		batchData := domain.BatchResult{}
		err = json.Unmarshal(batchCache.([]byte), &batchData)
		if err != nil {
			api.apiLogger.Error("Couldn't unmarshal batch from cache", zap.Error(err))
			errorData.Message = "Internal server error/Cannot unmarshal schedule from cache"
			errorData.StatusCode = http.StatusInternalServerError
			response.WriteHeader(http.StatusInternalServerError)
			response.WriteEntity(errorData)
			return
		}
		api.apiLogger.Debug("Schedule found in cache", zap.String("date", batchData.Date))
		response.WriteEntity(batchData)
		return
	}

	startTime := time.Now()

	date := request.PathParameter("date")
	batch, ok := api.runBatch(date, response)
	if !ok {
		return
	}

	includeGantt := request.QueryParameter("include_gantt") == "true"
	if !includeGantt {
		for key, entry := range batch.Results {
			if entry.Result != nil {
				trimmed := *entry.Result
				trimmed.GanttData = nil
				batch.Results[key] = domain.AlgorithmResult{Result: &trimmed}
			}
		}
	}

	metrics.GetOrRegisterCounter("schedule.simulate", nil).Inc(1)
	metrics.GetOrRegisterTimer("simulate_latency.response", nil).UpdateSince(startTime)
	response.WriteEntity(batch)

	marshalledBatch, err := json.Marshal(batch)
	if err != nil {
		api.apiLogger.Error("Couldn't marshal schedule results", zap.Error(err))
		return
	}
	api.apiCache.Set(marshalledRequest, marshalledBatch, cacheCost)
}

// SimulateAllSchedules runs every algorithm over every known date and
// aggregates best-algorithm wins
func (api *API) SimulateAllSchedules(request *restful.Request, response *restful.Response) {
	errorData := domain.ErrorResponse{}

	dates := api.taskRepo.Dates()
	if len(dates) == 0 {
		api.apiLogger.Error("No tasks found for any date")
		errorData.Message = "No tasks found"
		errorData.StatusCode = http.StatusNotFound
		response.WriteHeader(http.StatusNotFound)
		response.WriteEntity(errorData)
		return
	}

	startTime := time.Now()

	allDates := domain.AllDatesResult{
		Dates:          dates,
		Results:        make(map[string]*domain.BatchResult),
		AlgorithmStats: make(map[string]*domain.AlgorithmStats),
	}
	for _, date := range dates {
		tasks := api.taskRepo.GetTasksByDate(date)
		batch := schedule_algorithms.RunAllAlgorithms(tasks, date, api.apiLogger)
		for key, entry := range batch.Results {
			if entry.Result != nil {
				trimmed := *entry.Result
				trimmed.GanttData = nil
				batch.Results[key] = domain.AlgorithmResult{Result: &trimmed}
			}
		}
		allDates.Results[date] = batch

		if batch.BestAlgorithm == schedule_algorithms.NoValidResults {
			continue
		}
		winner := batch.Results[batch.BestAlgorithm].Result
		score := winner.AvgWaitingTime + winner.AvgTurnaroundTime
		stats, ok := allDates.AlgorithmStats[batch.BestAlgorithm]
		if !ok {
			stats = &domain.AlgorithmStats{Name: winner.Algorithm, BestScore: score}
			allDates.AlgorithmStats[batch.BestAlgorithm] = stats
		}
		stats.Wins++
		if score < stats.BestScore {
			stats.BestScore = score
		}
	}

	metrics.GetOrRegisterCounter("schedule.simulate_all", nil).Inc(1)
	metrics.GetOrRegisterTimer("simulate_latency.response", nil).UpdateSince(startTime)
	response.WriteEntity(allDates)
}

// GetGanttCharts renders the gantt timeline of every algorithm plus the
// comparison chart for one date as an html fragment
func (api *API) GetGanttCharts(request *restful.Request, response *restful.Response) {
	date := request.PathParameter("date")
	batch, ok := api.runBatch(date, response)
	if !ok {
		return
	}
	tasks := api.taskRepo.GetTasksByDate(date)

	var htmlPage strings.Builder
	htmlPage.WriteString(api.chartGenerator.GenerateComparisonChartHTML(batch, date, schedule_algorithms.AlgorithmKeys))
	for _, key := range schedule_algorithms.AlgorithmKeys {
		entry := batch.Results[key]
		if entry.Result == nil {
			continue
		}
		htmlPage.WriteString(api.chartGenerator.GenerateGanttChartHTML(entry.Result.GanttData, entry.Result.Algorithm, tasks))
	}

	metrics.GetOrRegisterCounter("schedule.gantt", nil).Inc(1)
	response.AddHeader("Content-Type", "text/html; charset=utf-8")
	response.Write([]byte(htmlPage.String()))
}

// ExportSchedule exports the schedule results of one date as a csv report
func (api *API) ExportSchedule(request *restful.Request, response *restful.Response) {
	errorData := domain.ErrorResponse{}

	date := request.PathParameter("date")
	batch, ok := api.runBatch(date, response)
	if !ok {
		return
	}
	tasks := api.taskRepo.GetTasksByDate(date)

	report, err := helpers.BuildResultsCSV(tasks, batch, schedule_algorithms.AlgorithmKeys)
	if err != nil {
		api.apiLogger.Error("Couldn't build csv report", zap.Error(err))
		errorData.Message = "Internal server error/Cannot build csv report"
		errorData.StatusCode = http.StatusInternalServerError
		response.WriteHeader(http.StatusInternalServerError)
		response.WriteEntity(errorData)
		return
	}

	if api.reportsClient != nil {
		fileName := "reports/schedule_report_" + date + ".csv"
		err = api.reportsClient.UploadReport(fileName, report)
		if err != nil {
			api.apiLogger.Error("Couldn't upload report to s3", zap.Error(err), zap.String("file_name", fileName))
		}
	}

	metrics.GetOrRegisterCounter("schedule.export", nil).Inc(1)
	response.AddHeader("Content-Type", "text/csv")
	response.AddHeader("Content-Disposition", "attachment; filename=schedule_report_"+date+".csv")
	response.Write(report)
}

// ListReports returns the s3 report object keys stored for one date
func (api *API) ListReports(request *restful.Request, response *restful.Response) {
	errorData := domain.ErrorResponse{}

	if api.reportsClient == nil {
		errorData.Message = "Report storage is not enabled"
		errorData.StatusCode = http.StatusNotImplemented
		response.WriteHeader(http.StatusNotImplemented)
		response.WriteEntity(errorData)
		return
	}

	date := request.PathParameter("date")
	files, err := api.reportsClient.ListReports(date)
	if err != nil {
		api.apiLogger.Error("Couldn't list reports", zap.Error(err), zap.String("date", date))
		errorData.Message = "Internal server error/Cannot list reports"
		errorData.StatusCode = http.StatusInternalServerError
		response.WriteHeader(http.StatusInternalServerError)
		response.WriteEntity(errorData)
		return
	}

	metrics.GetOrRegisterCounter("reports.list", nil).Inc(1)
	response.WriteEntity(domain.QueryResponse{
		Message:           "Found " + strconv.Itoa(len(files)) + " reports",
		ResourcesAffected: files,
	})
}

// DeleteReports deletes the s3 report objects stored for one date
func (api *API) DeleteReports(request *restful.Request, response *restful.Response) {
	errorData := domain.ErrorResponse{}

	if api.reportsClient == nil {
		errorData.Message = "Report storage is not enabled"
		errorData.StatusCode = http.StatusNotImplemented
		response.WriteHeader(http.StatusNotImplemented)
		response.WriteEntity(errorData)
		return
	}

	date := request.PathParameter("date")
	files, err := api.reportsClient.ListReports(date)
	if err != nil {
		api.apiLogger.Error("Couldn't list reports", zap.Error(err), zap.String("date", date))
		errorData.Message = "Internal server error/Cannot list reports"
		errorData.StatusCode = http.StatusInternalServerError
		response.WriteHeader(http.StatusInternalServerError)
		response.WriteEntity(errorData)
		return
	}
	err = api.reportsClient.DeleteReports(files)
	if err != nil {
		api.apiLogger.Error("Couldn't delete reports", zap.Error(err), zap.String("date", date))
		errorData.Message = "Internal server error/Cannot delete reports"
		errorData.StatusCode = http.StatusInternalServerError
		response.WriteHeader(http.StatusInternalServerError)
		response.WriteEntity(errorData)
		return
	}

	metrics.GetOrRegisterCounter("reports.delete", nil).Inc(1)
	response.WriteEntity(domain.QueryResponse{
		Message:           "Deleted " + strconv.Itoa(len(files)) + " reports",
		ResourcesAffected: files,
	})
}

// runBatch loads the tasks of one date and runs every algorithm, writing the
// not-found response itself when the date has no tasks
func (api *API) runBatch(date string, response *restful.Response) (*domain.BatchResult, bool) {
	errorData := domain.ErrorResponse{}

	tasks := api.taskRepo.GetTasksByDate(date)
	if len(tasks) == 0 {
		api.apiLogger.Error("No tasks found", zap.String("date", date))
		errorData.Message = (&domain.NoTasksError{Date: date}).Error()
		errorData.StatusCode = http.StatusNotFound
		response.WriteHeader(http.StatusNotFound)
		response.WriteEntity(errorData)
		return nil, false
	}
	return schedule_algorithms.RunAllAlgorithms(tasks, date, api.apiLogger), true
}
