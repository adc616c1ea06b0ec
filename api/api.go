package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"schedsim/clients"
	"schedsim/domain"
	"schedsim/gantt"
	"schedsim/repositories"

	"github.com/dgraph-io/ristretto"
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"go.uber.org/zap"
)

const (
	taskPath     = "/task"
	tasksPath    = "/tasks"
	schedulePath = "/schedule"
	ganttPath    = "/gantt"
	exportPath   = "/export"
	reportsPath  = "/reports"
)

// API represents the object used for the api, api handlers and contains context and storage + local cache
type API struct {
	ctx                 context.Context
	taskRepo            *repositories.TaskRepo
	apiCache            *ristretto.Cache
	apiLogger           *zap.Logger
	chartGenerator      *gantt.ChartGenerator
	reportsClient       *clients.ReportsClient
	requestCount        map[string]int
	requestCountMutex   sync.Mutex
	lastRequestReset    time.Time
	maxRequestPerMinute int
}

// NewAPI returns an API object
func NewAPI(ctx context.Context, taskRepo *repositories.TaskRepo, cache *ristretto.Cache, logger *zap.Logger,
	reportsClient *clients.ReportsClient, requestCount map[string]int, maxRequestPerMinute int) *API {
	return &API{
		ctx:                 ctx,
		taskRepo:            taskRepo,
		apiCache:            cache,
		apiLogger:           logger,
		chartGenerator:      gantt.NewChartGenerator(),
		reportsClient:       reportsClient,
		requestCount:        requestCount,
		lastRequestReset:    time.Now(),
		maxRequestPerMinute: maxRequestPerMinute,
	}
}

// RegisterRoutes adds routes for all endpoints
func (api *API) RegisterRoutes(ws *restful.WebService) {
	tags := []string{"tasks"}
	ws.Route(
		ws.
			POST(taskPath).
			Doc("Add task").
			Reads(domain.Task{}).
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces(restful.MIME_JSON).
			Consumes(restful.MIME_JSON).
			Filter(api.RateLimit).
			To(api.AddTask).
			Writes(domain.QueryResponse{}).
			Returns(http.StatusCreated, "Created", domain.QueryResponse{}).
			Returns(http.StatusFound, "Already found", domain.ErrorResponse{}).
			Returns(http.StatusBadRequest, "Bad Request", domain.ErrorResponse{}))

	ws.Route(
		ws.
			GET(tasksPath).
			Doc("Retrieves tasks information").
			Param(ws.QueryParameter("date", "scheduled date of the tasks").DataType("string").AllowEmptyValue(true)).
			Param(ws.QueryParameter("filter",
				"filter tasks using fql format : pid/arrival_time/burst_time/priority/scheduled_date/time_quantum with operators =,!=,>,<,>=,<= combined with && or ||").
				DataType("string").AllowEmptyValue(true)).
			Param(ws.QueryParameter("sort", "sort tasks by pid, arrival_time, burst_time or priority").DataType("string").AllowEmptyValue(true)).
			Param(ws.QueryParameter("dir", "sort direction : asc or desc").DataType("string").AllowEmptyValue(true)).
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces(restful.MIME_JSON).
			Consumes(restful.MIME_JSON).
			Filter(api.RateLimit).
			To(api.GetTasksInfo).
			Writes(domain.GetTasksData{}).
			Returns(http.StatusOK, "OK", domain.GetTasksData{}).
			Returns(http.StatusBadRequest, "Bad Request", domain.ErrorResponse{}))

	ws.Route(
		ws.
			DELETE(taskPath).
			Doc("Deletes task").
			Param(ws.QueryParameter("pid", "process id of the task").DataType("integer").Required(true).AllowEmptyValue(false)).
			Param(ws.QueryParameter("date", "scheduled date of the task").DataType("string").Required(true).AllowEmptyValue(false)).
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces(restful.MIME_JSON).
			Consumes(restful.MIME_JSON).
			Filter(api.RateLimit).
			To(api.DeleteTask).
			Writes(domain.QueryResponse{}).
			Returns(http.StatusOK, "OK", domain.QueryResponse{}).
			Returns(http.StatusNotFound, "Task Not Found", domain.ErrorResponse{}).
			Returns(http.StatusBadRequest, "Bad Request", domain.ErrorResponse{}))

	ws.Route(
		ws.
			DELETE(tasksPath).
			Doc("Deletes all tasks").
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces(restful.MIME_JSON).
			Consumes(restful.MIME_JSON).
			Filter(api.RateLimit).
			To(api.ClearTasks).
			Writes(domain.QueryResponse{}).
			Returns(http.StatusOK, "OK", domain.QueryResponse{}))

	tags = []string{"schedule"}
	ws.Route(
		ws.
			GET(schedulePath+"/{date}").
			Doc("Runs every scheduling algorithm over the tasks of one date").
			Param(ws.PathParameter("date", "scheduled date to simulate").DataType("string").Required(true).AllowEmptyValue(false)).
			Param(ws.QueryParameter("include_gantt", "include gantt timeline data in the results").DataType("boolean").AllowEmptyValue(true)).
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces(restful.MIME_JSON).
			Consumes(restful.MIME_JSON).
			Filter(api.RateLimit).
			To(api.SimulateSchedule).
			Writes(domain.BatchResult{}).
			Returns(http.StatusOK, "OK", domain.BatchResult{}).
			Returns(http.StatusNotFound, "No Tasks Found", domain.ErrorResponse{}).
			Returns(http.StatusBadRequest, "Bad Request", domain.ErrorResponse{}))

	ws.Route(
		ws.
			GET(schedulePath).
			Doc("Runs every scheduling algorithm over every known date").
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces(restful.MIME_JSON).
			Consumes(restful.MIME_JSON).
			Filter(api.RateLimit).
			To(api.SimulateAllSchedules).
			Writes(domain.AllDatesResult{}).
			Returns(http.StatusOK, "OK", domain.AllDatesResult{}).
			Returns(http.StatusNotFound, "No Tasks Found", domain.ErrorResponse{}))

	ws.Route(
		ws.
			GET(ganttPath+"/{date}").
			Doc("Renders gantt charts for one date as html").
			Param(ws.PathParameter("date", "scheduled date to render").DataType("string").Required(true).AllowEmptyValue(false)).
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces("text/html").
			Filter(api.RateLimit).
			To(api.GetGanttCharts).
			Returns(http.StatusOK, "OK", "html gantt charts").
			Returns(http.StatusNotFound, "No Tasks Found", domain.ErrorResponse{}))

	ws.Route(
		ws.
			GET(reportsPath+"/{date}").
			Doc("Lists the s3 report objects stored for one date").
			Param(ws.PathParameter("date", "scheduled date of the reports").DataType("string").Required(true).AllowEmptyValue(false)).
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces(restful.MIME_JSON).
			Consumes(restful.MIME_JSON).
			Filter(api.RateLimit).
			To(api.ListReports).
			Writes(domain.QueryResponse{}).
			Returns(http.StatusOK, "OK", domain.QueryResponse{}).
			Returns(http.StatusNotImplemented, "Report storage disabled", domain.ErrorResponse{}))

	ws.Route(
		ws.
			DELETE(reportsPath+"/{date}").
			Doc("Deletes the s3 report objects stored for one date").
			Param(ws.PathParameter("date", "scheduled date of the reports").DataType("string").Required(true).AllowEmptyValue(false)).
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces(restful.MIME_JSON).
			Consumes(restful.MIME_JSON).
			Filter(api.RateLimit).
			To(api.DeleteReports).
			Writes(domain.QueryResponse{}).
			Returns(http.StatusOK, "OK", domain.QueryResponse{}).
			Returns(http.StatusNotImplemented, "Report storage disabled", domain.ErrorResponse{}))

	ws.Route(
		ws.
			GET(exportPath+"/{date}").
			Doc("Exports schedule results for one date as csv").
			Param(ws.PathParameter("date", "scheduled date to export").DataType("string").Required(true).AllowEmptyValue(false)).
			Metadata(restfulspec.KeyOpenAPITags, tags).
			Produces("text/csv").
			Filter(api.RateLimit).
			To(api.ExportSchedule).
			Returns(http.StatusOK, "OK", "csv report").
			Returns(http.StatusNotFound, "No Tasks Found", domain.ErrorResponse{}))
}
