package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jmylchreest/accentd/internal/service/logs"
)

// LogsHandler exposes the in-memory log window.
type LogsHandler struct {
	service *logs.Service
}

// NewLogsHandler creates a new logs handler.
func NewLogsHandler(service *logs.Service) *LogsHandler {
	return &LogsHandler{service: service}
}

// GetLogStatsInput is the input for log statistics.
type GetLogStatsInput struct{}

// GetLogStatsOutput is the output for log statistics.
type GetLogStatsOutput struct {
	Body logs.LogStats
}

// GetRecentLogsInput filters the recent log window.
type GetRecentLogsInput struct {
	Limit     int    `query:"limit" minimum:"1" maximum:"1000" default:"100" doc:"Maximum entries, newest kept"`
	Level     string `query:"level" enum:"trace,debug,info,warn,error" doc:"Minimum level"`
	Component string `query:"component" doc:"Only entries tagged with this component"`
}

// GetRecentLogsOutput is the output for recent logs.
type GetRecentLogsOutput struct {
	Body struct {
		Logs []logs.LogEntry `json:"logs"`
	}
}

// Register registers the logs routes with the API.
func (h *LogsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getLogStats",
		Method:      "GET",
		Path:        "/api/v1/logs/stats",
		Summary:     "Get log statistics",
		Description: "Counts by level and component, with the most recent errors",
		Tags:        []string{"System"},
	}, h.GetStats)

	huma.Register(api, huma.Operation{
		OperationID: "getRecentLogs",
		Method:      "GET",
		Path:        "/api/v1/logs/recent",
		Summary:     "Get recent logs",
		Description: "Returns retained log entries, oldest first",
		Tags:        []string{"System"},
	}, h.GetRecentLogs)
}

// GetStats returns current log statistics.
func (h *LogsHandler) GetStats(_ context.Context, _ *GetLogStatsInput) (*GetLogStatsOutput, error) {
	return &GetLogStatsOutput{Body: h.service.GetStats()}, nil
}

// GetRecentLogs returns the most recent log entries.
func (h *LogsHandler) GetRecentLogs(_ context.Context, input *GetRecentLogsInput) (*GetRecentLogsOutput, error) {
	out := &GetRecentLogsOutput{}
	out.Body.Logs = h.service.Recent(logs.Filter{
		MinLevel:  input.Level,
		Component: input.Component,
		Limit:     input.Limit,
	})
	return out, nil
}
