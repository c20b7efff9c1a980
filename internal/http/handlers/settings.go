package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jmylchreest/accentd/internal/observability"
	"github.com/jmylchreest/accentd/internal/version"
)

// SettingsHandler handles runtime settings endpoints.
type SettingsHandler struct{}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler() *SettingsHandler {
	return &SettingsHandler{}
}

// Register registers the settings routes with the API.
func (h *SettingsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSettings",
		Method:      "GET",
		Path:        "/api/v1/settings",
		Summary:     "Get runtime settings",
		Tags:        []string{"Settings"},
	}, h.GetSettings)

	huma.Register(api, huma.Operation{
		OperationID: "updateSettings",
		Method:      "PUT",
		Path:        "/api/v1/settings",
		Summary:     "Update runtime settings",
		Description: "Changes take effect immediately and are not persisted",
		Tags:        []string{"Settings"},
	}, h.UpdateSettings)
}

// RuntimeSettings represents the runtime settings data.
type RuntimeSettings struct {
	LogLevel             string `json:"log_level"`
	EnableRequestLogging bool   `json:"enable_request_logging"`
}

// SettingsBody is the response body for settings operations.
type SettingsBody struct {
	Settings       RuntimeSettings `json:"settings"`
	AppliedChanges []string        `json:"applied_changes"`
	ValidLogLevels []string        `json:"valid_log_levels"`
	Version        string          `json:"version"`
	Timestamp      string          `json:"timestamp"`
}

// GetSettingsInput is the input for getting settings.
type GetSettingsInput struct{}

// SettingsOutput is the output for settings operations.
type SettingsOutput struct {
	Body SettingsBody
}

// GetSettings returns current runtime settings.
func (h *SettingsHandler) GetSettings(_ context.Context, _ *GetSettingsInput) (*SettingsOutput, error) {
	return settingsOutput([]string{}), nil
}

// UpdateSettingsInput is the input for updating settings.
type UpdateSettingsInput struct {
	Body struct {
		LogLevel             *string `json:"log_level,omitempty" enum:"trace,debug,info,warn,error"`
		EnableRequestLogging *bool   `json:"enable_request_logging,omitempty"`
	}
}

// UpdateSettings updates runtime settings.
func (h *SettingsHandler) UpdateSettings(_ context.Context, input *UpdateSettingsInput) (*SettingsOutput, error) {
	applied := []string{}

	if input.Body.LogLevel != nil {
		if err := observability.SetLogLevel(*input.Body.LogLevel); err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		applied = append(applied, "log_level")
	}

	if input.Body.EnableRequestLogging != nil {
		observability.SetRequestLogging(*input.Body.EnableRequestLogging)
		applied = append(applied, "enable_request_logging")
	}

	return settingsOutput(applied), nil
}

func settingsOutput(applied []string) *SettingsOutput {
	return &SettingsOutput{Body: SettingsBody{
		Settings: RuntimeSettings{
			LogLevel:             observability.GetLogLevel(),
			EnableRequestLogging: observability.IsRequestLoggingEnabled(),
		},
		AppliedChanges: applied,
		ValidLogLevels: observability.ValidLogLevels,
		Version:        version.Version,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}}
}
