package handlers

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status        string            `json:"status"`
	Timestamp     string            `json:"timestamp"`
	Version       string            `json:"version"`
	Uptime        string            `json:"uptime"`
	UptimeSeconds float64           `json:"uptime_seconds"`
	CPUInfo       CPUInfo           `json:"cpu_info"`
	Memory        MemoryInfo        `json:"memory"`
	Database      DatabaseHealth    `json:"database"`
	Preferences   int64             `json:"preferences"`
	Checks        map[string]string `json:"checks,omitempty"`
}

// CPUInfo holds load averages.
type CPUInfo struct {
	Cores              int     `json:"cores"`
	Load1Min           float64 `json:"load_1min"`
	Load5Min           float64 `json:"load_5min"`
	Load15Min          float64 `json:"load_15min"`
	LoadPercentage1Min float64 `json:"load_percentage_1min"`
}

// MemoryInfo holds system and process memory figures in megabytes.
type MemoryInfo struct {
	TotalMemoryMB     float64 `json:"total_memory_mb"`
	UsedMemoryMB      float64 `json:"used_memory_mb"`
	AvailableMemoryMB float64 `json:"available_memory_mb"`
	ProcessMemoryMB   float64 `json:"process_memory_mb"`
	PercentOfSystem   float64 `json:"percent_of_system"`
}

// DatabaseHealth describes the preference store connection.
type DatabaseHealth struct {
	Status                 string  `json:"status"`
	Driver                 string  `json:"driver,omitempty"`
	ConnectionPoolSize     int     `json:"connection_pool_size"`
	ActiveConnections      int     `json:"active_connections"`
	IdleConnections        int     `json:"idle_connections"`
	PoolUtilizationPercent float64 `json:"pool_utilization_percent"`
	ResponseTimeMS         float64 `json:"response_time_ms"`
	ResponseTimeStatus     string  `json:"response_time_status"`
}

// LivezResponse is returned by the liveness probe.
type LivezResponse struct {
	Status string `json:"status"`
}

// ReadyzResponse is returned by the readiness probe.
type ReadyzResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// PreferenceResponse is a user's preference with the accent it resolves to.
type PreferenceResponse struct {
	UserID       string `json:"user_id"`
	PresetKey    string `json:"preset_key"`
	CustomAccent string `json:"custom_accent,omitempty"`
	NightMode    bool   `json:"night_mode"`
	Resolved     string `json:"resolved,omitempty"`
	Stored       bool   `json:"stored"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// PreferenceRequest is the body for saving a preference.
type PreferenceRequest struct {
	PresetKey    string `json:"preset_key" doc:"Preset key; \"default\" inherits the host theme" example:"ocean"`
	CustomAccent string `json:"custom_accent,omitempty" doc:"Optional #rgb or #rrggbb color that overrides the preset" example:"#2271b1"`
	NightMode    bool   `json:"night_mode" doc:"Apply the night palette"`
}
