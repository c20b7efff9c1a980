// Package logs keeps a bounded window of recent log records so operators can
// inspect a running server through the API.
package logs

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// DefaultMaxLogs is the number of records retained in memory.
	DefaultMaxLogs = 1000
	// DefaultMaxErrors is the number of error records kept for stats.
	DefaultMaxErrors = 10
)

// Levels lists the level names an entry can carry, lowest first.
var Levels = []string{"trace", "debug", "info", "warn", "error"}

// LogEntry is one captured record.
type LogEntry struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Component string         `json:"component,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// LogStats summarises what has been captured since start.
type LogStats struct {
	TotalLogs          int64            `json:"total_logs"`
	Retained           int              `json:"retained"`
	LogsByLevel        map[string]int64 `json:"logs_by_level"`
	LogsByComponent    map[string]int64 `json:"logs_by_component"`
	RecentErrors       []LogEntry       `json:"recent_errors"`
	LogRatePerMinute   float64          `json:"log_rate_per_minute"`
	OldestLogTimestamp *time.Time       `json:"oldest_log_timestamp,omitempty"`
	NewestLogTimestamp *time.Time       `json:"newest_log_timestamp,omitempty"`
}

// Filter narrows Recent. Zero values match everything.
type Filter struct {
	// MinLevel drops entries below this level name.
	MinLevel  string
	Component string
	Limit     int
}

// Service captures records from a wrapped slog.Handler.
type Service struct {
	mu           sync.RWMutex
	logs         []LogEntry
	maxLogs      int
	totalLogs    int64
	byLevel      map[string]int64
	byComponent  map[string]int64
	recentErrors []LogEntry
	maxErrors    int
	startTime    time.Time
	redact       func(groups []string, a slog.Attr) slog.Attr
}

// Option configures a Service.
type Option func(*Service)

// WithMaxLogs sets how many records are retained.
func WithMaxLogs(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxLogs = n
		}
	}
}

// WithRedactor filters every attribute before it is stored. Captured records
// bypass the wrapped handler's own ReplaceAttr, so pass the same filter.
func WithRedactor(fn func(groups []string, a slog.Attr) slog.Attr) Option {
	return func(s *Service) {
		s.redact = fn
	}
}

// New creates a new logs service.
func New(opts ...Option) *Service {
	s := &Service{
		maxLogs:     DefaultMaxLogs,
		byLevel:     make(map[string]int64),
		byComponent: make(map[string]int64),
		maxErrors:   DefaultMaxErrors,
		startTime:   time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logs = make([]LogEntry, 0, s.maxLogs)
	return s
}

// WrapHandler returns a handler that records into s and then passes every
// record on to handler.
func (s *Service) WrapHandler(handler slog.Handler) slog.Handler {
	return &captureHandler{service: s, wrapped: handler}
}

// AddLog stores an entry, evicting the oldest when full.
func (s *Service) AddLog(entry LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = ulid.Make().String()
	}

	s.totalLogs++
	s.byLevel[entry.Level]++
	if entry.Component != "" {
		s.byComponent[entry.Component]++
	}

	if entry.Level == "error" {
		s.recentErrors = append(s.recentErrors, entry)
		if len(s.recentErrors) > s.maxErrors {
			s.recentErrors = s.recentErrors[1:]
		}
	}

	if len(s.logs) >= s.maxLogs {
		s.logs = s.logs[1:]
	}
	s.logs = append(s.logs, entry)
}

// Recent returns matching entries, oldest first, keeping the newest Limit.
func (s *Service) Recent(f Filter) []LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	minRank := levelRank(f.MinLevel)
	out := make([]LogEntry, 0, len(s.logs))
	for _, e := range s.logs {
		if levelRank(e.Level) < minRank {
			continue
		}
		if f.Component != "" && e.Component != f.Component {
			continue
		}
		out = append(out, e)
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[len(out)-f.Limit:]
	}
	return out
}

// GetStats returns current log statistics.
func (s *Service) GetStats() LogStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := LogStats{
		TotalLogs:       s.totalLogs,
		Retained:        len(s.logs),
		LogsByLevel:     make(map[string]int64, len(Levels)),
		LogsByComponent: make(map[string]int64, len(s.byComponent)),
		RecentErrors:    slices.Clone(s.recentErrors),
	}
	for _, level := range Levels {
		stats.LogsByLevel[level] = s.byLevel[level]
	}
	for c, n := range s.byComponent {
		stats.LogsByComponent[c] = n
	}
	if stats.RecentErrors == nil {
		stats.RecentErrors = []LogEntry{}
	}

	if elapsed := time.Since(s.startTime).Minutes(); elapsed > 0 {
		stats.LogRatePerMinute = float64(s.totalLogs) / elapsed
	}

	if len(s.logs) > 0 {
		oldest := s.logs[0].Timestamp
		newest := s.logs[len(s.logs)-1].Timestamp
		stats.OldestLogTimestamp = &oldest
		stats.NewestLogTimestamp = &newest
	}
	return stats
}

// captureHandler is a slog.Handler that copies records into the service.
type captureHandler struct {
	service *Service
	wrapped slog.Handler
	attrs   []slog.Attr
	groups  []string
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.wrapped.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	entry := LogEntry{
		Timestamp: r.Time,
		Level:     LevelName(r.Level),
		Message:   r.Message,
		Fields:    make(map[string]any),
	}

	for _, a := range h.attrs {
		h.addAttr(&entry, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.addAttr(&entry, a)
		return true
	})
	if len(entry.Fields) == 0 {
		entry.Fields = nil
	}

	h.service.AddLog(entry)
	return h.wrapped.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &captureHandler{
		service: h.service,
		wrapped: h.wrapped.WithAttrs(attrs),
		attrs:   append(slices.Clone(h.attrs), attrs...),
		groups:  h.groups,
	}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{
		service: h.service,
		wrapped: h.wrapped.WithGroup(name),
		attrs:   h.attrs,
		groups:  append(slices.Clone(h.groups), name),
	}
}

func (h *captureHandler) addAttr(entry *LogEntry, a slog.Attr) {
	if h.service.redact != nil {
		a = h.service.redact(h.groups, a)
	}
	a.Value = a.Value.Resolve()

	switch a.Key {
	case "component":
		entry.Component = a.Value.String()
		return
	case "request_id":
		entry.RequestID = a.Value.String()
		return
	}

	key := a.Key
	for i := len(h.groups) - 1; i >= 0; i-- {
		key = h.groups[i] + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		group := make(map[string]any)
		for _, ga := range a.Value.Group() {
			group[ga.Key] = ga.Value.Any()
		}
		entry.Fields[key] = group
		return
	}
	entry.Fields[key] = a.Value.Any()
}

// LevelName maps a slog level to its lower-case name, with anything below
// debug reported as trace.
func LevelName(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "trace"
	case level < slog.LevelInfo:
		return "debug"
	case level < slog.LevelWarn:
		return "info"
	case level < slog.LevelError:
		return "warn"
	default:
		return "error"
	}
}

func levelRank(name string) int {
	if i := slices.Index(Levels, name); i >= 0 {
		return i
	}
	return 0
}
