package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jmylchreest/accentd/internal/config"
	"github.com/jmylchreest/accentd/internal/http/handlers"
	"github.com/jmylchreest/accentd/internal/models"
	"github.com/jmylchreest/accentd/internal/observability"
	"github.com/jmylchreest/accentd/internal/repository"
	"github.com/jmylchreest/accentd/internal/service"
	"github.com/jmylchreest/accentd/internal/service/logs"
)

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	router, _ := setupRouterWithLogs(t)
	return router
}

func setupRouterWithLogs(t *testing.T) (*chi.Mux, *logs.Service) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.UserPreference{}))

	repo := repository.NewPreferenceRepository(db)
	prefs := service.NewPreferenceService(repo)
	accents, err := service.NewAccentService(prefs, config.AccentConfig{
		NativeAccent:      "#2271b1",
		TintFallback:      "#f0f0f1",
		ContrastThreshold: 0.179,
		DefaultPreset:     "default",
	})
	require.NoError(t, err)

	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("Test API", "1.0.0"))

	accentHandler := handlers.NewAccentHandler(accents, service.NewSwatchService(accents), 5*time.Minute)
	accentHandler.Register(api)
	accentHandler.RegisterChiRoutes(router)

	prefHandler := handlers.NewPreferenceHandler(prefs, accents, 5*time.Minute)
	prefHandler.Register(api)
	prefHandler.RegisterChiRoutes(router)

	page, err := handlers.NewPreviewPageHandler(prefs, accents)
	require.NoError(t, err)
	page.RegisterChiRoutes(router)

	handlers.NewStaticHandler().RegisterChiRoutes(router)
	handlers.NewSettingsHandler().Register(api)
	handlers.NewHealthHandler("1.0.0").WithDB(db, "sqlite").WithPreferences(repo).Register(api)

	logsService := logs.New()
	handlers.NewLogsHandler(logsService).Register(api)

	return router, logsService
}

func do(t *testing.T, router http.Handler, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestAccentHandler_ListPresets(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/presets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[models.PresetListResponse](t, rec)
	assert.Equal(t, "default", resp.Default)
	require.NotEmpty(t, resp.Presets)
	assert.Equal(t, models.PresetKindInherit, resp.Presets[0].Kind)
}

func TestAccentHandler_GetPalette(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/palette?accent=%23FFF9C4", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[models.PaletteReport](t, rec)
	assert.Equal(t, "#fff9c4", report.Accent)
	assert.Equal(t, "#e6e0b0", report.Tones[1].Color)
	assert.Equal(t, "#000000", report.Tones[0].Contrast)

	rec = do(t, router, http.MethodGet, "/api/v1/palette?accent=blue", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/v1/palette", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAccentHandler_GetNightPalette(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/palette/night", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[models.NightReport](t, rec)
	assert.Len(t, report.Variables, 7)
}

func TestAccentHandler_PreviewPalette(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodPost, "/api/v1/palette/preview", map[string]any{
		"preset_key":    "default",
		"custom_accent": "#ff0000",
		"night_mode":    true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode[models.PreviewResult](t, rec)
	assert.True(t, out.Inherit)
	assert.True(t, out.Night)
	assert.Equal(t, "#2271b1", out.Resolved)
	assert.Len(t, out.Variables, 17)
}

func TestAccentHandler_ClientConfig(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/client-config", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cfg := decode[models.ClientConfig](t, rec)
	assert.Equal(t, "--accentd", cfg.VariablePrefix)
	assert.Equal(t, "--wp-admin-theme-color", cfg.HostVariable)
	assert.Equal(t, "accentd-night", cfg.NightClass)
}

func TestAccentHandler_Swatch(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/api/v1/palette/swatch.png?accent=%232271b1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = do(t, router, http.MethodGet, "/api/v1/palette/swatch.png?accent=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccentHandler_ChromeCSS(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/assets/chrome.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "public")
	assert.Contains(t, rec.Body.String(), "var(--accentd-accent, var(--wp-admin-theme-color, #2271b1))")

	etag := rec.Header().Get("ETag")
	rec = do(t, router, http.MethodGet, "/assets/chrome.css", nil, "If-None-Match", etag)
	assert.Equal(t, http.StatusNotModified, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestPreferenceHandler_Lifecycle(t *testing.T) {
	router := setupRouter(t)
	path := "/api/v1/users/u1/preference"

	rec := do(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[handlers.PreferenceResponse](t, rec)
	assert.False(t, got.Stored)
	assert.Equal(t, "default", got.PresetKey)
	assert.Empty(t, got.Resolved)

	rec = do(t, router, http.MethodPut, path, handlers.PreferenceRequest{PresetKey: "ocean", CustomAccent: "#ABC", NightMode: true})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got = decode[handlers.PreferenceResponse](t, rec)
	assert.True(t, got.Stored)
	assert.Equal(t, "#aabbcc", got.CustomAccent)
	assert.Equal(t, "#aabbcc", got.Resolved)
	assert.NotEmpty(t, got.UpdatedAt)

	rec = do(t, router, http.MethodGet, "/api/v1/preferences", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Preferences []handlers.PreferenceResponse `json:"preferences"`
		Total       int64                         `json:"total"`
	}](t, rec)
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Preferences, 1)
	assert.Equal(t, "u1", list.Preferences[0].UserID)

	rec = do(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreferenceHandler_UpdateInvalid(t *testing.T) {
	router := setupRouter(t)
	path := "/api/v1/users/u1/preference"

	rec := do(t, router, http.MethodPut, path, handlers.PreferenceRequest{PresetKey: "plaid"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown preset")

	rec = do(t, router, http.MethodPut, path, handlers.PreferenceRequest{PresetKey: "ocean", CustomAccent: "#abcd"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPreferenceHandler_UserCSS(t *testing.T) {
	router := setupRouter(t)
	cssPath := "/api/v1/users/u1/accent.css"

	rec := do(t, router, http.MethodGet, cssPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String(), "inherit emits no variables")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "private")
	emptyTag := rec.Header().Get("ETag")

	rec = do(t, router, http.MethodPut, "/api/v1/users/u1/preference", handlers.PreferenceRequest{PresetKey: "lemon"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, cssPath, nil, "If-None-Match", emptyTag)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "--accentd-accent: #fff9c4;")
	assert.Contains(t, rec.Body.String(), "--accentd-accent-contrast: #000000;")
	etag := rec.Header().Get("ETag")
	assert.NotEqual(t, emptyTag, etag)

	rec = do(t, router, http.MethodGet, cssPath, nil, "If-None-Match", "W/"+etag)
	assert.Equal(t, http.StatusNotModified, rec.Code)
}

func TestPreviewPage(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodPut, "/api/v1/users/u1/preference", handlers.PreferenceRequest{PresetKey: "rose", NightMode: true})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/preview/u1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="rose" selected>Rose</option>`)
	assert.Contains(t, body, "--accentd-accent: #e11d48;")
	assert.Contains(t, body, `class="accentd-night"`)
	assert.Contains(t, body, ":root { --wp-admin-theme-color: #2271b1; }")
	assert.Contains(t, body, `"night_class":"accentd-night"`)
	assert.Contains(t, body, "swatch.png?accent=%23e11d48")
}

func TestStaticHandler(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/static/preview.js", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/javascript"))

	rec = do(t, router, http.MethodGet, "/static/missing.js", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/static/.gitkeep", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSettingsHandler(t *testing.T) {
	original := observability.GetLogLevel()
	originalLogging := observability.IsRequestLoggingEnabled()
	t.Cleanup(func() {
		_ = observability.SetLogLevel(original)
		observability.SetRequestLogging(originalLogging)
	})
	router := setupRouter(t)

	rec := do(t, router, http.MethodPut, "/api/v1/settings", map[string]any{
		"log_level":              "debug",
		"enable_request_logging": false,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode[handlers.SettingsBody](t, rec)
	assert.Equal(t, "debug", body.Settings.LogLevel)
	assert.False(t, body.Settings.EnableRequestLogging)
	assert.ElementsMatch(t, []string{"log_level", "enable_request_logging"}, body.AppliedChanges)

	rec = do(t, router, http.MethodPut, "/api/v1/settings", map[string]any{"log_level": "verbose"})
	assert.GreaterOrEqual(t, rec.Code, 400)
	assert.Less(t, rec.Code, 500)

	rec = do(t, router, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode[handlers.SettingsBody](t, rec)
	assert.Equal(t, "debug", body.Settings.LogLevel)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter(t)

	rec := do(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[handlers.HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "ok", health.Database.Status)
	assert.Equal(t, "sqlite", health.Database.Driver)
	assert.Positive(t, health.CPUInfo.Cores)

	rec = do(t, router, http.MethodGet, "/livez", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decode[handlers.ReadyzResponse](t, rec)
	assert.Equal(t, "ready", ready.Status)
}

func TestLogsHandler(t *testing.T) {
	router, logsService := setupRouterWithLogs(t)
	logsService.AddLog(logs.LogEntry{Level: "info", Message: "starting", Component: "http"})
	logsService.AddLog(logs.LogEntry{Level: "error", Message: "render failed", Component: "accent"})

	rec := do(t, router, http.MethodGet, "/api/v1/logs/recent?level=warn", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	recent := decode[struct {
		Logs []logs.LogEntry `json:"logs"`
	}](t, rec)
	require.Len(t, recent.Logs, 1)
	assert.Equal(t, "render failed", recent.Logs[0].Message)

	rec = do(t, router, http.MethodGet, "/api/v1/logs/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[logs.LogStats](t, rec)
	assert.Equal(t, int64(2), stats.TotalLogs)
	assert.Equal(t, int64(1), stats.LogsByComponent["accent"])
}
