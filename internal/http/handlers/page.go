package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmylchreest/accentd/internal/assets"
	"github.com/jmylchreest/accentd/internal/models"
	"github.com/jmylchreest/accentd/internal/observability"
	"github.com/jmylchreest/accentd/internal/service"
)

// PreviewPageHandler renders the demo settings page: server-rendered initial
// paint plus form controls driven by the preview client.
type PreviewPageHandler struct {
	prefs   *service.PreferenceService
	accents *service.AccentService
	tmpl    *template.Template
	hasWASM bool
}

type previewPageData struct {
	Title        string
	UserID       string
	HostCSS      template.CSS
	InitialCSS   template.CSS
	NightClass   string
	Night        bool
	Presets      []models.PresetInfo
	PresetKey    string
	CustomAccent string
	SwatchAccent string
	Config       *models.ClientConfig
	HasWASM      bool
}

// NewPreviewPageHandler parses the page template.
func NewPreviewPageHandler(prefs *service.PreferenceService, accents *service.AccentService) (*PreviewPageHandler, error) {
	tmpl, err := template.ParseFS(assets.TemplatesFS, "templates/preview.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing preview template: %w", err)
	}
	return &PreviewPageHandler{
		prefs:   prefs,
		accents: accents,
		tmpl:    tmpl,
		hasWASM: assets.HasWASM(),
	}, nil
}

// RegisterChiRoutes registers the page route.
func (h *PreviewPageHandler) RegisterChiRoutes(r chi.Router) {
	r.Get("/preview/{userId}", h.ServeHTTP)
}

// ServeHTTP renders the page for the user in the path.
func (h *PreviewPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "userId")

	pref, err := h.prefs.Get(ctx, userID)
	if err != nil {
		observability.LoggerFromContext(ctx).ErrorContext(ctx, "loading preference for preview page",
			"user_id", userID, "error", err)
		http.Error(w, "failed to load preference", http.StatusInternalServerError)
		return
	}

	rendered := h.accents.RenderPreference(ctx, pref.Snapshot())
	cfg := h.accents.BootstrapConfig()

	swatch := rendered.Resolved
	if swatch == "" {
		swatch = cfg.NativeAccent
	}

	data := previewPageData{
		Title:        "Accent preview",
		UserID:       userID,
		HostCSS:      template.CSS(":root { " + cfg.HostVariable + ": " + cfg.NativeAccent + "; }"), //nolint:gosec // validated config values
		InitialCSS:   template.CSS(rendered.CSS),                                                     //nolint:gosec // engine output
		NightClass:   cfg.NightClass,
		Night:        pref.NightMode,
		Presets:      cfg.Presets,
		PresetKey:    pref.PresetKey,
		CustomAccent: pref.CustomAccent,
		SwatchAccent: swatch,
		Config:       cfg,
		HasWASM:      h.hasWASM,
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		observability.LoggerFromContext(ctx).ErrorContext(ctx, "rendering preview page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
