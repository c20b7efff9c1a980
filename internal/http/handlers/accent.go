package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/jmylchreest/accentd/internal/models"
	"github.com/jmylchreest/accentd/internal/observability"
	"github.com/jmylchreest/accentd/internal/preview"
	"github.com/jmylchreest/accentd/internal/service"
	"github.com/jmylchreest/accentd/pkg/accent"
)

// AccentHandler serves palette derivation and the shared stylesheets.
type AccentHandler struct {
	accents   *service.AccentService
	swatches  *service.SwatchService
	cssMaxAge time.Duration
}

// NewAccentHandler creates a new accent handler.
func NewAccentHandler(accents *service.AccentService, swatches *service.SwatchService, cssMaxAge time.Duration) *AccentHandler {
	return &AccentHandler{
		accents:   accents,
		swatches:  swatches,
		cssMaxAge: cssMaxAge,
	}
}

// Register registers the accent routes with the Huma API.
func (h *AccentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPresets",
		Method:      "GET",
		Path:        "/api/v1/presets",
		Summary:     "List accent presets",
		Description: "Returns the preset table in display order",
		Tags:        []string{"Accent"},
	}, h.ListPresets)

	huma.Register(api, huma.Operation{
		OperationID: "getPalette",
		Method:      "GET",
		Path:        "/api/v1/palette",
		Summary:     "Derive a palette",
		Description: "Returns the derived tones, contrast colors and contrast ratios for an accent",
		Tags:        []string{"Accent"},
	}, h.GetPalette)

	huma.Register(api, huma.Operation{
		OperationID: "getNightPalette",
		Method:      "GET",
		Path:        "/api/v1/palette/night",
		Summary:     "Get the night palette",
		Tags:        []string{"Accent"},
	}, h.GetNightPalette)

	huma.Register(api, huma.Operation{
		OperationID: "previewPalette",
		Method:      "POST",
		Path:        "/api/v1/palette/preview",
		Summary:     "Preview form controls",
		Description: "Evaluates preference form controls with the live-preview precedence and returns the variables written",
		Tags:        []string{"Accent"},
	}, h.PreviewPalette)

	huma.Register(api, huma.Operation{
		OperationID: "getClientConfig",
		Method:      "GET",
		Path:        "/api/v1/client-config",
		Summary:     "Get preview client configuration",
		Description: "Returns the variable names and fallbacks the browser preview client needs",
		Tags:        []string{"Accent"},
	}, h.GetClientConfig)
}

// RegisterChiRoutes registers routes that need custom content types.
func (h *AccentHandler) RegisterChiRoutes(r chi.Router) {
	r.Get("/api/v1/palette/swatch.png", h.serveSwatch)
	r.Get("/assets/chrome.css", h.serveChromeCSS)
}

// ListPresetsInput is the input for listing presets.
type ListPresetsInput struct{}

// ListPresetsOutput is the output for listing presets.
type ListPresetsOutput struct {
	Body models.PresetListResponse
}

// ListPresets returns the preset table.
func (h *AccentHandler) ListPresets(_ context.Context, _ *ListPresetsInput) (*ListPresetsOutput, error) {
	return &ListPresetsOutput{Body: *h.accents.Presets()}, nil
}

// GetPaletteInput is the input for deriving a palette.
type GetPaletteInput struct {
	Accent string `query:"accent" required:"true" doc:"Accent color as #rgb or #rrggbb" example:"#2271b1"`
}

// GetPaletteOutput is the output for deriving a palette.
type GetPaletteOutput struct {
	Body models.PaletteReport
}

// GetPalette derives the palette for an accent.
func (h *AccentHandler) GetPalette(_ context.Context, input *GetPaletteInput) (*GetPaletteOutput, error) {
	report, err := h.accents.Palette(input.Accent)
	if err != nil {
		if errors.Is(err, accent.ErrInvalidHex) {
			return nil, huma.Error400BadRequest("accent must be a #rgb or #rrggbb color", err)
		}
		return nil, huma.Error500InternalServerError("failed to derive palette", err)
	}
	return &GetPaletteOutput{Body: *report}, nil
}

// GetNightPaletteInput is the input for the night palette.
type GetNightPaletteInput struct{}

// GetNightPaletteOutput is the output for the night palette.
type GetNightPaletteOutput struct {
	Body models.NightReport
}

// GetNightPalette returns the night palette.
func (h *AccentHandler) GetNightPalette(_ context.Context, _ *GetNightPaletteInput) (*GetNightPaletteOutput, error) {
	return &GetNightPaletteOutput{Body: *h.accents.Night()}, nil
}

// PreviewPaletteInput is the input for previewing form controls.
type PreviewPaletteInput struct {
	Body preview.Controls
}

// PreviewPaletteOutput is the output for previewing form controls.
type PreviewPaletteOutput struct {
	Body models.PreviewResult
}

// PreviewPalette evaluates form controls.
func (h *AccentHandler) PreviewPalette(ctx context.Context, input *PreviewPaletteInput) (*PreviewPaletteOutput, error) {
	return &PreviewPaletteOutput{Body: *h.accents.Preview(ctx, input.Body)}, nil
}

// GetClientConfigInput is the input for the client configuration.
type GetClientConfigInput struct{}

// GetClientConfigOutput is the output for the client configuration.
type GetClientConfigOutput struct {
	Body models.ClientConfig
}

// GetClientConfig returns the preview client bootstrap.
func (h *AccentHandler) GetClientConfig(_ context.Context, _ *GetClientConfigInput) (*GetClientConfigOutput, error) {
	return &GetClientConfigOutput{Body: *h.accents.BootstrapConfig()}, nil
}

func (h *AccentHandler) serveSwatch(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("accent")
	png, err := h.swatches.Render(raw)
	if err != nil {
		if errors.Is(err, accent.ErrInvalidHex) {
			http.Error(w, "accent must be a #rgb or #rrggbb color", http.StatusBadRequest)
			return
		}
		observability.LoggerFromContext(r.Context()).ErrorContext(r.Context(), "swatch render failed",
			"accent", raw, "error", err)
		http.Error(w, "failed to render swatch", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	// output depends only on the accent
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *AccentHandler) serveChromeCSS(w http.ResponseWriter, r *http.Request) {
	writeCSS(w, r, h.accents.ConsumerStylesheet(), h.accents.ConsumerStylesheetETag(), h.cssMaxAge, false)
}
