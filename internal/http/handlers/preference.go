package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"github.com/jmylchreest/accentd/internal/models"
	"github.com/jmylchreest/accentd/internal/observability"
	"github.com/jmylchreest/accentd/internal/service"
)

// PreferenceHandler handles per-user preference endpoints.
type PreferenceHandler struct {
	prefs     *service.PreferenceService
	accents   *service.AccentService
	cssMaxAge time.Duration
}

// NewPreferenceHandler creates a new preference handler.
func NewPreferenceHandler(prefs *service.PreferenceService, accents *service.AccentService, cssMaxAge time.Duration) *PreferenceHandler {
	return &PreferenceHandler{
		prefs:     prefs,
		accents:   accents,
		cssMaxAge: cssMaxAge,
	}
}

// Register registers the preference routes with the Huma API.
func (h *PreferenceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPreferences",
		Method:      "GET",
		Path:        "/api/v1/preferences",
		Summary:     "List stored preferences",
		Tags:        []string{"Preferences"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "getPreference",
		Method:      "GET",
		Path:        "/api/v1/users/{userId}/preference",
		Summary:     "Get a user's preference",
		Description: "Returns the stored preference, or the default when none is stored",
		Tags:        []string{"Preferences"},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "updatePreference",
		Method:      "PUT",
		Path:        "/api/v1/users/{userId}/preference",
		Summary:     "Save a user's preference",
		Tags:        []string{"Preferences"},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID:   "deletePreference",
		Method:        "DELETE",
		Path:          "/api/v1/users/{userId}/preference",
		Summary:       "Delete a user's preference",
		Tags:          []string{"Preferences"},
		DefaultStatus: http.StatusNoContent,
	}, h.Delete)
}

// RegisterChiRoutes registers the per-user stylesheet route.
func (h *PreferenceHandler) RegisterChiRoutes(r chi.Router) {
	r.Get("/api/v1/users/{userId}/accent.css", h.serveUserCSS)
}

// UserPathInput identifies a user.
type UserPathInput struct {
	UserID string `path:"userId" minLength:"1" maxLength:"191" doc:"Host application user ID"`
}

// ListPreferencesInput is the input for listing preferences.
type ListPreferencesInput struct {
	Offset int `query:"offset" minimum:"0" default:"0"`
	Limit  int `query:"limit" minimum:"1" maximum:"500" default:"50"`
}

// ListPreferencesOutput is the output for listing preferences.
type ListPreferencesOutput struct {
	Body struct {
		Preferences []PreferenceResponse `json:"preferences"`
		Total       int64                `json:"total"`
	}
}

// List returns stored preferences.
func (h *PreferenceHandler) List(ctx context.Context, input *ListPreferencesInput) (*ListPreferencesOutput, error) {
	prefs, total, err := h.prefs.List(ctx, input.Offset, input.Limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list preferences", err)
	}

	out := &ListPreferencesOutput{}
	out.Body.Total = total
	out.Body.Preferences = make([]PreferenceResponse, 0, len(prefs))
	for _, p := range prefs {
		out.Body.Preferences = append(out.Body.Preferences, preferenceResponse(p))
	}
	return out, nil
}

// GetPreferenceOutput is the output for reading or saving a preference.
type GetPreferenceOutput struct {
	Body PreferenceResponse
}

// Get returns a user's preference.
func (h *PreferenceHandler) Get(ctx context.Context, input *UserPathInput) (*GetPreferenceOutput, error) {
	pref, err := h.prefs.Get(ctx, input.UserID)
	if err != nil {
		return nil, preferenceError(err)
	}
	return &GetPreferenceOutput{Body: preferenceResponse(pref)}, nil
}

// UpdatePreferenceInput is the input for saving a preference.
type UpdatePreferenceInput struct {
	UserID string `path:"userId" minLength:"1" maxLength:"191"`
	Body   PreferenceRequest
}

// Update saves a user's preference.
func (h *PreferenceHandler) Update(ctx context.Context, input *UpdatePreferenceInput) (*GetPreferenceOutput, error) {
	pref := &models.UserPreference{
		UserID:       input.UserID,
		PresetKey:    input.Body.PresetKey,
		CustomAccent: input.Body.CustomAccent,
		NightMode:    input.Body.NightMode,
	}
	if err := h.prefs.Save(ctx, pref); err != nil {
		return nil, preferenceError(err)
	}
	return &GetPreferenceOutput{Body: preferenceResponse(pref)}, nil
}

// DeletePreferenceOutput is the output for deleting a preference.
type DeletePreferenceOutput struct{}

// Delete removes a user's preference.
func (h *PreferenceHandler) Delete(ctx context.Context, input *UserPathInput) (*DeletePreferenceOutput, error) {
	if err := h.prefs.Delete(ctx, input.UserID); err != nil {
		return nil, preferenceError(err)
	}
	return &DeletePreferenceOutput{}, nil
}

func (h *PreferenceHandler) serveUserCSS(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	out, err := h.accents.RenderUserCSS(r.Context(), userID)
	if err != nil {
		if errors.Is(err, models.ErrUserIDRequired) {
			http.Error(w, "user ID required", http.StatusBadRequest)
			return
		}
		observability.LoggerFromContext(r.Context()).ErrorContext(r.Context(), "rendering user css failed",
			"user_id", userID, "error", err)
		http.Error(w, "failed to render stylesheet", http.StatusInternalServerError)
		return
	}
	writeCSS(w, r, out.CSS, out.ETag, h.cssMaxAge, true)
}

func preferenceResponse(p *models.UserPreference) PreferenceResponse {
	resp := PreferenceResponse{
		UserID:       p.UserID,
		PresetKey:    p.PresetKey,
		CustomAccent: p.CustomAccent,
		NightMode:    p.NightMode,
		Stored:       !p.ID.IsZero(),
	}
	if resolved, ok := p.Snapshot().ResolveAccent(); ok {
		resp.Resolved = string(resolved)
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = p.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

// preferenceError maps service errors to API errors.
func preferenceError(err error) error {
	var verr models.ErrValidation
	switch {
	case errors.Is(err, models.ErrPreferenceNotFound):
		return huma.Error404NotFound("preference not found")
	case errors.Is(err, models.ErrUserIDRequired),
		errors.Is(err, models.ErrUnknownPreset),
		errors.Is(err, models.ErrInvalidAccent):
		return huma.Error422UnprocessableEntity(err.Error())
	case errors.As(err, &verr):
		return huma.Error422UnprocessableEntity(verr.Error())
	default:
		return huma.Error500InternalServerError("preference operation failed", err)
	}
}
