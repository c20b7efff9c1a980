package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmylchreest/accentd/internal/models"
	"github.com/jmylchreest/accentd/internal/observability"
	"github.com/jmylchreest/accentd/internal/repository"
	"github.com/jmylchreest/accentd/pkg/accent"
)

// PreferenceService provides business logic for user accent preferences.
type PreferenceService struct {
	repo          repository.PreferenceRepository
	defaultPreset string
	logger        *slog.Logger
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(repo repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{
		repo:          repo,
		defaultPreset: accent.InheritKey,
		logger:        slog.Default(),
	}
}

// WithLogger sets the logger for the service.
func (s *PreferenceService) WithLogger(logger *slog.Logger) *PreferenceService {
	s.logger = logger
	return s
}

// WithDefaultPreset sets the preset reported for users without a stored preference.
func (s *PreferenceService) WithDefaultPreset(key string) *PreferenceService {
	if _, ok := accent.LookupPreset(key); ok {
		s.defaultPreset = key
	}
	return s
}

// Get returns the user's preference. A user with nothing stored gets an
// unsaved preference carrying the default preset; its ID is zero.
func (s *PreferenceService) Get(ctx context.Context, userID string) (*models.UserPreference, error) {
	if userID == "" {
		return nil, models.ErrUserIDRequired
	}
	pref, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading preference: %w", err)
	}
	if pref == nil {
		return &models.UserPreference{UserID: userID, PresetKey: s.defaultPreset}, nil
	}
	return pref, nil
}

// Save validates and stores the preference. Saving the inherit preset clears
// the custom accent, so the stored record resolves the same way the
// interactive controls did when it was submitted.
func (s *PreferenceService) Save(ctx context.Context, pref *models.UserPreference) error {
	pref.Normalize()
	if pref.PresetKey == accent.InheritKey {
		pref.CustomAccent = ""
	}
	if err := pref.Validate(); err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, pref); err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "preference saved",
		slog.String("user_id", pref.UserID),
		slog.String("preset_key", pref.PresetKey),
		slog.String("custom_accent", pref.CustomAccent),
		slog.Bool("night_mode", pref.NightMode),
	)
	return nil
}

// Delete removes the user's preference.
func (s *PreferenceService) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return models.ErrUserIDRequired
	}
	deleted, err := s.repo.DeleteByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("deleting preference: %w", err)
	}
	if !deleted {
		return models.ErrPreferenceNotFound
	}
	return nil
}

// List returns stored preferences ordered by user ID.
func (s *PreferenceService) List(ctx context.Context, offset, limit int) ([]*models.UserPreference, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting preferences: %w", err)
	}
	prefs, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing preferences: %w", err)
	}
	return prefs, total, nil
}

// Purge deletes every stored preference. It backs the uninstall cleanup.
func (s *PreferenceService) Purge(ctx context.Context) (removed int64, err error) {
	done := observability.TimedOperationWithError(ctx, s.logger, "purge_preferences", &err)
	defer done()

	removed, err = s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("purging preferences: %w", err)
	}
	s.logger.InfoContext(ctx, "preferences purged", slog.Int64("removed", removed))
	return removed, nil
}
