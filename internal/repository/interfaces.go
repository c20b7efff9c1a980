// Package repository defines data access interfaces for accentd entities.
// All database access goes through these interfaces, enabling easy testing
// and database backend switching.
package repository

import (
	"context"

	"github.com/jmylchreest/accentd/internal/models"
)

// PreferenceRepository defines operations for user preference persistence.
type PreferenceRepository interface {
	// GetByUserID retrieves a user's preference. Returns nil, nil when none is stored.
	GetByUserID(ctx context.Context, userID string) (*models.UserPreference, error)
	// Upsert creates or replaces the preference for pref.UserID and
	// refreshes pref with the stored row.
	Upsert(ctx context.Context, pref *models.UserPreference) error
	// DeleteByUserID removes a user's preference. Returns false if none existed.
	DeleteByUserID(ctx context.Context, userID string) (bool, error)
	// DeleteAll removes every stored preference and returns the number removed.
	DeleteAll(ctx context.Context) (int64, error)
	// List returns preferences ordered by user ID.
	List(ctx context.Context, offset, limit int) ([]*models.UserPreference, error)
	// Count returns the number of stored preferences.
	Count(ctx context.Context) (int64, error)
}
