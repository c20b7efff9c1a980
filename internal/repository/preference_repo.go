package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jmylchreest/accentd/internal/models"
)

// preferenceRepository implements PreferenceRepository using GORM.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new PreferenceRepository.
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

// GetByUserID retrieves a user's preference.
func (r *preferenceRepository) GetByUserID(ctx context.Context, userID string) (*models.UserPreference, error) {
	var pref models.UserPreference
	if err := r.db.WithContext(ctx).First(&pref, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

// Upsert creates or replaces a user's preference.
func (r *preferenceRepository) Upsert(ctx context.Context, pref *models.UserPreference) error {
	pref.Normalize()
	if err := pref.Validate(); err != nil {
		return fmt.Errorf("validating preference: %w", err)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"preset_key", "custom_accent", "night_mode", "updated_at"}),
	}).Create(pref).Error
	if err != nil {
		return fmt.Errorf("upserting preference: %w", err)
	}

	// the generated ID is discarded on conflict; reload the stored row
	stored, err := r.GetByUserID(ctx, pref.UserID)
	if err != nil {
		return fmt.Errorf("reloading preference: %w", err)
	}
	if stored != nil {
		*pref = *stored
	}
	return nil
}

// DeleteByUserID removes a user's preference.
func (r *preferenceRepository) DeleteByUserID(ctx context.Context, userID string) (bool, error) {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.UserPreference{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteAll removes every stored preference.
func (r *preferenceRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.UserPreference{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// List returns preferences ordered by user ID. A non-positive limit returns all rows.
func (r *preferenceRepository) List(ctx context.Context, offset, limit int) ([]*models.UserPreference, error) {
	q := r.db.WithContext(ctx).Order("user_id ASC")
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var prefs []*models.UserPreference
	if err := q.Find(&prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

// Count returns the number of stored preferences.
func (r *preferenceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserPreference{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
