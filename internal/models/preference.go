package models

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/accentd/pkg/accent"
)

// maxUserIDLength bounds user_id so the unique index fits MySQL's key limit.
const maxUserIDLength = 191

// UserPreference is one user's stored accent choice.
type UserPreference struct {
	BaseModel

	UserID       string `gorm:"uniqueIndex;not null;size:191" json:"user_id"`
	PresetKey    string `gorm:"not null;size:32" json:"preset_key"`
	CustomAccent string `gorm:"size:7" json:"custom_accent"`
	NightMode    bool   `gorm:"not null" json:"night_mode"`
}

// TableName returns the table name for user preferences.
func (UserPreference) TableName() string {
	return "user_preferences"
}

// Normalize fills an empty preset with the inherit sentinel and canonicalizes
// the custom accent. An invalid custom accent is left as-is for Validate.
func (p *UserPreference) Normalize() {
	p.UserID = strings.TrimSpace(p.UserID)
	p.PresetKey = strings.TrimSpace(p.PresetKey)
	if p.PresetKey == "" {
		p.PresetKey = accent.InheritKey
	}
	p.CustomAccent = strings.TrimSpace(p.CustomAccent)
	if h := accent.Normalize(p.CustomAccent); h != "" {
		p.CustomAccent = string(h)
	}
}

// Validate checks the preference.
func (p *UserPreference) Validate() error {
	if p.UserID == "" {
		return ErrUserIDRequired
	}
	if len(p.UserID) > maxUserIDLength {
		return ErrValidation{Field: "user_id", Message: fmt.Sprintf("must be at most %d characters", maxUserIDLength)}
	}
	if _, ok := accent.LookupPreset(p.PresetKey); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, p.PresetKey)
	}
	if p.CustomAccent != "" && !accent.IsValidHex(p.CustomAccent) {
		return fmt.Errorf("%w: %q", ErrInvalidAccent, p.CustomAccent)
	}
	return nil
}

// Snapshot returns the read-only view the palette engine consumes.
func (p *UserPreference) Snapshot() accent.Preference {
	return accent.Preference{
		PresetKey:    p.PresetKey,
		CustomAccent: p.CustomAccent,
		NightMode:    p.NightMode,
	}
}
