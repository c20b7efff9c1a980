package migrations

import (
	"gorm.io/gorm"

	"github.com/jmylchreest/accentd/internal/models"
)

// AllMigrations returns all registered migrations in order.
// - 001: user_preferences table
func AllMigrations() []Migration {
	return []Migration{
		migration001UserPreferences(),
	}
}

func migration001UserPreferences() Migration {
	return Migration{
		Version:     "001",
		Description: "Create user_preferences table",
		Up: func(tx *gorm.DB) error {
			return tx.AutoMigrate(&models.UserPreference{})
		},
		Down: func(tx *gorm.DB) error {
			return tx.Migrator().DropTable(&models.UserPreference{})
		},
	}
}
