package models

import (
	"errors"
	"fmt"
)

// ErrValidation represents a validation error with field and message.
type ErrValidation struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ErrValidation) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

var (
	// ErrUserIDRequired indicates a preference without an owner.
	ErrUserIDRequired = errors.New("user_id is required")

	// ErrPreferenceNotFound indicates no preference is stored for the user.
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrUnknownPreset indicates a preset key missing from the preset table.
	ErrUnknownPreset = errors.New("unknown preset")

	// ErrInvalidAccent indicates a custom accent that is not a #rgb or #rrggbb color.
	ErrInvalidAccent = errors.New("custom_accent must be a #rgb or #rrggbb color")
)
