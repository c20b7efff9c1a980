package models

import (
	"github.com/jmylchreest/accentd/pkg/accent"
)

// PresetKind distinguishes the inherit sentinel from fixed colors.
type PresetKind string

const (
	// PresetKindInherit defers to the host application's accent.
	PresetKindInherit PresetKind = "inherit"
	// PresetKindConcrete selects a fixed accent color.
	PresetKindConcrete PresetKind = "concrete"
)

// PresetInfo describes one entry of the preset table.
type PresetInfo struct {
	Key      string     `json:"key"`
	Name     string     `json:"name"`
	Kind     PresetKind `json:"kind"`
	Color    string     `json:"color,omitempty"`
	Contrast string     `json:"contrast,omitempty"`
}

// PresetListResponse is the API response for listing presets.
type PresetListResponse struct {
	Presets []PresetInfo `json:"presets"`
	Default string       `json:"default"`
}

// PaletteTone is one derived color with the text color chosen for it.
type PaletteTone struct {
	Role          string  `json:"role" yaml:"role"`
	Variable      string  `json:"variable" yaml:"variable"`
	Color         string  `json:"color" yaml:"color"`
	Contrast      string  `json:"contrast" yaml:"contrast"`
	ContrastRatio float64 `json:"contrast_ratio" yaml:"contrast_ratio"`
}

// PaletteReport is a full derived palette for one accent.
type PaletteReport struct {
	Accent    string             `json:"accent" yaml:"accent"`
	AccentRGB string             `json:"accent_rgb" yaml:"accent_rgb"`
	Tones     []PaletteTone      `json:"tones" yaml:"tones"`
	Variables accent.VariableSet `json:"variables" yaml:"variables"`
	CSS       string             `json:"css" yaml:"css"`
}

// NightReport is the fixed night palette as variables.
type NightReport struct {
	Palette   accent.NightPalette `json:"palette" yaml:"palette"`
	Variables accent.VariableSet  `json:"variables" yaml:"variables"`
	CSS       string              `json:"css" yaml:"css"`
}

// PreviewResult is what a live preview session wrote for one set of controls.
type PreviewResult struct {
	Resolved  string             `json:"resolved,omitempty"`
	Inherit   bool               `json:"inherit"`
	Night     bool               `json:"night"`
	Variables accent.VariableSet `json:"variables"`
	CSS       string             `json:"css"`
}

// UserCSS is the initial-paint stylesheet for one user.
type UserCSS struct {
	CSS       string             `json:"css"`
	ETag      string             `json:"etag"`
	Resolved  string             `json:"resolved,omitempty"`
	Variables accent.VariableSet `json:"variables"`
	Night     bool               `json:"night"`
}

// ClientConfig bootstraps the browser preview client.
type ClientConfig struct {
	VariablePrefix    string       `json:"variable_prefix"`
	HostVariable      string       `json:"host_variable"`
	NativeAccent      string       `json:"native_accent"`
	TintFallback      string       `json:"tint_fallback"`
	ContrastThreshold float64      `json:"contrast_threshold"`
	InheritKey        string       `json:"inherit_key"`
	AccentNames       []string     `json:"accent_names"`
	NightNames        []string     `json:"night_names"`
	NightClass        string       `json:"night_class"`
	Presets           []PresetInfo `json:"presets"`
}
