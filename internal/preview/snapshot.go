package preview

import (
	"strings"

	"github.com/jmylchreest/accentd/pkg/accent"
)

// DefaultNativeAccent is used when the host exposes no readable accent.
const DefaultNativeAccent accent.HexColor = "#2271b1"

// Snapshot is the host's own accent, read once before any override is written.
// Only Capture produces a usable Snapshot.
type Snapshot struct {
	native accent.HexColor
}

// Capture reads hostVariable from the surface. Empty or invalid values yield
// fallback, and an invalid fallback yields DefaultNativeAccent.
func Capture(s Surface, hostVariable string, fallback accent.HexColor) Snapshot {
	if !fallback.IsValid() {
		fallback = DefaultNativeAccent
	}
	if s == nil || hostVariable == "" {
		return Snapshot{native: fallback}
	}
	// computed styles come back with leading whitespace
	raw := strings.TrimSpace(s.Property(hostVariable))
	if h := accent.Normalize(raw); h != "" {
		return Snapshot{native: h}
	}
	return Snapshot{native: fallback}
}

// Native returns the captured accent.
func (s Snapshot) Native() accent.HexColor {
	if s.native == "" {
		return DefaultNativeAccent
	}
	return s.native
}
