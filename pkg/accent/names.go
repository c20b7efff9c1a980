package accent

import "strings"

// DefaultVariablePrefix prefixes every variable this package writes.
const DefaultVariablePrefix = "--accentd"

// DefaultHostVariable is the host application's own accent variable.
const DefaultHostVariable = "--wp-admin-theme-color"

// Names maps palette roles to CSS custom property names.
type Names struct {
	Accent           string
	AccentRGB        string
	Darker10         string
	Darker20         string
	Darker30         string
	Tint10           string
	Contrast         string
	Darker10Contrast string
	Darker20Contrast string
	Darker30Contrast string

	NightBackground    string
	NightSurface       string
	NightSurfaceRaised string
	NightText          string
	NightTextMuted     string
	NightBorder        string
	NightInputBg       string
}

// NewNames builds the variable names under prefix. An empty prefix uses
// DefaultVariablePrefix. A missing leading "--" is added.
func NewNames(prefix string) Names {
	p := prefix
	if p == "" {
		p = DefaultVariablePrefix
	}
	if !strings.HasPrefix(p, "--") {
		p = "--" + strings.TrimLeft(p, "-")
	}
	p = strings.TrimRight(p, "-")

	return Names{
		Accent:           p + "-accent",
		AccentRGB:        p + "-accent-rgb",
		Darker10:         p + "-accent-darker-10",
		Darker20:         p + "-accent-darker-20",
		Darker30:         p + "-accent-darker-30",
		Tint10:           p + "-accent-tint-10",
		Contrast:         p + "-accent-contrast",
		Darker10Contrast: p + "-accent-darker-10-contrast",
		Darker20Contrast: p + "-accent-darker-20-contrast",
		Darker30Contrast: p + "-accent-darker-30-contrast",

		NightBackground:    p + "-night-bg",
		NightSurface:       p + "-night-surface",
		NightSurfaceRaised: p + "-night-surface-raised",
		NightText:          p + "-night-text",
		NightTextMuted:     p + "-night-text-muted",
		NightBorder:        p + "-night-border",
		NightInputBg:       p + "-night-input-bg",
	}
}

// AccentNames lists the accent palette names in emission order.
func (n Names) AccentNames() []string {
	return []string{
		n.Accent, n.AccentRGB,
		n.Darker10, n.Darker20, n.Darker30,
		n.Tint10,
		n.Contrast, n.Darker10Contrast, n.Darker20Contrast, n.Darker30Contrast,
	}
}

// NightNames lists the night palette names in emission order.
func (n Names) NightNames() []string {
	return []string{
		n.NightBackground, n.NightSurface, n.NightSurfaceRaised,
		n.NightText, n.NightTextMuted, n.NightBorder, n.NightInputBg,
	}
}

// HostNames are the host application's native accent variables.
type HostNames struct {
	Accent   string
	Darker10 string
	Darker20 string
	RGB      string
}

// NewHostNames derives the host variable family from its base accent variable.
func NewHostNames(base string) HostNames {
	if base == "" {
		base = DefaultHostVariable
	}
	return HostNames{
		Accent:   base,
		Darker10: base + "-darker-10",
		Darker20: base + "-darker-20",
		RGB:      base + "--rgb",
	}
}

// Fallback returns var(plugin, var(host, literal)). An empty host collapses
// the chain to var(plugin, literal).
func Fallback(plugin, host, literal string) string {
	if host == "" {
		return "var(" + plugin + ", " + literal + ")"
	}
	return "var(" + plugin + ", var(" + host + ", " + literal + "))"
}
