package accent

import "fmt"

// Engine bundles the host-specific constants used for derivation.
// The zero value is not usable; build one with NewEngine.
type Engine struct {
	threshold    float64
	tintFallback HexColor
}

// Option configures an Engine.
type Option func(*Engine)

// WithContrastThreshold overrides the luminance threshold used by ContrastColor.
func WithContrastThreshold(t float64) Option {
	return func(e *Engine) {
		e.threshold = t
	}
}

// WithTintFallback overrides the color Tint returns for invalid input.
func WithTintFallback(h HexColor) Option {
	return func(e *Engine) {
		e.tintFallback = h
	}
}

// NewEngine returns an Engine with the default constants and the given overrides.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		threshold:    DefaultContrastThreshold,
		tintFallback: DefaultTintFallback,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.threshold <= 0 || e.threshold >= 1 {
		return nil, fmt.Errorf("contrast threshold must be in (0, 1), got %v", e.threshold)
	}
	if !e.tintFallback.IsValid() {
		return nil, fmt.Errorf("tint fallback: %w: %q", ErrInvalidHex, e.tintFallback)
	}
	return e, nil
}

// DefaultEngine uses DefaultContrastThreshold and DefaultTintFallback.
var DefaultEngine = &Engine{
	threshold:    DefaultContrastThreshold,
	tintFallback: DefaultTintFallback,
}

// Threshold returns the configured luminance threshold.
func (e *Engine) Threshold() float64 { return e.threshold }

// TintFallback returns the configured tint fallback.
func (e *Engine) TintFallback() HexColor { return e.tintFallback }

// Tint is Tint with the engine's fallback.
func (e *Engine) Tint(hex string, percent int) HexColor {
	return tint(hex, percent, e.tintFallback)
}

// ContrastColor is ContrastColor with the engine's threshold.
func (e *Engine) ContrastColor(hex string) HexColor {
	return contrastColor(hex, e.threshold)
}
