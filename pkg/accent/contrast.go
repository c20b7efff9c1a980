package accent

import "math"

// DefaultContrastThreshold is the relative luminance above which black text is
// chosen. Black and white have roughly equal contrast ratios (about 4.58:1) here.
const DefaultContrastThreshold = 0.179

// RelativeLuminance returns the WCAG 2.1 relative luminance of hex in [0, 1].
func RelativeLuminance(hex string) (float64, bool) {
	rgb, ok := Normalize(hex).RGB()
	if !ok {
		return 0, false
	}
	return 0.2126*linearize(rgb.R) + 0.7152*linearize(rgb.G) + 0.0722*linearize(rgb.B), true
}

func linearize(channel uint8) float64 {
	c := float64(channel) / 255
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastColor returns black or white, whichever reads better on hex.
// Invalid input yields white.
func ContrastColor(hex string) HexColor {
	return contrastColor(hex, DefaultContrastThreshold)
}

func contrastColor(hex string, threshold float64) HexColor {
	l, ok := RelativeLuminance(hex)
	if !ok {
		return White
	}
	return contrastForLuminance(l, threshold)
}

func contrastForLuminance(l, threshold float64) HexColor {
	if l > threshold {
		return Black
	}
	return White
}

// ContrastRatio returns the WCAG contrast ratio between two colors, from 1 to 21.
func ContrastRatio(a, b string) (float64, bool) {
	la, ok := RelativeLuminance(a)
	if !ok {
		return 0, false
	}
	lb, ok := RelativeLuminance(b)
	if !ok {
		return 0, false
	}
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), true
}
