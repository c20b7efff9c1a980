package accent

// DefaultTintFallback is returned by Tint for invalid input.
const DefaultTintFallback HexColor = "#f0f0f1"

// Darken scales every channel of hex toward black by percent (0..100).
// Invalid input yields "".
func Darken(hex string, percent int) HexColor {
	rgb, ok := Normalize(hex).RGB()
	if !ok {
		return ""
	}
	keep := 100 - clampPercent(percent)
	return RGB{
		R: roundDiv100(int(rgb.R) * keep),
		G: roundDiv100(int(rgb.G) * keep),
		B: roundDiv100(int(rgb.B) * keep),
	}.Hex()
}

// Tint blends hex with white. percent is the share of the original color:
// 100 returns hex unchanged, 0 returns white.
// Invalid input yields DefaultTintFallback.
func Tint(hex string, percent int) HexColor {
	return tint(hex, percent, DefaultTintFallback)
}

func tint(hex string, percent int, fallback HexColor) HexColor {
	rgb, ok := Normalize(hex).RGB()
	if !ok {
		return fallback
	}
	p := clampPercent(percent)
	white := 255 * (100 - p)
	return RGB{
		R: roundDiv100(white + int(rgb.R)*p),
		G: roundDiv100(white + int(rgb.G)*p),
		B: roundDiv100(white + int(rgb.B)*p),
	}.Hex()
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// roundDiv100 returns n/100 rounded half up and clamped to a channel.
func roundDiv100(n int) uint8 {
	v := (n + 50) / 100
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
