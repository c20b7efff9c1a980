// Package accent derives accessible CSS variable palettes from a single accent color.
//
// It has no third-party imports and performs no I/O; the server and the
// js/wasm preview client compile the same source and must produce identical
// output for identical input.
package accent

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a string is not a #rgb or #rrggbb color.
var ErrInvalidHex = errors.New("invalid hex color")

// HexColor is a canonical sRGB color: "#" followed by six lowercase hex digits.
// The empty value is the invalid sentinel. Build values with Normalize or ParseHex.
type HexColor string

// Fixed colors used across the engine.
const (
	Black HexColor = "#000000"
	White HexColor = "#ffffff"
)

// RGB holds the decoded channels of a HexColor.
type RGB struct {
	R, G, B uint8
}

// IsValidHex reports whether raw is "#" followed by exactly 3 or 6 hex digits.
func IsValidHex(raw string) bool {
	if len(raw) != 4 && len(raw) != 7 {
		return false
	}
	if raw[0] != '#' {
		return false
	}
	for i := 1; i < len(raw); i++ {
		if !isHexDigit(raw[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Normalize returns the canonical form of raw, or "" if raw is not valid.
// Three-digit input is expanded by duplicating each digit.
func Normalize(raw string) HexColor {
	if !IsValidHex(raw) {
		return ""
	}
	digits := strings.ToLower(raw[1:])
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	return HexColor("#" + digits)
}

// ParseHex is Normalize with an error for callers at API boundaries.
func ParseHex(raw string) (HexColor, error) {
	hex := Normalize(raw)
	if hex == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, raw)
	}
	return hex, nil
}

// IsValid reports whether h is in canonical form.
func (h HexColor) IsValid() bool {
	return len(h) == 7 && Normalize(string(h)) == h
}

// String implements fmt.Stringer.
func (h HexColor) String() string {
	return string(h)
}

// RGB decodes h into its channels. The second result is false when h is not canonical.
func (h HexColor) RGB() (RGB, bool) {
	if !h.IsValid() {
		return RGB{}, false
	}
	s := string(h)
	r, _ := strconv.ParseUint(s[1:3], 16, 8)
	g, _ := strconv.ParseUint(s[3:5], 16, 8)
	b, _ := strconv.ParseUint(s[5:7], 16, 8)
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// RGBString formats h as "R, G, B" for use inside rgb() and rgba().
// Returns "" when h is not canonical.
func (h HexColor) RGBString() string {
	rgb, ok := h.RGB()
	if !ok {
		return ""
	}
	return rgb.String()
}

// ToRGBString normalizes raw and formats it as "R, G, B".
func ToRGBString(raw string) string {
	return Normalize(raw).RGBString()
}

// Hex formats the channels as a canonical HexColor.
func (c RGB) Hex() HexColor {
	return HexColor(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// String returns "R, G, B".
func (c RGB) String() string {
	return strconv.Itoa(int(c.R)) + ", " + strconv.Itoa(int(c.G)) + ", " + strconv.Itoa(int(c.B))
}
