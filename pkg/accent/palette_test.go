package accent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPalette_HostDefaultBlue(t *testing.T) {
	p, err := BuildPalette("#2271B1")
	require.NoError(t, err)

	assert.Equal(t, Palette{
		Accent:           "#2271b1",
		AccentRGB:        "34, 113, 177",
		Darker10:         "#1f669f",
		Darker20:         "#1b5a8e",
		Darker30:         "#184f7c",
		Tint10:           "#e9f1f7",
		Contrast:         White,
		Darker10Contrast: White,
		Darker20Contrast: White,
		Darker30Contrast: White,
	}, p)
}

func TestBuildPalette_PaleAccentKeepsBlackText(t *testing.T) {
	p, err := BuildPalette("#fff9c4")
	require.NoError(t, err)

	assert.Equal(t, HexColor("#e6e0b0"), p.Darker10)
	assert.Equal(t, HexColor("#ccc79d"), p.Darker20)
	assert.Equal(t, Black, p.Contrast)
	assert.Equal(t, Black, p.Darker10Contrast)
	assert.Equal(t, Black, p.Darker20Contrast)
	assert.Equal(t, Black, p.Darker30Contrast)
}

func TestBuildPalette_ContrastFollowsEachTone(t *testing.T) {
	for _, h := range sampleColors {
		p, err := BuildPalette(h)
		require.NoError(t, err, h)
		assert.Equal(t, ContrastColor(string(p.Accent)), p.Contrast, h)
		assert.Equal(t, ContrastColor(string(p.Darker10)), p.Darker10Contrast, h)
		assert.Equal(t, ContrastColor(string(p.Darker20)), p.Darker20Contrast, h)
		assert.Equal(t, ContrastColor(string(p.Darker30)), p.Darker30Contrast, h)
	}
}

func TestBuildPalette_Invalid(t *testing.T) {
	_, err := BuildPalette("#12")
	assert.ErrorIs(t, err, ErrInvalidHex)
}

func TestPalette_Variables(t *testing.T) {
	p, err := BuildPalette("#4f46e5")
	require.NoError(t, err)

	n := NewNames("")
	vs := p.Variables(n)
	assert.Equal(t, n.AccentNames(), vs.Names())

	v, ok := vs.Get("--accentd-accent-rgb")
	require.True(t, ok)
	assert.Equal(t, "79, 70, 229", v)

	v, ok = vs.Get("--accentd-accent")
	require.True(t, ok)
	assert.Equal(t, "#4f46e5", v)
}

func TestVariableSet_CSS(t *testing.T) {
	vs := VariableSet{
		{Name: "--a", Value: "#000000"},
		{Name: "--b", Value: "1, 2, 3"},
	}
	assert.Equal(t, ":root {\n\t--a: #000000;\n\t--b: 1, 2, 3;\n}\n", vs.CSS(":root"))
	assert.Equal(t, "", VariableSet(nil).CSS(":root"))
	assert.Equal(t, map[string]string{"--a": "#000000", "--b": "1, 2, 3"}, vs.Map())
}

func TestNewNames(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"", "--accentd-accent"},
		{"--accentd", "--accentd-accent"},
		{"myplugin", "--myplugin-accent"},
		{"-myplugin-", "--myplugin-accent"},
		{"--x--", "--x-accent"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewNames(tt.prefix).Accent, tt.prefix)
	}
}

func TestNames_Distinct(t *testing.T) {
	n := NewNames("")
	all := append(n.AccentNames(), n.NightNames()...)
	assert.Len(t, all, 17)

	seen := make(map[string]bool)
	for _, name := range all {
		assert.True(t, strings.HasPrefix(name, "--accentd-"), name)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestHostNamesAndFallback(t *testing.T) {
	h := NewHostNames("")
	assert.Equal(t, "--wp-admin-theme-color", h.Accent)
	assert.Equal(t, "--wp-admin-theme-color-darker-10", h.Darker10)
	assert.Equal(t, "--wp-admin-theme-color-darker-20", h.Darker20)
	assert.Equal(t, "--wp-admin-theme-color--rgb", h.RGB)

	assert.Equal(t,
		"var(--accentd-accent, var(--wp-admin-theme-color, #2271b1))",
		Fallback("--accentd-accent", h.Accent, "#2271b1"))
	assert.Equal(t, "var(--accentd-accent, #2271b1)", Fallback("--accentd-accent", "", "#2271b1"))
}

func TestBuildNightPalette(t *testing.T) {
	n := NewNames("")
	vs := BuildNightPalette().Variables(n)
	assert.Equal(t, n.NightNames(), vs.Names())
	for _, v := range vs {
		assert.True(t, HexColor(v.Value).IsValid(), v.Name)
	}
	assert.Equal(t, BuildNightPalette(), BuildNightPalette())
}
