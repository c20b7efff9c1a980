package cmd

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/accentd/internal/config"
	"github.com/jmylchreest/accentd/internal/service"
)

func testPaletteOutput(t *testing.T, night bool) paletteOutput {
	t.Helper()

	v := viper.New()
	config.SetDefaults(v)
	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	accents, err := service.NewAccentService(nil, cfg.Accent)
	require.NoError(t, err)
	report, err := accents.Palette("#2271b1")
	require.NoError(t, err)

	out := paletteOutput{PaletteReport: *report}
	if night {
		out.Night = accents.Night()
	}
	return out
}

func TestWritePalette_CSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePalette(&buf, "css", testPaletteOutput(t, true)))

	css := buf.String()
	assert.Contains(t, css, ":root {\n")
	assert.Contains(t, css, "--accentd-accent: #2271b1;")
	assert.Contains(t, css, "--accentd-accent-darker-20: #1b5a8e;")
	assert.Contains(t, css, "--accentd-night-bg: #1d2327;")
}

func TestWritePalette_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePalette(&buf, "json", testPaletteOutput(t, false)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "#2271b1", decoded["accent"])
	assert.Equal(t, "34, 113, 177", decoded["accent_rgb"])
	assert.NotContains(t, decoded, "night")
}

func TestWritePalette_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePalette(&buf, "yaml", testPaletteOutput(t, true)))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "#2271b1", decoded["accent"])
	require.Contains(t, decoded, "night")
	assert.Contains(t, buf.String(), "background: '#1d2327'")
}

func TestWritePalette_UnknownFormat(t *testing.T) {
	err := writePalette(&bytes.Buffer{}, "toml", testPaletteOutput(t, false))
	assert.ErrorContains(t, err, "unknown format")
}

func TestToMap(t *testing.T) {
	cfg := config.Config{
		Server: config.ServerConfig{Port: 9090, ReadTimeout: 30 * time.Second},
		Accent: config.AccentConfig{NativeAccent: "#2271b1", CSSMaxAge: 5 * time.Minute},
	}

	m := toMap(&cfg)
	server, ok := m["server"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 9090, server["port"])
	assert.Equal(t, "30s", server["read_timeout"])

	acc, ok := m["accent"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "#2271b1", acc["native_accent"])
	assert.Equal(t, "5m0s", acc["css_max_age"])
}
