package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jmylchreest/accentd/internal/config"
	"github.com/jmylchreest/accentd/internal/models"
	"github.com/jmylchreest/accentd/internal/observability"
	"github.com/jmylchreest/accentd/internal/preview"
	"github.com/jmylchreest/accentd/pkg/accent"
)

// AccentService turns stored preferences and form controls into CSS.
type AccentService struct {
	prefs  *PreferenceService
	engine *accent.Engine
	names  accent.Names
	host   accent.HostNames
	native accent.HexColor
	cfg    config.AccentConfig
	logger *slog.Logger

	chrome string
}

// NewAccentService creates a new accent service from the accent config section.
func NewAccentService(prefs *PreferenceService, cfg config.AccentConfig) (*AccentService, error) {
	engine, err := cfg.Engine()
	if err != nil {
		return nil, fmt.Errorf("building palette engine: %w", err)
	}
	s := &AccentService{
		prefs:  prefs,
		engine: engine,
		names:  cfg.Names(),
		host:   cfg.HostNames(),
		native: cfg.Native(),
		cfg:    cfg,
		logger: slog.Default(),
	}
	s.chrome = s.buildChrome()
	return s, nil
}

// WithLogger sets the logger for the service.
func (s *AccentService) WithLogger(logger *slog.Logger) *AccentService {
	s.logger = logger
	return s
}

// Engine returns the derivation engine in use.
func (s *AccentService) Engine() *accent.Engine {
	return s.engine
}

// Names returns the plugin variable names.
func (s *AccentService) Names() accent.Names {
	return s.names
}

// NightClass is the body class that switches the chrome to the night palette.
func (s *AccentService) NightClass() string {
	return strings.TrimLeft(s.prefix(), "-") + "-night"
}

// RenderUserCSS renders the initial-paint stylesheet for a user. Users whose
// preference resolves to no accent get no accent variables.
func (s *AccentService) RenderUserCSS(ctx context.Context, userID string) (*models.UserCSS, error) {
	pref, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.RenderPreference(ctx, pref.Snapshot()), nil
}

// RenderPreference renders the stylesheet for a preference snapshot.
func (s *AccentService) RenderPreference(ctx context.Context, pref accent.Preference) *models.UserCSS {
	resolved, ok := pref.ResolveAccent()
	vs := s.engine.Render(resolved, ok, pref.NightMode, s.names)

	if s.logger.Enabled(ctx, observability.LevelTrace) {
		for _, v := range vs {
			s.logger.Log(ctx, observability.LevelTrace, "palette variable",
				slog.String("name", v.Name),
				slog.String("value", v.Value),
			)
		}
	}

	css := vs.CSS(":root")
	out := &models.UserCSS{
		CSS:       css,
		ETag:      etag(css),
		Variables: vs,
		Night:     pref.NightMode,
	}
	if ok {
		out.Resolved = string(resolved)
	}
	if out.Variables == nil {
		out.Variables = accent.VariableSet{}
	}
	return out
}

// Preview runs the live-preview session against a host sheet that carries
// the native accent, and reports the plugin variables it wrote.
func (s *AccentService) Preview(ctx context.Context, c preview.Controls) *models.PreviewResult {
	sheet := preview.NewStyleSheet(":root")
	sheet.SetProperty(s.host.Accent, string(s.native))

	session := preview.NewSession(sheet,
		preview.Capture(sheet, s.host.Accent, s.native),
		preview.WithEngine(s.engine),
		preview.WithNames(s.names),
	)
	vs := session.Change(c)

	resolved, inherit := c.Resolve()
	if inherit {
		resolved = session.Snapshot().Native()
	}
	s.logger.DebugContext(ctx, "preview rendered",
		slog.String("preset_key", c.PresetKey),
		slog.String("resolved", string(resolved)),
		slog.Bool("inherit", inherit),
		slog.Bool("night_mode", c.NightMode),
	)

	return &models.PreviewResult{
		Resolved:  string(resolved),
		Inherit:   inherit,
		Night:     session.Night(),
		Variables: vs,
		CSS:       vs.CSS(":root"),
	}
}

// Palette derives the full palette for a raw accent value.
func (s *AccentService) Palette(raw string) (*models.PaletteReport, error) {
	p, err := s.engine.BuildPalette(raw)
	if err != nil {
		return nil, err
	}
	vs := p.Variables(s.names)

	tones := []models.PaletteTone{
		s.tone("accent", s.names.Accent, p.Accent, p.Contrast),
		s.tone("darker-10", s.names.Darker10, p.Darker10, p.Darker10Contrast),
		s.tone("darker-20", s.names.Darker20, p.Darker20, p.Darker20Contrast),
		s.tone("darker-30", s.names.Darker30, p.Darker30, p.Darker30Contrast),
		s.tone("tint-10", s.names.Tint10, p.Tint10, s.engine.ContrastColor(string(p.Tint10))),
	}

	return &models.PaletteReport{
		Accent:    string(p.Accent),
		AccentRGB: p.AccentRGB,
		Tones:     tones,
		Variables: vs,
		CSS:       vs.CSS(":root"),
	}, nil
}

func (s *AccentService) tone(role, variable string, color, contrast accent.HexColor) models.PaletteTone {
	ratio, _ := accent.ContrastRatio(string(color), string(contrast))
	return models.PaletteTone{
		Role:          role,
		Variable:      variable,
		Color:         string(color),
		Contrast:      string(contrast),
		ContrastRatio: ratio,
	}
}

// Night returns the night palette as variables.
func (s *AccentService) Night() *models.NightReport {
	p := accent.BuildNightPalette()
	vs := p.Variables(s.names)
	return &models.NightReport{
		Palette:   p,
		Variables: vs,
		CSS:       vs.CSS(":root"),
	}
}

// Presets lists the preset table in display order.
func (s *AccentService) Presets() *models.PresetListResponse {
	title := cases.Title(language.English)
	presets := make([]models.PresetInfo, 0, len(accent.Presets))
	for _, e := range accent.Presets {
		info := models.PresetInfo{
			Key:  e.Key,
			Name: title.String(strings.ReplaceAll(e.Key, "-", " ")),
		}
		switch p := e.Preset.(type) {
		case accent.Inherit:
			info.Kind = models.PresetKindInherit
			info.Name += " (host theme)"
		case accent.Concrete:
			info.Kind = models.PresetKindConcrete
			info.Color = string(p.Color)
			info.Contrast = string(s.engine.ContrastColor(string(p.Color)))
		}
		presets = append(presets, info)
	}

	def := s.cfg.DefaultPreset
	if def == "" {
		def = accent.InheritKey
	}
	return &models.PresetListResponse{Presets: presets, Default: def}
}

// ConsumerStylesheet returns the host chrome rules. Every value reads the
// plugin variable first, then the host variable, then a literal.
func (s *AccentService) ConsumerStylesheet() string {
	return s.chrome
}

// ConsumerStylesheetETag returns the entity tag of ConsumerStylesheet.
func (s *AccentService) ConsumerStylesheetETag() string {
	return etag(s.chrome)
}

// BootstrapConfig is what the browser client needs to reproduce server output.
func (s *AccentService) BootstrapConfig() *models.ClientConfig {
	return &models.ClientConfig{
		VariablePrefix:    s.prefix(),
		HostVariable:      s.host.Accent,
		NativeAccent:      string(s.native),
		TintFallback:      string(s.engine.TintFallback()),
		ContrastThreshold: s.engine.Threshold(),
		InheritKey:        accent.InheritKey,
		AccentNames:       s.names.AccentNames(),
		NightNames:        s.names.NightNames(),
		NightClass:        s.NightClass(),
		Presets:           s.Presets().Presets,
	}
}

func (s *AccentService) prefix() string {
	return strings.TrimSuffix(s.names.Accent, "-accent")
}

func etag(body string) string {
	sum := sha256.Sum256([]byte(body))
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}
