package accent

// NightPalette is the fixed dark-surface color set used when night mode is on.
type NightPalette struct {
	Background    HexColor `json:"background" yaml:"background"`
	Surface       HexColor `json:"surface" yaml:"surface"`
	SurfaceRaised HexColor `json:"surface_raised" yaml:"surface_raised"`
	Text          HexColor `json:"text" yaml:"text"`
	TextMuted     HexColor `json:"text_muted" yaml:"text_muted"`
	Border        HexColor `json:"border" yaml:"border"`
	InputBg       HexColor `json:"input_bg" yaml:"input_bg"`
}

var nightPalette = NightPalette{
	Background:    "#1d2327",
	Surface:       "#23282d",
	SurfaceRaised: "#2c3338",
	Text:          "#f0f0f1",
	TextMuted:     "#a7aaad",
	Border:        "#3c434a",
	InputBg:       "#32373c",
}

// BuildNightPalette returns the night palette. It does not depend on the accent.
func BuildNightPalette() NightPalette {
	return nightPalette
}

// Variables returns the night palette as named variables in emission order.
func (p NightPalette) Variables(n Names) VariableSet {
	return VariableSet{
		{Name: n.NightBackground, Value: string(p.Background)},
		{Name: n.NightSurface, Value: string(p.Surface)},
		{Name: n.NightSurfaceRaised, Value: string(p.SurfaceRaised)},
		{Name: n.NightText, Value: string(p.Text)},
		{Name: n.NightTextMuted, Value: string(p.TextMuted)},
		{Name: n.NightBorder, Value: string(p.Border)},
		{Name: n.NightInputBg, Value: string(p.InputBg)},
	}
}
