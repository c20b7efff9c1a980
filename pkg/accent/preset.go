package accent

// InheritKey is the sentinel preset key: defer to the host application's theme.
const InheritKey = "default"

// Preset is either Inherit or Concrete. Switch on the concrete type:
//
//	switch p := preset.(type) {
//	case Inherit:
//	case Concrete:
//		use(p.Color)
//	}
type Preset interface {
	isPreset()
}

// Inherit selects the host application's own accent. No palette is emitted.
type Inherit struct{}

// Concrete selects a fixed accent.
type Concrete struct {
	Color HexColor
}

func (Inherit) isPreset()  {}
func (Concrete) isPreset() {}

// PresetEntry is one row of the preset table.
type PresetEntry struct {
	Key    string
	Preset Preset
}

// Presets is the enumerated preset table, in display order.
var Presets = []PresetEntry{
	{Key: InheritKey, Preset: Inherit{}},
	{Key: "ocean", Preset: Concrete{Color: "#2271b1"}},
	{Key: "indigo", Preset: Concrete{Color: "#4f46e5"}},
	{Key: "violet", Preset: Concrete{Color: "#7c3aed"}},
	{Key: "rose", Preset: Concrete{Color: "#e11d48"}},
	{Key: "sunset", Preset: Concrete{Color: "#d97706"}},
	{Key: "lemon", Preset: Concrete{Color: "#fff9c4"}},
	{Key: "emerald", Preset: Concrete{Color: "#059669"}},
	{Key: "teal", Preset: Concrete{Color: "#0d9488"}},
	{Key: "slate", Preset: Concrete{Color: "#475569"}},
	{Key: "midnight", Preset: Concrete{Color: "#1a1a2e"}},
}

// LookupPreset returns the preset for key.
func LookupPreset(key string) (Preset, bool) {
	for _, e := range Presets {
		if e.Key == key {
			return e.Preset, true
		}
	}
	return nil, false
}

// Preference is a read-only snapshot of a stored preference record.
type Preference struct {
	PresetKey    string
	CustomAccent string
	NightMode    bool
}

// ResolveAccent returns the accent a stored preference selects.
// A valid custom accent wins over the preset. The sentinel preset, an unknown
// preset key, or an empty key with no custom accent all resolve to absence.
func (p Preference) ResolveAccent() (HexColor, bool) {
	if custom := Normalize(p.CustomAccent); custom != "" {
		return custom, true
	}
	preset, ok := LookupPreset(p.PresetKey)
	if !ok {
		return "", false
	}
	switch v := preset.(type) {
	case Concrete:
		return v.Color, true
	default:
		return "", false
	}
}

// Render returns the variables for a resolved accent and night flag.
// When ok is false no accent variables are produced, leaving the host theme untouched.
func (e *Engine) Render(resolved HexColor, ok bool, night bool, n Names) VariableSet {
	var vs VariableSet
	if ok {
		if p, err := e.BuildPalette(string(resolved)); err == nil {
			vs = append(vs, p.Variables(n)...)
		}
	}
	if night {
		vs = append(vs, BuildNightPalette().Variables(n)...)
	}
	return vs
}

// Render is Engine.Render with the default engine.
func Render(resolved HexColor, ok bool, night bool, n Names) VariableSet {
	return DefaultEngine.Render(resolved, ok, night, n)
}
