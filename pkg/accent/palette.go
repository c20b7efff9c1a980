package accent

import "strings"

// Tone percentages used by BuildPalette.
const (
	darkStep1 = 10
	darkStep2 = 20
	darkStep3 = 30
	tintStep  = 10
)

// Palette is the full derived set for one accent.
type Palette struct {
	Accent           HexColor `json:"accent"`
	AccentRGB        string   `json:"accent_rgb"`
	Darker10         HexColor `json:"darker_10"`
	Darker20         HexColor `json:"darker_20"`
	Darker30         HexColor `json:"darker_30"`
	Tint10           HexColor `json:"tint_10"`
	Contrast         HexColor `json:"contrast"`
	Darker10Contrast HexColor `json:"darker_10_contrast"`
	Darker20Contrast HexColor `json:"darker_20_contrast"`
	Darker30Contrast HexColor `json:"darker_30_contrast"`
}

// BuildPalette derives the palette for accent with the default engine.
func BuildPalette(accent string) (Palette, error) {
	return DefaultEngine.BuildPalette(accent)
}

// BuildPalette derives the palette for accent. Every contrast color is computed
// from the tone it annotates, since a tone can cross the luminance threshold.
func (e *Engine) BuildPalette(accent string) (Palette, error) {
	base, err := ParseHex(accent)
	if err != nil {
		return Palette{}, err
	}
	s := string(base)

	p := Palette{
		Accent:    base,
		AccentRGB: base.RGBString(),
		Darker10:  Darken(s, darkStep1),
		Darker20:  Darken(s, darkStep2),
		Darker30:  Darken(s, darkStep3),
		Tint10:    e.Tint(s, tintStep),
		Contrast:  e.ContrastColor(s),
	}
	p.Darker10Contrast = e.ContrastColor(string(p.Darker10))
	p.Darker20Contrast = e.ContrastColor(string(p.Darker20))
	p.Darker30Contrast = e.ContrastColor(string(p.Darker30))
	return p, nil
}

// Variables returns the palette as named variables in emission order.
func (p Palette) Variables(n Names) VariableSet {
	return VariableSet{
		{Name: n.Accent, Value: string(p.Accent)},
		{Name: n.AccentRGB, Value: p.AccentRGB},
		{Name: n.Darker10, Value: string(p.Darker10)},
		{Name: n.Darker20, Value: string(p.Darker20)},
		{Name: n.Darker30, Value: string(p.Darker30)},
		{Name: n.Tint10, Value: string(p.Tint10)},
		{Name: n.Contrast, Value: string(p.Contrast)},
		{Name: n.Darker10Contrast, Value: string(p.Darker10Contrast)},
		{Name: n.Darker20Contrast, Value: string(p.Darker20Contrast)},
		{Name: n.Darker30Contrast, Value: string(p.Darker30Contrast)},
	}
}

// Variable is one CSS custom property assignment.
type Variable struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// VariableSet is an ordered list of assignments.
type VariableSet []Variable

// Get returns the value of name.
func (vs VariableSet) Get(name string) (string, bool) {
	for _, v := range vs {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Map returns the set as a name to value map.
func (vs VariableSet) Map() map[string]string {
	m := make(map[string]string, len(vs))
	for _, v := range vs {
		m[v.Name] = v.Value
	}
	return m
}

// Names returns the variable names in order.
func (vs VariableSet) Names() []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return names
}

// Declarations renders "name: value;" lines with the given indent.
func (vs VariableSet) Declarations(indent string) string {
	var b strings.Builder
	for _, v := range vs {
		b.WriteString(indent)
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteString(";\n")
	}
	return b.String()
}

// CSS renders the set as a single rule for selector.
func (vs VariableSet) CSS(selector string) string {
	if len(vs) == 0 {
		return ""
	}
	return selector + " {\n" + vs.Declarations("\t") + "}\n"
}
