package preview

import (
	"github.com/jmylchreest/accentd/pkg/accent"
)

// Controls is the state of the preference form at one instant.
type Controls struct {
	PresetKey    string `json:"preset_key"`
	CustomAccent string `json:"custom_accent,omitempty"`
	NightMode    bool   `json:"night_mode"`
}

// Resolve applies the interactive precedence rule. The sentinel preset wins
// before the custom control is read; otherwise a valid custom accent wins over
// a concrete preset. inherit is true when the host theme should be restored.
func (c Controls) Resolve() (resolved accent.HexColor, inherit bool) {
	if c.PresetKey == accent.InheritKey {
		return "", true
	}
	if custom := accent.Normalize(c.CustomAccent); custom != "" {
		return custom, false
	}
	if p, ok := accent.LookupPreset(c.PresetKey); ok {
		if concrete, ok := p.(accent.Concrete); ok {
			return concrete.Color, false
		}
	}
	return "", true
}

// Session owns the variables written to one surface.
type Session struct {
	surface  Surface
	snapshot Snapshot
	engine   *accent.Engine
	names    accent.Names

	written accent.VariableSet
	night   bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithEngine sets the derivation engine. Defaults to accent.DefaultEngine.
func WithEngine(e *accent.Engine) SessionOption {
	return func(s *Session) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithNames sets the variable names. Defaults to accent.NewNames("").
func WithNames(n accent.Names) SessionOption {
	return func(s *Session) {
		s.names = n
	}
}

// NewSession binds a surface to a snapshot taken from it.
func NewSession(surface Surface, snapshot Snapshot, opts ...SessionOption) *Session {
	s := &Session{
		surface:  surface,
		snapshot: snapshot,
		engine:   accent.DefaultEngine,
		names:    accent.NewNames(""),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the captured native accent.
func (s *Session) Snapshot() Snapshot {
	return s.snapshot
}

// Names returns the variable names in use.
func (s *Session) Names() accent.Names {
	return s.names
}

// Apply writes the palette for resolved. When ok is false or resolved is
// invalid, nothing is written and false is returned.
func (s *Session) Apply(resolved accent.HexColor, ok bool) bool {
	if !ok {
		return false
	}
	p, err := s.engine.BuildPalette(string(resolved))
	if err != nil {
		return false
	}
	s.write(p.Variables(s.names))
	return true
}

// Revert rewrites the palette from the captured native accent.
func (s *Session) Revert() {
	s.Apply(s.snapshot.Native(), true)
}

// SetNight writes the night palette when on. When off, the night variables
// are removed from surfaces that support it.
func (s *Session) SetNight(on bool) {
	if on {
		s.write(accent.BuildNightPalette().Variables(s.names))
		s.night = true
		return
	}
	if !s.night {
		return
	}
	s.night = false
	remover, ok := s.surface.(Remover)
	for _, name := range s.names.NightNames() {
		if ok {
			remover.RemoveProperty(name)
		}
		s.forget(name)
	}
}

// Change evaluates the form controls and updates the surface.
func (s *Session) Change(c Controls) accent.VariableSet {
	if resolved, inherit := c.Resolve(); inherit {
		s.Revert()
	} else {
		s.Apply(resolved, true)
	}
	s.SetNight(c.NightMode)
	return s.Variables()
}

// Night reports whether the night palette is currently written.
func (s *Session) Night() bool {
	return s.night
}

// Variables returns a copy of everything written, in first-write order.
func (s *Session) Variables() accent.VariableSet {
	out := make(accent.VariableSet, len(s.written))
	copy(out, s.written)
	return out
}

func (s *Session) write(vs accent.VariableSet) {
	for _, v := range vs {
		s.surface.SetProperty(v.Name, v.Value)
		s.remember(v)
	}
}

func (s *Session) remember(v accent.Variable) {
	for i := range s.written {
		if s.written[i].Name == v.Name {
			s.written[i].Value = v.Value
			return
		}
	}
	s.written = append(s.written, v)
}

func (s *Session) forget(name string) {
	for i := range s.written {
		if s.written[i].Name == name {
			s.written = append(s.written[:i], s.written[i+1:]...)
			return
		}
	}
}
