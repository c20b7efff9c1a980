//go:build js && wasm

// Command accent-wasm is the browser half of the live preview. It runs the
// same palette engine and preview session as the server against the page's
// document element, so previews need no round trip.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o internal/assets/static/accent.wasm ./cmd/accent-wasm
package main

import (
	"strings"
	"syscall/js"

	"github.com/jmylchreest/accentd/internal/preview"
	"github.com/jmylchreest/accentd/pkg/accent"
)

// domSurface reads computed values from the document element and writes
// inline properties on it.
type domSurface struct {
	window js.Value
	root   js.Value
}

func newDOMSurface() *domSurface {
	window := js.Global()
	return &domSurface{
		window: window,
		root:   window.Get("document").Get("documentElement"),
	}
}

func (d *domSurface) Property(name string) string {
	v := d.window.Call("getComputedStyle", d.root).Call("getPropertyValue", name)
	return strings.TrimSpace(v.String())
}

func (d *domSurface) SetProperty(name, value string) {
	d.root.Get("style").Call("setProperty", name, value)
}

func (d *domSurface) RemoveProperty(name string) {
	d.root.Get("style").Call("removeProperty", name)
}

var session *preview.Session

func stringField(obj js.Value, key string) string {
	if obj.Type() != js.TypeObject {
		return ""
	}
	v := obj.Get(key)
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func boolField(obj js.Value, key string) bool {
	if obj.Type() != js.TypeObject {
		return false
	}
	v := obj.Get(key)
	return v.Type() == js.TypeBoolean && v.Bool()
}

// initSession takes the client config served by the page and captures the
// host accent before anything is overridden.
func initSession(_ js.Value, args []js.Value) any {
	var cfg js.Value
	if len(args) > 0 {
		cfg = args[0]
	}

	opts := []accent.Option{}
	if tint := accent.Normalize(stringField(cfg, "tint_fallback")); tint != "" {
		opts = append(opts, accent.WithTintFallback(tint))
	}
	if cfg.Type() == js.TypeObject && cfg.Get("contrast_threshold").Type() == js.TypeNumber {
		opts = append(opts, accent.WithContrastThreshold(cfg.Get("contrast_threshold").Float()))
	}
	engine, err := accent.NewEngine(opts...)
	if err != nil {
		return err.Error()
	}

	hostVariable := stringField(cfg, "host_variable")
	if hostVariable == "" {
		hostVariable = accent.DefaultHostVariable
	}

	surface := newDOMSurface()
	session = preview.NewSession(surface,
		preview.Capture(surface, hostVariable, accent.Normalize(stringField(cfg, "native_accent"))),
		preview.WithEngine(engine),
		preview.WithNames(accent.NewNames(stringField(cfg, "variable_prefix"))),
	)
	return nil
}

// change applies one set of form controls and reports what was written.
func change(_ js.Value, args []js.Value) any {
	if session == nil || len(args) == 0 {
		return nil
	}

	c := preview.Controls{
		PresetKey:    stringField(args[0], "preset_key"),
		CustomAccent: stringField(args[0], "custom_accent"),
		NightMode:    boolField(args[0], "night_mode"),
	}
	vs := session.Change(c)

	resolved, inherit := c.Resolve()
	if inherit {
		resolved = session.Snapshot().Native()
	}

	variables := make([]any, 0, len(vs))
	for _, v := range vs {
		variables = append(variables, map[string]any{"name": v.Name, "value": v.Value})
	}
	return map[string]any{
		"resolved":  string(resolved),
		"inherit":   inherit,
		"night":     session.Night(),
		"variables": variables,
	}
}

func main() {
	js.Global().Set("accentd", js.ValueOf(map[string]any{
		"init":   js.FuncOf(initSession),
		"change": js.FuncOf(change),
	}))
	select {}
}
