package service

import (
	"strings"

	"github.com/jmylchreest/accentd/pkg/accent"
)

// chromeDecl is one declaration of a host chrome rule. plugin and host pick
// variable names; literal is the last-resort value.
type chromeDecl struct {
	property string
	plugin   string
	host     string
	literal  string
	format   string
}

type chromeRule struct {
	selectors []string
	decls     []chromeDecl
}

// buildChrome renders the consumer stylesheet. Literals come from the native
// accent's own palette, so a page without any variables still looks native.
func (s *AccentService) buildChrome() string {
	// s.native is canonical, so this cannot fail
	native, _ := s.engine.BuildPalette(string(s.native))
	night := accent.BuildNightPalette()
	n, h := s.names, s.host
	body := "body." + s.NightClass()

	rules := []chromeRule{
		{
			selectors: []string{"#adminmenu li.current a.menu-top", "#adminmenu li.wp-has-current-submenu a.wp-has-current-submenu"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.Accent, host: h.Accent, literal: string(native.Accent)},
				{property: "color", plugin: n.Contrast, literal: string(native.Contrast)},
			},
		},
		{
			selectors: []string{"#adminmenu a:hover", "#adminmenu li.menu-top:hover"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.Darker10, host: h.Darker10, literal: string(native.Darker10)},
				{property: "color", plugin: n.Darker10Contrast, literal: string(native.Darker10Contrast)},
			},
		},
		{
			selectors: []string{".button-primary"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.Accent, host: h.Accent, literal: string(native.Accent)},
				{property: "border-color", plugin: n.Darker10, host: h.Darker10, literal: string(native.Darker10)},
				{property: "color", plugin: n.Contrast, literal: string(native.Contrast)},
			},
		},
		{
			selectors: []string{".button-primary:hover", ".button-primary:focus"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.Darker10, host: h.Darker10, literal: string(native.Darker10)},
				{property: "color", plugin: n.Darker10Contrast, literal: string(native.Darker10Contrast)},
			},
		},
		{
			selectors: []string{".button-primary:active"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.Darker20, host: h.Darker20, literal: string(native.Darker20)},
				{property: "color", plugin: n.Darker20Contrast, literal: string(native.Darker20Contrast)},
			},
		},
		{
			selectors: []string{".accent-banner"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.Darker30, literal: string(native.Darker30)},
				{property: "color", plugin: n.Darker30Contrast, literal: string(native.Darker30Contrast)},
			},
		},
		{
			selectors: []string{".notice-accent"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.Tint10, literal: string(native.Tint10)},
				{property: "border-left-color", plugin: n.Accent, host: h.Accent, literal: string(native.Accent)},
			},
		},
		{
			selectors: []string{"a:focus", ".button:focus", "input:focus"},
			decls: []chromeDecl{
				{property: "box-shadow", plugin: n.AccentRGB, host: h.RGB, literal: native.AccentRGB, format: "0 0 0 2px rgba(%s, 0.4)"},
			},
		},
		{
			selectors: []string{body},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.NightBackground, literal: string(night.Background)},
				{property: "color", plugin: n.NightText, literal: string(night.Text)},
			},
		},
		{
			selectors: []string{body + " .postbox", body + " .card"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.NightSurface, literal: string(night.Surface)},
				{property: "border-color", plugin: n.NightBorder, literal: string(night.Border)},
			},
		},
		{
			selectors: []string{body + " .postbox .inside", body + " .dropdown"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.NightSurfaceRaised, literal: string(night.SurfaceRaised)},
			},
		},
		{
			selectors: []string{body + " .description", body + " .howto"},
			decls: []chromeDecl{
				{property: "color", plugin: n.NightTextMuted, literal: string(night.TextMuted)},
			},
		},
		{
			selectors: []string{body + " input", body + " select", body + " textarea"},
			decls: []chromeDecl{
				{property: "background-color", plugin: n.NightInputBg, literal: string(night.InputBg)},
				{property: "border-color", plugin: n.NightBorder, literal: string(night.Border)},
				{property: "color", plugin: n.NightText, literal: string(night.Text)},
			},
		},
	}

	var b strings.Builder
	for i, r := range rules {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.Join(r.selectors, ",\n"))
		b.WriteString(" {\n")
		for _, d := range r.decls {
			value := accent.Fallback(d.plugin, d.host, d.literal)
			if d.format != "" {
				value = strings.Replace(d.format, "%s", value, 1)
			}
			b.WriteString("\t")
			b.WriteString(d.property)
			b.WriteString(": ")
			b.WriteString(value)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}
