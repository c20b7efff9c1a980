package handlers

import (
	"fmt"
	"net/http"

	"github.com/jmylchreest/accentd/pkg/accent"
)

// DocsHandler serves the OpenAPI documentation UI using Stoplight Elements,
// styled with the night palette and the configured accent.
type DocsHandler struct {
	title    string
	specPath string
	accent   accent.HexColor
}

// NewDocsHandler creates a new documentation handler.
func NewDocsHandler(title, specPath string, native accent.HexColor) *DocsHandler {
	if !native.IsValid() {
		native = "#2271b1"
	}
	return &DocsHandler{title: title, specPath: specPath, accent: native}
}

// ServeHTTP serves the documentation page.
func (h *DocsHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	night := accent.BuildNightPalette()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	_, _ = fmt.Fprintf(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="referrer" content="same-origin" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>%s</title>
    <link href="https://unpkg.com/@stoplight/elements@8/styles.min.css" rel="stylesheet" />
    <script src="https://unpkg.com/@stoplight/elements@8/web-components.min.js" crossorigin="anonymous"></script>
    <style>
      @media (prefers-color-scheme: dark) {
        html { color-scheme: dark; }
        body { background-color: %s; }
        .sl-elements {
          --color-canvas: %s;
          --color-canvas-100: %s;
          --color-canvas-200: %s;
          --color-text: %s;
          --color-text-secondary: %s;
          --color-border: %s;
        }
      }
      .sl-elements { --color-primary: %s; }
    </style>
  </head>
  <body style="height: 100vh; margin: 0;">
    <elements-api apiDescriptionUrl="%s" router="hash" layout="sidebar" tryItCredentialsPolicy="same-origin" />
  </body>
</html>`,
		h.title,
		night.Background, night.Background, night.Surface, night.SurfaceRaised,
		night.Text, night.TextMuted, night.Border,
		h.accent, h.specPath,
	)
}
