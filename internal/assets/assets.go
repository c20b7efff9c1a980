// Package assets provides the embedded preview page and its static files.
//
// The browser preview client is compiled separately and copied in before the
// server is built:
//
//	GOOS=js GOARCH=wasm go build -o internal/assets/static/accent.wasm ./cmd/accent-wasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" internal/assets/static/
//	go build ./cmd/accentd
//
// Without them the preview page falls back to the server preview endpoint.
package assets

import (
	"embed"
	"io/fs"
	"mime"
	"path/filepath"
	"strings"
)

// WASMFile is the name of the compiled preview client.
const WASMFile = "accent.wasm"

// StaticFS embeds the static/ directory served under /static/.
//
//go:embed all:static
var StaticFS embed.FS

// TemplatesFS embeds the server-rendered page templates.
//
//go:embed templates/*.tmpl
var TemplatesFS embed.FS

// GetStaticFS returns a sub-filesystem rooted at "static/".
func GetStaticFS() (fs.FS, error) {
	return fs.Sub(StaticFS, "static")
}

// HasWASM reports whether the compiled preview client and its loader are embedded.
func HasWASM() bool {
	for _, name := range []string{"static/" + WASMFile, "static/wasm_exec.js"} {
		if _, err := fs.Stat(StaticFS, name); err != nil {
			return false
		}
	}
	return true
}

// GetContentType returns the MIME type for a given file path based on extension.
func GetContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case "":
		return "application/octet-stream"
	case ".wasm":
		// instantiateStreaming rejects anything else
		return "application/wasm"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".html":
		return "text/html; charset=utf-8"
	}
	if mimeType := mime.TypeByExtension(ext); mimeType != "" {
		return mimeType
	}
	return "application/octet-stream"
}

// ListAssets returns the paths of all embedded static files.
func ListAssets() ([]string, error) {
	var out []string
	err := fs.WalkDir(StaticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && d.Name() != ".gitkeep" {
			out = append(out, strings.TrimPrefix(path, "static/"))
		}
		return nil
	})
	return out, err
}
