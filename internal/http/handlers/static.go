package handlers

import (
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jmylchreest/accentd/internal/assets"
)

// StaticHandler serves the embedded preview assets under /static/.
type StaticHandler struct {
	files fs.FS
}

// NewStaticHandler creates a new static asset handler.
func NewStaticHandler() *StaticHandler {
	files, _ := assets.GetStaticFS()
	return &StaticHandler{files: files}
}

// RegisterChiRoutes registers the static route.
func (h *StaticHandler) RegisterChiRoutes(r chi.Router) {
	r.Get("/static/*", h.ServeHTTP)
}

// ServeHTTP serves one embedded file.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
	if h.files == nil || name == "" || name == ".gitkeep" {
		http.NotFound(w, r)
		return
	}

	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", assets.GetContentType(name))
	if strings.HasSuffix(name, ".wasm") {
		// rebuilt with the server binary, so revalidate rather than pin
		w.Header().Set("Cache-Control", "public, max-age=300, must-revalidate")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
