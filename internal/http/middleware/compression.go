package middleware

import (
	"io"
	"net/http"

	"github.com/andybalholm/brotli"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// CompressibleTypes are the content types the server compresses. Swatch PNGs
// are already compressed and are left out.
var CompressibleTypes = []string{
	"text/html",
	"text/css",
	"text/plain",
	"text/javascript",
	"application/javascript",
	"application/json",
	"application/problem+json",
	"application/wasm",
	"image/svg+xml",
}

// Compression returns a middleware that gzip/deflate/brotli-encodes
// responses according to Accept-Encoding. Brotli is preferred when offered.
func Compression(level int) func(http.Handler) http.Handler {
	c := chimiddleware.NewCompressor(level, CompressibleTypes...)
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c.Handler
}
