package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// etagMatches reports whether an If-None-Match header value matches etag.
// Weak validators compare equal to their strong form.
func etagMatches(header, etag string) bool {
	if header == "" || etag == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" {
			return true
		}
		if strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// writeCSS writes a stylesheet with validator and cache headers, answering
// 304 when the client already holds this version.
func writeCSS(w http.ResponseWriter, r *http.Request, css, etag string, maxAge time.Duration, private bool) {
	scope := "public"
	if private {
		scope = "private"
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("%s, max-age=%d, must-revalidate", scope, int(maxAge.Seconds())))
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept-Encoding")

	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(css)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write([]byte(css))
	}
}
