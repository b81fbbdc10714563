package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// responseMeta wraps http.ResponseWriter to capture the status code and the
// number of body bytes written.
type responseMeta struct {
	http.ResponseWriter
	statusCode int
	bytes      int
}

func (rm *responseMeta) WriteHeader(code int) {
	rm.statusCode = code
	rm.ResponseWriter.WriteHeader(code)
}

func (rm *responseMeta) Write(p []byte) (int, error) {
	n, err := rm.ResponseWriter.Write(p)
	rm.bytes += n
	return n, err
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (rm *responseMeta) Unwrap() http.ResponseWriter { return rm.ResponseWriter }

// Flush implements http.Flusher for http.FileServer.
func (rm *responseMeta) Flush() {
	if f, ok := rm.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// RequestLogger is middleware that logs each HTTP request. Request bodies
// are never logged; login and signup payloads carry plaintext passwords.
// Successful static-asset fetches are skipped to keep the log readable.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rm := &responseMeta{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rm, r)

		if rm.statusCode < 400 && isStaticAsset(r.URL.Path) {
			return
		}

		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rm.statusCode,
			"bytes", rm.bytes,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr,
		)
	})
}

func isStaticAsset(path string) bool {
	if strings.HasPrefix(path, "/api/") {
		return false
	}
	for _, ext := range []string{".html", ".css", ".js", ".png", ".jpg", ".svg", ".ico", ".webp"} {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return path == "/"
}
