package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/metrics"
)

// context key for request id
var reqIDKey = struct{}{}

// RequestID injects a best-effort request id (from header X-Request-Id or generated)
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-Id")
		if rid == "" {
			rid = generateID()
		}
		r = r.WithContext(context.WithValue(r.Context(), reqIDKey, rid))
		w.Header().Set("X-Request-Id", rid)
		next.ServeHTTP(w, r)
	})
}

// AccessLog writes one structured line per request to stdout with the
// usual access-log fields: remote address, method, path, status, bytes
// written, referer, user agent and latency.
func AccessLog(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			l.Info().
				Str("rid", GetRequestID(r.Context())).
				Str("remote", r.RemoteAddr).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.status).
				Int("bytes", rw.bytes).
				Str("referer", r.Referer()).
				Str("user_agent", r.UserAgent()).
				Dur("latency", time.Since(start)).
				Msg("http_request")
		})
	}
}

// Metrics records per-request counters and latency histograms.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		metrics.RequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rw.status)).Inc()
		metrics.RequestDurationSeconds.WithLabelValues(r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// GetRequestID returns the request id from context
func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(reqIDKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// generateID is tiny, collision-safe enough for logging traces
func generateID() string {
	return time.Now().UTC().Format("20060102T150405.000000000Z07:00")
}
