package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if seen == "" {
		t.Fatal("request id missing from context")
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen {
		t.Fatalf("X-Request-Id header = %q, want %q", got, seen)
	}
}

func TestRequestIDPreserved(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "abc-123" {
		t.Fatalf("X-Request-Id header = %q, want %q", got, "abc-123")
	}
}

func TestAccessLogFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"not ready"}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = "10.1.2.3:54321"
	req.Header.Set("Referer", "http://example.com/dashboard")
	req.Header.Set("User-Agent", "kube-probe/1.29")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("access log line is not JSON: %v", err)
	}

	checks := map[string]any{
		"remote":     "10.1.2.3:54321",
		"method":     "GET",
		"path":       "/healthz",
		"status":     float64(http.StatusServiceUnavailable),
		"bytes":      float64(len(`{"status":"not ready"}`)),
		"referer":    "http://example.com/dashboard",
		"user_agent": "kube-probe/1.29",
	}
	for key, want := range checks {
		if got := line[key]; got != want {
			t.Errorf("log field %s = %v, want %v", key, got, want)
		}
	}
	if _, ok := line["latency"]; !ok {
		t.Error("log line missing latency field")
	}
}

func TestAccessLogDefaultsStatusTo200(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("access log line is not JSON: %v", err)
	}
	if line["status"] != float64(http.StatusOK) {
		t.Fatalf("implicit status = %v, want 200", line["status"])
	}
}
