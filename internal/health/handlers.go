package health

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/metrics"
)

type probeResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

type readinessToggled struct {
	Message string `json:"message"`
	Ready   bool   `json:"ready"`
}

type livenessToggled struct {
	Message string `json:"message"`
	Alive   bool   `json:"alive"`
}

// Handlers serves the probe and toggle endpoints over a shared State.
type Handlers struct {
	state *State
	now   func() time.Time
}

// NewHandlers constructs Handlers around state and publishes the initial
// flag values to the probe state gauges.
func NewHandlers(state *State) *Handlers {
	metrics.SetProbeState("readiness", state.Ready())
	metrics.SetProbeState("liveness", state.Alive())
	return &Handlers{state: state, now: time.Now}
}

// Readyz is the readiness probe: 200 while the process claims to accept
// traffic, 503 otherwise.
func (h *Handlers) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.state.Ready() {
		writeJSON(w, http.StatusOK, probeResponse{
			Status:    "ready",
			Timestamp: h.timestamp(),
			Message:   "Application is ready to serve traffic",
		})
		return
	}
	writeJSON(w, http.StatusServiceUnavailable, probeResponse{
		Status:    "not ready",
		Timestamp: h.timestamp(),
		Message:   "Application is not ready to serve traffic",
	})
}

// Livez is the liveness probe: 200 while the process claims to be
// functioning, 500 otherwise.
func (h *Handlers) Livez(w http.ResponseWriter, r *http.Request) {
	if h.state.Alive() {
		writeJSON(w, http.StatusOK, probeResponse{
			Status:    "alive",
			Timestamp: h.timestamp(),
			Message:   "Application is alive and healthy",
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, probeResponse{
		Status:    "dead",
		Timestamp: h.timestamp(),
		Message:   "Application is not responding properly",
	})
}

// ToggleReadiness flips the readiness flag for demonstration purposes.
func (h *Handlers) ToggleReadiness(w http.ResponseWriter, r *http.Request) {
	ready := h.state.ToggleReady()
	status := "ready"
	if !ready {
		status = "not ready"
	}
	metrics.TogglesTotal.WithLabelValues("readiness").Inc()
	metrics.SetProbeState("readiness", ready)
	writeJSON(w, http.StatusOK, readinessToggled{
		Message: fmt.Sprintf("Readiness toggled to: %s", status),
		Ready:   ready,
	})
}

// ToggleLiveness flips the liveness flag for demonstration purposes.
func (h *Handlers) ToggleLiveness(w http.ResponseWriter, r *http.Request) {
	alive := h.state.ToggleAlive()
	status := "alive"
	if !alive {
		status = "dead"
	}
	metrics.TogglesTotal.WithLabelValues("liveness").Inc()
	metrics.SetProbeState("liveness", alive)
	writeJSON(w, http.StatusOK, livenessToggled{
		Message: fmt.Sprintf("Liveness toggled to: %s", status),
		Alive:   alive,
	})
}

func (h *Handlers) timestamp() string {
	return h.now().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
