// Package rest assembles the HTTP route table for the service.
package rest

import (
	"net"
	"net/http"
	"net/http/pprof"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/abdulmoizz44/ebryx-k8s-project/internal/health"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/http/middleware"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/metrics"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/infra/version"
	"github.com/abdulmoizz44/ebryx-k8s-project/internal/web"
)

type Server struct{ mux *http.ServeMux }

// Options selects which surfaces get mounted. State is required; Registry
// and Pprof are admin surfaces gated by AdminCIDRs.
type Options struct {
	State      *health.State
	Registry   *prometheus.Registry
	AdminCIDRs []*net.IPNet
	Pprof      bool
}

func New(opts Options) *Server {
	mux := http.NewServeMux()

	h := health.NewHandlers(opts.State)
	mux.HandleFunc("GET /healthz", h.Readyz)
	mux.HandleFunc("GET /failcheck", h.Livez)
	mux.HandleFunc("GET /toggle-readiness", h.ToggleReadiness)
	mux.HandleFunc("GET /toggle-liveness", h.ToggleLiveness)
	mux.HandleFunc("GET /version", version.Handler)

	page := web.NewPage()
	// {$} keeps "/" exact so unknown paths fall through to the mux 404.
	mux.HandleFunc("GET /{$}", page.Index)

	if opts.Registry != nil {
		mux.Handle("GET /metrics", middleware.AdminGate(opts.AdminCIDRs, metrics.Handler(opts.Registry)))
	}
	if opts.Pprof {
		mux.Handle("GET /debug/pprof/", middleware.AdminGate(opts.AdminCIDRs, http.HandlerFunc(pprof.Index)))
		mux.Handle("GET /debug/pprof/cmdline", middleware.AdminGate(opts.AdminCIDRs, http.HandlerFunc(pprof.Cmdline)))
		mux.Handle("GET /debug/pprof/profile", middleware.AdminGate(opts.AdminCIDRs, http.HandlerFunc(pprof.Profile)))
		mux.Handle("GET /debug/pprof/symbol", middleware.AdminGate(opts.AdminCIDRs, http.HandlerFunc(pprof.Symbol)))
		mux.Handle("GET /debug/pprof/trace", middleware.AdminGate(opts.AdminCIDRs, http.HandlerFunc(pprof.Trace)))
	}

	return &Server{mux: mux}
}

func (s *Server) Handler() http.Handler { return s.mux }
