package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	RequestsTotal          = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "healthcheck_requests_total", Help: "HTTP requests by path and status"}, []string{"path", "status"})
	RequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "healthcheck_request_duration_seconds", Help: "HTTP request latency by path", Buckets: prometheus.DefBuckets}, []string{"path"})
	ProbeState             = prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "healthcheck_probe_state", Help: "Current probe flag (1 healthy, 0 failing)"}, []string{"probe"})
	TogglesTotal           = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "healthcheck_toggles_total", Help: "Toggle endpoint invocations by probe"}, []string{"probe"})
)

func Init(logger zerolog.Logger) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	toRegister := []prometheus.Collector{
		RequestsTotal, RequestDurationSeconds, ProbeState, TogglesTotal,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range toRegister {
		_ = reg.Register(c)
	}
	logger.Info().Msg("Prometheus metrics initialized")
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// SetProbeState records a boolean health flag as a 1/0 gauge sample.
func SetProbeState(probe string, healthy bool) {
	v := 0.0
	if healthy {
		v = 1.0
	}
	ProbeState.WithLabelValues(probe).Set(v)
}
