package aquanet

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StatsInternal is the attached prometheus registry and the
// instruments fed by the serving and assessment layers.
type StatsInternal struct {
	Registry *prometheus.Registry

	wwwCount   *prometheus.CounterVec
	runCount   prometheus.Counter
	runTimer   prometheus.Histogram
	eventCount prometheus.Counter
}

// NewStatsInternal creates the registry and registers all
// instruments, plus the standard Go runtime collectors.
func NewStatsInternal() *StatsInternal {
	reg := prometheus.NewRegistry()

	s := &StatsInternal{
		Registry: reg,
		wwwCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aquanet_http_requests_total",
			Help: "API requests by status code and method",
		}, []string{"code", "method"}),
		runCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aquanet_assessment_runs_total",
			Help: "Completed assessment runs",
		}),
		runTimer: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "aquanet_assessment_run_seconds",
			Help:    "Assessment run wall-clock duration",
			Buckets: prometheus.DefBuckets,
		}),
		eventCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aquanet_contamination_events_total",
			Help: "Contamination events found across runs",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		s.wwwCount,
		s.runCount,
		s.runTimer,
		s.eventCount,
	)

	return s
}

// Handler serves the registry for the /metrics endpoint.
func (s *StatsInternal) Handler() http.Handler {
	return promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})
}

// RecWWW records one API request.
func (s *StatsInternal) RecWWW(code, method string) {
	s.wwwCount.WithLabelValues(code, method).Inc()
}

// RecRunTimer records one assessment run and its duration in seconds.
func (s *StatsInternal) RecRunTimer(seconds float64) {
	s.runCount.Inc()
	s.runTimer.Observe(seconds)
}

// RecEvents counts contamination events found by a run.
func (s *StatsInternal) RecEvents(n int) {
	s.eventCount.Add(float64(n))
}
