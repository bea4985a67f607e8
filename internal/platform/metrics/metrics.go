package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the case workflows.
type Metrics struct {
	FIRsRegistered  prometheus.Counter
	CaseTransitions *prometheus.CounterVec
	AccessDenials   prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New registers all case-system metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		FIRsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cms_firs_registered_total",
			Help: "Total number of FIRs registered",
		}),
		CaseTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cms_case_transitions_total",
			Help: "Total case lifecycle transitions by resulting state",
		}, []string{"to_state"}),
		AccessDenials: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cms_access_denials_total",
			Help: "Total organization-scope access denials",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cms_http_request_duration_seconds",
			Help:    "HTTP request duration by route and status class",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"route", "status"}),
	}
}

// ObserveTransition records a committed lifecycle transition.
func (m *Metrics) ObserveTransition(toState string) {
	if m == nil {
		return
	}
	m.CaseTransitions.WithLabelValues(toState).Inc()
}

// IncrementFIRRegistered records a successful FIR registration.
func (m *Metrics) IncrementFIRRegistered() {
	if m == nil {
		return
	}
	m.FIRsRegistered.Inc()
}

// IncrementAccessDenied records an organization-scope denial.
func (m *Metrics) IncrementAccessDenied() {
	if m == nil {
		return
	}
	m.AccessDenials.Inc()
}

// ObserveRequest records one HTTP request's duration.
func (m *Metrics) ObserveRequest(route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, status).Observe(time.Since(start).Seconds())
}
