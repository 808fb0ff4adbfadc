// Package metrics exposes Prometheus counters for the site's request
// handling and its UI state machines.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "folio"

// Transition outcomes.
const (
	TransitionAccepted = "accepted"
	TransitionBusy     = "busy"
	TransitionNoop     = "noop"
)

// Manager owns a registry and every collector registered on it.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	carouselTransitions *prometheus.CounterVec
	carouselsOpen       prometheus.Gauge
	timelineReveals     *prometheus.CounterVec
	filterToggles       *prometheus.CounterVec
	contactMessages     prometheus.Counter
	sessionsActive      prometheus.Gauge
}

// New registers all collectors on a private registry.
func New() *Manager {
	reg := prometheus.NewRegistry()
	auto := promauto.With(reg)

	return &Manager{
		registry: reg,
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status_code"}),
		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		carouselTransitions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "carousel",
			Name:      "transitions_total",
			Help:      "Slide change requests by outcome: accepted, busy (debounced) or noop.",
		}, []string{"result"}),
		carouselsOpen: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "carousel",
			Name:      "open",
			Help:      "Project modals currently open.",
		}),
		timelineReveals: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "timeline",
			Name:      "reveals_total",
			Help:      "Timeline entries that entered a visitor's viewport, by section.",
		}, []string{"section"}),
		filterToggles: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "toggles_total",
			Help:      "Technology chip toggles by tag.",
		}, []string{"tech"}),
		contactMessages: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "contact",
			Name:      "messages_total",
			Help:      "Contact form submissions recorded.",
		}),
		sessionsActive: auto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Visitor sessions currently held in memory.",
		}),
	}
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Manager) RecordHTTPRequest(route, method, status string, seconds float64) {
	m.httpRequests.WithLabelValues(route, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(seconds)
}

func (m *Manager) RecordTransition(result string) {
	m.carouselTransitions.WithLabelValues(result).Inc()
}

func (m *Manager) CarouselOpened() { m.carouselsOpen.Inc() }
func (m *Manager) CarouselClosed() { m.carouselsOpen.Dec() }

func (m *Manager) RecordReveal(section string) {
	m.timelineReveals.WithLabelValues(section).Inc()
}

func (m *Manager) RecordFilterToggle(tech string) {
	m.filterToggles.WithLabelValues(tech).Inc()
}

func (m *Manager) RecordContactMessage() { m.contactMessages.Inc() }

func (m *Manager) SetActiveSessions(n int) { m.sessionsActive.Set(float64(n)) }
