// Package metrics exposes Prometheus metrics for the bot.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the bot's metrics. A nil *Manager is valid and records nothing.
type Manager struct {
	namespace string
	subsystem string
	registry  *prometheus.Registry

	readings      *prometheus.CounterVec
	quotaDenied   *prometheus.CounterVec
	emptyCatalog  prometheus.Counter
	storageErrors prometheus.Counter
	catalogItems  prometheus.Gauge
	dailyUsage    *prometheus.GaugeVec
	readingTime   prometheus.Histogram
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace sets the namespace for all metrics.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithRegistry registers metrics on r instead of a fresh registry.
func WithRegistry(r *prometheus.Registry) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// NewManager creates a manager with its own registry unless WithRegistry is
// given.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "tarot",
		subsystem: "bot",
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.init()
	return m
}

func (m *Manager) init() {
	auto := promauto.With(m.registry)

	m.readings = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "readings_total",
		Help:      "Readings delivered, by topic.",
	}, []string{"topic"})

	m.quotaDenied = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "quota_denied_total",
		Help:      "Requests refused because the daily limit was used, by topic.",
	}, []string{"topic"})

	m.emptyCatalog = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "empty_catalog_total",
		Help:      "Requests that found no card images.",
	})

	m.storageErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "storage_errors_total",
		Help:      "Requests aborted by a quota storage failure.",
	})

	m.catalogItems = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_items",
		Help:      "Card images found on the last listing.",
	})

	m.dailyUsage = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "daily_usage",
		Help:      "Users who drew a card on the previous day, by topic.",
	}, []string{"topic"})

	m.readingTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "reading_duration_seconds",
		Help:      "Time from request to the last message of a reading.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10},
	})
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Manager) ReadingServed(topic string, took time.Duration) {
	if m == nil {
		return
	}
	m.readings.WithLabelValues(topic).Inc()
	m.readingTime.Observe(took.Seconds())
}

func (m *Manager) QuotaDenied(topic string) {
	if m == nil {
		return
	}
	m.quotaDenied.WithLabelValues(topic).Inc()
}

func (m *Manager) EmptyCatalog() {
	if m == nil {
		return
	}
	m.emptyCatalog.Inc()
}

func (m *Manager) StorageError() {
	if m == nil {
		return
	}
	m.storageErrors.Inc()
}

func (m *Manager) SetCatalogItems(n int) {
	if m == nil {
		return
	}
	m.catalogItems.Set(float64(n))
}

// SetDailyUsage replaces the per-topic usage gauge.
func (m *Manager) SetDailyUsage(usage map[string]int) {
	if m == nil {
		return
	}
	m.dailyUsage.Reset()
	for topic, n := range usage {
		m.dailyUsage.WithLabelValues(topic).Set(float64(n))
	}
}
