package bustracker

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theoremus-urban-solutions/bus-tracker/gtfsrt"
	"github.com/theoremus-urban-solutions/bus-tracker/schema"
)

// Metrics holds the Prometheus collectors for the feed pipeline
type Metrics struct {
	registry      *prometheus.Registry
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	decodes       *prometheus.CounterVec
	entities      prometheus.Gauge

	gate atomic.Pointer[schema.Gate]
}

// NewMetrics registers the collectors on reg (a fresh registry when nil)
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: reg,
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bustracker_feed_fetch_total",
			Help: "Upstream GTFS-RT fetches by result.",
		}, []string{"result"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bustracker_feed_fetch_duration_seconds",
			Help:    "Upstream GTFS-RT fetch latency.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bustracker_feed_decode_total",
			Help: "GTFS-RT decodes by result.",
		}, []string{"result"}),
		entities: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bustracker_feed_entities",
			Help: "Entity count of the most recently decoded feed.",
		}),
	}
	schemaReady := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "bustracker_schema_ready",
		Help: "1 when the GTFS-RT schema is compiled and requests can be served.",
	}, m.schemaReady)
	reg.MustRegister(m.fetches, m.fetchDuration, m.decodes, m.entities, schemaReady)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// bindGate points the schema-ready gauge at gate. The last bound gate wins.
func (m *Metrics) bindGate(gate *schema.Gate) {
	m.gate.Store(gate)
}

func (m *Metrics) schemaReady() float64 {
	if g := m.gate.Load(); g != nil && g.State() == schema.StateReady {
		return 1
	}
	return 0
}

func (m *Metrics) observeFetch(d time.Duration, err error) {
	m.fetchDuration.Observe(d.Seconds())
	m.fetches.WithLabelValues(result(err)).Inc()
}

func (m *Metrics) observeDecode(p gtfsrt.Projection, err error) {
	m.decodes.WithLabelValues(result(err)).Inc()
	if err == nil {
		m.entities.Set(float64(gtfsrt.CountEntities(p)))
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
