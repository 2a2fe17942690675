package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/hostelmatch/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing a
// PrometheusCollector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Allocation metrics
	allocations        *prometheus.CounterVec
	allocationFailures *prometheus.CounterVec
	allocationDuration *prometheus.HistogramVec
	rooms              *prometheus.GaugeVec
	allocated          *prometheus.GaugeVec
	unallocated        *prometheus.GaugeVec
	occupancy          *prometheus.GaugeVec

	// Publisher metrics
	publishResults  *prometheus.CounterVec
	publishDuration prometheus.Histogram
	publishedRooms  prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "hostelmatch" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "hostelmatch"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.allocations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "runs_total",
			Help:      "Total successful allocation runs by strategy.",
		}, []string{"strategy"})

		p.allocationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "failures_total",
			Help:      "Total failed allocation runs by strategy and reason (schema,no_data,capacity,source,other).",
		}, []string{"strategy", "reason"})

		p.allocationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "duration_seconds",
			Help:      "Duration of allocation runs in seconds by strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms .. ~4s
		}, []string{"strategy"})

		p.rooms = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "rooms",
			Help:      "Rooms produced by the last run, padding rooms included.",
		}, []string{"strategy"})

		p.allocated = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "students_allocated",
			Help:      "Students placed in rooms by the last run.",
		}, []string{"strategy"})

		p.unallocated = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "students_unallocated",
			Help:      "Students left without a room by the last run.",
		}, []string{"strategy"})

		p.occupancy = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "allocation",
			Name:      "average_occupancy_percent",
			Help:      "Average room occupancy of the last run in percent.",
		}, []string{"strategy"})

		p.publishResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "publish_total",
			Help:      "Total allocation publish attempts by result (success,failure).",
		}, []string{"result"})

		p.publishDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "publish_duration_seconds",
			Help:      "Latency of allocation publishing in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 1.6, 10), // 10ms .. ~1.6s
		})

		p.publishedRooms = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "publisher",
			Name:      "rooms_current",
			Help:      "Room keys currently held in the allocation bucket.",
		})

		p.reg.MustRegister(p.allocations)
		p.reg.MustRegister(p.allocationFailures)
		p.reg.MustRegister(p.allocationDuration)
		p.reg.MustRegister(p.rooms)
		p.reg.MustRegister(p.allocated)
		p.reg.MustRegister(p.unallocated)
		p.reg.MustRegister(p.occupancy)
		p.reg.MustRegister(p.publishResults)
		p.reg.MustRegister(p.publishDuration)
		p.reg.MustRegister(p.publishedRooms)
	})
}

// AllocationMetrics implementation

// RecordAllocation records a successful run.
func (p *PrometheusCollector) RecordAllocation(strategy string, duration float64, rooms, allocated, unallocated int) {
	p.ensureRegistered()
	p.allocations.WithLabelValues(strategy).Inc()
	p.allocationDuration.WithLabelValues(strategy).Observe(duration)
	p.rooms.WithLabelValues(strategy).Set(float64(rooms))
	p.allocated.WithLabelValues(strategy).Set(float64(allocated))
	p.unallocated.WithLabelValues(strategy).Set(float64(unallocated))
}

// RecordAllocationFailure records a failed run.
func (p *PrometheusCollector) RecordAllocationFailure(strategy, reason string) {
	p.ensureRegistered()
	p.allocationFailures.WithLabelValues(strategy, reason).Inc()
}

// RecordAverageOccupancy sets the occupancy gauge.
func (p *PrometheusCollector) RecordAverageOccupancy(strategy string, percent float64) {
	p.ensureRegistered()
	p.occupancy.WithLabelValues(strategy).Set(percent)
}

// PublisherMetrics implementation

// RecordPublish records one publish attempt.
func (p *PrometheusCollector) RecordPublish(success bool, duration float64) {
	p.ensureRegistered()
	result := "failure"
	if success {
		result = "success"
	}
	p.publishResults.WithLabelValues(result).Inc()
	p.publishDuration.Observe(duration)
}

// RecordPublishedRooms sets the published room gauge.
func (p *PrometheusCollector) RecordPublishedRooms(count int) {
	p.ensureRegistered()
	p.publishedRooms.Set(float64(count))
}
