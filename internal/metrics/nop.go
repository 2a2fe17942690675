// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/arloliu/hostelmatch/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	engine, err := hostelmatch.NewEngine(cfg, hostelmatch.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AllocationMetrics implementation

// RecordAllocation discards the allocation metric.
func (n *NopMetrics) RecordAllocation(_ /* strategy */ string, _ /* duration */ float64, _ /* rooms */, _ /* allocated */, _ /* unallocated */ int) {
	// No-op
}

// RecordAllocationFailure discards the failure metric.
func (n *NopMetrics) RecordAllocationFailure(_ /* strategy */, _ /* reason */ string) {
	// No-op
}

// RecordAverageOccupancy discards the occupancy metric.
func (n *NopMetrics) RecordAverageOccupancy(_ /* strategy */ string, _ /* percent */ float64) {
	// No-op
}

// PublisherMetrics implementation

// RecordPublish discards the publish metric.
func (n *NopMetrics) RecordPublish(_ /* success */ bool, _ /* duration */ float64) {
	// No-op
}

// RecordPublishedRooms discards the published room count.
func (n *NopMetrics) RecordPublishedRooms(_ /* count */ int) {
	// No-op
}
