package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and must be safe for concurrent use:
// independent engine runs may record into the same collector.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	AllocationMetrics
	PublisherMetrics
}

// AllocationMetrics defines metrics for allocation runs.
type AllocationMetrics interface {
	// RecordAllocation records a successful run.
	//
	// Parameters:
	//   - strategy: Strategy selector ("greedy", "cluster")
	//   - duration: Time taken in seconds
	//   - rooms: Number of rooms produced, padding rooms included
	//   - allocated: Number of students placed in rooms
	//   - unallocated: Number of students left in the remainder
	RecordAllocation(strategy string, duration float64, rooms, allocated, unallocated int)

	// RecordAllocationFailure records a failed run.
	//
	// Parameters:
	//   - strategy: Strategy selector
	//   - reason: Failure class ("schema", "no_data", "capacity", "source", "other")
	RecordAllocationFailure(strategy, reason string)

	// RecordAverageOccupancy sets the average room occupancy of the last run (gauge).
	//
	// Parameters:
	//   - strategy: Strategy selector
	//   - percent: Average occupancy percentage (0-100)
	RecordAverageOccupancy(strategy string, percent float64)
}

// PublisherMetrics defines metrics for exporting allocations to NATS KV.
type PublisherMetrics interface {
	// RecordPublish records one publish attempt.
	//
	// Parameters:
	//   - success: true if every key was written
	//   - duration: Time taken in seconds
	RecordPublish(success bool, duration float64)

	// RecordPublishedRooms sets the number of room keys in the bucket (gauge).
	RecordPublishedRooms(count int)
}
