package types

// AssignmentStrategy partitions a normalized roster into rooms.
//
// Strategies implement different assignment algorithms:
//   - Greedy: Sorted greedy matching against the compatibility scorer (gender veto)
//   - ClusterPacking: Similarity clustering followed by fixed-capacity packing
//   - Custom: User-defined algorithms
//
// Strategy implementations should:
//   - Be deterministic (same roster, policy and seed → same result)
//   - Reject invalid policies before doing any work
//   - Never drop a student silently: unplaced students go to Unallocated
//   - Be stateless (no side effects, no state shared between calls)
type AssignmentStrategy interface {
	// Name returns the strategy selector this implementation answers to.
	Name() StrategyName

	// Assign calculates the room partition for roster under policy.
	//
	// Parameters:
	//   - roster: Normalized students in roster order
	//   - policy: Capacity and optional room limit
	//
	// Returns:
	//   - *AllocationResult: Rooms and unallocated remainder
	//   - error: ErrNoData, *CapacityError, or strategy specific errors
	Assign(roster []Student, policy Policy) (*AllocationResult, error)
}
