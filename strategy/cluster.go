package strategy

import (
	"fmt"

	"github.com/arloliu/hostelmatch/features"
	"github.com/arloliu/hostelmatch/internal/kmeans"
	"github.com/arloliu/hostelmatch/types"
)

// DefaultClusterSeed is the clustering seed used when none is configured.
const DefaultClusterSeed int64 = 42

// ClusterPacking groups similar students with k-means and packs every cluster
// into fixed-capacity rooms.
type ClusterPacking struct {
	seed          int64
	restarts      int
	maxIterations int
	tolerance     float64
	encoder       *features.Encoder
}

var _ types.AssignmentStrategy = (*ClusterPacking)(nil)

// ClusterOption configures a ClusterPacking strategy.
type ClusterOption func(*ClusterPacking)

// NewClusterPacking creates a new cluster-then-pack strategy.
//
// Parameters:
//   - opts: Optional configuration (WithSeed, WithRestarts, WithMaxIterations,
//     WithTolerance, WithEncoder)
//
// Returns:
//   - *ClusterPacking: Initialized strategy
//
// Example:
//
//	s := strategy.NewClusterPacking(strategy.WithSeed(7))
//	result, err := s.Assign(roster, types.Policy{Capacity: 3})
func NewClusterPacking(opts ...ClusterOption) *ClusterPacking {
	cp := &ClusterPacking{
		seed:          DefaultClusterSeed,
		restarts:      kmeans.DefaultRestarts,
		maxIterations: kmeans.DefaultMaxIterations,
		tolerance:     kmeans.DefaultTolerance,
		encoder:       features.NewEncoder(),
	}

	for _, opt := range opts {
		opt(cp)
	}

	return cp
}

// WithSeed sets the clustering seed.
//
// Identical roster, capacity and seed always yield the identical partition.
//
// Parameters:
//   - seed: Seed for k-means++ initialisation (default: 42)
//
// Returns:
//   - ClusterOption: Configuration option
func WithSeed(seed int64) ClusterOption {
	return func(cp *ClusterPacking) {
		cp.seed = seed
	}
}

// WithRestarts sets the number of k-means initialisations (default: 10).
func WithRestarts(n int) ClusterOption {
	return func(cp *ClusterPacking) {
		cp.restarts = n
	}
}

// WithMaxIterations bounds the Lloyd iterations per restart (default: 300).
func WithMaxIterations(n int) ClusterOption {
	return func(cp *ClusterPacking) {
		cp.maxIterations = n
	}
}

// WithTolerance sets the convergence tolerance (default: 1e-4).
func WithTolerance(tol float64) ClusterOption {
	return func(cp *ClusterPacking) {
		cp.tolerance = tol
	}
}

// WithEncoder replaces the feature encoder.
func WithEncoder(enc *features.Encoder) ClusterOption {
	return func(cp *ClusterPacking) {
		cp.encoder = enc
	}
}

// Name returns types.StrategyCluster.
func (cp *ClusterPacking) Name() types.StrategyName {
	return types.StrategyCluster
}

// Assign calculates room assignments by clustering and packing.
//
// The algorithm:
//  1. rooms = ceil(len(roster) / capacity)
//  2. Encode the roster (z-scored numeric attributes, one-hot region)
//  3. Run seeded k-means with k = rooms and no cluster larger than capacity
//  4. Visit clusters in ascending label order, members in roster order, and
//     slice every cluster into chunks of capacity, one room per chunk
//  5. Pad with empty rooms until the room count reaches rooms
//
// Policy.RoomLimit is not applied by this strategy and the gender veto is not
// enforced.
//
// Parameters:
//   - roster: Normalized students
//   - policy: Capacity
//
// Returns:
//   - *types.AllocationResult: Exactly ceil(len(roster)/capacity) rooms, no leftovers
//   - error: *types.CapacityError, types.ErrNoData or ErrClusteringFailed
func (cp *ClusterPacking) Assign(roster []types.Student, policy types.Policy) (*types.AllocationResult, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, types.ErrNoData
	}

	nRooms := (len(roster) + policy.Capacity - 1) / policy.Capacity

	enc, err := cp.encoder.Encode(roster)
	if err != nil {
		return nil, err
	}

	clusters, err := kmeans.Fit(enc.Vectors, kmeans.Config{
		K:             nRooms,
		Capacity:      policy.Capacity,
		Seed:          cp.seed,
		Restarts:      cp.restarts,
		MaxIterations: cp.maxIterations,
		Tolerance:     cp.tolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClusteringFailed, err)
	}

	groups := make([][]types.Student, len(clusters.Centroids))
	for i, label := range clusters.Labels {
		groups[label] = append(groups[label], roster[i])
	}

	result := &types.AllocationResult{
		Strategy:   types.StrategyCluster,
		RosterSize: len(roster),
		Rooms:      make([]types.Room, 0, nRooms),
	}
	for label, members := range groups {
		for start := 0; start < len(members); start += policy.Capacity {
			end := min(start+policy.Capacity, len(members))
			result.Rooms = append(result.Rooms, types.Room{
				Number:    len(result.Rooms) + 1,
				Capacity:  policy.Capacity,
				Members:   members[start:end:end],
				ClusterID: types.NewCluster(label),
			})
		}
	}

	for len(result.Rooms) < nRooms {
		result.Rooms = append(result.Rooms, types.Room{
			Number:   len(result.Rooms) + 1,
			Capacity: policy.Capacity,
		})
	}

	return result, nil
}
