package strategy

import (
	"fmt"

	"github.com/arloliu/hostelmatch/types"
)

// ByName returns the built-in strategy for a selector.
//
// Parameters:
//   - name: "greedy", "cluster" or empty (greedy)
//   - clusterOpts: Options applied when the cluster strategy is selected
//
// Returns:
//   - types.AssignmentStrategy: The selected strategy
//   - error: types.ErrUnknownStrategy for any other selector
func ByName(name types.StrategyName, clusterOpts ...ClusterOption) (types.AssignmentStrategy, error) {
	switch name {
	case "", types.StrategyGreedy:
		return NewGreedy(), nil
	case types.StrategyCluster:
		return NewClusterPacking(clusterOpts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownStrategy, name)
	}
}
