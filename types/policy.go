package types

import "fmt"

// StrategyName selects an assignment strategy.
type StrategyName string

const (
	// StrategyGreedy is the constraint-first scored matching strategy.
	StrategyGreedy StrategyName = "greedy"

	// StrategyCluster is the cluster-then-pack strategy.
	StrategyCluster StrategyName = "cluster"
)

// ParseStrategyName converts a selector string into a StrategyName.
//
// Returns:
//   - StrategyName: The matching strategy
//   - error: ErrUnknownStrategy wrapped with the offending value
func ParseStrategyName(s string) (StrategyName, error) {
	switch StrategyName(s) {
	case StrategyGreedy, StrategyCluster:
		return StrategyName(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
	}
}

// Policy carries the per-run allocation parameters.
type Policy struct {
	// Capacity is the maximum number of occupants per room (>= 1).
	Capacity int `json:"capacity" yaml:"capacity"`

	// RoomLimit stops the run once this many rooms exist. Zero means no limit.
	RoomLimit int `json:"room_limit,omitempty" yaml:"roomLimit"`

	// Strategy selects the assigner. Empty means StrategyGreedy.
	Strategy StrategyName `json:"strategy,omitempty" yaml:"strategy"`
}

// Validate rejects policies that must not reach an assigner.
//
// Returns:
//   - error: *CapacityError for capacity/room limit violations,
//     ErrUnknownStrategy for an unrecognized selector, nil otherwise
func (p Policy) Validate() error {
	if p.Capacity < 1 {
		return &CapacityError{Field: "capacity", Value: p.Capacity}
	}
	if p.RoomLimit < 0 {
		return &CapacityError{Field: "room_limit", Value: p.RoomLimit}
	}
	if p.Strategy != "" {
		if _, err := ParseStrategyName(string(p.Strategy)); err != nil {
			return err
		}
	}

	return nil
}

// StrategyOrDefault returns the selected strategy, defaulting to greedy.
func (p Policy) StrategyOrDefault() StrategyName {
	if p.Strategy == "" {
		return StrategyGreedy
	}

	return p.Strategy
}
