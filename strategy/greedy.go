package strategy

import (
	"cmp"
	"slices"

	"github.com/arloliu/hostelmatch/compat"
	"github.com/arloliu/hostelmatch/types"
)

// Greedy implements constraint-first scored matching.
//
// Students are walked in (gender, course, year) order. Every unplaced student
// opens a room and pulls in the best-scoring compatible students until the room
// is full. Rooms never mix genders because the scorer vetoes such pairs.
type Greedy struct{}

var _ types.AssignmentStrategy = (*Greedy)(nil)

// NewGreedy creates a new greedy strategy.
//
// Returns:
//   - *Greedy: Stateless greedy strategy
//
// Example:
//
//	result, err := strategy.NewGreedy().Assign(roster, types.Policy{Capacity: 2})
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Name returns types.StrategyGreedy.
func (g *Greedy) Name() types.StrategyName {
	return types.StrategyGreedy
}

type candidate struct {
	idx   int
	score int
}

// Assign calculates room assignments using sorted greedy matching.
//
// The algorithm:
//  1. Stable-sort the roster by (gender, course, year)
//  2. Walk the sorted roster; every unplaced student seeds a new room
//  3. Score the remaining unplaced students against the seed, drop vetoed
//     pairs, rank by score descending (ties keep sorted order) and fill the room
//  4. Stop opening rooms once Policy.RoomLimit rooms exist
//
// Parameters:
//   - roster: Normalized students
//   - policy: Capacity and optional room limit
//
// Returns:
//   - *types.AllocationResult: Rooms in creation order, leftovers in roster order
//   - error: *types.CapacityError for an invalid policy, types.ErrNoData for an empty roster
func (g *Greedy) Assign(roster []types.Student, policy types.Policy) (*types.AllocationResult, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, types.ErrNoData
	}

	// order holds roster indices in sorted order
	order := make([]int, len(roster))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		sa, sb := roster[a], roster[b]

		return cmp.Or(
			cmp.Compare(sa.Gender, sb.Gender),
			cmp.Compare(sa.Course, sb.Course),
			types.CompareYear(sa.Year, sb.Year),
		)
	})

	result := &types.AllocationResult{
		Strategy:   types.StrategyGreedy,
		RosterSize: len(roster),
	}
	placed := make([]bool, len(roster))

	for pos, idx := range order {
		if placed[idx] {
			continue
		}
		if policy.RoomLimit > 0 && len(result.Rooms) >= policy.RoomLimit {
			break
		}

		seed := roster[idx]
		placed[idx] = true
		room := types.Room{
			Number:   len(result.Rooms) + 1,
			Capacity: policy.Capacity,
			Members:  []types.Student{seed},
			Gender:   seed.Gender,
		}

		if policy.Capacity > 1 {
			var candidates []candidate
			for _, other := range order[pos+1:] {
				if placed[other] {
					continue
				}
				if score := compat.Score(seed, roster[other]); score > 0 {
					candidates = append(candidates, candidate{idx: other, score: score})
				}
			}
			slices.SortStableFunc(candidates, func(a, b candidate) int {
				return cmp.Compare(b.score, a.score)
			})

			for _, c := range candidates[:min(policy.Capacity-1, len(candidates))] {
				room.Members = append(room.Members, roster[c.idx])
				placed[c.idx] = true
			}
		}

		result.Rooms = append(result.Rooms, room)
	}

	for i, s := range roster {
		if !placed[i] {
			result.Unallocated = append(result.Unallocated, s)
		}
	}

	return result, nil
}
