package testing

import (
	"testing"

	"github.com/arloliu/hostelmatch/types"
)

// AssertAllocationConsistent verifies that every roster student appears exactly
// once across rooms and the unallocated remainder, that no room exceeds its
// capacity and that rooms are numbered 1..n in order.
//
// Parameters:
//   - tb: testing handle
//   - roster: roster the result was computed from
//   - result: allocation to check
func AssertAllocationConsistent(tb testing.TB, roster []types.Student, result *types.AllocationResult) {
	tb.Helper()

	if result == nil {
		tb.Fatal("allocation result is nil")
		return
	}
	if err := result.Verify(roster); err != nil {
		tb.Fatalf("allocation is inconsistent: %v", err)
	}
	if result.RosterSize != len(roster) {
		tb.Fatalf("roster size (%d) does not equal roster length (%d)", result.RosterSize, len(roster))
	}
	for i, room := range result.Rooms {
		if room.Number != i+1 {
			tb.Fatalf("room at index %d has number %d", i, room.Number)
		}
	}
}

// AssertGenderSegregated verifies that no room mixes genders and that every
// non-empty room carries its members' gender.
func AssertGenderSegregated(tb testing.TB, result *types.AllocationResult) {
	tb.Helper()

	for _, room := range result.Rooms {
		for _, m := range room.Members {
			if m.Gender != room.Gender {
				tb.Fatalf("room %s (gender %q) holds %s with gender %q", room.Label(), room.Gender, m.ID, m.Gender)
			}
		}
	}
}
