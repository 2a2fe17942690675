package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func students(ids ...string) []Student {
	out := make([]Student, len(ids))
	for i, id := range ids {
		out[i] = Student{ID: id}
	}

	return out
}

func TestRoom(t *testing.T) {
	r := Room{Number: 7, Capacity: 3, Members: students("a", "b")}

	require.Equal(t, "R007", r.Label())
	require.Equal(t, 2, r.Occupancy())
	require.False(t, r.IsEmpty())
	require.False(t, r.IsFull())
	require.InDelta(t, 66.666, r.OccupancyRate(), 0.01)
	require.Equal(t, "2/3", r.OccupancyFraction())
	require.Equal(t, []string{"a", "b"}, r.MemberIDs())

	empty := Room{Number: 12, Capacity: 2}
	require.Equal(t, "R012", empty.Label())
	require.True(t, empty.IsEmpty())
	require.Zero(t, empty.OccupancyRate())
	require.Equal(t, "0/2", empty.OccupancyFraction())

	require.Zero(t, Room{}.OccupancyRate())
	require.Equal(t, 5, *NewCluster(5))
}

func TestAllocationResult(t *testing.T) {
	result := &AllocationResult{
		Strategy: StrategyGreedy,
		Rooms: []Room{
			{Number: 1, Capacity: 2, Members: students("a", "b")},
			{Number: 2, Capacity: 2, Members: students("c")},
		},
		Unallocated: students("d"),
		RosterSize:  4,
	}

	t.Run("Allocated", func(t *testing.T) {
		require.Equal(t, 3, result.Allocated())
	})

	t.Run("RoomOf", func(t *testing.T) {
		room, ok := result.RoomOf("c")
		require.True(t, ok)
		require.Equal(t, 2, room.Number)

		_, ok = result.RoomOf("d")
		require.False(t, ok)
	})

	t.Run("Partition", func(t *testing.T) {
		require.Equal(t, [][]string{{"a", "b"}, {"c"}, {"d"}}, result.Partition())
	})

	t.Run("Verify", func(t *testing.T) {
		require.NoError(t, result.Verify(students("a", "b", "c", "d")))
		require.ErrorContains(t, result.Verify(students("a", "b", "c", "d", "e")), `"e" missing`)
		require.ErrorContains(t, result.Verify(students("a", "b", "c")), `"d" is not part`)

		dup := &AllocationResult{Rooms: []Room{{Number: 1, Capacity: 2, Members: students("a", "a")}}}
		require.ErrorContains(t, dup.Verify(students("a")), "placed 2 times")

		over := &AllocationResult{Rooms: []Room{{Number: 1, Capacity: 1, Members: students("a", "b")}}}
		require.ErrorContains(t, over.Verify(students("a", "b")), "capacity 1")
	})

	t.Run("Fingerprint ignores numbering and order", func(t *testing.T) {
		other := &AllocationResult{
			Rooms: []Room{
				{Number: 1, Capacity: 2, Members: students("c")},
				{Number: 2, Capacity: 2, Members: students("b", "a")},
			},
			Unallocated: students("d"),
		}
		require.Equal(t, result.Fingerprint(), other.Fingerprint())

		moved := &AllocationResult{
			Rooms: []Room{
				{Number: 1, Capacity: 2, Members: students("a", "b")},
				{Number: 2, Capacity: 2, Members: students("c", "d")},
			},
		}
		require.NotEqual(t, result.Fingerprint(), moved.Fingerprint())
	})
}
