package report

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hostelmatch/types"
)

func members(gender string, ids ...string) []types.Student {
	out := make([]types.Student, len(ids))
	for i, id := range ids {
		out[i] = types.Student{ID: id, Name: "N" + id, Gender: gender, Course: "CS", Year: "1"}
	}

	return out
}

func TestSummarize(t *testing.T) {
	t.Run("average occupancy over padded rooms", func(t *testing.T) {
		result := &types.AllocationResult{
			Rooms: []types.Room{
				{Number: 1, Capacity: 2, Members: members("", "a", "b")},
				{Number: 2, Capacity: 2, Members: members("", "c")},
				{Number: 3, Capacity: 2},
			},
			RosterSize: 3,
		}

		s := Summarize(result)
		require.InDelta(t, 50.0, s.AverageOccupancy, 1e-9)
		require.InDelta(t, 50.0, s.RoundedOccupancy(), 1e-9)
		require.Equal(t, 3, s.TotalStudents)
		require.Equal(t, 3, s.TotalRooms)
		require.Zero(t, s.UnallocatedCount)
		require.Empty(t, s.RoomsByGender)
	})

	t.Run("rooms per gender and unallocated", func(t *testing.T) {
		result := &types.AllocationResult{
			Rooms: []types.Room{
				{Number: 1, Capacity: 2, Gender: "Female", Members: members("Female", "a", "b")},
				{Number: 2, Capacity: 2, Gender: "Male", Members: members("Male", "c", "d")},
				{Number: 3, Capacity: 2, Gender: "Female", Members: members("Female", "e")},
			},
			Unallocated: members("Other", "f"),
			RosterSize:  6,
		}

		s := Summarize(result)
		require.Equal(t, map[string]int{"Female": 2, "Male": 1, "Other": 0}, s.RoomsByGender)
		require.Equal(t, []string{"Female", "Male", "Other"}, s.Genders())
		require.Equal(t, 5, s.TotalStudents)
		require.Equal(t, 1, s.UnallocatedCount)
		require.Equal(t, result.RosterSize, s.TotalStudents+s.UnallocatedCount)
	})

	t.Run("roster size derived when unset", func(t *testing.T) {
		s := Summarize(&types.AllocationResult{
			Rooms:       []types.Room{{Number: 1, Capacity: 1, Members: members("F", "a")}},
			Unallocated: members("F", "b", "c"),
		})
		require.Equal(t, 2, s.UnallocatedCount)
	})

	t.Run("rounding", func(t *testing.T) {
		s := Summarize(&types.AllocationResult{
			Rooms: []types.Room{
				{Number: 1, Capacity: 3, Members: members("F", "a", "b", "c")},
				{Number: 2, Capacity: 3, Members: members("F", "d")},
				{Number: 3, Capacity: 3, Members: members("F", "e")},
			},
		})
		require.InDelta(t, 55.5555, s.AverageOccupancy, 1e-3)
		require.InDelta(t, 55.6, s.RoundedOccupancy(), 1e-9)
	})

	t.Run("empty and nil results", func(t *testing.T) {
		s := Summarize(&types.AllocationResult{})
		require.Zero(t, s.AverageOccupancy)
		require.Zero(t, s.TotalRooms)

		s = Summarize(nil)
		require.NotNil(t, s.RoomsByGender)
	})
}
