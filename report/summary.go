package report

import (
	"math"
	"slices"

	"github.com/arloliu/hostelmatch/types"
)

// Summary is the aggregate view of one allocation.
type Summary struct {
	// TotalStudents is the number of students placed in rooms.
	TotalStudents int `json:"total_students"`

	// TotalRooms counts every room, empty padding rooms included.
	TotalRooms int `json:"total_rooms"`

	// AverageOccupancy is the mean over rooms of members/capacity, in percent.
	AverageOccupancy float64 `json:"average_occupancy"`

	// UnallocatedCount is the roster size minus TotalStudents.
	UnallocatedCount int `json:"unallocated_count"`

	// RoomsByGender counts rooms per room gender, for every gender observed in
	// the roster. Rooms without a gender (cluster strategy) are not counted.
	RoomsByGender map[string]int `json:"rooms_by_gender"`
}

// RoundedOccupancy returns AverageOccupancy rounded to one decimal place.
func (s Summary) RoundedOccupancy() float64 {
	return math.Round(s.AverageOccupancy*10) / 10
}

// Genders returns the keys of RoomsByGender in sorted order.
func (s Summary) Genders() []string {
	genders := make([]string, 0, len(s.RoomsByGender))
	for g := range s.RoomsByGender {
		genders = append(genders, g)
	}
	slices.Sort(genders)

	return genders
}

// Summarize computes the summary of result. It does not modify result.
//
// When result.RosterSize is zero (a hand-built result) the roster size is taken
// as placed plus unallocated students.
//
// Parameters:
//   - result: Allocation to summarize
//
// Returns:
//   - Summary: Aggregate statistics
func Summarize(result *types.AllocationResult) Summary {
	s := Summary{RoomsByGender: make(map[string]int)}
	if result == nil {
		return s
	}
	s.TotalRooms = len(result.Rooms)

	observe := func(students []types.Student) {
		for _, st := range students {
			if _, ok := s.RoomsByGender[st.Gender]; !ok && st.Gender != "" {
				s.RoomsByGender[st.Gender] = 0
			}
		}
	}

	for _, room := range result.Rooms {
		observe(room.Members)
		s.TotalStudents += len(room.Members)
		s.AverageOccupancy += room.OccupancyRate()
	}
	observe(result.Unallocated)
	for _, room := range result.Rooms {
		if room.Gender != "" {
			s.RoomsByGender[room.Gender]++
		}
	}

	if len(result.Rooms) > 0 {
		s.AverageOccupancy /= float64(len(result.Rooms))
	}

	rosterSize := result.RosterSize
	if rosterSize == 0 {
		rosterSize = s.TotalStudents + len(result.Unallocated)
	}
	s.UnallocatedCount = rosterSize - s.TotalStudents

	return s
}
