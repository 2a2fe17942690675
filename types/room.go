package types

import (
	"fmt"
	"slices"

	"github.com/arloliu/hostelmatch/internal/hash"
)

// Room is one allocated room.
//
// Members keeps the order in which the strategy placed students: the first
// member is the room's seed for the greedy strategy and roster order for the
// cluster strategy.
type Room struct {
	// Number is the sequential room number within one allocation run, starting at 1.
	Number int `json:"room_number"`

	// Capacity is the maximum number of occupants (policy supplied).
	Capacity int `json:"capacity"`

	// Members are the students placed in this room (0 <= len <= Capacity).
	Members []Student `json:"members"`

	// Gender is the shared gender of all members when the strategy enforces
	// gender-homogeneous rooms; empty otherwise.
	Gender string `json:"gender,omitempty"`

	// ClusterID is the similarity cluster the room was packed from; nil when the
	// strategy is not cluster based or the room is a padding room.
	ClusterID *int `json:"cluster_id,omitempty"`
}

// Label returns the display room number ("R001", "R002", ...).
func (r Room) Label() string {
	return fmt.Sprintf("R%03d", r.Number)
}

// Occupancy returns the number of members.
func (r Room) Occupancy() int {
	return len(r.Members)
}

// IsEmpty reports whether the room has no members (padding room).
func (r Room) IsEmpty() bool {
	return len(r.Members) == 0
}

// IsFull reports whether the room is at capacity.
func (r Room) IsFull() bool {
	return len(r.Members) >= r.Capacity
}

// OccupancyRate returns len(Members)/Capacity as a percentage.
//
// Returns:
//   - float64: Occupancy percentage (0 when Capacity is not positive)
func (r Room) OccupancyRate() float64 {
	if r.Capacity <= 0 {
		return 0
	}

	return float64(len(r.Members)) / float64(r.Capacity) * 100
}

// OccupancyFraction renders the occupancy as "members/capacity", e.g. "1/2".
func (r Room) OccupancyFraction() string {
	return fmt.Sprintf("%d/%d", len(r.Members), r.Capacity)
}

// MemberIDs returns the IDs of the room's members in placement order.
func (r Room) MemberIDs() []string {
	return IDs(r.Members)
}

// NewCluster returns a pointer to a cluster label, for Room.ClusterID.
func NewCluster(label int) *int {
	return &label
}

// AllocationResult is the outcome of one assignment run.
//
// Every roster student appears exactly once, either in one room's Members or
// in Unallocated. The result is never mutated after it is returned; callers
// that want a fresh allocation simply run the strategy again.
type AllocationResult struct {
	// Strategy names the assigner that produced the result.
	Strategy StrategyName `json:"strategy"`

	// Rooms are ordered by Number.
	Rooms []Room `json:"rooms"`

	// Unallocated holds students that were not placed in any room, in roster order.
	Unallocated []Student `json:"unallocated"`

	// RosterSize is the number of students handed to the strategy.
	RosterSize int `json:"roster_size"`
}

// Allocated returns the number of students placed in rooms.
func (r *AllocationResult) Allocated() int {
	total := 0
	for _, room := range r.Rooms {
		total += len(room.Members)
	}

	return total
}

// RoomOf returns the room holding the given student.
//
// Returns:
//   - Room: The room containing studentID
//   - bool: false if the student is unallocated or unknown
func (r *AllocationResult) RoomOf(studentID string) (Room, bool) {
	for _, room := range r.Rooms {
		for _, m := range room.Members {
			if m.ID == studentID {
				return room, true
			}
		}
	}

	return Room{}, false
}

// Partition returns the member IDs of every room followed by the unallocated IDs
// as a trailing group.
func (r *AllocationResult) Partition() [][]string {
	groups := make([][]string, 0, len(r.Rooms)+1)
	for _, room := range r.Rooms {
		groups = append(groups, room.MemberIDs())
	}
	groups = append(groups, IDs(r.Unallocated))

	return groups
}

// Fingerprint returns an order-insensitive hash of the partition.
//
// Two results have the same fingerprint when they group the same students
// together and leave the same students unallocated, regardless of room
// numbering or member order.
func (r *AllocationResult) Fingerprint() uint64 {
	rooms := make([][]string, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, room.MemberIDs())
	}

	return hash.Partition(rooms, IDs(r.Unallocated))
}

// Verify checks the conservation invariant against the roster the result was
// computed from: every roster student appears exactly once across rooms and
// the unallocated remainder, and no room exceeds its capacity.
//
// Returns:
//   - error: Description of the first violation, nil if the result is consistent
func (r *AllocationResult) Verify(roster []Student) error {
	seen := make(map[string]int, len(roster))
	for _, room := range r.Rooms {
		if len(room.Members) > room.Capacity {
			return fmt.Errorf("room %s holds %d students, capacity %d", room.Label(), len(room.Members), room.Capacity)
		}
		for _, m := range room.Members {
			seen[m.ID]++
		}
	}
	for _, s := range r.Unallocated {
		seen[s.ID]++
	}

	for _, s := range roster {
		switch seen[s.ID] {
		case 0:
			return fmt.Errorf("student %q missing from result", s.ID)
		case 1:
		default:
			return fmt.Errorf("student %q placed %d times", s.ID, seen[s.ID])
		}
		delete(seen, s.ID)
	}
	if len(seen) > 0 {
		extra := make([]string, 0, len(seen))
		for id := range seen {
			extra = append(extra, id)
		}
		slices.Sort(extra)

		return fmt.Errorf("student %q is not part of the roster", extra[0])
	}

	return nil
}
