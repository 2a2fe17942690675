// Package hash computes stable fingerprints of room partitions.
package hash

import (
	"encoding/binary"
	"slices"
	"strings"

	"github.com/zeebo/xxh3"
)

// group markers keep rooms and the unallocated remainder in separate domains
const (
	tagRoom        byte = 'R'
	tagUnallocated byte = 'U'
)

// Partition returns an order-insensitive xxh3 fingerprint of a room partition.
//
// The fingerprint only depends on which IDs share a room and which IDs are
// unallocated: member order, room order and empty rooms do not contribute.
//
// Parameters:
//   - rooms: Member IDs per room
//   - unallocated: IDs of students left without a room
//
// Returns:
//   - uint64: Partition fingerprint
//
// Example:
//
//	a := hash.Partition([][]string{{"s1", "s2"}, {"s3"}}, nil)
//	b := hash.Partition([][]string{{"s3"}, {"s2", "s1"}}, nil)
//	// a == b
func Partition(rooms [][]string, unallocated []string) uint64 {
	canon := make([][]string, 0, len(rooms))
	for _, members := range rooms {
		if len(members) == 0 {
			continue
		}
		canon = append(canon, sortedCopy(members))
	}
	slices.SortFunc(canon, func(a, b []string) int {
		return slices.Compare(a, b)
	})

	h := xxh3.New()
	for _, members := range canon {
		writeGroup(h, tagRoom, members)
	}
	writeGroup(h, tagUnallocated, sortedCopy(unallocated))

	return h.Sum64()
}

// Key returns the canonical key of one group of IDs: sorted and joined by ",".
//
// Example:
//
//	hash.Key([]string{"s2", "s1"}) // "s1,s2"
func Key(ids []string) string {
	return strings.Join(sortedCopy(ids), ",")
}

func sortedCopy(ids []string) []string {
	out := slices.Clone(ids)
	slices.Sort(out)

	return out
}

func writeGroup(h *xxh3.Hasher, tag byte, ids []string) {
	var buf [binary.MaxVarintLen64]byte

	_, _ = h.Write([]byte{tag})
	n := binary.PutUvarint(buf[:], uint64(len(ids)))
	_, _ = h.Write(buf[:n])
	for _, id := range ids {
		n = binary.PutUvarint(buf[:], uint64(len(id)))
		_, _ = h.Write(buf[:n])
		_, _ = h.WriteString(id)
	}
}
