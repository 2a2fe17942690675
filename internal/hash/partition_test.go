package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	t.Run("insensitive to member and room order", func(t *testing.T) {
		a := Partition([][]string{{"s1", "s2"}, {"s3"}}, []string{"s4"})
		b := Partition([][]string{{"s3"}, {"s2", "s1"}}, []string{"s4"})
		require.Equal(t, a, b)
	})

	t.Run("empty rooms are ignored", func(t *testing.T) {
		a := Partition([][]string{{"s1", "s2"}}, nil)
		b := Partition([][]string{{}, {"s1", "s2"}, nil}, []string{})
		require.Equal(t, a, b)
	})

	t.Run("regrouping changes fingerprint", func(t *testing.T) {
		a := Partition([][]string{{"s1", "s2"}, {"s3", "s4"}}, nil)
		b := Partition([][]string{{"s1", "s3"}, {"s2", "s4"}}, nil)
		require.NotEqual(t, a, b)
	})

	t.Run("unallocated is distinct from a room", func(t *testing.T) {
		a := Partition([][]string{{"s1"}, {"s2"}}, nil)
		b := Partition([][]string{{"s1"}}, []string{"s2"})
		require.NotEqual(t, a, b)
	})

	t.Run("ids are length prefixed", func(t *testing.T) {
		a := Partition([][]string{{"ab", "c"}}, nil)
		b := Partition([][]string{{"a", "bc"}}, nil)
		require.NotEqual(t, a, b)
	})
}

func TestKey(t *testing.T) {
	require.Equal(t, "s1,s2,s3", Key([]string{"s3", "s1", "s2"}))
	require.Empty(t, Key(nil))

	ids := []string{"b", "a"}
	_ = Key(ids)
	require.Equal(t, []string{"b", "a"}, ids, "input must not be reordered")
}
