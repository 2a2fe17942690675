package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStrategyName(t *testing.T) {
	name, err := ParseStrategyName("greedy")
	require.NoError(t, err)
	require.Equal(t, StrategyGreedy, name)

	name, err = ParseStrategyName("cluster")
	require.NoError(t, err)
	require.Equal(t, StrategyCluster, name)

	_, err = ParseStrategyName("random")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr error
	}{
		{"valid", Policy{Capacity: 2}, nil},
		{"valid with limit", Policy{Capacity: 1, RoomLimit: 3, Strategy: StrategyCluster}, nil},
		{"zero capacity", Policy{Capacity: 0}, ErrCapacity},
		{"negative capacity", Policy{Capacity: -2}, ErrCapacity},
		{"negative room limit", Policy{Capacity: 2, RoomLimit: -1}, ErrCapacity},
		{"unknown strategy", Policy{Capacity: 2, Strategy: "magic"}, ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	var ce *CapacityError
	require.ErrorAs(t, Policy{Capacity: 2, RoomLimit: -4}.Validate(), &ce)
	require.Equal(t, "room_limit", ce.Field)
	require.Equal(t, -4, ce.Value)
}

func TestPolicyStrategyOrDefault(t *testing.T) {
	require.Equal(t, StrategyGreedy, Policy{}.StrategyOrDefault())
	require.Equal(t, StrategyCluster, Policy{Strategy: StrategyCluster}.StrategyOrDefault())
}
