package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		require.True(t, errors.Is(ErrSchema, ErrSchema))
		require.False(t, errors.Is(ErrSchema, ErrNoData))

		wrapped := fmt.Errorf("normalize roster: %w", ErrNoData)
		require.True(t, errors.Is(wrapped, ErrNoData))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidConfig,
			ErrSourceRequired,
			ErrUnknownStrategy,
			ErrSchema,
			ErrNoData,
			ErrCapacity,
			ErrPublishFailed,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}

func TestSchemaError(t *testing.T) {
	t.Run("missing columns", func(t *testing.T) {
		err := error(&SchemaError{Fields: []string{FieldStudentID, FieldGender}})
		require.ErrorIs(t, err, ErrSchema)
		require.Equal(t, "schema error: missing required column(s): student_id, gender", err.Error())

		var se *SchemaError
		require.ErrorAs(t, err, &se)
		require.Equal(t, []string{FieldStudentID, FieldGender}, se.Fields)
	})

	t.Run("row scoped", func(t *testing.T) {
		err := &SchemaError{Fields: []string{FieldGender}, Row: 3, Reason: "empty value"}
		require.Equal(t, "schema error: row 3: empty value (gender)", err.Error())
	})

	t.Run("header scoped reason", func(t *testing.T) {
		err := &SchemaError{Fields: []string{FieldStudentID}, Reason: "duplicate column"}
		require.Equal(t, "schema error: duplicate column (student_id)", err.Error())
	})
}

func TestCapacityError(t *testing.T) {
	err := error(&CapacityError{Field: "capacity", Value: 0})
	require.ErrorIs(t, err, ErrCapacity)
	require.Contains(t, err.Error(), "capacity must be >= 1, got 0")

	err = &CapacityError{Field: "room_limit", Value: -1}
	require.ErrorIs(t, err, ErrCapacity)
	require.Contains(t, err.Error(), "got -1")
}
