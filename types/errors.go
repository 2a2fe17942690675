package types

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the hostelmatch library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Engine, Normalizer, Strategy, Publisher)
//   - Use consistent messages across similar error types

// Engine errors - Public API errors returned by the allocation engine.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSourceRequired is returned when a run is started without a roster source.
	ErrSourceRequired = errors.New("roster source is required")

	// ErrUnknownStrategy is returned for an unrecognized strategy selector.
	ErrUnknownStrategy = errors.New("unknown assignment strategy")
)

// Allocation errors - Raised by the normalizer and the assigners.
var (
	// ErrSchema is returned when a mandatory attribute cannot be resolved.
	// Concrete failures are reported as *SchemaError, which unwraps to ErrSchema.
	ErrSchema = errors.New("schema error")

	// ErrNoData is returned when an assignment is attempted on an empty or
	// unnormalized roster.
	ErrNoData = errors.New("no student data loaded")

	// ErrCapacity is returned for capacity < 1 or room limit < 0.
	// Concrete failures are reported as *CapacityError, which unwraps to ErrCapacity.
	ErrCapacity = errors.New("invalid capacity policy")
)

// Publisher errors - Raised while exporting an allocation to NATS KV.
var (
	// ErrPublishFailed is returned when publishing an allocation to NATS KV fails.
	ErrPublishFailed = errors.New("failed to publish allocation")
)

// SchemaError reports input that cannot be normalized into a roster.
type SchemaError struct {
	// Fields are the canonical fields involved in the failure.
	Fields []string

	// Row is the 1-based data row the failure refers to; 0 for header-level failures.
	Row int

	// Reason is a short description; empty for unresolved columns.
	Reason string
}

// Error implements error.
func (e *SchemaError) Error() string {
	fields := strings.Join(e.Fields, ", ")
	if e.Row > 0 {
		return fmt.Sprintf("%s: row %d: %s (%s)", ErrSchema, e.Row, e.Reason, fields)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s (%s)", ErrSchema, e.Reason, fields)
	}

	return fmt.Sprintf("%s: missing required column(s): %s", ErrSchema, fields)
}

// Unwrap makes errors.Is(err, ErrSchema) succeed.
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// CapacityError reports a policy value outside its allowed range.
type CapacityError struct {
	// Field is the policy field name ("capacity" or "room_limit").
	Field string

	// Value is the rejected value.
	Value int
}

// Error implements error.
func (e *CapacityError) Error() string {
	if e.Field == "room_limit" {
		return fmt.Sprintf("%s: room_limit must be >= 1 when set, got %d", ErrCapacity, e.Value)
	}

	return fmt.Sprintf("%s: %s must be >= 1, got %d", ErrCapacity, e.Field, e.Value)
}

// Unwrap makes errors.Is(err, ErrCapacity) succeed.
func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}
