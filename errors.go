package hostelmatch

import "github.com/arloliu/hostelmatch/types"

// Sentinel errors returned by the Engine, re-exported from the types package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrSourceRequired is returned when Run is called without a roster source.
	ErrSourceRequired = types.ErrSourceRequired

	// ErrUnknownStrategy is returned for an unrecognized strategy selector.
	ErrUnknownStrategy = types.ErrUnknownStrategy

	// ErrSchema is returned when a mandatory roster attribute cannot be resolved.
	ErrSchema = types.ErrSchema

	// ErrNoData is returned when an assignment is attempted on an empty roster.
	ErrNoData = types.ErrNoData

	// ErrCapacity is returned for an invalid capacity or room limit.
	ErrCapacity = types.ErrCapacity

	// ErrPublishFailed is returned when an allocation cannot be published.
	ErrPublishFailed = types.ErrPublishFailed
)
