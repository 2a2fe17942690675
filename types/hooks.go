package types

import "context"

// Hooks defines callbacks for engine run events.
//
// All hooks are optional and are called synchronously at the end of a run, in
// the caller's goroutine, with the run's context. Hook errors are logged and
// returned to the caller of Engine.Run after the allocation itself succeeded,
// so a failing hook never hides a computed result.
//
// Example:
//
//	hooks := &hostelmatch.Hooks{
//	    OnAllocated: func(ctx context.Context, result *hostelmatch.AllocationResult) error {
//	        _, err := pub.Publish(ctx, result, report.Summarize(result))
//	        return err
//	    },
//	}
type Hooks struct {
	// OnAllocated is called with every successfully computed allocation.
	OnAllocated func(ctx context.Context, result *AllocationResult) error

	// OnError is called when a run fails (schema, capacity, no data, source errors).
	OnError func(ctx context.Context, err error) error
}
