package hooks

import (
	"context"

	"go.uber.org/multierr"

	"github.com/arloliu/hostelmatch/types"
)

// Chain returns hooks that call every non-nil callback of hs in order.
//
// All callbacks run even when an earlier one fails; their errors are combined
// with multierr.
//
// Parameters:
//   - hs: Hooks to combine; nil entries are skipped
//
// Returns:
//   - types.Hooks: Combined hooks with both callbacks set
//
// Example:
//
//	h := hooks.Chain(publishHooks, auditHooks)
func Chain(hs ...*types.Hooks) types.Hooks {
	var allocated []func(context.Context, *types.AllocationResult) error
	var failed []func(context.Context, error) error
	for _, h := range hs {
		if h == nil {
			continue
		}
		if h.OnAllocated != nil {
			allocated = append(allocated, h.OnAllocated)
		}
		if h.OnError != nil {
			failed = append(failed, h.OnError)
		}
	}

	return types.Hooks{
		OnAllocated: func(ctx context.Context, result *types.AllocationResult) error {
			var err error
			for _, fn := range allocated {
				err = multierr.Append(err, fn(ctx, result))
			}

			return err
		},
		OnError: func(ctx context.Context, runErr error) error {
			var err error
			for _, fn := range failed {
				err = multierr.Append(err, fn(ctx, runErr))
			}

			return err
		},
	}
}
