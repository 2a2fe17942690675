package hostelmatch

import "github.com/arloliu/hostelmatch/normalize"

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	hooks      []*Hooks
	metrics    MetricsCollector
	logger     Logger
	strategy   AssignmentStrategy
	normalizer *normalize.Normalizer
}

// WithHooks adds run event hooks.
//
// The option may be given more than once; callbacks run in option order and
// their errors are combined.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	hooks := &hostelmatch.Hooks{
//	    OnAllocated: func(ctx context.Context, result *hostelmatch.AllocationResult) error {
//	        return store(result)
//	    },
//	}
//	engine, err := hostelmatch.NewEngine(&cfg, hostelmatch.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = append(o.hooks, hooks)
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	engine, err := hostelmatch.NewEngine(&cfg, hostelmatch.WithMetrics(myCollector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	engine, err := hostelmatch.NewEngine(&cfg, hostelmatch.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithStrategy replaces the configured strategy with a custom one.
//
// The policy's strategy selector is ignored while a custom strategy is set.
//
// Parameters:
//   - strategy: AssignmentStrategy implementation
//
// Returns:
//   - Option: Functional option for NewEngine
func WithStrategy(strategy AssignmentStrategy) Option {
	return func(o *engineOptions) {
		o.strategy = strategy
	}
}

// WithNormalizer sets the normalizer used by Run, e.g. one with extra column rules.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(o *engineOptions) {
		o.normalizer = n
	}
}
