package hostelmatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/hostelmatch/internal/hooks"
	"github.com/arloliu/hostelmatch/internal/logger"
	"github.com/arloliu/hostelmatch/internal/metrics"
	"github.com/arloliu/hostelmatch/normalize"
	"github.com/arloliu/hostelmatch/report"
	"github.com/arloliu/hostelmatch/strategy"
	"github.com/arloliu/hostelmatch/types"
)

// Failure reasons reported to MetricsCollector.RecordAllocationFailure.
const (
	ReasonSchema   = "schema"
	ReasonNoData   = "no_data"
	ReasonCapacity = "capacity"
	ReasonStrategy = "strategy"
	ReasonSource   = "source"
	ReasonOther    = "other"
)

// Report is the outcome of one Engine.Run.
type Report struct {
	// Result is the computed allocation.
	Result *AllocationResult

	// Summary aggregates Result.
	Summary Summary

	// Resolution records which input column each canonical field was read from.
	Resolution *normalize.Resolution

	// Duration is the wall time of the run, loading included.
	Duration time.Duration
}

// Engine runs the allocation pipeline: load, normalize, assign, summarize.
//
// An Engine holds no per-run state and is safe for concurrent use.
type Engine struct {
	cfg         Config
	clusterOpts []strategy.ClusterOption
	strategy    AssignmentStrategy
	normalizer  *normalize.Normalizer
	hooks       Hooks
	logger      Logger
	metrics     MetricsCollector
}

// NewEngine creates an allocation engine.
//
// Missing configuration values are filled with defaults before validation;
// cfg itself is not modified.
//
// Parameters:
//   - cfg: Configuration (nil means DefaultConfig)
//   - opts: Optional logger, metrics, hooks, strategy and normalizer
//
// Returns:
//   - *Engine: Ready to run
//   - error: ErrInvalidConfig when the configuration is invalid
//
// Example:
//
//	engine, err := hostelmatch.NewEngine(&cfg, hostelmatch.WithLogger(logger))
//	rep, err := engine.Run(ctx, src)
func NewEngine(cfg *Config, opts ...Option) (*Engine, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	SetDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		cfg:         c,
		clusterOpts: c.ClusterOptions(),
		strategy:    o.strategy,
		normalizer:  o.normalizer,
		hooks:       hooks.NewNop(),
		logger:      o.logger,
		metrics:     o.metrics,
	}
	if len(o.hooks) > 0 {
		e.hooks = hooks.Chain(o.hooks...)
	}
	if e.normalizer == nil {
		e.normalizer = normalize.New()
	}
	if e.logger == nil {
		e.logger = logger.NewNop()
	}
	if e.metrics == nil {
		e.metrics = metrics.NewNop()
	}

	return e, nil
}

// Config returns a copy of the engine configuration with defaults applied.
func (e *Engine) Config() Config {
	return e.cfg
}

// Run loads a roster from src and allocates it with the configured policy.
//
// OnError hooks are called for every failure; OnAllocated hooks after a
// successful allocation. A hook failure is returned together with the
// report, since the allocation itself succeeded.
//
// Parameters:
//   - ctx: Context passed to the source and the hooks
//   - src: Roster source
//
// Returns:
//   - *Report: Allocation, summary and column resolution (nil on failure)
//   - error: ErrSourceRequired, source errors, *SchemaError, ErrNoData,
//     *CapacityError, or a hook error
func (e *Engine) Run(ctx context.Context, src RosterSource) (*Report, error) {
	start := time.Now()
	name := e.strategyName(e.cfg.Policy())

	if src == nil {
		return nil, e.fail(ctx, name, ReasonSource, ErrSourceRequired)
	}

	table, err := src.LoadTable(ctx)
	if err != nil {
		return nil, e.fail(ctx, name, ReasonSource, fmt.Errorf("failed to load roster: %w", err))
	}

	roster, resolution, err := e.normalizer.Normalize(table)
	if err != nil {
		return nil, e.fail(ctx, name, reasonOf(err), err)
	}
	e.logResolution(resolution)

	result, err := e.assign(roster, e.cfg.Policy())
	if err != nil {
		e.logger.Error("allocation run failed", "reason", reasonOf(err), "error", err)
		_ = e.hooks.OnError(ctx, err)

		return nil, err
	}

	rep := &Report{
		Result:     result,
		Summary:    report.Summarize(result),
		Resolution: resolution,
		Duration:   time.Since(start),
	}

	e.logger.Info("allocation complete",
		"strategy", result.Strategy,
		"students", len(roster),
		"rooms", rep.Summary.TotalRooms,
		"unallocated", rep.Summary.UnallocatedCount,
		"average_occupancy", rep.Summary.RoundedOccupancy(),
		"fingerprint", fmt.Sprintf("%016x", result.Fingerprint()),
		"duration", rep.Duration)

	if err := e.hooks.OnAllocated(ctx, result); err != nil {
		e.logger.Error("allocation hook failed", "error", err)
		return rep, fmt.Errorf("allocation hook failed: %w", err)
	}

	return rep, nil
}

// Assign allocates an already normalized roster under policy.
//
// Parameters:
//   - roster: Normalized students
//   - policy: Capacity, room limit and strategy selector
//
// Returns:
//   - *AllocationResult: Rooms plus unallocated remainder
//   - error: *CapacityError, ErrUnknownStrategy or ErrNoData
func (e *Engine) Assign(roster []Student, policy Policy) (*AllocationResult, error) {
	return e.assign(roster, policy)
}

func (e *Engine) assign(roster []Student, policy Policy) (*AllocationResult, error) {
	name := e.strategyName(policy)

	if err := policy.Validate(); err != nil {
		e.metrics.RecordAllocationFailure(name, reasonOf(err))
		return nil, err
	}

	s, err := e.resolveStrategy(policy)
	if err != nil {
		e.metrics.RecordAllocationFailure(name, reasonOf(err))
		return nil, err
	}

	if s.Name() == types.StrategyCluster && policy.RoomLimit > 0 {
		e.logger.Warn("room limit is ignored by the cluster strategy", "room_limit", policy.RoomLimit)
	}

	start := time.Now()
	result, err := s.Assign(roster, policy)
	if err != nil {
		e.metrics.RecordAllocationFailure(name, reasonOf(err))
		return nil, err
	}

	e.metrics.RecordAllocation(string(result.Strategy), time.Since(start).Seconds(),
		len(result.Rooms), result.Allocated(), len(result.Unallocated))
	e.metrics.RecordAverageOccupancy(string(result.Strategy), report.Summarize(result).AverageOccupancy)

	return result, nil
}

func (e *Engine) resolveStrategy(policy Policy) (AssignmentStrategy, error) {
	if e.strategy != nil {
		return e.strategy, nil
	}

	return strategy.ByName(policy.StrategyOrDefault(), e.clusterOpts...)
}

func (e *Engine) strategyName(policy Policy) string {
	if e.strategy != nil {
		return string(e.strategy.Name())
	}

	return string(policy.StrategyOrDefault())
}

func (e *Engine) fail(ctx context.Context, strategyName, reason string, err error) error {
	e.metrics.RecordAllocationFailure(strategyName, reason)
	e.logger.Error("allocation run failed", "reason", reason, "error", err)
	_ = e.hooks.OnError(ctx, err)

	return err
}

func (e *Engine) logResolution(res *normalize.Resolution) {
	if res == nil {
		return
	}

	for _, m := range res.Matches {
		e.logger.Debug("resolved column", "field", m.Field, "column", m.Column, "tier", m.Rule.Tier.String())
	}
	for _, f := range res.Defaulted {
		e.logger.Debug("column not found, using default", "field", f)
	}
}

// reasonOf classifies an allocation error for metrics.
func reasonOf(err error) string {
	switch {
	case errors.Is(err, ErrSchema):
		return ReasonSchema
	case errors.Is(err, ErrNoData):
		return ReasonNoData
	case errors.Is(err, ErrCapacity):
		return ReasonCapacity
	case errors.Is(err, ErrUnknownStrategy):
		return ReasonStrategy
	default:
		return ReasonOther
	}
}

// Assign allocates roster under policy with a built-in strategy and default
// options. It is the stateless entry point for callers that normalize rosters
// themselves.
//
// Parameters:
//   - roster: Normalized students
//   - policy: Capacity, room limit and strategy selector
//
// Returns:
//   - *AllocationResult: Rooms plus unallocated remainder
//   - error: *CapacityError, ErrUnknownStrategy or ErrNoData
//
// Example:
//
//	result, err := hostelmatch.Assign(roster, hostelmatch.Policy{Capacity: 2, Strategy: hostelmatch.StrategyGreedy})
func Assign(roster []Student, policy Policy) (*AllocationResult, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	s, err := strategy.ByName(policy.StrategyOrDefault())
	if err != nil {
		return nil, err
	}

	return s.Assign(roster, policy)
}
