package hostelmatch

import (
	"github.com/arloliu/hostelmatch/report"
	"github.com/arloliu/hostelmatch/types"
)

// Re-export types from the types package.
//
// Internal packages depend on types without depending on the root package,
// while users get hostelmatch.Student, hostelmatch.Policy, etc.
type (
	Student          = types.Student
	Room             = types.Room
	AllocationResult = types.AllocationResult
	Policy           = types.Policy
	StrategyName     = types.StrategyName
	Table            = types.Table
	Summary          = report.Summary

	SchemaError   = types.SchemaError
	CapacityError = types.CapacityError
)

// Re-export interfaces from the types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	RosterSource       = types.RosterSource
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
	Hooks              = types.Hooks
)

// Re-export strategy selectors.
const (
	StrategyGreedy  = types.StrategyGreedy
	StrategyCluster = types.StrategyCluster
)
