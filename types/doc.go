// Package types provides core type definitions and interfaces for the hostelmatch library.
//
// This package contains shared types that are used across multiple packages in the
// library. By keeping these types in a separate package, we avoid import cycles
// between the root hostelmatch package and its strategy, source and report packages.
//
// Key types:
//   - Student: Normalized roster entry, compared by student ID
//   - Room: One allocated room with its ordered members
//   - AllocationResult: Rooms plus the explicit unallocated remainder
//   - Policy: Capacity, room limit and strategy selector for one run
//   - Table: Raw tabular input handed to the normalizer
//   - AssignmentStrategy: Interface implemented by every assigner
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
