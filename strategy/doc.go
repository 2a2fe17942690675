// Package strategy provides built-in room assignment strategy implementations.
//
// Assignment strategies determine how a roster is partitioned into rooms.
// The package includes two built-in strategies:
//
//   - Greedy: Sorted greedy matching against the compatibility scorer (gender segregated)
//   - ClusterPacking: Similarity clustering followed by fixed-capacity packing
//
// # Strategy Selection Guide
//
// Greedy:
//   - Use when gender-homogeneous rooms are a hard requirement
//   - Works on categorical survey answers (course, year, lifestyle words)
//   - Honours Policy.RoomLimit; students left over are reported as unallocated
//   - Configuration: none
//
// ClusterPacking:
//   - Use when lifestyle attributes are numeric and similarity matters more than labels
//   - Always produces exactly ceil(len(roster)/capacity) rooms
//   - Does NOT enforce the gender veto: split the roster by gender and run once per group
//   - Configuration: seed, restarts, max iterations, tolerance
//
// Custom strategies can be implemented by satisfying the types.AssignmentStrategy interface.
package strategy
