// Package source provides built-in roster source implementations.
//
// Roster sources load the raw student table for an allocation run.
// The package includes:
//
//   - Static: Fixed table held in memory
//   - CSV: Delimited text files
//   - XLSX: Excel workbooks (first sheet unless configured)
//   - Postgres: A student table read through database/sql and lib/pq
//   - Sample: Generated demo rosters
//
// Sources never interpret column names; the normalizer resolves them.
// Custom sources can be implemented by satisfying the types.RosterSource interface.
package source
