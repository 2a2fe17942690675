package types

import "context"

// RosterSource loads the raw student table for one allocation run.
//
// Implementations can read from various backends:
//   - Static: fixed table for testing
//   - CSV / XLSX: uploaded spreadsheets
//   - Postgres: a student table in a database
//   - Sample: generated demo data
//
// The engine calls LoadTable once per run and normalizes the result; sources
// never interpret column names themselves.
type RosterSource interface {
	// LoadTable returns the raw roster table.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - Table: Header and data rows
	//   - error: Read error (nil on success)
	LoadTable(ctx context.Context) (Table, error)
}
