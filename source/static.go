package source

import (
	"context"
	"slices"
	"sync"

	"github.com/arloliu/hostelmatch/types"
)

// Static implements a roster source with a fixed table.
type Static struct {
	mu    sync.RWMutex
	table types.Table
}

var _ types.RosterSource = (*Static)(nil)

// NewStatic creates a new static roster source.
//
// The source returns a copy of the same table on every load.
// Useful for testing and for callers that already hold the roster in memory.
//
// Parameters:
//   - table: Fixed roster table
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(types.Table{
//	    Columns: []string{"student_id", "name", "gender"},
//	    Rows:    [][]string{{"S1", "Ann", "Female"}},
//	})
//	report, err := engine.Run(ctx, src)
func NewStatic(table types.Table) *Static {
	return &Static{table: cloneTable(table)}
}

// NewStaticRecords creates a static source from key/value records.
func NewStaticRecords(records []map[string]string) *Static {
	return &Static{table: types.NewTableFromRecords(records)}
}

// LoadTable returns a copy of the static table.
//
// Returns:
//   - types.Table: The fixed table
//   - error: Always nil (never fails)
func (s *Static) LoadTable(_ context.Context) (types.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneTable(s.table), nil
}

// Update replaces the table.
//
// Parameters:
//   - table: New roster table
//
// Example:
//
//	src := source.NewStatic(week1)
//	// Later: late registrations arrived
//	src.Update(week2)
func (s *Static) Update(table types.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table = cloneTable(table)
}

func cloneTable(t types.Table) types.Table {
	out := types.Table{
		Columns: slices.Clone(t.Columns),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = slices.Clone(row)
	}

	return out
}
