package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/arloliu/hostelmatch/types"
)

// Postgres implements a roster source reading one table through database/sql.
//
// Every column is scanned as text; NULL reads as an empty cell.
type Postgres struct {
	db      *sql.DB
	table   string
	columns []string
	orderBy string
}

var _ types.RosterSource = (*Postgres)(nil)

// PostgresOption configures a Postgres source.
type PostgresOption func(*Postgres)

// WithColumns restricts the query to the given columns (default: all columns).
func WithColumns(columns ...string) PostgresOption {
	return func(p *Postgres) {
		p.columns = columns
	}
}

// WithOrderBy orders rows by column so that roster order is stable across loads.
func WithOrderBy(column string) PostgresOption {
	return func(p *Postgres) {
		p.orderBy = column
	}
}

// NewPostgres creates a source over an open database handle.
//
// Parameters:
//   - db: Database handle (lib/pq driver)
//   - table: Table name, optionally schema qualified ("hostel.students")
//   - opts: Optional configuration (WithColumns, WithOrderBy)
//
// Returns:
//   - *Postgres: Initialized source
//
// Example:
//
//	db, _ := sql.Open("postgres", dsn)
//	src := source.NewPostgres(db, "hostel.students", source.WithOrderBy("student_id"))
func NewPostgres(db *sql.DB, table string, opts ...PostgresOption) *Postgres {
	p := &Postgres{db: db, table: table}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// OpenPostgres opens a lib/pq connection pool and returns a source over it.
//
// The caller owns the returned *sql.DB and must close it.
//
// Returns:
//   - *Postgres: Initialized source
//   - *sql.DB: Connection pool
//   - error: Open error
func OpenPostgres(dsn, table string, opts ...PostgresOption) (*Postgres, *sql.DB, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	db := sql.OpenDB(connector)

	return NewPostgres(db, table, opts...), db, nil
}

// Query returns the SQL statement issued by LoadTable.
func (p *Postgres) Query() string {
	cols := "*"
	if len(p.columns) > 0 {
		quoted := make([]string, len(p.columns))
		for i, c := range p.columns {
			quoted[i] = pq.QuoteIdentifier(c)
		}
		cols = strings.Join(quoted, ", ")
	}

	q := "SELECT " + cols + " FROM " + quoteQualified(p.table)
	if p.orderBy != "" {
		q += " ORDER BY " + pq.QuoteIdentifier(p.orderBy)
	}

	return q
}

// LoadTable runs the query and returns every row.
//
// Returns:
//   - types.Table: Result columns and rows
//   - error: Query or scan error
func (p *Postgres) LoadTable(ctx context.Context) (types.Table, error) {
	rows, err := p.db.QueryContext(ctx, p.Query())
	if err != nil {
		return types.Table{}, fmt.Errorf("failed to query roster table %s: %w", p.table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return types.Table{}, fmt.Errorf("failed to read roster columns: %w", err)
	}

	table := types.Table{Columns: columns}
	for rows.Next() {
		cells := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return types.Table{}, fmt.Errorf("failed to scan roster row: %w", err)
		}

		row := make([]string, len(columns))
		for i, c := range cells {
			row[i] = c.String
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return types.Table{}, fmt.Errorf("failed to iterate roster rows: %w", err)
	}

	return table, nil
}

func quoteQualified(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = pq.QuoteIdentifier(part)
	}

	return strings.Join(parts, ".")
}
