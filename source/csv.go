package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arloliu/hostelmatch/types"
)

// CSV implements a roster source backed by delimited text.
//
// The first record is the header. Records may be shorter or longer than the
// header; missing cells read as empty. Rows whose cells are all blank are skipped.
type CSV struct {
	open  func() (io.ReadCloser, error)
	comma rune
}

var _ types.RosterSource = (*CSV)(nil)

// CSVOption configures a CSV source.
type CSVOption func(*CSV)

// WithComma sets the field delimiter (default: ',').
func WithComma(r rune) CSVOption {
	return func(c *CSV) {
		c.comma = r
	}
}

// NewCSVFile creates a CSV source reading path on every load.
//
// Parameters:
//   - path: File path
//   - opts: Optional configuration (WithComma)
//
// Returns:
//   - *CSV: Initialized source
func NewCSVFile(path string, opts ...CSVOption) *CSV {
	return newCSV(func() (io.ReadCloser, error) {
		return os.Open(path)
	}, opts)
}

// NewCSVBytes creates a CSV source over in-memory content, e.g. an upload.
func NewCSVBytes(data []byte, opts ...CSVOption) *CSV {
	return newCSV(func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(data)), nil
	}, opts)
}

func newCSV(open func() (io.ReadCloser, error), opts []CSVOption) *CSV {
	c := &CSV{open: open, comma: ','}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// LoadTable reads and parses the CSV content.
//
// Returns:
//   - types.Table: Header and data rows (empty table for empty input)
//   - error: Open or parse error
func (c *CSV) LoadTable(ctx context.Context) (types.Table, error) {
	if err := ctx.Err(); err != nil {
		return types.Table{}, err
	}

	rc, err := c.open()
	if err != nil {
		return types.Table{}, fmt.Errorf("failed to open csv: %w", err)
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	r.Comma = c.comma
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return types.Table{}, nil
	}
	if err != nil {
		return types.Table{}, fmt.Errorf("failed to read csv header: %w", err)
	}

	table := types.Table{Columns: cleanHeader(header)}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.Table{}, fmt.Errorf("failed to read csv: %w", err)
		}
		if blank(record) {
			continue
		}
		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// cleanHeader drops a UTF-8 byte order mark and surrounding spaces.
func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		out[i] = strings.TrimSpace(h)
	}

	return out
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
