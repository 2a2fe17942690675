package source

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/arloliu/hostelmatch/types"
)

// XLSX implements a roster source backed by an Excel workbook.
//
// The first row of the sheet is the header; fully blank rows are skipped.
type XLSX struct {
	open  func() (*excelize.File, error)
	sheet string
}

var _ types.RosterSource = (*XLSX)(nil)

// XLSXOption configures an XLSX source.
type XLSXOption func(*XLSX)

// WithSheet selects the sheet to read (default: the first sheet).
func WithSheet(name string) XLSXOption {
	return func(x *XLSX) {
		x.sheet = name
	}
}

// NewXLSXFile creates a source reading the workbook at path on every load.
func NewXLSXFile(path string, opts ...XLSXOption) *XLSX {
	return newXLSX(func() (*excelize.File, error) {
		return excelize.OpenFile(path)
	}, opts)
}

// NewXLSXBytes creates a source over an in-memory workbook.
func NewXLSXBytes(data []byte, opts ...XLSXOption) *XLSX {
	return newXLSX(func() (*excelize.File, error) {
		return excelize.OpenReader(bytes.NewReader(data))
	}, opts)
}

func newXLSX(open func() (*excelize.File, error), opts []XLSXOption) *XLSX {
	x := &XLSX{open: open}
	for _, opt := range opts {
		opt(x)
	}

	return x
}

// LoadTable reads the configured sheet.
//
// Returns:
//   - types.Table: Header and data rows (empty table for an empty sheet)
//   - error: Open error, missing sheet or read error
func (x *XLSX) LoadTable(ctx context.Context) (types.Table, error) {
	if err := ctx.Err(); err != nil {
		return types.Table{}, err
	}

	f, err := x.open()
	if err != nil {
		return types.Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := x.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return types.Table{}, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return types.Table{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return types.Table{}, nil
	}

	table := types.Table{Columns: cleanHeader(rows[0])}
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
