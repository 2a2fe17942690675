package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/arloliu/hostelmatch/types"
)

// Sheet names used by WriteXLSX.
const (
	AllocationSheet = "Allocation"
	SummarySheet    = "Summary"
)

// WriteCSV writes the flat export of result, header first.
//
// Parameters:
//   - w: Destination
//   - result: Allocation to export
//
// Returns:
//   - error: Write error
func WriteCSV(w io.Writer, result *types.AllocationResult) error {
	return WriteTableCSV(w, Table(result))
}

// WriteTableCSV writes t as CSV, header first.
func WriteTableCSV(w io.Writer, t types.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteXLSX writes a workbook with the flat export on the Allocation sheet and
// the summary on the Summary sheet.
//
// Parameters:
//   - w: Destination
//   - result: Allocation to export
//
// Returns:
//   - error: Workbook or write error
func WriteXLSX(w io.Writer, result *types.AllocationResult) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), AllocationSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeTableSheet(f, AllocationSheet, Table(result), headerStyle); err != nil {
		return err
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	summary := Summarize(result)
	lines := [][]any{
		{"metric", "value"},
		{"total_students", summary.TotalStudents},
		{"total_rooms", summary.TotalRooms},
		{"average_occupancy", summary.RoundedOccupancy()},
		{"unallocated_count", summary.UnallocatedCount},
	}
	for _, g := range summary.Genders() {
		lines = append(lines, []any{"rooms_" + g, summary.RoomsByGender[g]})
	}
	for i, line := range lines {
		if err := writeSheetRow(f, SummarySheet, i+1, line); err != nil {
			return err
		}
	}
	if err := f.SetRowStyle(SummarySheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

// WriteTableXLSX writes t to a single-sheet workbook with a frozen header row.
//
// Parameters:
//   - w: Destination
//   - t: Table to export
//   - sheet: Sheet name
//
// Returns:
//   - error: Workbook or write error
func WriteTableXLSX(w io.Writer, t types.Table, sheet string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeTableSheet(f, sheet, t, headerStyle); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func writeTableSheet(f *excelize.File, sheet string, t types.Table, headerStyle int) error {
	if err := writeSheetRow(f, sheet, 1, toAny(t.Columns)); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	for i, row := range t.Rows {
		if err := writeSheetRow(f, sheet, i+2, toAny(row)); err != nil {
			return err
		}
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}

	return nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}

	return nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}

	return out
}
