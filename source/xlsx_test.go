package source

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, sheet string, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)

	return buf.Bytes()
}

func TestXLSX_LoadTable(t *testing.T) {
	t.Run("first sheet", func(t *testing.T) {
		data := workbook(t, "Sheet1", [][]any{
			{"Student ID", "Name", "Gender", "Year"},
			{"S1", "Ann", "Female", 2},
			{},
			{"S2", "Bo", "Male", 3},
		})

		table, err := NewXLSXBytes(data).LoadTable(context.Background())

		require.NoError(t, err)
		require.Equal(t, []string{"Student ID", "Name", "Gender", "Year"}, table.Columns)
		require.Equal(t, [][]string{{"S1", "Ann", "Female", "2"}, {"S2", "Bo", "Male", "3"}}, table.Rows)
	})

	t.Run("named sheet", func(t *testing.T) {
		data := workbook(t, "Roster", [][]any{{"id"}, {"7"}})

		table, err := NewXLSXBytes(data, WithSheet("Roster")).LoadTable(context.Background())

		require.NoError(t, err)
		require.Equal(t, [][]string{{"7"}}, table.Rows)
	})

	t.Run("missing sheet", func(t *testing.T) {
		data := workbook(t, "Sheet1", [][]any{{"id"}})

		_, err := NewXLSXBytes(data, WithSheet("Nope")).LoadTable(context.Background())
		require.Error(t, err)
	})

	t.Run("not a workbook", func(t *testing.T) {
		_, err := NewXLSXBytes([]byte("plain text")).LoadTable(context.Background())
		require.Error(t, err)
	})

	t.Run("file", func(t *testing.T) {
		f := excelize.NewFile()
		require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"student_id", "name", "gender"}))
		require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"S1", "Ann", "Female"}))
		path := filepath.Join(t.TempDir(), "roster.xlsx")
		require.NoError(t, f.SaveAs(path))
		require.NoError(t, f.Close())

		table, err := NewXLSXFile(path).LoadTable(context.Background())

		require.NoError(t, err)
		require.Equal(t, 1, table.Len())
	})
}
