package source

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hostelmatch/types"
)

func TestStatic_LoadTable(t *testing.T) {
	t.Run("returns the table", func(t *testing.T) {
		table := types.Table{
			Columns: []string{"student_id", "name", "gender"},
			Rows:    [][]string{{"S1", "Ann", "Female"}, {"S2", "Bo", "Male"}},
		}
		src := NewStatic(table)

		result, err := src.LoadTable(context.Background())

		require.NoError(t, err)
		require.Equal(t, table, result)
	})

	t.Run("returns empty table when no rows", func(t *testing.T) {
		src := NewStatic(types.Table{Columns: []string{"id"}})

		result, err := src.LoadTable(context.Background())

		require.NoError(t, err)
		require.Zero(t, result.Len())
	})

	t.Run("does not modify original table", func(t *testing.T) {
		src := NewStatic(types.Table{Columns: []string{"id"}, Rows: [][]string{{"1"}}})

		result, err := src.LoadTable(context.Background())
		require.NoError(t, err)

		result.Rows[0][0] = "999"

		result2, _ := src.LoadTable(context.Background())
		require.Equal(t, "1", result2.Rows[0][0])
	})

	t.Run("from records", func(t *testing.T) {
		src := NewStaticRecords([]map[string]string{{"name": "Ann", "id": "1"}})

		result, err := src.LoadTable(context.Background())
		require.NoError(t, err)
		require.Equal(t, []string{"id", "name"}, result.Columns)
		require.Equal(t, [][]string{{"1", "Ann"}}, result.Rows)
	})
}

func TestStatic_Update(t *testing.T) {
	t.Run("replaces the table", func(t *testing.T) {
		src := NewStatic(types.Table{Columns: []string{"id"}, Rows: [][]string{{"1"}}})
		src.Update(types.Table{Columns: []string{"id"}, Rows: [][]string{{"1"}, {"2"}}})

		result, err := src.LoadTable(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, result.Len())
	})

	t.Run("concurrent reads and updates", func(t *testing.T) {
		src := NewStatic(types.Table{Columns: []string{"id"}})

		var wg sync.WaitGroup
		for i := range 10 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, err := src.LoadTable(context.Background())
				require.NoError(t, err)
			}()
			go func() {
				defer wg.Done()
				src.Update(types.Table{Columns: []string{"id"}, Rows: make([][]string, i)})
			}()
		}
		wg.Wait()
	})
}
