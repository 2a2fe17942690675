package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/arloliu/hostelmatch/report"
	hmtest "github.com/arloliu/hostelmatch/testing"
	"github.com/arloliu/hostelmatch/types"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeRoster(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const rosterCSV = `Roll_No,Student Name,Sex,Program,Year
S1,Ann,F,CS,1
S2,Bob,M,CS,1
S3,Cat,F,CS,1
S4,Dan,M,EE,2
S5,Eve,F,EE,2
`

func TestAssignCommand(t *testing.T) {
	input := writeRoster(t, rosterCSV)

	t.Run("csv to stdout", func(t *testing.T) {
		stdout, stderr, err := execute(t, "assign", "--input", input, "--capacity", "2")
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
		require.NoError(t, err)
		require.Equal(t, report.Columns, records[0])
		require.Len(t, records, 6)
		require.Contains(t, stderr, "allocation complete")
	})

	t.Run("json output", func(t *testing.T) {
		stdout, _, err := execute(t, "assign", "-i", input, "--format", "json", "--log-level", "error")
		require.NoError(t, err)

		var out struct {
			Summary     report.Summary `json:"summary"`
			Allocation  []report.Row   `json:"allocation"`
			Unallocated []string       `json:"unallocated"`
		}
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		require.Equal(t, 5, out.Summary.TotalStudents)
		require.Equal(t, 3, out.Summary.TotalRooms)
		require.Len(t, out.Allocation, 5)
		require.Empty(t, out.Unallocated)
	})

	t.Run("xlsx file with room limit", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "rooms.xlsx")
		_, _, err := execute(t, "assign", "-i", input, "--room-limit", "1", "-o", output, "--log-format", "json")
		require.NoError(t, err)

		f, err := excelize.OpenFile(output)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		rows, err := f.GetRows(report.SummarySheet)
		require.NoError(t, err)
		require.Equal(t, []string{"total_rooms", "1"}, rows[2])
		require.Equal(t, []string{"unallocated_count", "3"}, rows[4])
	})

	t.Run("cluster strategy with metrics file", func(t *testing.T) {
		metricsFile := filepath.Join(t.TempDir(), "hostelmatch.prom")
		stdout, _, err := execute(t, "assign", "--sample", "7", "--strategy", "cluster",
			"--metrics-file", metricsFile, "--log-level", "warn")
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 8)

		data, err := os.ReadFile(metricsFile)
		require.NoError(t, err)
		require.Contains(t, string(data), `hostelmatch_allocation_runs_total{strategy="cluster"} 1`)
	})

	t.Run("config file with flag override", func(t *testing.T) {
		cfgPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("strategy: greedy\ncapacity: 5\n"), 0o600))

		stdout, _, err := execute(t, "assign", "-i", input, "-c", cfgPath, "--capacity", "3", "--format", "json")
		require.NoError(t, err)
		require.Contains(t, stdout, `"occupancy_fraction": "3/3"`)
	})

	t.Run("errors", func(t *testing.T) {
		_, _, err := execute(t, "assign")
		require.ErrorIs(t, err, errNoInput)

		_, _, err = execute(t, "assign", "-i", input, "--capacity", "0")
		require.ErrorIs(t, err, types.ErrCapacity)

		_, _, err = execute(t, "assign", "-i", input, "--strategy", "random")
		require.ErrorIs(t, err, types.ErrUnknownStrategy)

		_, _, err = execute(t, "assign", "-i", input, "--format", "pdf")
		require.Error(t, err)

		_, _, err = execute(t, "assign", "-i", writeRoster(t, "student_id,name\nS1,Ann\n"))
		require.ErrorIs(t, err, types.ErrSchema)
	})
}

func TestAssignCommand_Publish(t *testing.T) {
	ns, nc := hmtest.StartEmbeddedNATS(t)

	_, _, err := execute(t, "assign", "--sample", "6", "--capacity", "3",
		"--nats-url", ns.ClientURL(), "--bucket", "cli-test", "--key-prefix", "hostel")
	require.NoError(t, err)

	js, err := jetstream.New(nc)
	require.NoError(t, err)
	kv, err := js.KeyValue(context.Background(), "cli-test")
	require.NoError(t, err)

	keys, err := kv.Keys(context.Background())
	require.NoError(t, err)
	require.Contains(t, keys, "hostel.meta")
	require.Contains(t, keys, "hostel.room.R001")
}

func TestSampleCommand(t *testing.T) {
	t.Run("csv to stdout", func(t *testing.T) {
		stdout, _, err := execute(t, "sample", "--count", "4")
		require.NoError(t, err)

		records, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 5)
		require.Equal(t, types.FieldStudentID, records[0][0])
	})

	t.Run("xlsx round trip through assign", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "students.xlsx")
		_, _, err := execute(t, "sample", "--numeric", "-n", "9", "-o", path)
		require.NoError(t, err)

		stdout, _, err := execute(t, "assign", "-i", path, "--strategy", "cluster", "--capacity", "3", "--format", "json")
		require.NoError(t, err)
		require.Contains(t, stdout, `"total_rooms": 3`)
	})
}

func TestScoreCommand(t *testing.T) {
	input := writeRoster(t, rosterCSV)

	stdout, _, err := execute(t, "score", "-i", input, "S1", "S3")
	require.NoError(t, err)
	require.Equal(t, "S1 S3 26/26\n", stdout)

	stdout, _, err = execute(t, "score", "-i", input, "S1", "S2")
	require.NoError(t, err)
	require.Equal(t, "S1 S2 0/26\n", stdout)

	stdout, _, err = execute(t, "score", "-i", input, "S1", "S3", "S5")
	require.NoError(t, err)
	require.Contains(t, stdout, "room 18/26\n")

	_, _, err = execute(t, "score", "-i", input, "S1", "S9")
	require.Error(t, err)
}
