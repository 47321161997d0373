package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fcfs-scheduler/internal/responses"
)

func writeBatch(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(args ...string) (string, error) {
	root := New()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

const scenario = `jobs:
  - {id: P1, arrival: 0, burst: 5}
  - {id: P2, arrival: 1, burst: 3}
  - {id: P3, arrival: 2, burst: 8}
`

func TestRunCommand(t *testing.T) {
	t.Run("prints tables and averages", func(t *testing.T) {
		out, err := execute("run", writeBatch(t, scenario))
		require.NoError(t, err)
		assert.Contains(t, out, "Average Waiting Time: 3.33")
		assert.Contains(t, out, "Average Turnaround Time: 8.67")
		assert.Contains(t, out, "P3")
	})

	t.Run("idle slots are shown", func(t *testing.T) {
		out, err := execute("run", writeBatch(t, "jobs:\n  - {id: A, arrival: 0, burst: 2}\n  - {id: B, arrival: 10, burst: 3}\n"))
		require.NoError(t, err)
		assert.Contains(t, out, "IDLE")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := execute("run", "--json", writeBatch(t, scenario))
		require.NoError(t, err)

		var response responses.ScheduleResponse
		require.NoError(t, json.Unmarshal([]byte(out), &response))
		assert.Equal(t, 16, response.TotalTime)
		assert.Len(t, response.Details, 3)
	})

	t.Run("empty batch fails", func(t *testing.T) {
		_, err := execute("run", writeBatch(t, "jobs: []\n"))
		assert.EqualError(t, err, "no jobs to schedule")
	})

	t.Run("requires a file", func(t *testing.T) {
		_, err := execute("run")
		assert.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute("version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}
