package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/proppwilson/internal/config"
	"github.com/katalvlaran/proppwilson/stats"
	"github.com/katalvlaran/proppwilson/sweep"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(append(args, "--env-file", ""))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSweepCommand(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "run.yaml")
	out, logs, err := execute(t, "sweep", "-n", "3", "--samples", "4", "--steps", "1",
		"--workers", "2", "--seed", "5", "--manifest", manifest)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		r, err := stats.ParseRecord(line)
		require.NoError(t, err, line)
		assert.LessOrEqual(t, r.Magnetization, 9)
		assert.GreaterOrEqual(t, r.Magnetization, -9)
	}
	assert.Contains(t, logs, "sweep finished")
	assert.Contains(t, logs, "run_id=")

	m, err := config.ReadManifest(manifest)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Config.Side)
	assert.Equal(t, uint64(5), m.Config.Seed)
	require.NotNil(t, m.Result)
	assert.Equal(t, len(lines), m.Result.Successes)
}

func TestSweepCommand_Deterministic(t *testing.T) {
	args := []string{"sweep", "-n", "4", "--samples", "3", "--steps", "1", "--seed", "11"}
	a, _, err := execute(t, args...)
	require.NoError(t, err)
	b, _, err := execute(t, append(args, "--workers", "3")...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSweepCommand_RequiresSide(t *testing.T) {
	_, _, err := execute(t, "sweep")
	assert.ErrorIs(t, err, sweep.ErrBadConfig)
}

func TestSnapshotCommand(t *testing.T) {
	out, logs, err := execute(t, "snapshot", "-n", "4", "--dt", "5", "--seed", "3", "--up", "#", "--down", ".")
	require.NoError(t, err)

	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Len(t, row, 4)
		assert.Empty(t, strings.Trim(row, "#."))
	}
	assert.Contains(t, logs, "t=")
	assert.Contains(t, logs, "loop_count=")
}

func TestSnapshotCommand_Exhausted(t *testing.T) {
	_, logs, err := execute(t, "snapshot", "-n", "32", "--dt", "-1.5", "--limit", "1")
	assert.ErrorIs(t, err, errNoCoalescence)
	assert.Contains(t, logs, "NG")
}

func TestStatsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2.txt")
	data := "3 0.5 1 4 -8\n3 0.5 2 -2 0\n2 -0.5 0 4 -8\n2 -0.5 1 4 -8\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	out, _, err := execute(t, "stats", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "3 0.5 2 0.75 "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2 -0.5 2 1 0 "), lines[1])

	withSide, _, err := execute(t, "stats", "-n", "2", path)
	require.NoError(t, err)
	assert.Equal(t, out, withSide)
}

func TestStatsCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "4.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 2 3\n"), 0o644))
	_, _, err := execute(t, "stats", bad)
	assert.ErrorIs(t, err, stats.ErrMalformedRecord)

	unnamed := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(unnamed, []byte("1 0 0 0 0\n"), 0o644))
	_, _, err = execute(t, "stats", unnamed)
	assert.ErrorIs(t, err, stats.ErrBadSites)
}
