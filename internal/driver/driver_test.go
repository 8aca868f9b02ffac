package driver_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/driver"
	"github.com/tessera-labs/wfc/internal/grid"
)

type fakeProblem struct {
	name         string
	succeedAfter int
	attempts     int
	fatalErr     error
}

func (f *fakeProblem) Name() string { return f.name }

func (f *fakeProblem) Attempt(seed int64) (*grid.Grid2D[uint32], bool, error) {
	f.attempts++
	if f.fatalErr != nil {
		return nil, false, f.fatalErr
	}
	if f.attempts >= f.succeedAfter {
		return grid.NewGrid2D[uint32](2, 2), true, nil
	}
	return nil, false, nil
}

func TestRunSucceedsOnRetry(t *testing.T) {
	d, err := driver.New(t.TempDir(), 1, true)
	require.NoError(t, err)

	p := &fakeProblem{name: "rooms", succeedAfter: 3}
	stats := d.Run([]driver.Problem{p})

	require.Len(t, stats, 1)
	require.True(t, stats[0].Success)
	require.Equal(t, 3, stats[0].Attempts)
}

func TestRunExhaustsAfterMaxAttempts(t *testing.T) {
	d, err := driver.New(t.TempDir(), 1, true)
	require.NoError(t, err)

	p := &fakeProblem{name: "never", succeedAfter: driver.MaxAttempts + 1}
	stats := d.Run([]driver.Problem{p})

	require.False(t, stats[0].Success)
	require.Equal(t, driver.MaxAttempts, stats[0].Attempts)
}

func TestRunStopsImmediatelyOnFatalError(t *testing.T) {
	d, err := driver.New(t.TempDir(), 1, true)
	require.NoError(t, err)

	p := &fakeProblem{name: "broken", fatalErr: os.ErrInvalid}
	stats := d.Run([]driver.Problem{p})

	require.False(t, stats[0].Success)
	require.Equal(t, 1, stats[0].Attempts)
	require.Equal(t, 1, p.attempts, "a fatal error must not be retried")
}

func TestWriteStatsProducesValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	stats := []driver.Stat{{Name: "rooms", Success: true, Attempts: 2, Seed: 42}}
	require.NoError(t, driver.WriteStats(path, stats))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var back []driver.Stat
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, stats, back)
}
