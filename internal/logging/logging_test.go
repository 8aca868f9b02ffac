package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tessera-labs/wfc/internal/logging"
)

func TestSetLogFileMirrorsOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	closer, err := logging.SetLogFile(path)
	require.NoError(t, err)
	defer closer.Close()

	logging.Info("solved problem %s", "checkerboard")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "checkerboard")

	require.NoError(t, closer.Close())
	_, err = logging.SetLogFile("")
	require.NoError(t, err)
}

func TestVerboseToggleDoesNotPanic(t *testing.T) {
	logging.SetVerbose(false)
	// No assertion beyond "doesn't panic" — zerolog writes are
	// side-effecting and this package's job is just gating, which the
	// console-writer path can't observe without capturing stdout.
	logging.Verbose("hidden %d", 1)
	logging.SetVerbose(true)
	logging.Verbose("shown %d", 1)
	logging.SetVerbose(false)
}
