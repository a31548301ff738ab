package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrainCommand(t *testing.T) {
	out := t.TempDir()
	root := GetRootCommand()
	root.SetArgs([]string{"train", "--games", "20", "--seed", "5", "--log-level", "warn", "--out", out, "--window", "5", "--plot"})

	require.NoError(t, root.Execute())

	dirs, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	_, err = os.Stat(filepath.Join(out, dirs[0].Name(), "outcomes.png"))
	require.NoError(t, err)
}

func TestRootCommandRejectsBadLogLevel(t *testing.T) {
	root := GetRootCommand()
	root.SetArgs([]string{"train", "--games", "1", "--log-level", "loud"})

	require.Error(t, root.Execute())
}

func TestPlayCommandRejectsBadMarker(t *testing.T) {
	root := GetRootCommand()
	root.SetArgs([]string{"play", "--games", "1", "--human", "z", "--log-level", "error"})

	require.Error(t, root.Execute())
}
