package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir(t *testing.T) {
	dir := AppDataDir()
	require.NotEqual(t, ".", dir)
	require.True(t, filepath.IsAbs(dir), "AppDataDir should be absolute: %s", dir)
	require.Equal(t, "sealion", filepath.Base(dir))
}

func TestAppLocalDataDir_WithXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Test only runs on Linux")
	}

	custom := filepath.Join(t.TempDir(), "data")
	t.Setenv("XDG_DATA_HOME", custom)

	require.Equal(t, filepath.Join(custom, "sealion"), AppLocalDataDir())
}

func TestAppLocalDataDir_WithoutXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Test only runs on Linux")
	}

	t.Setenv("XDG_DATA_HOME", "")
	require.Contains(t, AppLocalDataDir(), filepath.Join(".local", "share"))
}

func TestConfigFilePath(t *testing.T) {
	path, err := ConfigFilePath()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".sealionrc"), path)
}

func TestFilePaths(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		parent string
		base   string
	}{
		{name: "routes", path: RoutesFilePath(), parent: AppDataDir(), base: "routes.yaml"},
		{name: "log", path: LogFilePath(), parent: AppDataDir(), base: "sealion.log"},
		{name: "history", path: HistoryDBPath(), parent: AppLocalDataDir(), base: "history.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.parent, filepath.Dir(tt.path))
			require.Equal(t, tt.base, filepath.Base(tt.path))
			require.False(t, strings.Contains(tt.path, ".."), "path should not contain '..': %s", tt.path)
		})
	}
}
