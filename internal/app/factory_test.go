package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/sealion/internal/domain"
	"github.com/footprint-tools/sealion/internal/log"
)

func TestDefaultOptions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	opts := DefaultOptions()

	require.True(t, opts.StyleEnabled)
	require.True(t, opts.LogEnabled)
	require.True(t, opts.HistoryEnabled)
	require.Equal(t, log.LevelWarn, opts.LogLevel)
	require.NotEmpty(t, opts.HistoryPath)
}

func TestIsTrue(t *testing.T) {
	for _, v := range []string{"true", "TRUE", " 1 ", "yes", "on"} {
		require.True(t, isTrue(v), v)
	}
	for _, v := range []string{"", "false", "0", "nope"} {
		require.False(t, isTrue(v), v)
	}
}

func TestNewForTesting(t *testing.T) {
	app := NewForTesting()

	require.NotNil(t, app.Config)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Output)
	require.NotNil(t, app.Styler)
	require.Nil(t, app.History)
}

func TestClose_NilComponents(t *testing.T) {
	app := NewForTesting()
	app.Logger = nil

	require.NoError(t, Close(app))
}

func TestNew_WithOptions(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	app, err := New(Options{
		PagerDisabled:  true,
		LogEnabled:     true,
		LogLevel:       log.LevelDebug,
		LogPath:        filepath.Join(dir, "logs", "sealion.log"),
		HistoryEnabled: true,
		HistoryPath:    filepath.Join(dir, "data", "history.db"),
	})
	require.NoError(t, err)
	defer func() { _ = Close(app) }()

	require.IsType(t, &log.Logger{}, app.Logger)
	require.NotNil(t, app.History)

	_, err = app.History.Record(domain.HistoryEntry{Line: "help", Command: "help", Matched: true})
	require.NoError(t, err)

	entries, err := app.History.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestNew_InstallsPackageLogger(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sealionrc"), []byte("theme mono\n"), 0600))

	logPath := filepath.Join(dir, "logs", "sealion.log")
	app, err := New(Options{
		PagerDisabled: true,
		LogEnabled:    true,
		LogLevel:      log.LevelWarn,
		LogPath:       logPath,
	})
	require.NoError(t, err)
	require.Same(t, app.Logger, log.GetLogger())

	// the malformed file is reported and defaults are used
	theme, ok := app.Config.Get("theme")
	require.True(t, ok)
	require.Equal(t, "default", theme)

	require.NoError(t, Close(app))
	require.Nil(t, log.GetLogger())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "WARN: config: line 1: missing '='; using defaults")
}

func TestNew_HistoryFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	app, err := New(Options{
		HistoryEnabled: true,
		HistoryPath:    filepath.Join(blocker, "history.db"),
	})
	require.NoError(t, err)
	require.Nil(t, app.History)
	require.IsType(t, log.NopLogger{}, app.Logger)
}
