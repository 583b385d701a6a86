package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, level Level) (*Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "logs", "sealion.log")
	logger, err := New(logPath, level)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	t.Cleanup(func() { _ = logger.Close() })
	return logger, logPath
}

func readLog(t *testing.T, logPath string) string {
	t.Helper()
	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelWarn)

	logger.Debug("router: resolving %q", "greet")
	logger.Info("router: %d routes", 2)
	logger.Warn("router: route %d rejected", 1)
	logger.Error("router: %v", "boom")
	_ = logger.Close()

	content := readLog(t, logPath)
	if strings.Contains(content, "DEBUG") || strings.Contains(content, "INFO") {
		t.Errorf("debug and info should have been filtered:\n%s", content)
	}
	if !strings.Contains(content, "WARN: router: route 1 rejected") {
		t.Error("warning message not found in log")
	}
	if !strings.Contains(content, "ERROR: router: boom") {
		t.Error("error message not found in log")
	}
}

func TestLogger_Permissions(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)
	logger.Info("hello")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("log file permissions = %o, want 600", info.Mode().Perm())
	}

	dirInfo, err := os.Stat(filepath.Dir(logPath))
	if err != nil {
		t.Fatalf("Failed to stat log directory: %v", err)
	}
	if dirInfo.Mode() != os.FileMode(0700)|os.ModeDir {
		t.Errorf("log directory permissions = %o, want 700", dirInfo.Mode().Perm())
	}
}

func TestLogger_FixesLoosePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "loose.log")
	if err := os.WriteFile(logPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	_ = logger.Close()

	info, _ := os.Stat(logPath)
	if info.Mode().Perm() != 0600 {
		t.Errorf("permissions = %o, want 600", info.Mode().Perm())
	}
}

func TestLogger_AppendsAcrossInstances(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)
	logger.Info("first")
	_ = logger.Close()

	second, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to reopen logger: %v", err)
	}
	second.Info("second")
	_ = second.Close()

	content := readLog(t, logPath)
	if !strings.Contains(content, "first") || !strings.Contains(content, "second") {
		t.Errorf("expected both messages, got:\n%s", content)
	}
}

func TestLogger_SetEnabled(t *testing.T) {
	logger, logPath := newTestLogger(t, LevelInfo)

	logger.Info("kept")
	logger.SetEnabled(false)
	logger.Info("dropped")
	logger.SetEnabled(true)
	logger.Info("kept again")
	_ = logger.Close()

	content := readLog(t, logPath)
	if strings.Contains(content, "dropped") {
		t.Error("message logged while disabled")
	}
	if !strings.Contains(content, "kept again") {
		t.Error("message missing after re-enabling")
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	logger.SetEnabled(true)
	logger.Debug("x")
	logger.Error("x")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger = %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"Error", LevelError},
		{"verbose", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	if got := Level(99).String(); got != "UNKNOWN" {
		t.Errorf("Level(99).String() = %q", got)
	}
	if got := LevelWarn.String(); got != "WARN" {
		t.Errorf("LevelWarn.String() = %q", got)
	}
}

func TestSetDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	SetDefault(nil)
	if GetLogger() != nil {
		t.Error("GetLogger() after SetDefault(nil) should be nil")
	}
	Debug("ignored")

	logger, logPath := newTestLogger(t, LevelInfo)
	SetDefault(logger)
	if GetLogger() != logger {
		t.Error("GetLogger() should return the installed logger")
	}
	Info("through package helper")
	Debug("below level")
	_ = logger.Close()

	content := readLog(t, logPath)
	if !strings.Contains(content, "INFO: through package helper") {
		t.Error("package-level message not found")
	}
	if strings.Contains(content, "below level") {
		t.Error("package-level helper ignored the level")
	}
}
