package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "sealion"

// AppDataDir returns the directory for user-edited files: routes and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the directory for data sealion manages itself.
//   - macOS: ~/Library/Application Support/sealion
//   - Linux: $XDG_DATA_HOME/sealion or ~/.local/share/sealion
//   - Windows: %LOCALAPPDATA%\sealion
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns ~/.sealionrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".sealionrc"), nil
}

// RoutesFilePath returns the default route definitions file.
func RoutesFilePath() string {
	return filepath.Join(AppDataDir(), "routes.yaml")
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "sealion.log")
}

// HistoryDBPath returns the SQLite database holding dispatch history.
func HistoryDBPath() string {
	return filepath.Join(AppLocalDataDir(), "history.db")
}
