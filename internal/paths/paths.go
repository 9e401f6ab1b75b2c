package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "gtdialog"

// AppDataDir returns the application data directory.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
//
// The directory is not created here; writers create it when they need it.
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// ConfigFilePath returns the path of the user's ~/.gtdialogrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".gtdialogrc"), nil
}

// LogFilePath returns the path to the application log file:
//   - macOS: ~/Library/Application Support/gtdialog/gtdialog.log
//   - Linux: $XDG_CONFIG_HOME/gtdialog/gtdialog.log or ~/.config/gtdialog/gtdialog.log
//   - Windows: %AppData%\gtdialog\gtdialog.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "gtdialog.log")
}
