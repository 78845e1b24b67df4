// Package platform resolves per-user directories for treesnap data.
package platform

import (
	"os"
	"path/filepath"
)

// appDir is the directory name treesnap uses under the user config dir
const appDir = "treesnap"

// baseDir returns the per-user root for treesnap state, falling back to
// ~/.config when the OS config directory cannot be determined
func baseDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, appDir)
}

// BaselineDir returns the default directory for baseline records. It is a
// dedicated namespace: nothing else is stored there.
func BaselineDir() string {
	return filepath.Join(baseDir(), "baselines")
}

// LogDir returns the default directory for log files
func LogDir() string {
	return filepath.Join(baseDir(), "logs")
}
