package config

import (
	"os"
	"path/filepath"
)

// DefaultSessionFilePath returns where the file session store keeps the
// operator's session. GED_SESSION_FILE wins, then $XDG_CONFIG_HOME, then
// ~/.config/ged-apae/session.json.
func DefaultSessionFilePath() string {
	if envPath := os.Getenv("GED_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "ged-apae-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "ged-apae", "session.json")
}
