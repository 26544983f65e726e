package config

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
)

const (
	EnvConfigPath = "OPENFIT_CONFIG"
	appDirName    = "OpenFit"
	fileName      = "config.json"
)

// ResolveDocumentPath decides where the program data lives: the explicit
// flag value first, then OPENFIT_CONFIG, then ~/.config/OpenFit/config.json.
func ResolveDocumentPath(flagValue string) (string, error) {
	if flagValue != "" {
		return filepath.Abs(flagValue)
	}
	if v := os.Getenv(EnvConfigPath); v != "" {
		return filepath.Abs(v)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", eris.Wrap(err, "failed to find home directory")
	}
	return filepath.Join(home, ".config", appDirName, fileName), nil
}

// DefaultMusicDir is the playlist source written on first run.
func DefaultMusicDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Music"
	}
	return filepath.Join(home, "Music")
}
