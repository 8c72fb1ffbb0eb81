// Package dirs provides XDG Base Directory Specification compliant paths
// for the petshelter configuration directory.
package dirs

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the petshelter configuration directory.
// Resolution order: XDG_CONFIG_HOME/petshelter > ~/.config/petshelter.
// The directory is only ever read; nothing creates it.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "petshelter")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "petshelter")
	}
	return filepath.Join(home, ".config", "petshelter")
}
