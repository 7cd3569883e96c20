package cache

import (
	"os"
	"path/filepath"
	"runtime"
)

// Config holds configuration for the cache reader.
type Config struct {
	// ClientPath is the game client installation. Empty picks DefaultClientPath.
	ClientPath string `mapstructure:"client_path" default:""`
	// TypesFile is the type table, relative to ClientPath.
	TypesFile string `mapstructure:"types_file" default:"sde/fsd/typeIDs.yaml"`
	// Database, when set, reads the type table from a sqlite snapshot instead of the client.
	Database string `mapstructure:"database" default:""`
	// Output is the path of the produced name index.
	Output string `mapstructure:"output" default:"data/types.json"`
}

// Path returns the configured client path or the platform default.
func (c Config) Path() string {
	if c.ClientPath != "" {
		return c.ClientPath
	}
	return DefaultClientPath(runtime.GOOS)
}

// DefaultClientPath is where the client installs itself on goos.
func DefaultClientPath(goos string) string {
	switch goos {
	case "darwin":
		return "/Applications/EVE Online.app/Contents/Resources/EVE Online.app/Contents/Resources/transgaming/c_drive/Program Files/CCP/EVE"
	case "windows":
		return `C:\Program Files\CCP\EVE`
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			home = "~"
		}
		return filepath.Join(home, ".wine", "drive_c", "Program Files", "CCP", "EVE")
	}
}
