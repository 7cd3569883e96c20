package server

// Config holds configuration for the catalog HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the catalog routes. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// Source selects where the served file is read from: "file" or "storage".
	Source string `mapstructure:"source" default:"file"`
	// File is the dump-shaped output file served by the catalog.
	File string `mapstructure:"file" default:"data/types.json"`
}

const (
	SourceFile    = "file"
	SourceStorage = "storage"
)

// IsValidSource checks if the configured catalog source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage:
		return true
	default:
		return false
	}
}
