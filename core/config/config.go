package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"type-extractor/core/database"
	"type-extractor/core/download"
	"type-extractor/core/logger"
	"type-extractor/core/metrics"
	"type-extractor/core/server"
	"type-extractor/core/storage"
	"type-extractor/feature/cache"
	"type-extractor/feature/types"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Download holds configuration for fetching the compressed snapshot.
	Download download.Config `mapstructure:"download"`
	// Dump holds configuration for the dump pipeline.
	Dump types.Config `mapstructure:"dump"`
	// Cache holds configuration for the cache reader.
	Cache cache.Config `mapstructure:"cache"`
	// Database holds configuration for the MySQL static data source.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Server holds configuration for the catalog HTTP server.
	Server server.Config `mapstructure:"server"`
	// Metrics holds configuration for the Pushgateway.
	Metrics metrics.Config `mapstructure:"metrics"`
}

// LoadConfig loads configuration from environment variables and the .env file in dir.
func LoadConfig(dir string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	setDefaults(v, reflect.TypeOf(Config{}), "")

	// DOWNLOAD_URL -> download.url
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values that would only fail later, mid-run.
func (c *Config) Validate() error {
	var errs []error
	if err := download.ValidateCodec(c.Download.Compression); err != nil {
		errs = append(errs, fmt.Errorf("download.compression: %w", err))
	}
	switch c.Dump.Source {
	case types.SourceDownload, types.SourceSQLite, types.SourceMySQL:
	default:
		errs = append(errs, fmt.Errorf("dump.source: unsupported source %q", c.Dump.Source))
	}
	if !c.Server.IsValidSource() {
		errs = append(errs, fmt.Errorf("server.source: unsupported source %q", c.Server.Source))
	}
	return errors.Join(errs...)
}

// setDefaults walks t and registers every `default` tag under its dotted
// mapstructure key. Keys without a default are registered empty so that
// AutomaticEnv still picks them up during Unmarshal.
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for i := range t.NumField() {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
