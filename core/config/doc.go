// Package config provides configuration management for the type extractor.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Log: Logging level and format
//   - Download: snapshot URL, chunk size and compression
//   - Dump: source, output path and component allow-list
//   - Cache: client path, type table and output path
//   - Database: MySQL connection details for the static data import
//   - Storage: S3/MinIO credentials, bucket and object name
//   - Server: catalog port, API key and served file
//   - Metrics: Pushgateway address
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Dump.Output)
package config
