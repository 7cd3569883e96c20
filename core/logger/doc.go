// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both command-line runs and the
// optional catalog HTTP server.
//
// # Correlation
//
// Every extraction run is tagged with a run_id (WithRunID) so the lines of one
// run can be grouped in aggregated logs. Requests served by the catalog API
// carry the ray_id assigned by the rayid middleware (WithRayID).
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log, runID := logger.WithRunID(log)
//	log.Info("Extraction started", zap.String("run", runID))
package logger
