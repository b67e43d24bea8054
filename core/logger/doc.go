// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and a per-run correlation field for batch runs.
//
// # Run Correlation
//
// An import run is a batch operation with no request context to hang IDs on.
// NewRunID generates a UUID once per invocation and WithRunID attaches it to
// the log entry, ensuring that all logs belonging to one run can be
// correlated after the fact (including across repeated runs on a schedule).
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, logger.NewRunID())
//	log.Info("Import started")
package logger
