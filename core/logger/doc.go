// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
//
// # Correlation
//
// Two helpers attach correlation fields to a logger:
//   - WithRayID extracts the per-request RayID from a Fiber context, so all
//     logs of one HTTP request can be grouped.
//   - WithOperation attaches a sync operation id, so all logs of one
//     background synchronization run can be grouped even though the run
//     outlives the request that started it.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
