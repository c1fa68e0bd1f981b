// Package logging builds structured loggers for the catalog.
//
// This package wraps the standard library's log/slog package so that every
// component receives a logger configured the same way.
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/config"
//	    "magazine-catalog/internal/observability/logging"
//	)
//
//	func main() {
//	    logger := logging.New(config.LoadLogging(), os.Stdout)
//	    logger.Info("catalog ready", slog.Int("magazines", 3))
//	}
package logging
