// Package observability groups the catalog's logging and metrics support.
//
// Subpackages:
//   - logging: slog logger construction from config.LoggingConfig
//   - metrics: Prometheus counters registered on an injected registerer
//
// Example usage:
//
//	import (
//	    "magazine-catalog/internal/observability/logging"
//	    "magazine-catalog/internal/observability/metrics"
//	)
//
//	func newCatalog(reg prometheus.Registerer) *catalog.Catalog {
//	    logger := logging.New(config.LoadLogging(), os.Stderr)
//	    return catalog.New(
//	        catalog.WithLogger(logger),
//	        catalog.WithMetrics(metrics.NewCatalogMetrics(reg)),
//	    )
//	}
package observability
