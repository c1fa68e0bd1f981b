// Package metrics provides Prometheus instrumentation for catalog activity.
//
// Metrics are registered on a caller-supplied prometheus.Registerer so that
// independent catalogs in one process can keep separate registries.
//
// Metrics:
//   - catalog_articles_registered_total: articles appended to a registry
//   - catalog_magazines_registered_total: magazines appended to a registry
//   - catalog_validation_errors_total{entity,field}: rejected first assignments
//   - catalog_assignments_ignored_total{entity,field}: assignments silently ignored
package metrics
