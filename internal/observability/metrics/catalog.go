package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"magazine-catalog/internal/domain/entity"
)

// CatalogMetrics groups the counters recorded by the catalog use cases.
// A nil *CatalogMetrics records nothing.
type CatalogMetrics struct {
	// ArticlesRegistered counts articles appended to the article registry.
	// Type: Counter
	ArticlesRegistered prometheus.Counter

	// MagazinesRegistered counts magazines appended to the magazine registry.
	// Type: Counter
	MagazinesRegistered prometheus.Counter

	// ValidationErrors counts assignments rejected with a ValidationError.
	// Type: Counter
	// Labels: entity (author, magazine, article), field
	ValidationErrors *prometheus.CounterVec

	// AssignmentsIgnored counts assignments that left the prior value in place.
	// Type: Counter
	// Labels: entity (author, magazine, article), field
	AssignmentsIgnored *prometheus.CounterVec
}

// NewCatalogMetrics creates the catalog counters and registers them on reg.
// A nil reg creates unregistered counters.
//
// Panics if the metrics are already registered on reg.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	factory := promauto.With(reg)
	return &CatalogMetrics{
		ArticlesRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "catalog_articles_registered_total",
			Help: "Total number of articles registered",
		}),
		MagazinesRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "catalog_magazines_registered_total",
			Help: "Total number of magazines registered",
		}),
		ValidationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_validation_errors_total",
			Help: "Total number of assignments rejected by validation",
		}, []string{"entity", "field"}),
		AssignmentsIgnored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_assignments_ignored_total",
			Help: "Total number of assignments ignored because the field was already set",
		}, []string{"entity", "field"}),
	}
}

// RecordArticleRegistered records one article appended to the registry.
func (m *CatalogMetrics) RecordArticleRegistered() {
	if m == nil {
		return
	}
	m.ArticlesRegistered.Inc()
}

// RecordMagazineRegistered records one magazine appended to the registry.
func (m *CatalogMetrics) RecordMagazineRegistered() {
	if m == nil {
		return
	}
	m.MagazinesRegistered.Inc()
}

// RecordValidationError records a rejected assignment on kind.field.
func (m *CatalogMetrics) RecordValidationError(kind, field string) {
	if m == nil {
		return
	}
	m.ValidationErrors.WithLabelValues(kind, field).Inc()
}

// RecordAssignment records the outcome of an assignment on kind.field.
// Only ignored assignments are counted.
func (m *CatalogMetrics) RecordAssignment(kind, field string, outcome entity.SetOutcome) {
	if m == nil || outcome != entity.Ignored {
		return
	}
	m.AssignmentsIgnored.WithLabelValues(kind, field).Inc()
}
