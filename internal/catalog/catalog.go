// Package catalog wires registries and use cases into one self-contained
// catalog of authors, magazines and articles.
//
// Each Catalog owns its own registries, so several catalogs can live in one
// process without seeing each other's entries. A Catalog is not safe for
// concurrent use.
//
// Example usage:
//
//	c := catalog.New(catalog.WithLogger(logger))
//	carry, _ := c.Authors.Create("Carry Bradshaw")
//	vogue, _ := c.Magazines.Create("Vogue", "Fashion")
//	_, _ = c.Authors.AddArticle(carry, vogue, "How to wear a tutu with style")
//	top := c.Magazines.TopPublisher()
package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"magazine-catalog/internal/config"
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/infra/adapter/persistence/memory"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
	articleUC "magazine-catalog/internal/usecase/article"
	authorUC "magazine-catalog/internal/usecase/author"
	magazineUC "magazine-catalog/internal/usecase/magazine"
)

// Catalog bundles the article and magazine registries with the use cases that read them.
type Catalog struct {
	Articles  *articleUC.Service
	Authors   *authorUC.Service
	Magazines *magazineUC.Service
}

type options struct {
	logger       *slog.Logger
	metrics      *metrics.CatalogMetrics
	articleRepo  repository.ArticleRepository
	magazineRepo repository.MagazineRepository
}

// Option configures a Catalog.
type Option func(*options)

// WithLogger sets the logger shared by all use cases. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithLoggingConfig builds the shared logger from cfg, writing to w.
// It replaces any logger set by an earlier WithLogger.
func WithLoggingConfig(cfg config.LoggingConfig, w io.Writer) Option {
	return func(o *options) { o.logger = logging.New(cfg, w) }
}

// WithMetrics sets the metrics recorder shared by all use cases.
func WithMetrics(m *metrics.CatalogMetrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithArticleRepository replaces the default in-memory article registry.
func WithArticleRepository(repo repository.ArticleRepository) Option {
	return func(o *options) { o.articleRepo = repo }
}

// WithMagazineRepository replaces the default in-memory magazine registry.
func WithMagazineRepository(repo repository.MagazineRepository) Option {
	return func(o *options) { o.magazineRepo = repo }
}

// New creates a Catalog with empty registries unless options supply others.
func New(opts ...Option) *Catalog {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}
	if o.articleRepo == nil {
		o.articleRepo = memory.NewArticleRepo()
	}
	if o.magazineRepo == nil {
		o.magazineRepo = memory.NewMagazineRepo()
	}

	articles := &articleUC.Service{
		Repo:    o.articleRepo,
		Logger:  o.logger.With(slog.String("component", "article")),
		Metrics: o.metrics,
	}
	return &Catalog{
		Articles: articles,
		Authors: &authorUC.Service{
			ArticleService: articles,
			Logger:         o.logger.With(slog.String("component", "author")),
			Metrics:        o.metrics,
		},
		Magazines: &magazineUC.Service{
			Repo:           o.magazineRepo,
			ArticleService: articles,
			Logger:         o.logger.With(slog.String("component", "magazine")),
			Metrics:        o.metrics,
		},
	}
}

// NewFromEnv creates a Catalog whose logger is configured from LOG_LEVEL,
// LOG_FORMAT and LOG_ADD_SOURCE and writes to stderr. Later options win.
func NewFromEnv(opts ...Option) *Catalog {
	return New(append([]Option{WithLoggingConfig(config.LoadLogging(), os.Stderr)}, opts...)...)
}

// NewFromConfigFile creates a Catalog whose logger is configured from the
// logging section of the YAML file at path and writes to stderr.
func NewFromConfigFile(path string, opts ...Option) (*Catalog, error) {
	cfg, err := config.LoadLoggingFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog config: %w", err)
	}
	return New(append([]Option{WithLoggingConfig(cfg, os.Stderr)}, opts...)...), nil
}

// NewAuthor creates an author for use with this catalog.
// Returns a wrapped ValidationError if the name is empty.
func (c *Catalog) NewAuthor(name string) (*entity.Author, error) {
	return c.Authors.Create(name)
}
