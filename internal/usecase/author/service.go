// Package author provides use cases for authors: creating them and deriving
// their articles, magazines and topic areas from the article registry.
package author

import (
	"fmt"
	"log/slog"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	articleUC "magazine-catalog/internal/usecase/article"
	"magazine-catalog/internal/utils/collection"
)

// Service provides author use cases on top of the article use cases.
// Authors are not registered anywhere; callers hold the references.
type Service struct {
	ArticleService *articleUC.Service
	Logger         *slog.Logger
	Metrics        *metrics.CatalogMetrics
}

// Create builds a new author.
// Returns a wrapped ValidationError if the name is empty.
func (s *Service) Create(name string) (*entity.Author, error) {
	a, err := entity.NewAuthor(name)
	if err != nil {
		s.Metrics.RecordValidationError("author", "name")
		return nil, fmt.Errorf("create author: %w", err)
	}
	return a, nil
}

// Rename offers a new name to an existing author. Names are frozen, so for a
// constructed author the outcome is always Ignored.
func (s *Service) Rename(a *entity.Author, name string) (entity.SetOutcome, error) {
	outcome, err := a.SetName(name)
	if err != nil {
		s.Metrics.RecordValidationError("author", "name")
		return outcome, fmt.Errorf("rename author: %w", err)
	}
	s.Metrics.RecordAssignment("author", "name", outcome)
	if outcome == entity.Ignored {
		s.logger().Debug("author name assignment ignored",
			slog.String("author", a.Name()),
			slog.String("rejected", name))
	}
	return outcome, nil
}

// Articles returns every registered article written by a, in registration order.
// The result is empty, not nil, when there are none.
func (s *Service) Articles(a *entity.Author) []*entity.Article {
	return s.ArticleService.ByAuthor(a)
}

// Magazines returns the distinct magazines a has written for, in order of first article.
func (s *Service) Magazines(a *entity.Author) []*entity.Magazine {
	return collection.DistinctBy(s.ArticleService.ByAuthor(a), (*entity.Article).Magazine)
}

// AddArticle creates and registers a new article by a in magazine.
func (s *Service) AddArticle(a *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	article, err := s.ArticleService.Create(a, magazine, title)
	if err != nil {
		return nil, fmt.Errorf("add article: %w", err)
	}
	return article, nil
}

// TopicAreas returns the distinct categories of the magazines a has written
// for, in order of first occurrence. Returns nil when a has no magazines.
func (s *Service) TopicAreas(a *entity.Author) []string {
	return collection.NilIfEmpty(collection.DistinctBy(s.Magazines(a), (*entity.Magazine).Category))
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}
