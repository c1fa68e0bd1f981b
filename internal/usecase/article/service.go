package article

import (
	"fmt"
	"log/slog"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
)

// Service provides article use cases.
// It handles validation and registration and delegates storage to the repository.
// Logger and Metrics are optional.
type Service struct {
	Repo    repository.ArticleRepository
	Logger  *slog.Logger
	Metrics *metrics.CatalogMetrics
}

// Create builds an article for author and magazine and appends it to the registry.
// Returns a wrapped ValidationError if the article is invalid; nothing is
// registered in that case.
func (s *Service) Create(author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	a, err := entity.NewArticle(author, magazine, title)
	if err != nil {
		s.Metrics.RecordValidationError("article", validationField(err))
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.Repo.Add(a)
	s.Metrics.RecordArticleRegistered()
	s.logger().Debug("article registered",
		slog.String("title", a.Title()),
		slog.String("author", author.Name()),
		slog.String("magazine", magazine.Name()))
	return a, nil
}

// Retitle offers a new title to an existing article. Titles are frozen, so
// for a registered article the outcome is always Ignored.
func (s *Service) Retitle(a *entity.Article, title string) (entity.SetOutcome, error) {
	outcome, err := a.SetTitle(title)
	if err != nil {
		s.Metrics.RecordValidationError("article", "title")
		return outcome, fmt.Errorf("retitle article: %w", err)
	}
	s.Metrics.RecordAssignment("article", "title", outcome)
	if outcome == entity.Ignored {
		s.logger().Debug("article title assignment ignored",
			slog.String("title", a.Title()),
			slog.String("rejected", title))
	}
	return outcome, nil
}

// All returns every registered article in registration order.
func (s *Service) All() []*entity.Article {
	return s.Repo.List()
}

// Count returns the number of registered articles.
func (s *Service) Count() int {
	return s.Repo.Count()
}

// ByAuthor returns the articles written by author, in registration order.
func (s *Service) ByAuthor(author *entity.Author) []*entity.Article {
	return s.Repo.ListByAuthor(author)
}

// ByMagazine returns the articles published in magazine, in registration order.
func (s *Service) ByMagazine(magazine *entity.Magazine) []*entity.Article {
	return s.Repo.ListByMagazine(magazine)
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}
