// Package magazine provides use cases for magazines: registering them,
// updating their validated fields, and deriving contributors, titles and the
// registry-wide top publisher from the article registry.
package magazine

import (
	"errors"
	"fmt"
	"log/slog"

	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/observability/logging"
	"magazine-catalog/internal/observability/metrics"
	"magazine-catalog/internal/repository"
	articleUC "magazine-catalog/internal/usecase/article"
	"magazine-catalog/internal/utils/collection"
)

// contributingThreshold is the article count a contributor must exceed to be
// a contributing author.
const contributingThreshold = 2

// Service provides magazine use cases.
// Repo is the magazine registry; article lookups go through ArticleService.
type Service struct {
	Repo           repository.MagazineRepository
	ArticleService *articleUC.Service
	Logger         *slog.Logger
	Metrics        *metrics.CatalogMetrics
}

// Create builds a magazine and appends it to the registry.
// Returns a wrapped ValidationError if name or category is invalid; nothing
// is registered in that case.
func (s *Service) Create(name, category string) (*entity.Magazine, error) {
	m, err := entity.NewMagazine(name, category)
	if err != nil {
		var validationErr *entity.ValidationError
		if errors.As(err, &validationErr) {
			s.Metrics.RecordValidationError("magazine", validationErr.Field)
		}
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	s.Repo.Add(m)
	s.Metrics.RecordMagazineRegistered()
	s.logger().Debug("magazine registered",
		slog.String("magazine", m.Name()),
		slog.String("category", m.Category()))
	return m, nil
}

// Rename assigns a new name to m. A valid name replaces the current one;
// an invalid name is Ignored once m has a name.
func (s *Service) Rename(m *entity.Magazine, name string) (entity.SetOutcome, error) {
	outcome, err := m.SetName(name)
	return s.recordAssignment(m, "name", name, outcome, err)
}

// Recategorize assigns a new category to m. A non-empty category replaces the
// current one; an empty category is Ignored once m has a category.
func (s *Service) Recategorize(m *entity.Magazine, category string) (entity.SetOutcome, error) {
	outcome, err := m.SetCategory(category)
	return s.recordAssignment(m, "category", category, outcome, err)
}

// List returns every registered magazine in registration order.
func (s *Service) List() []*entity.Magazine {
	return s.Repo.List()
}

// Articles returns every registered article published in m, in registration order.
func (s *Service) Articles(m *entity.Magazine) []*entity.Article {
	return s.ArticleService.ByMagazine(m)
}

// Contributors returns the distinct authors who have written for m, in order of first article.
func (s *Service) Contributors(m *entity.Magazine) []*entity.Author {
	return collection.DistinctBy(s.Articles(m), (*entity.Article).Author)
}

// ArticleTitles returns the titles of m's articles in registration order,
// or nil when m has no articles.
func (s *Service) ArticleTitles(m *entity.Magazine) []string {
	articles := s.Articles(m)
	if len(articles) == 0 {
		return nil
	}
	titles := make([]string, 0, len(articles))
	for _, a := range articles {
		titles = append(titles, a.Title())
	}
	return titles
}

// ContributingAuthors returns the contributors with more than two articles in
// m, in order of first article. Returns nil when there are no contributors or
// none pass the threshold.
func (s *Service) ContributingAuthors(m *entity.Magazine) []*entity.Author {
	articles := s.Articles(m)
	counts := make(map[*entity.Author]int)
	for _, a := range articles {
		counts[a.Author()]++
	}

	var out []*entity.Author
	for _, author := range collection.DistinctBy(articles, (*entity.Article).Author) {
		if counts[author] > contributingThreshold {
			out = append(out, author)
		}
	}
	return out
}

// TopPublisher returns the registered magazine with the most articles across
// the whole catalog. Ties go to the earliest-registered magazine.
// Returns nil when no articles exist, no magazines are registered, or no
// registered magazine has any article.
func (s *Service) TopPublisher() *entity.Magazine {
	articles := s.ArticleService.All()
	if len(articles) == 0 {
		return nil
	}

	counts := make(map[*entity.Magazine]int)
	for _, a := range articles {
		counts[a.Magazine()]++
	}

	var (
		top  *entity.Magazine
		best int
	)
	for _, m := range s.Repo.List() {
		if n := counts[m]; n > best {
			top, best = m, n
		}
	}
	return top
}

func (s *Service) recordAssignment(m *entity.Magazine, field, value string, outcome entity.SetOutcome, err error) (entity.SetOutcome, error) {
	if err != nil {
		s.Metrics.RecordValidationError("magazine", field)
		return outcome, fmt.Errorf("set magazine %s: %w", field, err)
	}
	s.Metrics.RecordAssignment("magazine", field, outcome)
	if outcome == entity.Ignored {
		s.logger().Debug("magazine assignment ignored",
			slog.String("magazine", m.Name()),
			slog.String("field", field),
			slog.String("rejected", value))
	}
	return outcome, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return logging.Discard()
	}
	return s.Logger
}
