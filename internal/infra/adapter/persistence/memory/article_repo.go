package memory

import (
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// ArticleRepo is a slice-backed repository.ArticleRepository.
type ArticleRepo struct {
	articles []*entity.Article
}

// NewArticleRepo returns an empty article registry.
func NewArticleRepo() repository.ArticleRepository {
	return &ArticleRepo{}
}

// Add appends article to the registry.
func (repo *ArticleRepo) Add(article *entity.Article) {
	repo.articles = append(repo.articles, article)
}

// List returns a copy so callers cannot reorder the registry.
func (repo *ArticleRepo) List() []*entity.Article {
	out := make([]*entity.Article, len(repo.articles))
	copy(out, repo.articles)
	return out
}

// ListByAuthor returns the articles whose author is author, by identity.
func (repo *ArticleRepo) ListByAuthor(author *entity.Author) []*entity.Article {
	return repo.filter(func(a *entity.Article) bool { return a.Author() == author })
}

// ListByMagazine returns the articles whose magazine is magazine, by identity.
func (repo *ArticleRepo) ListByMagazine(magazine *entity.Magazine) []*entity.Article {
	return repo.filter(func(a *entity.Article) bool { return a.Magazine() == magazine })
}

// Count returns the number of registered articles.
func (repo *ArticleRepo) Count() int {
	return len(repo.articles)
}

func (repo *ArticleRepo) filter(keep func(*entity.Article) bool) []*entity.Article {
	out := make([]*entity.Article, 0)
	for _, a := range repo.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
