// Package repository declares the registries the use cases read and append to.
// Registries are ordered and append-only: entries keep their registration
// order and are never removed.
package repository

import "magazine-catalog/internal/domain/entity"

// ArticleRepository is the ordered registry of every article created in a catalog.
type ArticleRepository interface {
	// Add appends an article to the end of the registry.
	Add(article *entity.Article)
	// List returns every registered article in registration order.
	List() []*entity.Article
	// ListByAuthor returns the articles written by author, in registration order.
	ListByAuthor(author *entity.Author) []*entity.Article
	// ListByMagazine returns the articles published in magazine, in registration order.
	ListByMagazine(magazine *entity.Magazine) []*entity.Article
	// Count returns the number of registered articles.
	Count() int
}
