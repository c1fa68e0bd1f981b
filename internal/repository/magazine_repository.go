package repository

import "magazine-catalog/internal/domain/entity"

// MagazineRepository is the ordered registry of every magazine created in a catalog.
type MagazineRepository interface {
	// Add appends a magazine to the end of the registry.
	Add(magazine *entity.Magazine)
	// List returns every registered magazine in registration order.
	List() []*entity.Magazine
	// Count returns the number of registered magazines.
	Count() int
}
