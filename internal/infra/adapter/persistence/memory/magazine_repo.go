package memory

import (
	"magazine-catalog/internal/domain/entity"
	"magazine-catalog/internal/repository"
)

// MagazineRepo is a slice-backed repository.MagazineRepository.
type MagazineRepo struct {
	magazines []*entity.Magazine
}

// NewMagazineRepo returns an empty magazine registry.
func NewMagazineRepo() repository.MagazineRepository {
	return &MagazineRepo{}
}

// Add appends magazine to the registry.
func (repo *MagazineRepo) Add(magazine *entity.Magazine) {
	repo.magazines = append(repo.magazines, magazine)
}

// List returns a copy of the registry in registration order.
func (repo *MagazineRepo) List() []*entity.Magazine {
	out := make([]*entity.Magazine, len(repo.magazines))
	copy(out, repo.magazines)
	return out
}

// Count returns the number of registered magazines.
func (repo *MagazineRepo) Count() int {
	return len(repo.magazines)
}
