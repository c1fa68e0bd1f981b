// Package article provides use cases for creating and querying articles.
// It validates new articles, appends them to the article registry, and
// answers the per-author and per-magazine lookups the other use cases build on.
package article

import (
	"errors"

	"magazine-catalog/internal/domain/entity"
)

// validationField returns the field of a ValidationError in err's chain, or "unknown".
func validationField(err error) string {
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Field
	}
	return "unknown"
}
