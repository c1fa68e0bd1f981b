package entity

import (
	"github.com/go-playground/validator/v10"
)

// Field constraints expressed as validator tags. String lengths are counted in runes.
const (
	authorNameTag       = "required"
	magazineNameTag     = "min=2,max=16"
	magazineCategoryTag = "required"
	articleTitleTag     = "min=5,max=50"
)

// validate is safe for concurrent use and caches parsed tags.
var validate = validator.New()

// ValidateAuthorName checks that an author name is a non-empty string.
func ValidateAuthorName(name string) error {
	return checkVar("name", name, authorNameTag, "must be longer than 0 characters")
}

// ValidateMagazineName checks that a magazine name is between 2 and 16 characters inclusive.
func ValidateMagazineName(name string) error {
	return checkVar("name", name, magazineNameTag, "must be between 2 and 16 characters")
}

// ValidateCategory checks that a magazine category is a non-empty string.
func ValidateCategory(category string) error {
	return checkVar("category", category, magazineCategoryTag, "must be longer than 0 characters")
}

// ValidateTitle checks that an article title is between 5 and 50 characters inclusive.
func ValidateTitle(title string) error {
	return checkVar("title", title, articleTitleTag, "must be between 5 and 50 characters")
}

func checkVar(field, value, tag, message string) error {
	if err := validate.Var(value, tag); err != nil {
		return &ValidationError{Field: field, Message: message}
	}
	return nil
}
