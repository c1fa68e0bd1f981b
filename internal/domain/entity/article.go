package entity

var articleTitleRule = Rule[string]{Policy: Frozen, Check: ValidateTitle}

// Article binds one author and one magazine under a title.
// The author and magazine are fixed at construction and the title is frozen once set.
type Article struct {
	author   *Author
	magazine *Magazine
	title    Field[string]
}

// NewArticle creates an article for the given author and magazine.
// Returns a ValidationError if either reference is nil or the title is not
// between 5 and 50 characters.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if author == nil {
		return nil, &ValidationError{Field: "author", Message: "is required"}
	}
	if magazine == nil {
		return nil, &ValidationError{Field: "magazine", Message: "is required"}
	}

	a := &Article{author: author, magazine: magazine}
	if _, err := a.title.TrySet(title, articleTitleRule); err != nil {
		return nil, err
	}
	return a, nil
}

// Author returns the article's author.
func (a *Article) Author() *Author {
	return a.author
}

// Magazine returns the magazine the article appears in.
func (a *Article) Magazine() *Magazine {
	return a.magazine
}

// Title returns the article's title.
func (a *Article) Title() string {
	return a.title.Value()
}

// SetTitle attempts to assign a new title. Once the article has a title the
// attempt is Ignored.
func (a *Article) SetTitle(title string) (SetOutcome, error) {
	return a.title.TrySet(title, articleTitleRule)
}
