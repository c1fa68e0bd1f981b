package entity

var authorNameRule = Rule[string]{Policy: Frozen, Check: ValidateAuthorName}

// Author represents a named person who writes articles.
// The name is frozen once it has been set.
type Author struct {
	name Field[string]
}

// NewAuthor creates an author with the given name.
// Returns a ValidationError if the name is empty.
func NewAuthor(name string) (*Author, error) {
	a := &Author{}
	if _, err := a.name.TrySet(name, authorNameRule); err != nil {
		return nil, err
	}
	return a, nil
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name.Value()
}

// SetName attempts to assign a new name. Once the author has a name the
// attempt is Ignored.
func (a *Author) SetName(name string) (SetOutcome, error) {
	return a.name.TrySet(name, authorNameRule)
}

// String implements fmt.Stringer.
func (a *Author) String() string {
	return a.Name()
}
