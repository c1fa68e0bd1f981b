package entity

var (
	magazineNameRule     = Rule[string]{Policy: Guarded, Check: ValidateMagazineName}
	magazineCategoryRule = Rule[string]{Policy: Guarded, Check: ValidateCategory}
)

// Magazine represents a named, categorized publication that hosts articles.
//
// Name and category stay assignable for the lifetime of the magazine, but
// every assignment is validated: an invalid value is an error while the field
// is unset and is silently ignored afterwards. Unlike Author.Name and
// Article.Title, the fields never freeze: a valid value replaces the current one.
type Magazine struct {
	name     Field[string]
	category Field[string]
}

// NewMagazine creates a magazine, validating name before category.
// It does not register the magazine anywhere; see the magazine use case for that.
func NewMagazine(name, category string) (*Magazine, error) {
	m := &Magazine{}
	if _, err := m.SetName(name); err != nil {
		return nil, err
	}
	if _, err := m.SetCategory(category); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the magazine's name.
func (m *Magazine) Name() string {
	return m.name.Value()
}

// Category returns the magazine's category.
func (m *Magazine) Category() string {
	return m.category.Value()
}

// SetName assigns a new name of 2 to 16 characters.
func (m *Magazine) SetName(name string) (SetOutcome, error) {
	return m.name.TrySet(name, magazineNameRule)
}

// SetCategory assigns a new non-empty category.
func (m *Magazine) SetCategory(category string) (SetOutcome, error) {
	return m.category.TrySet(category, magazineCategoryRule)
}

// String implements fmt.Stringer.
func (m *Magazine) String() string {
	return m.Name()
}
