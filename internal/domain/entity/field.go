package entity

// SetOutcome reports what a TrySet call did with the offered value.
type SetOutcome int

const (
	// Stored means the value was validated and is now held by the field.
	Stored SetOutcome = iota + 1
	// Ignored means the field kept its previous value and no error was raised.
	Ignored
)

// String returns a lower-case label suitable for logs and metric labels.
func (o SetOutcome) String() string {
	switch o {
	case Stored:
		return "stored"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Policy decides how a field treats assignments once it holds a value.
type Policy int

const (
	// Frozen fields accept exactly one valid value; every later assignment is ignored.
	Frozen Policy = iota
	// Guarded fields keep accepting valid values; invalid values are rejected
	// while the field is unset and ignored afterwards.
	Guarded
)

// Rule pairs a Policy with the check applied to candidate values.
type Rule[T any] struct {
	Policy Policy
	Check  func(T) error
}

// Field is a two-state value: unset, or set to a value that passed its Rule.
// The zero value is unset.
type Field[T any] struct {
	value T
	set   bool
}

// Get returns the held value and whether the field has been set.
func (f *Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// Value returns the held value, or the zero value of T when unset.
func (f *Field[T]) Value() T {
	return f.value
}

// IsSet reports whether a valid value has ever been stored.
func (f *Field[T]) IsSet() bool {
	return f.set
}

// TrySet offers v to the field under rule r.
//
// An error is only ever returned while the field is unset; once set, a value
// the field will not take is reported as Ignored.
func (f *Field[T]) TrySet(v T, r Rule[T]) (SetOutcome, error) {
	if f.set && r.Policy == Frozen {
		return Ignored, nil
	}
	if r.Check != nil {
		if err := r.Check(v); err != nil {
			if f.set {
				return Ignored, nil
			}
			return 0, err
		}
	}
	f.value = v
	f.set = true
	return Stored, nil
}
