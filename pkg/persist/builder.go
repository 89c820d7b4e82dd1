package persist

// Builder accumulates qualifier, organization, and formatting
// overrides for a Persist. It is a plain value: each method returns a
// new Builder and leaves the receiver untouched, so intermediate
// builders can be reused or discarded freely. Field overrides are
// independent; last write wins per field.
type Builder[T any] struct {
	qualifier    string
	organization string
	application  string
	compact      bool
}

// NewBuilder returns a Builder seeded like New: empty qualifier and
// organization, pretty formatting.
func NewBuilder[T any](application string) Builder[T] {
	return Builder[T]{application: application}
}

// WithQualifier sets the identity qualifier (e.g. "com").
func (b Builder[T]) WithQualifier(qualifier string) Builder[T] {
	b.qualifier = qualifier
	return b
}

// WithOrganization sets the identity organization.
func (b Builder[T]) WithOrganization(organization string) Builder[T] {
	b.organization = organization
	return b
}

// Compact switches Store output from pretty to compact formatting.
func (b Builder[T]) Compact() Builder[T] {
	b.compact = true
	return b
}

// Build finalizes the configuration into a Persist.
func (b Builder[T]) Build() *Persist[T] {
	return &Persist[T]{
		qualifier:    b.qualifier,
		organization: b.organization,
		application:  b.application,
		compact:      b.compact,
	}
}
