// Package fallback provides a small value-or-fallback helper for
// optional values. It is independent of the persist package.
package fallback

// Maybe holds a value that may be absent.
type Maybe[T any] struct {
	value   T
	present bool
}

// Yes wraps a present value.
func Yes[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, present: true}
}

// No returns the absent Maybe.
func No[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr converts a possibly nil pointer; nil maps to absent.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return No[T]()
	}
	return Yes(*p)
}

// FromResult keeps value only when err is nil; the error itself is
// discarded.
func FromResult[T any](value T, err error) Maybe[T] {
	if err != nil {
		return No[T]()
	}
	return Yes(value)
}

// Or returns the wrapped value, or backup when absent.
func (m Maybe[T]) Or(backup T) T {
	if m.present {
		return m.value
	}
	return backup
}

// Fallback resolves a Maybe against a backup value.
type Fallback[T any] struct {
	object Maybe[T]
}

// From wraps a Maybe for fallback resolution.
func From[T any](m Maybe[T]) Fallback[T] {
	return Fallback[T]{object: m}
}

// To returns the wrapped value, or backup when absent.
func (f Fallback[T]) To(backup T) T {
	return f.object.Or(backup)
}
