package persist

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by Load, Store, or Path matches
// exactly one of these under errors.Is; the concrete carrier types
// below hold the triggering sub-error.
var (
	ErrAppData       = errors.New("configuration directory could not be resolved")
	ErrIO            = errors.New("filesystem operation failed")
	ErrSerialization = errors.New("state serialization failed")
)

// AppDataError reports the identity triple for which no configuration
// directory could be derived.
type AppDataError struct {
	Qualifier    string
	Organization string
	Application  string
	Err          error
}

func (e *AppDataError) Error() string {
	return fmt.Sprintf("resolve config directory for (%q, %q, %q): %v",
		e.Qualifier, e.Organization, e.Application, e.Err)
}

func (e *AppDataError) Unwrap() error { return e.Err }

// Is matches ErrAppData so callers can test the kind without knowing
// the carrier type.
func (e *AppDataError) Is(target error) bool { return target == ErrAppData }

// IOError carries a filesystem failure unchanged, together with the
// operation and path that triggered it.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// FormatError unifies a backend's reader or writer failure into one
// reportable kind carrying the backend name and the underlying
// diagnostic.
type FormatError struct {
	Backend string
	Err     error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %v", e.Backend, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrSerialization }
