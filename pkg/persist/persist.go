package persist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/persist/internal/appdirs"
)

// StateFileName is the fixed name of the state file inside the
// resolved directory, regardless of which backend is active.
const StateFileName = "persist.json"

// Persist loads and stores one state value of type T for an
// application. The identity triple and formatting preference are set
// at construction and never change; every Load and Store resolves the
// directory afresh from the triple.
type Persist[T any] struct {
	qualifier    string
	organization string
	application  string
	compact      bool
}

// New returns a Persist for application with empty qualifier and
// organization and pretty formatting. Use NewBuilder to override.
func New[T any](application string) *Persist[T] {
	return &Persist[T]{application: application}
}

// Path returns the full path of the state file. It fails with an
// AppData error when the identity triple resolves to no directory.
func (p *Persist[T]) Path() (string, error) {
	dir, err := p.resolveDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StateFileName), nil
}

// Load reads the persisted envelope through the active backend. A
// missing state file is not an error: the returned envelope wraps the
// zero value of T with a fresh timestamp, and nothing is written. A
// present but malformed file fails with a Serialization error.
func (p *Persist[T]) Load() (Envelope[T], error) {
	path, err := p.Path()
	if err != nil {
		return Envelope[T]{}, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		var zero T
		return NewEnvelope(zero), nil
	}
	if err != nil {
		return Envelope[T]{}, &IOError{Op: "read", Path: path, Err: err}
	}

	var env Envelope[T]
	if err := activeBackend.Unmarshal(data, &env); err != nil {
		return Envelope[T]{}, err
	}
	return env, nil
}

// Store wraps state in a freshly stamped envelope and overwrites the
// state file, creating the directory first if needed. The write is
// not atomic; a failure mid-operation leaves the prior file state
// undefined.
func (p *Persist[T]) Store(state T) error {
	dir, err := p.resolveDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	env := NewEnvelope(state)
	var data []byte
	if p.compact {
		data, err = activeBackend.Marshal(env)
	} else {
		data, err = activeBackend.MarshalIndent(env)
	}
	if err != nil {
		return err
	}

	path := filepath.Join(dir, StateFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// resolveDir derives the configuration directory from the identity
// triple. Nothing is cached, so the result always reflects the triple.
func (p *Persist[T]) resolveDir() (string, error) {
	dir, err := appdirs.ConfigDir(p.qualifier, p.organization, p.application)
	if err != nil {
		return "", &AppDataError{
			Qualifier:    p.qualifier,
			Organization: p.organization,
			Application:  p.application,
			Err:          err,
		}
	}
	return dir, nil
}
