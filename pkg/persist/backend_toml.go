package persist

import (
	"bytes"

	"github.com/pelletier/go-toml/v2"
)

// tomlBackend serializes envelopes as TOML documents.
type tomlBackend struct{}

func (tomlBackend) Name() string { return "toml" }

func (tomlBackend) Marshal(v any) ([]byte, error) {
	data, err := toml.Marshal(v)
	if err != nil {
		return nil, &FormatError{Backend: "toml", Err: err}
	}
	return data, nil
}

func (tomlBackend) MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	enc.SetArraysMultiline(true)
	if err := enc.Encode(v); err != nil {
		return nil, &FormatError{Backend: "toml", Err: err}
	}
	return buf.Bytes(), nil
}

func (tomlBackend) Unmarshal(data []byte, v any) error {
	if err := toml.Unmarshal(data, v); err != nil {
		return &FormatError{Backend: "toml", Err: err}
	}
	return nil
}
