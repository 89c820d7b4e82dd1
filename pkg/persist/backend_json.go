package persist

import "encoding/json"

// jsonBackend serializes envelopes as JSON documents.
type jsonBackend struct{}

func (jsonBackend) Name() string { return "json" }

func (jsonBackend) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &FormatError{Backend: "json", Err: err}
	}
	return data, nil
}

func (jsonBackend) MarshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, &FormatError{Backend: "json", Err: err}
	}
	return data, nil
}

func (jsonBackend) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &FormatError{Backend: "json", Err: err}
	}
	return nil
}
