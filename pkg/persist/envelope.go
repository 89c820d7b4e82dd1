package persist

import "time"

// Envelope pairs a state payload with the UTC instant at which it was
// wrapped for serialization. When a load falls back to the zero value
// for a missing file, the timestamp is fresh rather than persisted.
type Envelope[T any] struct {
	Timestamp time.Time `json:"timestamp" toml:"timestamp"`
	State     T         `json:"state" toml:"state"`
}

// NewEnvelope wraps state and stamps the current UTC time.
func NewEnvelope[T any](state T) Envelope[T] {
	return Envelope[T]{
		Timestamp: time.Now().UTC(),
		State:     state,
	}
}

// IntoState yields the wrapped payload, discarding the timestamp.
func (e Envelope[T]) IntoState() T {
	return e.State
}
