package persist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEnvelope(t *testing.T) {
	before := time.Now().UTC()
	env := NewEnvelope(42)
	after := time.Now().UTC()

	assert.Equal(t, 42, env.State)
	assert.Equal(t, time.UTC, env.Timestamp.Location())
	assert.False(t, env.Timestamp.Before(before))
	assert.False(t, env.Timestamp.After(after))
}

func TestEnvelopeIntoState(t *testing.T) {
	env := NewEnvelope("payload")
	assert.Equal(t, "payload", env.IntoState())
}
