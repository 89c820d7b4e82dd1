package fallback

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaybeOr(t *testing.T) {
	tests := []struct {
		name  string
		maybe Maybe[string]
		want  string
	}{
		{
			name:  "present value wins",
			maybe: Yes("hello"),
			want:  "hello",
		},
		{
			name:  "absent falls back",
			maybe: No[string](),
			want:  "backup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.maybe.Or("backup"))
		})
	}
}

func TestFromPtr(t *testing.T) {
	value := 7
	assert.Equal(t, 7, FromPtr(&value).Or(0))
	assert.Equal(t, 42, FromPtr[int](nil).Or(42))
}

func TestFromResult(t *testing.T) {
	assert.Equal(t, "ok", FromResult("ok", nil).Or("backup"))
	assert.Equal(t, "backup", FromResult("ignored", errors.New("boom")).Or("backup"))
}

func TestFallbackTo(t *testing.T) {
	assert.Equal(t, "Hello", From(No[string]()).To("Hello"))
	assert.Equal(t, "there", From(Yes("there")).To("Hello"))
}
