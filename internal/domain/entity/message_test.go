package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampBody(t *testing.T) {
	t.Run("short body is returned verbatim", func(t *testing.T) {
		assert.Equal(t, "hello", ClampBody("hello"))
	})

	t.Run("empty body stays empty", func(t *testing.T) {
		assert.Equal(t, "", ClampBody(""))
	})

	t.Run("body at the limit is untouched", func(t *testing.T) {
		body := strings.Repeat("x", MaxMessageBodyLength)
		assert.Equal(t, body, ClampBody(body))
	})

	t.Run("long body is truncated to the limit", func(t *testing.T) {
		body := strings.Repeat("x", MaxMessageBodyLength+500)
		clamped := ClampBody(body)
		assert.Len(t, clamped, MaxMessageBodyLength)
		assert.Equal(t, body[:MaxMessageBodyLength], clamped)
	})

	t.Run("truncation counts runes, not bytes", func(t *testing.T) {
		body := strings.Repeat("界", MaxMessageBodyLength+1)
		clamped := ClampBody(body)
		assert.Equal(t, MaxMessageBodyLength, len([]rune(clamped)))
		// No broken multi-byte sequence at the cut point
		assert.True(t, strings.HasSuffix(clamped, "界"))
	})
}

func TestUrgencyLevel(t *testing.T) {
	assert.Equal(t, 1, UrgencyLow.Level())
	assert.Equal(t, 2, UrgencyMedium.Level())
	assert.Equal(t, 3, UrgencyHigh.Level())
	assert.Equal(t, 0, Urgency("bogus").Level())

	assert.True(t, UrgencyHigh.Level() > UrgencyLow.Level())
}

func TestUrgencyValid(t *testing.T) {
	assert.True(t, UrgencyLow.Valid())
	assert.True(t, UrgencyMedium.Valid())
	assert.True(t, UrgencyHigh.Valid())
	assert.False(t, Urgency("").Valid())
	assert.False(t, Urgency("critical").Valid())
}
