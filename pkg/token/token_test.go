package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret-key-at-least-32-chars!!", time.Hour)

	t.Run("Round trip keeps claims", func(t *testing.T) {
		signed, expireAt, err := m.Generate(42, "alice", "User")
		assert.NoError(t, err)
		assert.NotEmpty(t, signed)
		assert.True(t, expireAt.After(time.Now()))

		claims, err := m.Parse(signed)
		assert.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, "alice", claims.UserName)
		assert.Equal(t, "User", claims.Role)
	})

	t.Run("Wrong secret rejected", func(t *testing.T) {
		signed, _, err := m.Generate(1, "bob", "Admin")
		assert.NoError(t, err)

		other := NewManager("another-secret-key-also-32-chars!!!", time.Hour)
		_, err = other.Parse(signed)
		assert.Error(t, err)
	})

	t.Run("Expired token rejected", func(t *testing.T) {
		short := NewManager("test-secret-key-at-least-32-chars!!", -time.Minute)
		signed, _, err := short.Generate(1, "bob", "User")
		assert.NoError(t, err)

		_, err = m.Parse(signed)
		assert.Error(t, err)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		_, err := m.Parse("not.a.token")
		assert.Error(t, err)
	})
}
