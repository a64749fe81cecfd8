package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		subject   string
	}{
		{
			name:      "Valid token generation",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			subject:   "admin",
		},
		{
			name:      "Generate with different subject",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			subject:   "operator",
		},
		{
			name:      "Generate with empty subject",
			secretKey: "secret",
			tokenTTL:  time.Hour,
			subject:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.subject)

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)

		token, err := m.Generate("admin")
		require.NoError(t, err)

		subject, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", subject)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		other := NewManager("wrong-secret", tokenTTL)

		token, err := m.Generate("admin")
		require.NoError(t, err)

		subject, err := other.Validate(token)
		assert.Error(t, err)
		assert.Empty(t, subject)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, -time.Hour)

		token, err := m.Generate("admin")
		require.NoError(t, err)

		subject, err := m.Validate(token)
		assert.Error(t, err)
		assert.Empty(t, subject)
	})

	t.Run("Malformed token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)

		subject, err := m.Validate("not.a.token")
		assert.Error(t, err)
		assert.Empty(t, subject)
	})
}
