package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testCost используется в тестах для ускорения выполнения
const testCost = bcrypt.MinCost

func TestBCryptHasher_Hash(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{
			name:    "Valid secret",
			secret:  "access-key-123",
			wantErr: false,
		},
		{
			name:    "Secret with special characters",
			secret:  "k3y!#$%^&*()",
			wantErr: false,
		},
		{
			name:    "Empty secret",
			secret:  "",
			wantErr: true,
		},
	}

	hasher := NewBCryptHasher(testCost)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := hasher.Hash(tt.secret)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, hash)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, hash)
				assert.NotEqual(t, tt.secret, hash)
			}
		})
	}
}

func TestBCryptHasher_Check(t *testing.T) {
	hasher := NewBCryptHasher(testCost)
	secret := "access-key-123"

	hash, err := hasher.Hash(secret)
	require.NoError(t, err)

	t.Run("Matching secret", func(t *testing.T) {
		assert.NoError(t, hasher.Check(hash, secret))
	})

	t.Run("Wrong secret", func(t *testing.T) {
		assert.Error(t, hasher.Check(hash, "wrong-key"))
	})

	t.Run("Empty secret", func(t *testing.T) {
		assert.Error(t, hasher.Check(hash, ""))
	})

	t.Run("Empty hash", func(t *testing.T) {
		assert.Error(t, hasher.Check("", secret))
	})
}

func TestNewBCryptHasher_CostClamping(t *testing.T) {
	// Недопустимая стоимость заменяется дефолтной
	hasher := NewBCryptHasher(100)
	assert.Equal(t, DefaultCost, hasher.cost)

	hasher = NewBCryptHasher(-1)
	assert.Equal(t, DefaultCost, hasher.cost)
}
