package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/profitshare/internal/domain"
	"github.com/avc/profitshare/internal/utils/jwt"
	"github.com/avc/profitshare/internal/utils/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()

	hasher := password.NewBCryptHasher(bcrypt.MinCost)
	accessKeyHash, err := hasher.Hash("secret-key")
	require.NoError(t, err)

	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewTokenService(accessKeyHash, hasher, jwtManager)

	t.Run("Valid access key", func(t *testing.T) {
		token, err := svc.Issue(ctx, "secret-key")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		subject, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, operatorSubject, subject)
	})

	t.Run("Wrong access key", func(t *testing.T) {
		token, err := svc.Issue(ctx, "wrong-key")
		assert.ErrorIs(t, err, domain.ErrInvalidAccessKey)
		assert.Empty(t, token)
	})

	t.Run("Empty access key", func(t *testing.T) {
		token, err := svc.Issue(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidAccessKey)
		assert.Empty(t, token)
	})
}
