package service

import (
	"context"
	"fmt"

	"github.com/avc/profitshare/internal/domain"
	"github.com/avc/profitshare/internal/utils/jwt"
	"github.com/avc/profitshare/internal/utils/password"
)

// operatorSubject помещается в JWT как субъект операторского токена
const operatorSubject = "operator"

// TokenService обменивает операторский ключ доступа на JWT токен.
// В базе операторов нет: хеш единственного ключа задается конфигурацией.
type TokenService struct {
	accessKeyHash string
	hasher        password.Hasher
	jwtManager    *jwt.Manager
}

// NewTokenService создает новый TokenService
func NewTokenService(accessKeyHash string, hasher password.Hasher, jwtManager *jwt.Manager) *TokenService {
	return &TokenService{
		accessKeyHash: accessKeyHash,
		hasher:        hasher,
		jwtManager:    jwtManager,
	}
}

// Issue проверяет ключ доступа и выдает JWT токен оператора
func (s *TokenService) Issue(_ context.Context, accessKey string) (string, error) {
	if err := s.hasher.Check(s.accessKeyHash, accessKey); err != nil {
		return "", domain.ErrInvalidAccessKey
	}

	token, err := s.jwtManager.Generate(operatorSubject)
	if err != nil {
		return "", fmt.Errorf("token service: failed to generate token: %w", err)
	}

	return token, nil
}
