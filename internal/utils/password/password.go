package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost стоимость хеширования по умолчанию
	DefaultCost = bcrypt.DefaultCost
)

// Hasher интерфейс для хеширования секретов
type Hasher interface {
	Hash(secret string) (string, error)
	Check(hash, secret string) error
}

// BCryptHasher реализация хеширования через bcrypt
type BCryptHasher struct {
	cost int
}

// NewBCryptHasher создает новый hasher с заданной стоимостью
func NewBCryptHasher(cost int) *BCryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BCryptHasher{
		cost: cost,
	}
}

// Hash хеширует секрет
func (h *BCryptHasher) Hash(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("secret cannot be empty")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}

	return string(hashedBytes), nil
}

// Check проверяет соответствие секрета хешу
func (h *BCryptHasher) Check(hash, secret string) error {
	if hash == "" || secret == "" {
		return fmt.Errorf("hash and secret cannot be empty")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return fmt.Errorf("secret does not match")
		}
		return fmt.Errorf("failed to check secret: %w", err)
	}

	return nil
}
