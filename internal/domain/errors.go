package domain

import "errors"

// Ошибки торговых результатов
var (
	ErrTradingResultNotFound = errors.New("trading result not found")
	ErrTradingResultExists   = errors.New("trading result already exists for this date")
	ErrAlreadyProcessed      = errors.New("trading result already processed")
)

// Ошибки пользователей
var (
	ErrUserNotFound = errors.New("user not found")
)

// Ошибки распределения
var (
	ErrInvalidConfig          = errors.New("invalid engine configuration")
	ErrDistributionInProgress = errors.New("distribution already in progress")
	ErrConcurrencyConflict    = errors.New("concurrent balance update conflict")
	ErrReferralCycle          = errors.New("referral cycle detected")
)

// Ошибки доступа операторов
var (
	ErrInvalidAccessKey = errors.New("invalid access key")
)
