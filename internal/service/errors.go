package service

import "errors"

// Ошибки ввода торговых результатов
var (
	ErrInvalidProfitPercent = errors.New("profit percent out of range")
)
