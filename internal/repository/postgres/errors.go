package postgres

import "errors"

// Ошибки конкурентных обновлений
var (
	// ErrBalanceConflict — оптимистичная проверка баланса не прошла:
	// строка пользователя изменилась между чтением и обновлением
	ErrBalanceConflict = errors.New("balance changed concurrently")

	// ErrEntryExists — маркер завершенности для пары (торговый результат,
	// пользователь) уже записан: пользователь уже получил начисление
	ErrEntryExists = errors.New("distribution entry already exists")
)
