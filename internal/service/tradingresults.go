package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/profitshare/internal/domain"
	"github.com/shopspring/decimal"
)

// TradingResultService предоставляет операции с торговыми результатами
type TradingResultService struct {
	resultRepo domain.TradingResultRepository
}

// NewTradingResultService создает новый TradingResultService
func NewTradingResultService(resultRepo domain.TradingResultRepository) *TradingResultService {
	return &TradingResultService{
		resultRepo: resultRepo,
	}
}

// Create регистрирует торговый результат за календарную дату.
// Процент знаковый и ограничен диапазоном [-100, 100].
func (s *TradingResultService) Create(ctx context.Context, tradingDate time.Time, profitPercent decimal.Decimal) (*domain.TradingResult, error) {
	if profitPercent.Abs().GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("trading result service: percent %s: %w", profitPercent, ErrInvalidProfitPercent)
	}

	// Время суток и зона отбрасываются: результат привязан к календарной дате
	day := time.Date(tradingDate.Year(), tradingDate.Month(), tradingDate.Day(), 0, 0, 0, 0, time.UTC)

	result, err := s.resultRepo.CreateTradingResult(ctx, day, profitPercent)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Get возвращает торговый результат вместе с агрегатами его распределения
func (s *TradingResultService) Get(ctx context.Context, id string) (*domain.TradingResultDetails, error) {
	result, err := s.resultRepo.GetTradingResultByID(ctx, id)
	if err != nil {
		return nil, err
	}

	totals, err := s.resultRepo.GetDistributionTotals(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("trading result service: failed to get totals for %q: %w", id, err)
	}

	return &domain.TradingResultDetails{
		Result: result,
		Totals: totals,
	}, nil
}

// List возвращает торговые результаты, новые первыми
func (s *TradingResultService) List(ctx context.Context) ([]*domain.TradingResult, error) {
	results, err := s.resultRepo.ListTradingResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("trading result service: failed to list results: %w", err)
	}

	return results, nil
}
