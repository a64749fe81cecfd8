package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/profitshare/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// TradingResultRepository реализует domain.TradingResultRepository
type TradingResultRepository struct {
	db DBTX
}

// NewTradingResultRepository создает новый TradingResultRepository
func NewTradingResultRepository(db DBTX) *TradingResultRepository {
	return &TradingResultRepository{db: db}
}

// CreateTradingResult создает торговый результат: не более одного на дату
func (r *TradingResultRepository) CreateTradingResult(ctx context.Context, tradingDate time.Time, profitPercent decimal.Decimal) (*domain.TradingResult, error) {
	result := &domain.TradingResult{
		ID:            uuid.New().String(),
		TradingDate:   tradingDate,
		ProfitPercent: profitPercent,
	}

	err := r.db.QueryRow(ctx,
		`INSERT INTO trading_results (id, trading_date, profit_percent)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		result.ID, tradingDate, profitPercent,
	).Scan(&result.CreatedAt)

	if err != nil {
		// Уникальность даты (код ошибки PostgreSQL)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrTradingResultExists
		}
		return nil, fmt.Errorf("repository: failed to create trading result for %s: %w",
			tradingDate.Format("2006-01-02"), err)
	}

	return result, nil
}

// GetTradingResultByID получает торговый результат по ID
func (r *TradingResultRepository) GetTradingResultByID(ctx context.Context, id string) (*domain.TradingResult, error) {
	result := &domain.TradingResult{}

	err := r.db.QueryRow(ctx,
		`SELECT id, trading_date, profit_percent, processed_at, created_at
		 FROM trading_results
		 WHERE id = $1`,
		id,
	).Scan(&result.ID, &result.TradingDate, &result.ProfitPercent, &result.ProcessedAt, &result.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTradingResultNotFound
		}
		return nil, fmt.Errorf("repository: failed to get trading result %q: %w", id, err)
	}

	return result, nil
}

// ListTradingResults получает торговые результаты, новые первыми
func (r *TradingResultRepository) ListTradingResults(ctx context.Context) ([]*domain.TradingResult, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, trading_date, profit_percent, processed_at, created_at
		 FROM trading_results
		 ORDER BY trading_date DESC
		 LIMIT 100`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list trading results: %w", err)
	}
	defer rows.Close()

	var results []*domain.TradingResult
	for rows.Next() {
		result := &domain.TradingResult{}
		err := rows.Scan(&result.ID, &result.TradingDate, &result.ProfitPercent, &result.ProcessedAt, &result.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan trading result: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating trading results: %w", err)
	}

	return results, nil
}

// MarkProcessed выставляет processedAt ровно один раз: условие по NULL
// гарантирует, что повторная отметка не пройдет
func (r *TradingResultRepository) MarkProcessed(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE trading_results
		 SET processed_at = now()
		 WHERE id = $1 AND processed_at IS NULL`,
		id,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to mark trading result %q processed: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrAlreadyProcessed
	}

	return nil
}

// CompletedUserIDs возвращает пользователей, уже получивших начисление по
// данному торговому результату — для возобновления прерванного распределения
func (r *TradingResultRepository) CompletedUserIDs(ctx context.Context, id string) (map[int64]struct{}, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id
		 FROM distribution_entries
		 WHERE trading_result_id = $1`,
		id,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get completed users for result %q: %w", id, err)
	}
	defer rows.Close()

	completed := make(map[int64]struct{})
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("repository: failed to scan completed user: %w", err)
		}
		completed[userID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating completed users: %w", err)
	}

	return completed, nil
}

// GetDistributionTotals возвращает агрегаты журналов по торговому результату
// для сверки распределения
func (r *TradingResultRepository) GetDistributionTotals(ctx context.Context, id string) (*domain.DistributionTotals, error) {
	totals := &domain.DistributionTotals{}

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(profit_amount), 0)
		 FROM profit_history
		 WHERE trading_result_id = $1`,
		id,
	).Scan(&totals.UsersCredited, &totals.TotalProfit)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get profit totals for result %q: %w", id, err)
	}

	err = r.db.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(bonus_amount), 0)
		 FROM bonus_history
		 WHERE trading_result_id = $1`,
		id,
	).Scan(&totals.BonusPayouts, &totals.TotalBonus)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get bonus totals for result %q: %w", id, err)
	}

	return totals, nil
}

// GetUnfinishedTradingResults находит торговые результаты, распределение
// которых началось (есть маркеры), но не было отмечено завершенным —
// кандидаты на возобновление после сбоя
func (r *TradingResultRepository) GetUnfinishedTradingResults(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT tr.id
		 FROM trading_results tr
		 JOIN distribution_entries de ON de.trading_result_id = tr.id
		 WHERE tr.processed_at IS NULL`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get unfinished trading results: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan unfinished trading result: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating unfinished trading results: %w", err)
	}

	return ids, nil
}
