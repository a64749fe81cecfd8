package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/profitshare/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// UserRepository реализует domain.UserRepository
type UserRepository struct {
	db DBTX
}

// NewUserRepository создает новый UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID получает пользователя по ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(ctx,
		`SELECT id, login, balance, rank, referrer_id, created_at
		 FROM users
		 WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Login, &user.Balance, &user.Rank, &user.ReferrerID, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to get user by id %d: %w", id, err)
	}

	return user, nil
}

// ListUsersWithBalance получает снимок всех пользователей с положительным балансом
func (r *UserRepository) ListUsersWithBalance(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, login, balance, rank, referrer_id, created_at
		 FROM users
		 WHERE balance > 0
		 ORDER BY id ASC`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to list users with balance: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		err := rows.Scan(&user.ID, &user.Login, &user.Balance, &user.Rank, &user.ReferrerID, &user.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating users: %w", err)
	}

	return users, nil
}

// ApplyProfit атомарно начисляет прибыль: обновляет баланс и ранг, пишет
// profit_history, запись в журнал транзакций и маркер завершенности.
// Обновление баланса защищено оптимистичной проверкой: при гонке возвращается
// ErrBalanceConflict и вызывающая сторона повторяет попытку по свежему чтению.
func (r *UserRepository) ApplyProfit(ctx context.Context, app domain.ProfitApplication) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin profit transaction for user %d: %w", app.UserID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	result, err := tx.Exec(ctx,
		`UPDATE users
		 SET balance = $1, rank = $2
		 WHERE id = $3 AND balance = $4`,
		app.NewBalance, app.NewRank, app.UserID, app.ExpectedBalance,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update balance for user %d: %w", app.UserID, err)
	}
	if result.RowsAffected() == 0 {
		return ErrBalanceConflict
	}

	// Маркер завершенности: повторное начисление тому же пользователю за тот
	// же торговый результат упирается в первичный ключ
	_, err = tx.Exec(ctx,
		`INSERT INTO distribution_entries (trading_result_id, user_id, profit_amount)
		 VALUES ($1, $2, $3)`,
		app.TradingResultID, app.UserID, app.ProfitAmount,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEntryExists
		}
		return fmt.Errorf("repository: failed to insert distribution entry for user %d: %w", app.UserID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO profit_history (user_id, trading_result_id, trading_date, profit_percent, profit_amount)
		 VALUES ($1, $2, $3, $4, $5)`,
		app.UserID, app.TradingResultID, app.TradingDate, app.ProfitPercent, app.ProfitAmount,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert profit history for user %d: %w", app.UserID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (user_id, amount, type, remarks)
		 VALUES ($1, $2, $3, $4)`,
		app.UserID, app.ProfitAmount, domain.TransactionTypeProfit,
		fmt.Sprintf("Profit distribution for %s", app.TradingDate.Format("2006-01-02")),
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert profit transaction for user %d: %w", app.UserID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit profit for user %d: %w", app.UserID, err)
	}

	return nil
}

// ApplyBonus атомарно начисляет реферальный бонус аплайну: обновляет баланс
// и ранг, пишет bonus_history и запись в журнал транзакций
func (r *UserRepository) ApplyBonus(ctx context.Context, app domain.BonusApplication) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin bonus transaction for user %d: %w", app.UserID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	result, err := tx.Exec(ctx,
		`UPDATE users
		 SET balance = $1, rank = $2
		 WHERE id = $3 AND balance = $4`,
		app.NewBalance, app.NewRank, app.UserID, app.ExpectedBalance,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update balance for user %d: %w", app.UserID, err)
	}
	if result.RowsAffected() == 0 {
		return ErrBalanceConflict
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO bonus_history (user_id, source_user_id, trading_result_id, trading_date, level, rate, bonus_amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.UserID, app.SourceUserID, app.TradingResultID, app.TradingDate, app.Level, app.Rate, app.BonusAmount,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert bonus history for user %d: %w", app.UserID, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO transactions (user_id, amount, type, remarks)
		 VALUES ($1, $2, $3, $4)`,
		app.UserID, app.BonusAmount, domain.TransactionTypeBonus,
		fmt.Sprintf("Level %d network bonus", app.Level),
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert bonus transaction for user %d: %w", app.UserID, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit bonus for user %d: %w", app.UserID, err)
	}

	return nil
}
