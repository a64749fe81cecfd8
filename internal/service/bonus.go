package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/profitshare/internal/domain"
	"github.com/avc/profitshare/internal/repository/postgres"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BonusWalker проходит реферальную цепочку вверх от пользователя и начисляет
// уровневые бонусы из доли компании. Обход ограничен MaxBonusDepth шагами,
// пройденные узлы запоминаются: повторное появление узла означает цикл.
type BonusWalker struct {
	userRepo domain.UserRepository
	logger   *zap.Logger
}

// NewBonusWalker создает новый BonusWalker
func NewBonusWalker(userRepo domain.UserRepository, logger *zap.Logger) *BonusWalker {
	return &BonusWalker{
		userRepo: userRepo,
		logger:   logger,
	}
}

// WalkAndCredit начисляет бонусы аплайну пользователя source из доли компании
// companyPortion. Неподходящий по рангу уровень пропускается, но обход
// продолжается глубже. Оборванная ссылка на реферера завершает цепочку,
// цикл — ошибка domain.ErrReferralCycle.
func (w *BonusWalker) WalkAndCredit(
	ctx context.Context,
	cfg *domain.EngineConfig,
	source *domain.User,
	companyPortion decimal.Decimal,
	result *domain.TradingResult,
) error {
	hundred := decimal.NewFromInt(100)

	visited := map[int64]struct{}{source.ID: {}}
	current := source.ReferrerID

	for level := 1; current != nil && level <= cfg.MaxBonusDepth; level++ {
		if _, seen := visited[*current]; seen {
			return fmt.Errorf("bonus walker: user %d upline revisits user %d: %w",
				source.ID, *current, domain.ErrReferralCycle)
		}
		visited[*current] = struct{}{}

		referrer, err := w.userRepo.GetUserByID(ctx, *current)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				// Оборванная ссылка — цепочка заканчивается здесь
				w.logger.Warn("referrer not found, bonus chain truncated",
					zap.Int64("source_user_id", source.ID),
					zap.Int64("referrer_id", *current),
					zap.Int("level", level))
				return nil
			}
			return fmt.Errorf("bonus walker: failed to load referrer %d: %w", *current, err)
		}

		rate, err := cfg.LevelRate(level)
		if err != nil {
			return err
		}

		bonus := companyPortion.Mul(rate).Div(hundred).RoundBank(2)

		tierCfg, err := cfg.TierConfig(cfg.TierFor(referrer.Balance))
		if err != nil {
			return err
		}

		if level <= tierCfg.BonusLevels && bonus.IsPositive() {
			if err := w.credit(ctx, cfg, referrer, source, result, level, rate, bonus); err != nil {
				return err
			}
		}

		current = referrer.ReferrerID
	}

	return nil
}

// credit начисляет один бонус с повтором при конкурентном изменении баланса
func (w *BonusWalker) credit(
	ctx context.Context,
	cfg *domain.EngineConfig,
	referrer *domain.User,
	source *domain.User,
	result *domain.TradingResult,
	level int,
	rate decimal.Decimal,
	bonus decimal.Decimal,
) error {
	for attempt := 0; attempt < maxBalanceRetries; attempt++ {
		newBalance := referrer.Balance.Add(bonus)

		app := domain.BonusApplication{
			TradingResultID: result.ID,
			TradingDate:     result.TradingDate,
			UserID:          referrer.ID,
			SourceUserID:    source.ID,
			Level:           level,
			Rate:            rate,
			ExpectedBalance: referrer.Balance,
			NewBalance:      newBalance,
			NewRank:         cfg.TierFor(newBalance),
			BonusAmount:     bonus,
		}

		err := w.userRepo.ApplyBonus(ctx, app)
		if err == nil {
			return nil
		}
		if !errors.Is(err, postgres.ErrBalanceConflict) {
			return fmt.Errorf("bonus walker: failed to apply level %d bonus for user %d: %w",
				level, referrer.ID, err)
		}

		// Баланс изменился под нами — перечитываем и пробуем снова
		referrer, err = w.userRepo.GetUserByID(ctx, referrer.ID)
		if err != nil {
			return fmt.Errorf("bonus walker: failed to reload referrer %d: %w", app.UserID, err)
		}
	}

	return fmt.Errorf("bonus walker: level %d bonus for user %d: %w",
		level, referrer.ID, domain.ErrConcurrencyConflict)
}
