package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avc/profitshare/internal/domain"
	"github.com/avc/profitshare/internal/repository/postgres"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxBalanceRetries ограничивает число повторов начисления при конкурентном
// изменении баланса; после исчерпания запуск прерывается с
// domain.ErrConcurrencyConflict и возобновляется по маркерам завершенности
const maxBalanceRetries = 3

// DistributionService реализует распределение прибыли и реферальных бонусов
// по одному торговому результату. В процессе допускается один активный запуск:
// второй вызов немедленно получает domain.ErrDistributionInProgress.
type DistributionService struct {
	userRepo     domain.UserRepository
	resultRepo   domain.TradingResultRepository
	configSource domain.EngineConfigSource
	walker       *BonusWalker
	logger       *zap.Logger
	mu           sync.Mutex
}

// NewDistributionService создает новый DistributionService
func NewDistributionService(
	userRepo domain.UserRepository,
	resultRepo domain.TradingResultRepository,
	configSource domain.EngineConfigSource,
	logger *zap.Logger,
) *DistributionService {
	return &DistributionService{
		userRepo:     userRepo,
		resultRepo:   resultRepo,
		configSource: configSource,
		walker:       NewBonusWalker(userRepo, logger),
		logger:       logger,
	}
}

// Distribute выполняет распределение по торговому результату: каждому
// пользователю с положительным балансом начисляется его доля прибыли, доля
// компании питает реферальные бонусы аплайна. Повторный запуск по тому же
// результату пропускает уже начисленных пользователей, так что прерванное
// распределение доводится до конца без двойных начислений.
func (s *DistributionService) Distribute(ctx context.Context, tradingResultID string) (*domain.DistributionSummary, error) {
	if !s.mu.TryLock() {
		return nil, domain.ErrDistributionInProgress
	}
	defer s.mu.Unlock()

	result, err := s.resultRepo.GetTradingResultByID(ctx, tradingResultID)
	if err != nil {
		return nil, err
	}

	if result.ProcessedAt != nil {
		return nil, domain.ErrAlreadyProcessed
	}

	// Снимок конфигурации на весь запуск: смена файла конфигурации во время
	// распределения не влияет на уже начатый запуск
	cfg, err := s.configSource.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("distribution service: failed to load engine config: %w", err)
	}

	users, err := s.userRepo.ListUsersWithBalance(ctx)
	if err != nil {
		return nil, fmt.Errorf("distribution service: failed to list users: %w", err)
	}

	completed, err := s.resultRepo.CompletedUserIDs(ctx, tradingResultID)
	if err != nil {
		return nil, fmt.Errorf("distribution service: failed to load completed users: %w", err)
	}

	ratio := result.ProfitPercent.Div(decimal.NewFromInt(100))

	s.logger.Info("distribution started",
		zap.String("trading_result_id", tradingResultID),
		zap.String("profit_percent", result.ProfitPercent.String()),
		zap.Int("users", len(users)),
		zap.Int("already_completed", len(completed)))

	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("distribution service: interrupted: %w", err)
		}

		if _, done := completed[user.ID]; done {
			continue
		}

		if err := s.distributeToUser(ctx, cfg, result, ratio, user); err != nil {
			return nil, err
		}
	}

	if err := s.resultRepo.MarkProcessed(ctx, tradingResultID); err != nil {
		return nil, err
	}

	totals, err := s.resultRepo.GetDistributionTotals(ctx, tradingResultID)
	if err != nil {
		return nil, fmt.Errorf("distribution service: failed to load distribution totals: %w", err)
	}

	s.logger.Info("distribution completed",
		zap.String("trading_result_id", tradingResultID),
		zap.Int("users_credited", totals.UsersCredited),
		zap.String("total_profit", totals.TotalProfit.String()),
		zap.Int("bonus_payouts", totals.BonusPayouts),
		zap.String("total_bonus", totals.TotalBonus.String()))

	return &domain.DistributionSummary{
		TradingResultID:       tradingResultID,
		UsersAffected:         totals.UsersCredited,
		TotalBonusDistributed: totals.TotalBonus,
	}, nil
}

// distributeToUser начисляет прибыль одному пользователю и запускает обход
// его аплайна. Доли пользователя и компании считаются независимо от текущего
// баланса, каждая округляется банковским правилом до копеек.
func (s *DistributionService) distributeToUser(
	ctx context.Context,
	cfg *domain.EngineConfig,
	result *domain.TradingResult,
	ratio decimal.Decimal,
	user *domain.User,
) error {
	hundred := decimal.NewFromInt(100)

	for attempt := 0; attempt < maxBalanceRetries; attempt++ {
		tierCfg, err := cfg.TierConfig(cfg.TierFor(user.Balance))
		if err != nil {
			return err
		}

		gross := user.Balance.Mul(ratio)
		userProfit := gross.Mul(tierCfg.ProfitShareUser).Div(hundred).RoundBank(2)
		companyPortion := gross.Mul(tierCfg.ProfitShareCompany).Div(hundred).RoundBank(2)

		newBalance := user.Balance.Add(userProfit)

		app := domain.ProfitApplication{
			TradingResultID: result.ID,
			TradingDate:     result.TradingDate,
			UserID:          user.ID,
			ExpectedBalance: user.Balance,
			NewBalance:      newBalance,
			NewRank:         cfg.TierFor(newBalance),
			ProfitPercent:   result.ProfitPercent,
			ProfitAmount:    userProfit,
		}

		err = s.userRepo.ApplyProfit(ctx, app)
		switch {
		case err == nil:
			// Убыточный день долю компании не образует — бонусов нет
			if !companyPortion.IsPositive() {
				return nil
			}

			werr := s.walker.WalkAndCredit(ctx, cfg, user, companyPortion, result)
			if werr != nil {
				if errors.Is(werr, domain.ErrReferralCycle) {
					// Цикл портит только аплайн этого пользователя;
					// остальные пользователи обрабатываются дальше
					s.logger.Error("referral cycle detected, upline bonuses skipped",
						zap.Int64("user_id", user.ID),
						zap.String("trading_result_id", result.ID),
						zap.Error(werr))
					return nil
				}
				return werr
			}
			return nil

		case errors.Is(err, postgres.ErrEntryExists):
			// Пользователь уже начислен конкурентным запуском вместе с бонусами
			return nil

		case errors.Is(err, postgres.ErrBalanceConflict):
			fresh, gerr := s.userRepo.GetUserByID(ctx, user.ID)
			if gerr != nil {
				return fmt.Errorf("distribution service: failed to reload user %d: %w", user.ID, gerr)
			}
			user = fresh

		default:
			return fmt.Errorf("distribution service: failed to apply profit for user %d: %w", user.ID, err)
		}
	}

	return fmt.Errorf("distribution service: profit for user %d: %w", user.ID, domain.ErrConcurrencyConflict)
}
