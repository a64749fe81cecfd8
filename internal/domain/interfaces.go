package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (*User, error)
	ListUsersWithBalance(ctx context.Context) ([]*User, error)
	ApplyProfit(ctx context.Context, app ProfitApplication) error
	ApplyBonus(ctx context.Context, app BonusApplication) error
}

// TradingResultRepository определяет методы для работы с торговыми результатами
type TradingResultRepository interface {
	CreateTradingResult(ctx context.Context, tradingDate time.Time, profitPercent decimal.Decimal) (*TradingResult, error)
	GetTradingResultByID(ctx context.Context, id string) (*TradingResult, error)
	ListTradingResults(ctx context.Context) ([]*TradingResult, error)
	MarkProcessed(ctx context.Context, id string) error
	CompletedUserIDs(ctx context.Context, id string) (map[int64]struct{}, error)
	GetDistributionTotals(ctx context.Context, id string) (*DistributionTotals, error)
	GetUnfinishedTradingResults(ctx context.Context) ([]string, error)
}

// EngineConfigSource отдает снимок конфигурации движка для одного запуска
type EngineConfigSource interface {
	Snapshot(ctx context.Context) (*EngineConfig, error)
}

// DistributionService определяет единственную операцию движка распределения
type DistributionService interface {
	Distribute(ctx context.Context, tradingResultID string) (*DistributionSummary, error)
}

// TradingResultService определяет методы работы с торговыми результатами
type TradingResultService interface {
	Create(ctx context.Context, tradingDate time.Time, profitPercent decimal.Decimal) (*TradingResult, error)
	Get(ctx context.Context, id string) (*TradingResultDetails, error)
	List(ctx context.Context) ([]*TradingResult, error)
}

// TokenService определяет обмен операторского ключа доступа на токен
type TokenService interface {
	Issue(ctx context.Context, accessKey string) (string, error)
}
