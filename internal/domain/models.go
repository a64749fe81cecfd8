package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RankTier представляет ранг пользователя, производный от баланса
type RankTier string

const (
	RankStarter  RankTier = "STARTER"
	RankBeginner RankTier = "BEGINNER"
	RankInvestor RankTier = "INVESTOR"
	RankVIP      RankTier = "VIP"
	RankVVIP     RankTier = "VVIP"
)

// TransactionType представляет тип записи в журнале транзакций
type TransactionType string

const (
	TransactionTypeProfit     TransactionType = "PROFIT"
	TransactionTypeBonus      TransactionType = "BONUS"
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// User представляет пользователя платформы.
// Ранг никогда не выставляется напрямую — только пересчетом от баланса.
type User struct {
	ID         int64           `json:"id"`
	Login      string          `json:"login"`
	Balance    decimal.Decimal `json:"balance"`
	Rank       RankTier        `json:"rank"`
	ReferrerID *int64          `json:"referrer_id,omitempty"` // Может быть null — корень реферального дерева
	CreatedAt  time.Time       `json:"created_at"`
}

// TradingResult представляет торговый результат за одну календарную дату
type TradingResult struct {
	ID            string          `json:"id"`
	TradingDate   time.Time       `json:"trading_date"`
	ProfitPercent decimal.Decimal `json:"profit_percent"` // Знаковый: отрицательный = убыток
	ProcessedAt   *time.Time      `json:"processed_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProfitApplication описывает атомарное начисление прибыли одному пользователю:
// обновление баланса и ранга, записи в profit_history и transactions,
// а также маркер завершенности для данного торгового результата
type ProfitApplication struct {
	TradingResultID string
	TradingDate     time.Time
	UserID          int64
	ExpectedBalance decimal.Decimal // Оптимистичная проверка на гонку по балансу
	NewBalance      decimal.Decimal
	NewRank         RankTier
	ProfitPercent   decimal.Decimal
	ProfitAmount    decimal.Decimal
}

// BonusApplication описывает атомарное начисление реферального бонуса аплайну
type BonusApplication struct {
	TradingResultID string
	TradingDate     time.Time
	UserID          int64 // Получатель бонуса (аплайн)
	SourceUserID    int64 // Пользователь, чья прибыль породила бонус
	Level           int   // Глубина в реферальной цепочке (1..N)
	Rate            decimal.Decimal
	ExpectedBalance decimal.Decimal
	NewBalance      decimal.Decimal
	NewRank         RankTier
	BonusAmount     decimal.Decimal
}

// DistributionSummary представляет итог одного запуска распределения
type DistributionSummary struct {
	TradingResultID       string          `json:"trading_result_id"`
	UsersAffected         int             `json:"users_affected"`
	TotalBonusDistributed decimal.Decimal `json:"total_bonus_distributed"`
}

// DistributionTotals содержит агрегаты журналов по одному торговому результату
// для сверки с итогом распределения
type DistributionTotals struct {
	UsersCredited int             `json:"users_credited"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
	BonusPayouts  int             `json:"bonus_payouts"`
	TotalBonus    decimal.Decimal `json:"total_bonus"`
}

// TradingResultDetails объединяет торговый результат и агрегаты его распределения
type TradingResultDetails struct {
	Result *TradingResult      `json:"result"`
	Totals *DistributionTotals `json:"totals"`
}
