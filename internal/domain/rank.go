package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RankTierConfig описывает один ранг: диапазон баланса, глубину реферальных
// бонусов и разделение прибыли между пользователем и компанией
type RankTierConfig struct {
	Tier               RankTier
	MinBalance         decimal.Decimal
	MaxBalance         *decimal.Decimal // nil — верхняя граница отсутствует (старший ранг)
	BonusLevels        int              // Максимальная глубина, на которой ранг получает бонус (0 — не получает)
	ProfitShareUser    decimal.Decimal  // Проценты, в сумме с ProfitShareCompany дают 100
	ProfitShareCompany decimal.Decimal
}

// LevelBonusEntry задает процент комиссии для одной глубины реферальной цепочки
type LevelBonusEntry struct {
	Level      int
	Percentage decimal.Decimal
}

// EngineConfig — неизменяемый снимок конфигурации движка распределения.
// Загружается один раз на запуск distribute, чтобы результат был
// воспроизводимой функцией своих входов.
type EngineConfig struct {
	Tiers         []RankTierConfig  // По возрастанию MinBalance
	LevelBonuses  []LevelBonusEntry // Уровни 1..MaxBonusDepth
	NetworkScale  decimal.Decimal   // Множитель баланса перед сравнением с порогами (тестовая сеть)
	MaxBonusDepth int
}

// TierFor возвращает ранг для баланса: старший ранг, чей MinBalance не
// превышает баланс с учетом NetworkScale. Балансы ниже минимального порога,
// включая нулевые и отрицательные, опускаются до младшего ранга.
func (c *EngineConfig) TierFor(balance decimal.Decimal) RankTier {
	scaled := balance.Mul(c.NetworkScale)

	for i := len(c.Tiers) - 1; i >= 0; i-- {
		if scaled.GreaterThanOrEqual(c.Tiers[i].MinBalance) {
			return c.Tiers[i].Tier
		}
	}

	return c.Tiers[0].Tier
}

// TierConfig возвращает конфигурацию ранга. Неизвестный ранг — ошибка
// конфигурации: Validate гарантирует, что при корректной таблице она недостижима.
func (c *EngineConfig) TierConfig(tier RankTier) (*RankTierConfig, error) {
	for i := range c.Tiers {
		if c.Tiers[i].Tier == tier {
			return &c.Tiers[i], nil
		}
	}

	return nil, fmt.Errorf("unknown rank tier %q: %w", tier, ErrInvalidConfig)
}

// LevelRate возвращает процент комиссии для глубины реферальной цепочки
func (c *EngineConfig) LevelRate(level int) (decimal.Decimal, error) {
	for _, entry := range c.LevelBonuses {
		if entry.Level == level {
			return entry.Percentage, nil
		}
	}

	return decimal.Zero, fmt.Errorf("no bonus percentage for level %d: %w", level, ErrInvalidConfig)
}

// Validate проверяет целостность снимка конфигурации перед запуском
// распределения: ошибки здесь терминальны и не допускают ни одной записи
func (c *EngineConfig) Validate() error {
	if len(c.Tiers) == 0 {
		return fmt.Errorf("no rank tiers configured: %w", ErrInvalidConfig)
	}

	if c.MaxBonusDepth <= 0 {
		return fmt.Errorf("max bonus depth must be positive, got %d: %w", c.MaxBonusDepth, ErrInvalidConfig)
	}

	if c.NetworkScale.LessThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("network scale must be >= 1, got %s: %w", c.NetworkScale, ErrInvalidConfig)
	}

	hundred := decimal.NewFromInt(100)
	for i, tier := range c.Tiers {
		if tier.Tier == "" {
			return fmt.Errorf("tier %d has empty name: %w", i, ErrInvalidConfig)
		}

		if !tier.ProfitShareUser.Add(tier.ProfitShareCompany).Equal(hundred) {
			return fmt.Errorf("tier %s: profit shares must sum to 100: %w", tier.Tier, ErrInvalidConfig)
		}

		if tier.ProfitShareUser.IsNegative() || tier.ProfitShareCompany.IsNegative() {
			return fmt.Errorf("tier %s: negative profit share: %w", tier.Tier, ErrInvalidConfig)
		}

		if tier.BonusLevels < 0 || tier.BonusLevels > c.MaxBonusDepth {
			return fmt.Errorf("tier %s: bonus levels %d out of range 0..%d: %w",
				tier.Tier, tier.BonusLevels, c.MaxBonusDepth, ErrInvalidConfig)
		}

		// Диапазоны должны идти по возрастанию и без перекрытий
		if i > 0 && !c.Tiers[i].MinBalance.GreaterThan(c.Tiers[i-1].MinBalance) {
			return fmt.Errorf("tier %s: min balance must ascend: %w", tier.Tier, ErrInvalidConfig)
		}

		if tier.MaxBalance != nil && tier.MaxBalance.LessThan(tier.MinBalance) {
			return fmt.Errorf("tier %s: max balance below min balance: %w", tier.Tier, ErrInvalidConfig)
		}
	}

	// Таблица уровневых бонусов должна покрывать все глубины 1..MaxBonusDepth
	covered := make(map[int]bool, len(c.LevelBonuses))
	for _, entry := range c.LevelBonuses {
		if entry.Level < 1 || entry.Level > c.MaxBonusDepth {
			return fmt.Errorf("bonus level %d out of range 1..%d: %w", entry.Level, c.MaxBonusDepth, ErrInvalidConfig)
		}

		if entry.Percentage.IsNegative() {
			return fmt.Errorf("bonus level %d: negative percentage: %w", entry.Level, ErrInvalidConfig)
		}

		if covered[entry.Level] {
			return fmt.Errorf("duplicate bonus level %d: %w", entry.Level, ErrInvalidConfig)
		}
		covered[entry.Level] = true
	}

	for level := 1; level <= c.MaxBonusDepth; level++ {
		if !covered[level] {
			return fmt.Errorf("missing bonus percentage for level %d: %w", level, ErrInvalidConfig)
		}
	}

	return nil
}
