package config

import (
	"context"
	"fmt"

	"github.com/avc/profitshare/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// maxBonusDepth — предел глубины реферальной цепочки
const maxBonusDepth = 10

// EngineConfigSource читает конфигурацию движка из YAML файла, подставляя
// встроенные дефолты для всего, что файл не задает. Снимок перечитывается
// на каждый запуск распределения
type EngineConfigSource struct {
	path string
}

// NewEngineConfigSource создает источник конфигурации движка.
// Пустой путь означает работу только на встроенных дефолтах.
func NewEngineConfigSource(path string) *EngineConfigSource {
	return &EngineConfigSource{path: path}
}

// tierFile и levelFile — формы записей YAML файла
type tierFile struct {
	Tier               string   `mapstructure:"tier"`
	MinBalance         float64  `mapstructure:"min_balance"`
	MaxBalance         *float64 `mapstructure:"max_balance"`
	BonusLevels        int      `mapstructure:"bonus_levels"`
	ProfitShareUser    float64  `mapstructure:"profit_share_user"`
	ProfitShareCompany float64  `mapstructure:"profit_share_company"`
}

type levelFile struct {
	Level      int     `mapstructure:"level"`
	Percentage float64 `mapstructure:"percentage"`
}

type engineFile struct {
	NetworkScale float64     `mapstructure:"network_scale"`
	Tiers        []tierFile  `mapstructure:"tiers"`
	LevelBonuses []levelFile `mapstructure:"level_bonuses"`
}

// Snapshot возвращает провалидированный снимок конфигурации
func (s *EngineConfigSource) Snapshot(_ context.Context) (*domain.EngineConfig, error) {
	cfg := DefaultEngineConfig()

	if s.path != "" {
		v := viper.New()
		v.SetConfigFile(s.path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("engine config: failed to read %s: %w", s.path, err)
		}

		var file engineFile
		if err := v.Unmarshal(&file); err != nil {
			return nil, fmt.Errorf("engine config: failed to parse %s: %w", s.path, err)
		}

		applyFileOverrides(cfg, &file)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}

	return cfg, nil
}

// applyFileOverrides накладывает заданные в файле секции поверх дефолтов.
// Таблицы заменяются целиком: частичное слияние рангов дало бы
// непредсказуемые диапазоны.
func applyFileOverrides(cfg *domain.EngineConfig, file *engineFile) {
	if file.NetworkScale > 0 {
		cfg.NetworkScale = decimal.NewFromFloat(file.NetworkScale)
	}

	if len(file.Tiers) > 0 {
		tiers := make([]domain.RankTierConfig, 0, len(file.Tiers))
		for _, t := range file.Tiers {
			tier := domain.RankTierConfig{
				Tier:               domain.RankTier(t.Tier),
				MinBalance:         decimal.NewFromFloat(t.MinBalance),
				BonusLevels:        t.BonusLevels,
				ProfitShareUser:    decimal.NewFromFloat(t.ProfitShareUser),
				ProfitShareCompany: decimal.NewFromFloat(t.ProfitShareCompany),
			}
			if t.MaxBalance != nil {
				max := decimal.NewFromFloat(*t.MaxBalance)
				tier.MaxBalance = &max
			}
			tiers = append(tiers, tier)
		}
		cfg.Tiers = tiers
	}

	if len(file.LevelBonuses) > 0 {
		levels := make([]domain.LevelBonusEntry, 0, len(file.LevelBonuses))
		for _, l := range file.LevelBonuses {
			levels = append(levels, domain.LevelBonusEntry{
				Level:      l.Level,
				Percentage: decimal.NewFromFloat(l.Percentage),
			})
		}
		cfg.LevelBonuses = levels
	}
}

// DefaultEngineConfig возвращает производственные таблицы рангов и уровневых
// бонусов
func DefaultEngineConfig() *domain.EngineConfig {
	maxStarter := decimal.NewFromInt(499)
	maxBeginner := decimal.NewFromInt(999)
	maxInvestor := decimal.NewFromInt(4999)
	maxVIP := decimal.NewFromInt(9999)

	cfg := &domain.EngineConfig{
		Tiers: []domain.RankTierConfig{
			{
				Tier:               domain.RankStarter,
				MinBalance:         decimal.NewFromInt(100),
				MaxBalance:         &maxStarter,
				BonusLevels:        0,
				ProfitShareUser:    decimal.NewFromInt(50),
				ProfitShareCompany: decimal.NewFromInt(50),
			},
			{
				Tier:               domain.RankBeginner,
				MinBalance:         decimal.NewFromInt(500),
				MaxBalance:         &maxBeginner,
				BonusLevels:        3,
				ProfitShareUser:    decimal.NewFromInt(55),
				ProfitShareCompany: decimal.NewFromInt(45),
			},
			{
				Tier:               domain.RankInvestor,
				MinBalance:         decimal.NewFromInt(1000),
				MaxBalance:         &maxInvestor,
				BonusLevels:        7,
				ProfitShareUser:    decimal.NewFromInt(60),
				ProfitShareCompany: decimal.NewFromInt(40),
			},
			{
				Tier:               domain.RankVIP,
				MinBalance:         decimal.NewFromInt(5000),
				MaxBalance:         &maxVIP,
				BonusLevels:        10,
				ProfitShareUser:    decimal.NewFromInt(80),
				ProfitShareCompany: decimal.NewFromInt(20),
			},
			{
				Tier:               domain.RankVVIP,
				MinBalance:         decimal.NewFromInt(10000),
				BonusLevels:        10,
				ProfitShareUser:    decimal.NewFromInt(80),
				ProfitShareCompany: decimal.NewFromInt(20),
			},
		},
		NetworkScale:  decimal.NewFromInt(1),
		MaxBonusDepth: maxBonusDepth,
	}

	// Уровень 1 — 20%, уровни 2..10 — по 4%
	cfg.LevelBonuses = append(cfg.LevelBonuses, domain.LevelBonusEntry{
		Level:      1,
		Percentage: decimal.NewFromInt(20),
	})
	for level := 2; level <= maxBonusDepth; level++ {
		cfg.LevelBonuses = append(cfg.LevelBonuses, domain.LevelBonusEntry{
			Level:      level,
			Percentage: decimal.NewFromInt(4),
		})
	}

	return cfg
}
