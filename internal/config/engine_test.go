package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avc/profitshare/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultEngineConfig(t *testing.T) {
	cfg := DefaultEngineConfig()

	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Tiers, 5)
	assert.Len(t, cfg.LevelBonuses, 10)
	assert.Equal(t, 10, cfg.MaxBonusDepth)
	assert.True(t, cfg.NetworkScale.Equal(decimal.NewFromInt(1)))

	// Производственная таблица: INVESTOR 1000..4999, 60/40, 7 уровней
	tc, err := cfg.TierConfig(domain.RankInvestor)
	require.NoError(t, err)
	assert.True(t, tc.MinBalance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, tc.ProfitShareUser.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, 7, tc.BonusLevels)

	rate, err := cfg.LevelRate(1)
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.NewFromInt(20)))
}

func TestEngineConfigSource_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults without file", func(t *testing.T) {
		source := NewEngineConfigSource("")

		cfg, err := source.Snapshot(ctx)
		require.NoError(t, err)
		assert.Len(t, cfg.Tiers, 5)
		assert.Equal(t, domain.RankVVIP, cfg.TierFor(decimal.NewFromInt(10000)))
	})

	t.Run("Scale override from file", func(t *testing.T) {
		path := writeEngineFile(t, "network_scale: 100\n")
		source := NewEngineConfigSource(path)

		cfg, err := source.Snapshot(ctx)
		require.NoError(t, err)
		assert.True(t, cfg.NetworkScale.Equal(decimal.NewFromInt(100)))
		// Пороги понижены в 100 раз, таблица рангов дефолтная
		assert.Equal(t, domain.RankVVIP, cfg.TierFor(decimal.NewFromInt(100)))
	})

	t.Run("Level bonuses override from file", func(t *testing.T) {
		path := writeEngineFile(t, levelBonusYAML())
		source := NewEngineConfigSource(path)

		cfg, err := source.Snapshot(ctx)
		require.NoError(t, err)

		rate, err := cfg.LevelRate(1)
		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.NewFromInt(10)))
	})

	t.Run("Invalid override fails validation", func(t *testing.T) {
		// Уровни покрывают не все глубины 1..10
		path := writeEngineFile(t, "level_bonuses:\n  - {level: 1, percentage: 20}\n")
		source := NewEngineConfigSource(path)

		_, err := source.Snapshot(ctx)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("Missing file", func(t *testing.T) {
		source := NewEngineConfigSource(filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := source.Snapshot(ctx)
		assert.Error(t, err)
	})
}

func levelBonusYAML() string {
	return `level_bonuses:
  - {level: 1, percentage: 10}
  - {level: 2, percentage: 4}
  - {level: 3, percentage: 4}
  - {level: 4, percentage: 4}
  - {level: 5, percentage: 4}
  - {level: 6, percentage: 4}
  - {level: 7, percentage: 4}
  - {level: 8, percentage: 4}
  - {level: 9, percentage: 4}
  - {level: 10, percentage: 4}
`
}

func writeEngineFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
