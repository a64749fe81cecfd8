package service

import (
	"context"
	"testing"
	"time"

	"github.com/avc/profitshare/internal/domain"
	domainmocks "github.com/avc/profitshare/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTradingResultService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockResultRepo := domainmocks.NewTradingResultRepositoryMock(t)
		svc := NewTradingResultService(mockResultRepo)

		percent := dec("10")
		day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		created := &domain.TradingResult{ID: "id", TradingDate: day, ProfitPercent: percent}

		mockResultRepo.EXPECT().CreateTradingResult(mock.Anything, day, percent).Return(created, nil).Once()

		result, err := svc.Create(ctx, day, percent)
		require.NoError(t, err)
		assert.Equal(t, created, result)
	})

	t.Run("Time of day and zone dropped", func(t *testing.T) {
		mockResultRepo := domainmocks.NewTradingResultRepositoryMock(t)
		svc := NewTradingResultService(mockResultRepo)

		percent := dec("10")
		msk := time.FixedZone("MSK", 3*60*60)
		input := time.Date(2026, 8, 20, 15, 4, 5, 0, msk)
		day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

		mockResultRepo.EXPECT().CreateTradingResult(mock.Anything, day, percent).
			Return(&domain.TradingResult{ID: "id", TradingDate: day, ProfitPercent: percent}, nil).Once()

		_, err := svc.Create(ctx, input, percent)
		require.NoError(t, err)
	})

	t.Run("Percent out of range", func(t *testing.T) {
		mockResultRepo := domainmocks.NewTradingResultRepositoryMock(t)
		svc := NewTradingResultService(mockResultRepo)

		day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

		for _, percent := range []string{"150", "-100.01"} {
			result, err := svc.Create(ctx, day, dec(percent))
			assert.ErrorIs(t, err, ErrInvalidProfitPercent)
			assert.Nil(t, result)
		}
	})

	t.Run("Boundary percent accepted", func(t *testing.T) {
		mockResultRepo := domainmocks.NewTradingResultRepositoryMock(t)
		svc := NewTradingResultService(mockResultRepo)

		percent := dec("-100")
		day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

		mockResultRepo.EXPECT().CreateTradingResult(mock.Anything, day, percent).
			Return(&domain.TradingResult{ID: "id", TradingDate: day, ProfitPercent: percent}, nil).Once()

		_, err := svc.Create(ctx, day, percent)
		require.NoError(t, err)
	})

	t.Run("Duplicate date", func(t *testing.T) {
		mockResultRepo := domainmocks.NewTradingResultRepositoryMock(t)
		svc := NewTradingResultService(mockResultRepo)

		percent := dec("10")
		day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

		mockResultRepo.EXPECT().CreateTradingResult(mock.Anything, day, percent).
			Return(nil, domain.ErrTradingResultExists).Once()

		result, err := svc.Create(ctx, day, percent)
		assert.ErrorIs(t, err, domain.ErrTradingResultExists)
		assert.Nil(t, result)
	})
}

func TestTradingResultService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockResultRepo := domainmocks.NewTradingResultRepositoryMock(t)
		svc := NewTradingResultService(mockResultRepo)

		result := unprocessedResult()
		totals := &domain.DistributionTotals{UsersCredited: 3, TotalProfit: dec("180")}

		mockResultRepo.EXPECT().GetTradingResultByID(mock.Anything, result.ID).Return(result, nil).Once()
		mockResultRepo.EXPECT().GetDistributionTotals(mock.Anything, result.ID).Return(totals, nil).Once()

		details, err := svc.Get(ctx, result.ID)
		require.NoError(t, err)
		assert.Equal(t, result, details.Result)
		assert.Equal(t, totals, details.Totals)
	})

	t.Run("Not found", func(t *testing.T) {
		mockResultRepo := domainmocks.NewTradingResultRepositoryMock(t)
		svc := NewTradingResultService(mockResultRepo)

		mockResultRepo.EXPECT().GetTradingResultByID(mock.Anything, "missing").
			Return(nil, domain.ErrTradingResultNotFound).Once()

		details, err := svc.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrTradingResultNotFound)
		assert.Nil(t, details)
	})
}

func TestTradingResultService_List(t *testing.T) {
	ctx := context.Background()

	mockResultRepo := domainmocks.NewTradingResultRepositoryMock(t)
	svc := NewTradingResultService(mockResultRepo)

	results := []*domain.TradingResult{unprocessedResult()}

	mockResultRepo.EXPECT().ListTradingResults(mock.Anything).Return(results, nil).Once()

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, results, got)
}
