package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/profitshare/internal/domain"
	domainmocks "github.com/avc/profitshare/internal/domain/mocks"
	"github.com/avc/profitshare/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testResultID = "6f1d3a52-8a6e-4a8e-9d2b-0c8f3a1e5b77"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// withURLParam добавляет chi route context с URL параметром
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestTokenHandler_Issue(t *testing.T) {
	mockService := domainmocks.NewTokenServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewTokenHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Issue(mock.Anything, "secret-key").Return("token", nil).Once()

		body := `{"access_key":"secret-key"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/token", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Issue(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Authorization"), "Bearer token")

		var resp tokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "token", resp.Token)
	})

	t.Run("Invalid access key", func(t *testing.T) {
		mockService.EXPECT().Issue(mock.Anything, "wrong").Return("", domain.ErrInvalidAccessKey).Once()

		body := `{"access_key":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/token", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Issue(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		body := `{"access_key":}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/token", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Issue(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTradingResultsHandler_Create(t *testing.T) {
	mockService := domainmocks.NewTradingResultServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewTradingResultsHandler(mockService, logger)

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		created := &domain.TradingResult{ID: testResultID, TradingDate: day, ProfitPercent: dec("10")}

		mockService.EXPECT().Create(mock.Anything, day, mock.MatchedBy(func(p decimal.Decimal) bool {
			return p.Equal(dec("10"))
		})).Return(created, nil).Once()

		body := `{"trading_date":"2026-08-20","profit_percent":"10"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp domain.TradingResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, testResultID, resp.ID)
	})

	t.Run("Negative percent accepted", func(t *testing.T) {
		created := &domain.TradingResult{ID: testResultID, TradingDate: day, ProfitPercent: dec("-2.5")}

		mockService.EXPECT().Create(mock.Anything, day, mock.MatchedBy(func(p decimal.Decimal) bool {
			return p.Equal(dec("-2.5"))
		})).Return(created, nil).Once()

		body := `{"trading_date":"2026-08-20","profit_percent":-2.5}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Percent out of range", func(t *testing.T) {
		mockService.EXPECT().Create(mock.Anything, day, mock.Anything).
			Return(nil, service.ErrInvalidProfitPercent).Once()

		body := `{"trading_date":"2026-08-20","profit_percent":"150"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Duplicate date", func(t *testing.T) {
		mockService.EXPECT().Create(mock.Anything, day, mock.Anything).
			Return(nil, domain.ErrTradingResultExists).Once()

		body := `{"trading_date":"2026-08-20","profit_percent":"10"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid date format", func(t *testing.T) {
		body := `{"trading_date":"20.08.2026","profit_percent":"10"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		body := `{"trading_date":}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results", bytes.NewBufferString(body))
		w := httptest.NewRecorder()

		handler.Create(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTradingResultsHandler_List(t *testing.T) {
	mockService := domainmocks.NewTradingResultServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewTradingResultsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		results := []*domain.TradingResult{
			{ID: testResultID, TradingDate: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), ProfitPercent: dec("10")},
		}

		mockService.EXPECT().List(mock.Anything).Return(results, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/trading-results", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp []*domain.TradingResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, testResultID, resp[0].ID)
	})

	t.Run("No results", func(t *testing.T) {
		mockService.EXPECT().List(mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/trading-results", nil)
		w := httptest.NewRecorder()

		handler.List(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestTradingResultsHandler_Get(t *testing.T) {
	mockService := domainmocks.NewTradingResultServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewTradingResultsHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		details := &domain.TradingResultDetails{
			Result: &domain.TradingResult{ID: testResultID, ProfitPercent: dec("10")},
			Totals: &domain.DistributionTotals{UsersCredited: 3, TotalProfit: dec("180")},
		}

		mockService.EXPECT().Get(mock.Anything, testResultID).Return(details, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/trading-results/"+testResultID, nil)
		w := httptest.NewRecorder()

		handler.Get(w, withURLParam(req, "id", testResultID))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService.EXPECT().Get(mock.Anything, "missing").Return(nil, domain.ErrTradingResultNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/trading-results/missing", nil)
		w := httptest.NewRecorder()

		handler.Get(w, withURLParam(req, "id", "missing"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDistributionHandler_Distribute(t *testing.T) {
	mockService := domainmocks.NewDistributionServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewDistributionHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		summary := &domain.DistributionSummary{
			TradingResultID:       testResultID,
			UsersAffected:         3,
			TotalBonusDistributed: dec("24.40"),
		}

		mockService.EXPECT().Distribute(mock.Anything, testResultID).Return(summary, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results/"+testResultID+"/distribute", nil)
		w := httptest.NewRecorder()

		handler.Distribute(w, withURLParam(req, "id", testResultID))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp domain.DistributionSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.UsersAffected)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService.EXPECT().Distribute(mock.Anything, "missing").Return(nil, domain.ErrTradingResultNotFound).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results/missing/distribute", nil)
		w := httptest.NewRecorder()

		handler.Distribute(w, withURLParam(req, "id", "missing"))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Already processed", func(t *testing.T) {
		mockService.EXPECT().Distribute(mock.Anything, testResultID).Return(nil, domain.ErrAlreadyProcessed).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results/"+testResultID+"/distribute", nil)
		w := httptest.NewRecorder()

		handler.Distribute(w, withURLParam(req, "id", testResultID))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Distribution in progress", func(t *testing.T) {
		mockService.EXPECT().Distribute(mock.Anything, testResultID).Return(nil, domain.ErrDistributionInProgress).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results/"+testResultID+"/distribute", nil)
		w := httptest.NewRecorder()

		handler.Distribute(w, withURLParam(req, "id", testResultID))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid config", func(t *testing.T) {
		mockService.EXPECT().Distribute(mock.Anything, testResultID).Return(nil, domain.ErrInvalidConfig).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/trading-results/"+testResultID+"/distribute", nil)
		w := httptest.NewRecorder()

		handler.Distribute(w, withURLParam(req, "id", testResultID))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
