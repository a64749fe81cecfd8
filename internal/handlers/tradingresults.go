package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/avc/profitshare/internal/domain"
	"github.com/avc/profitshare/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TradingResultsHandler struct {
	resultService domain.TradingResultService
	logger        *zap.Logger
}

func NewTradingResultsHandler(resultService domain.TradingResultService, logger *zap.Logger) *TradingResultsHandler {
	return &TradingResultsHandler{
		resultService: resultService,
		logger:        logger,
	}
}

type createTradingResultRequest struct {
	TradingDate   string          `json:"trading_date"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

// Create регистрирует торговый результат за календарную дату
func (h *TradingResultsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTradingResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	tradingDate, err := time.Parse("2006-01-02", req.TradingDate)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	result, err := h.resultService.Create(r.Context(), tradingDate, req.ProfitPercent)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProfitPercent) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, domain.ErrTradingResultExists) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to create trading result", zap.Error(err), zap.String("trading_date", req.TradingDate))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("failed to encode trading result response", zap.Error(err))
	}
}

// List возвращает торговые результаты, новые первыми
func (h *TradingResultsHandler) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.resultService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list trading results", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(results) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(results); err != nil {
		h.logger.Error("failed to encode trading results response", zap.Error(err))
	}
}

// Get возвращает торговый результат с агрегатами его распределения
func (h *TradingResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	details, err := h.resultService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTradingResultNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get trading result", zap.Error(err), zap.String("id", id))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(details); err != nil {
		h.logger.Error("failed to encode trading result details", zap.Error(err))
	}
}
