package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/profitshare/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DistributionHandler struct {
	distributionService domain.DistributionService
	logger              *zap.Logger
}

func NewDistributionHandler(distributionService domain.DistributionService, logger *zap.Logger) *DistributionHandler {
	return &DistributionHandler{
		distributionService: distributionService,
		logger:              logger,
	}
}

// Distribute запускает распределение прибыли по торговому результату
func (h *DistributionHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	summary, err := h.distributionService.Distribute(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTradingResultNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrAlreadyProcessed):
			http.Error(w, "Conflict", http.StatusConflict)
		case errors.Is(err, domain.ErrDistributionInProgress):
			http.Error(w, "Conflict", http.StatusConflict)
		default:
			h.logger.Error("distribution failed", zap.Error(err), zap.String("trading_result_id", id))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		h.logger.Error("failed to encode distribution summary", zap.Error(err))
	}
}
