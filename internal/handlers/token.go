package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc/profitshare/internal/domain"
	"go.uber.org/zap"
)

type TokenHandler struct {
	tokenService domain.TokenService
	logger       *zap.Logger
}

func NewTokenHandler(tokenService domain.TokenService, logger *zap.Logger) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
		logger:       logger,
	}
}

type tokenRequest struct {
	AccessKey string `json:"access_key"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue обменивает операторский ключ доступа на JWT токен
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.tokenService.Issue(r.Context(), req.AccessKey)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAccessKey) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		h.logger.Error("failed to issue token", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tokenResponse{Token: token}); err != nil {
		h.logger.Error("failed to encode token response", zap.Error(err))
	}
}
