package app

import (
	"github.com/avc/profitshare/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Публичный эндпоинт обмена ключа доступа на токен
	r.Post("/api/admin/token", deps.handlers.token.Issue)

	// Защищенные операторские эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(deps.jwtManager))
		r.Post("/api/admin/trading-results", deps.handlers.results.Create)
		r.Get("/api/admin/trading-results", deps.handlers.results.List)
		r.Get("/api/admin/trading-results/{id}", deps.handlers.results.Get)
		r.Post("/api/admin/trading-results/{id}/distribute", deps.handlers.distribution.Distribute)
	})
}
