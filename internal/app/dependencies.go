package app

import (
	"github.com/avc/profitshare/internal/config"
	"github.com/avc/profitshare/internal/domain"
	"github.com/avc/profitshare/internal/handlers"
	"github.com/avc/profitshare/internal/repository/postgres"
	"github.com/avc/profitshare/internal/service"
	"github.com/avc/profitshare/internal/utils/jwt"
	"github.com/avc/profitshare/internal/utils/password"
	"github.com/avc/profitshare/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user   domain.UserRepository
	result domain.TradingResultRepository
}

// services содержит все сервисы приложения
type services struct {
	distribution domain.DistributionService
	result       domain.TradingResultService
	token        domain.TokenService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	token        *handlers.TokenHandler
	results      *handlers.TradingResultsHandler
	distribution *handlers.DistributionHandler
	health       *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		user:   postgres.NewUserRepository(dbPool),
		result: postgres.NewTradingResultRepository(dbPool),
	}

	// Создание утилит
	accessKeyHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Источник конфигурации движка: файл либо встроенные таблицы
	engineConfigSource := config.NewEngineConfigSource(cfg.EngineConfigPath)

	// Создание сервисов
	svcs := &services{
		distribution: service.NewDistributionService(repos.user, repos.result, engineConfigSource, logger),
		result:       service.NewTradingResultService(repos.result),
		token:        service.NewTokenService(cfg.AdminAccessKeyHash, accessKeyHasher, jwtManager),
	}

	// Создание handlers
	hdlrs := &handlerSet{
		token:        handlers.NewTokenHandler(svcs.token, logger),
		results:      handlers.NewTradingResultsHandler(svcs.result, logger),
		distribution: handlers.NewDistributionHandler(svcs.distribution, logger),
		health:       handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание worker pool
	workerPool := worker.NewPool(
		cfg.WorkerPoolSize,
		cfg.WorkerQueueSize,
		cfg.WorkerScanInterval,
		repos.result,
		svcs.distribution,
		logger,
	)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
