package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress         string        // Адрес и порт запуска сервиса
	DatabaseURI        string        // URI подключения к БД
	EngineConfigPath   string        // Путь к YAML с таблицами рангов и бонусов (опционально)
	AdminAccessKeyHash string        // bcrypt-хеш операторского ключа доступа
	JWTSecret          string        // Секретный ключ для JWT
	JWTTokenTTL        time.Duration // Время жизни JWT токена
	LogLevel           string        // Уровень логирования

	// Worker Pool конфигурация (возобновление прерванных распределений)
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди торговых результатов
	WorkerScanInterval time.Duration // Интервал сканирования незавершенных распределений
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		JWTTokenTTL:        12 * time.Hour,
		LogLevel:           "info",
		WorkerPoolSize:     1,
		WorkerQueueSize:    16,
		WorkerScanInterval: 30 * time.Second,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.EngineConfigPath, "e", "", "engine config file (rank tiers and level bonuses)")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envEnginePath, ok := os.LookupEnv("ENGINE_CONFIG"); ok {
		cfg.EngineConfigPath = envEnginePath
	}

	// Секреты читаются только из env, не из флагов
	if envKeyHash, ok := os.LookupEnv("ADMIN_ACCESS_KEY_HASH"); ok {
		cfg.AdminAccessKeyHash = envKeyHash
	}

	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envTokenTTL, ok := os.LookupEnv("JWT_TOKEN_TTL"); ok {
		if ttl, err := time.ParseDuration(envTokenTTL); err == nil && ttl > 0 {
			cfg.JWTTokenTTL = ttl
		}
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Worker Pool конфигурация из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.AdminAccessKeyHash == "" {
		return nil, fmt.Errorf("admin access key hash is required (ADMIN_ACCESS_KEY_HASH env)")
	}

	return cfg, nil
}
