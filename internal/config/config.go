package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string // Адрес и порт запуска сервиса
	DatabaseURI string // URI подключения к БД
	LogLevel    string // Уровень логирования

	// Внешний API боллетов
	BoletoAPIURL       string        // Эндпоинт поиска боллета по штрихкоду
	BoletoAPIAuthURL   string        // Эндпоинт получения токена
	ClientID           string        // client_id для аутентификации во внешнем API
	ClientSecret       string        // client_secret для аутентификации во внешнем API
	RemoteTimeout      time.Duration // Таймаут запросов к внешнему API
	TokenRefreshMargin time.Duration // За сколько до истечения обновлять токен

	// Правила перерасчета
	ValidBoletoType string          // Единственный тип боллета, допустимый для перерасчета
	FinePercent     decimal.Decimal // Штраф, % от суммы
	InterestPercent decimal.Decimal // Пеня, % от суммы в день

	// JWT для клиентов API
	JWTSecret   string        // Секретный ключ для JWT
	JWTTokenTTL time.Duration // Время жизни JWT токена

	// Пользователь по умолчанию (без БД)
	InMemoryUser  bool
	DefaultEmail  string
	DefaultSecret string

	// Worker Pool конфигурация
	WorkerPoolSize  int // Количество воркеров пакетного перерасчета
	WorkerQueueSize int // Размер очереди задач
	MaxBatchSize    int // Максимум позиций в одном пакетном запросе

	// Валидация
	MinPasswordLength int // Минимальная длина пароля
}

// Load загружает конфигурацию из переменных окружения и флагов командной строки
func Load() (*Config, error) {
	return load(os.Args[1:])
}

// load загружает конфигурацию
// Приоритет: env переменные > флаги > дефолтные значения
func load(args []string) (*Config, error) {
	cfg := &Config{
		LogLevel:          "info",
		RemoteTimeout:     10 * time.Second,
		ValidBoletoType:   "NPC",
		FinePercent:       decimal.NewFromInt(2),
		InterestPercent:   decimal.RequireFromString("0.033"),
		JWTTokenTTL:       10 * time.Minute,
		WorkerPoolSize:    4,
		WorkerQueueSize:   100,
		MaxBatchSize:      100,
		MinPasswordLength: 6,
	}

	// Определяем флаги
	fs := flag.NewFlagSet("boletoservice", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	fs.StringVar(&cfg.BoletoAPIURL, "b", "", "boleto lookup API URL")
	fs.StringVar(&cfg.BoletoAPIAuthURL, "u", "", "boleto API authentication URL")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	lookupString("RUN_ADDRESS", &cfg.RunAddress)
	lookupString("DATABASE_URI", &cfg.DatabaseURI)
	lookupString("LOG_LEVEL", &cfg.LogLevel)
	lookupString("BOLETO_API_URL", &cfg.BoletoAPIURL)
	lookupString("BOLETO_API_AUTH_URL", &cfg.BoletoAPIAuthURL)
	lookupString("BOLETO_CLIENT_ID", &cfg.ClientID)
	lookupString("BOLETO_CLIENT_SECRET", &cfg.ClientSecret)
	lookupString("VALID_BOLETO_TYPE", &cfg.ValidBoletoType)
	lookupString("DEFAULT_EMAIL", &cfg.DefaultEmail)
	lookupString("DEFAULT_SECRET", &cfg.DefaultSecret)

	// JWT секрет (только из env, не из флагов для безопасности)
	if envJWTSecret, ok := os.LookupEnv("JWT_SECRET"); ok {
		cfg.JWTSecret = envJWTSecret
	} else {
		cfg.JWTSecret = "default-secret-key-change-in-production"
	}

	if envInMemory, ok := os.LookupEnv("IN_MEMORY_USER"); ok {
		if v, err := strconv.ParseBool(envInMemory); err == nil {
			cfg.InMemoryUser = v
		}
	}

	lookupDuration("REMOTE_TIMEOUT", &cfg.RemoteTimeout)
	lookupDuration("JWT_TOKEN_TTL", &cfg.JWTTokenTTL)
	lookupPositiveInt("WORKER_POOL_SIZE", &cfg.WorkerPoolSize)
	lookupPositiveInt("WORKER_QUEUE_SIZE", &cfg.WorkerQueueSize)
	lookupPositiveInt("MAX_BATCH_SIZE", &cfg.MaxBatchSize)
	lookupPositiveInt("MIN_PASSWORD_LENGTH", &cfg.MinPasswordLength)

	// Отступ может быть нулевым: тогда токен обновляется ровно в момент истечения
	if envMargin, ok := os.LookupEnv("TOKEN_REFRESH_MARGIN"); ok {
		if margin, err := time.ParseDuration(envMargin); err == nil && margin >= 0 {
			cfg.TokenRefreshMargin = margin
		}
	}

	// Ставки задают деньги, поэтому невалидное значение - ошибка, а не дефолт
	if err := lookupPercent("FINE_PERCENT", &cfg.FinePercent); err != nil {
		return nil, err
	}
	if err := lookupPercent("INTEREST_PERCENT", &cfg.InterestPercent); err != nil {
		return nil, err
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.BoletoAPIURL == "" {
		return nil, fmt.Errorf("boleto API URL is required (use -b flag or BOLETO_API_URL env)")
	}

	if cfg.BoletoAPIAuthURL == "" {
		return nil, fmt.Errorf("boleto API auth URL is required (use -u flag or BOLETO_API_AUTH_URL env)")
	}

	if cfg.InMemoryUser && (cfg.DefaultEmail == "" || cfg.DefaultSecret == "") {
		return nil, fmt.Errorf("DEFAULT_EMAIL and DEFAULT_SECRET are required when IN_MEMORY_USER is enabled")
	}

	return cfg, nil
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func lookupDuration(key string, dst *time.Duration) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
		}
	}
}

func lookupPositiveInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			*dst = n
		}
	}
}

func lookupPercent(key string, dst *decimal.Decimal) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d.IsNegative() {
		return fmt.Errorf("invalid %s %q: must not be negative", key, v)
	}

	*dst = d
	return nil
}
