package app

import (
	"fmt"

	"github.com/avc/boleto-interest-service/internal/config"
	"github.com/avc/boleto-interest-service/internal/domain"
	"github.com/avc/boleto-interest-service/internal/handlers"
	"github.com/avc/boleto-interest-service/internal/repository/postgres"
	"github.com/avc/boleto-interest-service/internal/service"
	"github.com/avc/boleto-interest-service/internal/utils/jwt"
	"github.com/avc/boleto-interest-service/internal/utils/password"
	"github.com/avc/boleto-interest-service/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	user   domain.UserRepository
	boleto domain.BoletoRepository
}

// services содержит все сервисы приложения
type services struct {
	session *service.SessionManager
	client  domain.BoletoClient
	boleto  domain.BoletoService
	auth    domain.AuthService
	user    domain.UserService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	boleto *handlers.BoletoHandler
	users  *handlers.UserHandler
	health *handlers.HealthHandler
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
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		user:   postgres.NewUserRepository(dbPool),
		boleto: postgres.NewBoletoRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	defaultUser, err := newDefaultUser(cfg, passwordHasher)
	if err != nil {
		return nil, err
	}

	// Внешний API боллетов
	session := service.NewSessionManager(service.SessionConfig{
		AuthURL:       cfg.BoletoAPIAuthURL,
		ClientID:      cfg.ClientID,
		ClientSecret:  cfg.ClientSecret,
		RefreshMargin: cfg.TokenRefreshMargin,
		Timeout:       cfg.RemoteTimeout,
	}, logger)
	client := service.NewBoletoClient(cfg.BoletoAPIURL, session, cfg.RemoteTimeout, logger)

	// Создание сервисов
	calculator := service.NewInterestCalculator(cfg.FinePercent, cfg.InterestPercent)
	svcs := &services{
		session: session,
		client:  client,
		boleto: service.NewBoletoService(client, repos.boleto, calculator, service.BoletoServiceConfig{
			ValidType: cfg.ValidBoletoType,
		}, logger),
		auth: service.NewAuthService(repos.user, passwordHasher, jwtManager, defaultUser),
		user: service.NewUserService(repos.user, passwordHasher, cfg.MinPasswordLength),
	}

	// Создание worker pool
	workerPool := worker.NewPool(cfg.WorkerPoolSize, cfg.WorkerQueueSize, svcs.boleto, logger)

	// Создание handlers
	hdlrs := &handlerSet{
		boleto: handlers.NewBoletoHandler(svcs.boleto, workerPool, cfg.MaxBatchSize, logger),
		users:  handlers.NewUserHandler(svcs.user, svcs.auth, logger),
		health: handlers.NewHealthHandler(dbPool, logger),
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}, nil
}

// newDefaultUser создает клиента из конфигурации, если включен режим без БД
func newDefaultUser(cfg *config.Config, hasher password.Hasher) (*domain.User, error) {
	if !cfg.InMemoryUser {
		return nil, nil
	}

	hash, err := hasher.Hash(cfg.DefaultSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default user secret: %w", err)
	}

	return &domain.User{
		Name:       "default",
		Email:      cfg.DefaultEmail,
		SecretHash: hash,
	}, nil
}
