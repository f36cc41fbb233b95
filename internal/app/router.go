package app

import (
	"github.com/avc/boleto-interest-service/internal/handlers"
	"github.com/avc/boleto-interest-service/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(h *handlerSet, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, h, jwtManager)

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
func setupRoutes(r *chi.Mux, h *handlerSet, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/user/authenticate", h.users.Authenticate)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Route("/api/boletoservice", func(r chi.Router) {
			r.Post("/calc-interest", h.boleto.CalcInterest)
			r.Post("/calc-interest/batch", h.boleto.CalcInterestBatch)
			r.Get("/boletos", h.boleto.List)
			r.Get("/boletos/count", h.boleto.Count)
			r.Get("/boletos/{id}", h.boleto.Get)
			r.Delete("/boletos/{id}", h.boleto.Delete)
		})

		r.Post("/api/user/addUser", h.users.AddUser)
		r.Post("/api/user/updateUser", h.users.UpdateUser)
		r.Delete("/api/user/deleteUser/{user-id}", h.users.DeleteUser)
		r.Get("/api/user/getUser/{user-id}", h.users.GetUser)
	})
}
