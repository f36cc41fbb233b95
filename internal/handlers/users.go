package handlers

import (
	"errors"
	"net/http"

	"github.com/avc/boleto-interest-service/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler обрабатывает запросы управления клиентами API и их аутентификации
type UserHandler struct {
	userService domain.UserService
	authService domain.AuthService
	logger      *zap.Logger
}

// NewUserHandler создает новый UserHandler
func NewUserHandler(userService domain.UserService, authService domain.AuthService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
		logger:      logger,
	}
}

type authenticateRequest struct {
	Email  string `json:"email" validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

type addUserRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Secret string `json:"secret" validate:"required"`
}

type updateUserRequest struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Secret string `json:"secret"`
}

// Authenticate выдает JWT по email и секрету
func (h *UserHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req authenticateRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Authenticate(r.Context(), req.Email, req.Secret)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to authenticate", zap.Error(err), zap.String("email", req.Email))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, token); err != nil {
		h.logger.Error("failed to encode token", zap.Error(err))
	}
}

// AddUser создает клиента API
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user, err := h.userService.Add(r.Context(), req.Name, req.Email, req.Secret)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to add user", zap.Error(err), zap.String("email", req.Email))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Debug("user added", zap.String("id", user.ID), zap.String("email", user.Email))

	if err := writeJSON(w, http.StatusOK, user); err != nil {
		h.logger.Error("failed to encode user", zap.Error(err))
	}
}

// UpdateUser изменяет клиента API
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err := h.userService.Update(r.Context(), req.ID, req.Name, req.Email, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "Not Found", http.StatusNotFound)
		case errors.Is(err, domain.ErrUserExists):
			http.Error(w, "Conflict", http.StatusConflict)
		case errors.Is(err, domain.ErrInvalidInput):
			http.Error(w, "Bad Request", http.StatusBadRequest)
		default:
			h.logger.Error("failed to update user", zap.Error(err), zap.String("id", req.ID))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// DeleteUser удаляет клиента API
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "user-id")

	if err := h.userService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to delete user", zap.Error(err), zap.String("id", id))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// GetUser возвращает клиента API по ID
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "user-id")

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to get user", zap.Error(err), zap.String("id", id))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, user); err != nil {
		h.logger.Error("failed to encode user", zap.Error(err))
	}
}
