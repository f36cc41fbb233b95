package domain

import "errors"

// Результаты перерасчета боллета
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrServiceUnavailable = errors.New("boleto service unavailable")
	ErrBoletoNotFound     = errors.New("boleto not found")
	ErrInvalidType        = errors.New("invalid boleto type")
	ErrNotExpired         = errors.New("boleto is not expired")
	ErrStorageFailure     = errors.New("boleto storage failure")
)

// Ошибки внешнего API
var (
	ErrAuthenticationFailed = errors.New("remote authentication failed")
)

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
