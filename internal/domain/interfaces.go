package domain

import "context"

// BoletoRepository определяет методы хранилища боллетов.
// FindByCode и FindByID возвращают ErrBoletoNotFound, если запись отсутствует.
type BoletoRepository interface {
	FindByCode(ctx context.Context, code string) (*Boleto, error)
	Insert(ctx context.Context, boleto *Boleto) error
	Save(ctx context.Context, boleto *Boleto) error
	DeleteByID(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Boleto, error)
	FindAll(ctx context.Context) ([]*Boleto, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id string) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// TokenSource выдает действующий токен внешнего API
type TokenSource interface {
	AcquireToken(ctx context.Context) (string, error)
	Invalidate()
}

// BoletoClient определяет методы взаимодействия с внешним API боллетов
type BoletoClient interface {
	FetchByCode(ctx context.Context, code string) (*Boleto, error)
}

// BoletoService определяет методы перерасчета и чтения боллетов
type BoletoService interface {
	Recalculate(ctx context.Context, barCode, paymentDate string) (*Boleto, error)
	FindAll(ctx context.Context) ([]*Boleto, error)
	FindByID(ctx context.Context, id string) (*Boleto, error)
	DeleteByID(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// BatchRecalculator выполняет пакетный перерасчет
type BatchRecalculator interface {
	Recalculate(ctx context.Context, requests []RecalculationRequest) []RecalculationResult
}

// UserService определяет методы управления пользователями
type UserService interface {
	Add(ctx context.Context, name, email, secret string) (*User, error)
	Update(ctx context.Context, id, name, email, secret string) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*User, error)
	Exists(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
}

// AuthService определяет методы аутентификации клиентов API
type AuthService interface {
	Authenticate(ctx context.Context, email, secret string) (*AuthToken, error)
}
