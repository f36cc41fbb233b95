package domain

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Boleto представляет платежный документ, полученный из внешней системы
type Boleto struct {
	ID                string          `json:"-"` // Ключ хранилища, назначается при вставке
	Code              string          `json:"code"`
	DueDate           pgtype.Date     `json:"due_date"`
	Amount            decimal.Decimal `json:"amount"`
	RecipientName     string          `json:"recipient_name"`
	RecipientDocument string          `json:"recipient_document"`
	Type              string          `json:"type"`

	// Заполняются только после перерасчета
	OriginalAmount           decimal.NullDecimal `json:"original_amount"`
	PaymentDate              pgtype.Date         `json:"payment_date"`
	InterestAmountCalculated decimal.NullDecimal `json:"interest_amount_calculated"`
	FineAmountCalculated     decimal.NullDecimal `json:"fine_amount_calculated"`
}

// Recalculated сообщает, был ли выполнен перерасчет
func (b *Boleto) Recalculated() bool {
	return b.OriginalAmount.Valid && b.InterestAmountCalculated.Valid && b.FineAmountCalculated.Valid
}

// User представляет пользователя API
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	SecretHash string    `json:"-"` // Не отправляем хеш в JSON
	CreatedAt  time.Time `json:"created_at"`
}

// AuthToken представляет выданный клиенту JWT
type AuthToken struct {
	Token      string `json:"token"`
	Expiration string `json:"expiration"`
}

// RecalculationRequest представляет запрос на перерасчет одного боллета
type RecalculationRequest struct {
	BarCode     string `json:"bar_code" validate:"required"`
	PaymentDate string `json:"payment_date" validate:"required"`
}

// RecalculationResult представляет результат перерасчета в пакетной обработке
type RecalculationResult struct {
	BarCode string
	Boleto  *Boleto
	Err     error
}
