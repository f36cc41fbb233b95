package service

import (
	"fmt"
	"time"

	"github.com/avc/boleto-interest-service/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// PaymentDateLayout формат даты оплаты во входящих запросах
const PaymentDateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// InterestCalculator рассчитывает штраф и проценты просроченного боллета
type InterestCalculator struct {
	finePercent     decimal.Decimal
	interestPercent decimal.Decimal
}

// NewInterestCalculator создает новый InterestCalculator.
// Ставки задаются в процентах: штраф от суммы, проценты от суммы за день.
func NewInterestCalculator(finePercent, interestPercent decimal.Decimal) *InterestCalculator {
	return &InterestCalculator{
		finePercent:     finePercent,
		interestPercent: interestPercent,
	}
}

// Calculate возвращает новый боллет с начисленными штрафом и процентами.
// Исходный боллет не изменяется.
func (c *InterestCalculator) Calculate(boleto *domain.Boleto, paymentDate string) (*domain.Boleto, error) {
	payment, err := time.Parse(PaymentDateLayout, paymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: payment date %q: %v", domain.ErrInvalidInput, paymentDate, err)
	}

	days := daysToPay(boleto.DueDate.Time, payment)

	original := boleto.Amount
	fine := original.Mul(c.finePercent).Div(hundred)
	interest := original.Mul(c.interestPercent).Div(hundred).Mul(decimal.NewFromInt(days))

	result := *boleto
	result.OriginalAmount = decimal.NewNullDecimal(original)
	result.PaymentDate = pgtype.Date{Time: payment, Valid: true}
	result.FineAmountCalculated = decimal.NewNullDecimal(fine)
	result.InterestAmountCalculated = decimal.NewNullDecimal(interest)
	result.Amount = original.Add(fine).Add(interest)

	return &result, nil
}

// daysToPay считает дни от начала дня оплаты до конца дня погашения,
// неполный день погашения считается целым. Оплата позже срока дает отрицательное число.
func daysToPay(dueDate, paymentDate time.Time) int64 {
	due := calendarDay(dueDate)
	payment := calendarDay(paymentDate)

	return int64(due.Sub(payment)/(24*time.Hour)) + 1
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
