package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/boleto-interest-service/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Денежные поля читаются как текст, чтобы не терять точность NUMERIC
const boletoColumns = `id::text, code, due_date, amount::text, recipient_name, recipient_document, type,
	original_amount::text, payment_date, interest_amount_calculated::text, fine_amount_calculated::text`

// BoletoRepository реализует domain.BoletoRepository
type BoletoRepository struct {
	db DBTX
}

// NewBoletoRepository создает новый BoletoRepository
func NewBoletoRepository(db DBTX) *BoletoRepository {
	return &BoletoRepository{db: db}
}

// FindByCode получает боллет по штрихкоду
func (r *BoletoRepository) FindByCode(ctx context.Context, code string) (*domain.Boleto, error) {
	boleto, err := scanBoleto(r.db.QueryRow(ctx,
		`SELECT `+boletoColumns+`
		 FROM boletos
		 WHERE code = $1
		 ORDER BY updated_at DESC
		 LIMIT 1`,
		code,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBoletoNotFound
		}
		return nil, fmt.Errorf("repository: failed to get boleto by code %q: %w", code, err)
	}

	return boleto, nil
}

// Insert добавляет новый боллет и назначает ему ключ
func (r *BoletoRepository) Insert(ctx context.Context, boleto *domain.Boleto) error {
	id := uuid.NewString()

	_, err := r.db.Exec(ctx,
		`INSERT INTO boletos (id, code, due_date, amount, recipient_name, recipient_document, type,
			original_amount, payment_date, interest_amount_calculated, fine_amount_calculated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		boletoArgs(id, boleto)...,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to insert boleto %q: %w", boleto.Code, err)
	}

	boleto.ID = id
	return nil
}

// Save перезаписывает все поля боллета по ключу, вставляя запись при ее отсутствии
func (r *BoletoRepository) Save(ctx context.Context, boleto *domain.Boleto) error {
	id := boleto.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO boletos (id, code, due_date, amount, recipient_name, recipient_document, type,
			original_amount, payment_date, interest_amount_calculated, fine_amount_calculated)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (id) DO UPDATE SET
			code = EXCLUDED.code,
			due_date = EXCLUDED.due_date,
			amount = EXCLUDED.amount,
			recipient_name = EXCLUDED.recipient_name,
			recipient_document = EXCLUDED.recipient_document,
			type = EXCLUDED.type,
			original_amount = EXCLUDED.original_amount,
			payment_date = EXCLUDED.payment_date,
			interest_amount_calculated = EXCLUDED.interest_amount_calculated,
			fine_amount_calculated = EXCLUDED.fine_amount_calculated,
			updated_at = NOW()`,
		boletoArgs(id, boleto)...,
	)

	if err != nil {
		return fmt.Errorf("repository: failed to save boleto %q: %w", boleto.Code, err)
	}

	boleto.ID = id
	return nil
}

// DeleteByID удаляет боллет по ключу
func (r *BoletoRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM boletos WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return domain.ErrBoletoNotFound
		}
		return fmt.Errorf("repository: failed to delete boleto %q: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrBoletoNotFound
	}

	return nil
}

// FindByID получает боллет по ключу
func (r *BoletoRepository) FindByID(ctx context.Context, id string) (*domain.Boleto, error) {
	boleto, err := scanBoleto(r.db.QueryRow(ctx,
		`SELECT `+boletoColumns+`
		 FROM boletos
		 WHERE id = $1`,
		id,
	))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, domain.ErrBoletoNotFound
		}
		return nil, fmt.Errorf("repository: failed to get boleto by id %q: %w", id, err)
	}

	return boleto, nil
}

// FindAll получает все боллеты
func (r *BoletoRepository) FindAll(ctx context.Context) ([]*domain.Boleto, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+boletoColumns+`
		 FROM boletos
		 ORDER BY created_at ASC`,
	)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get boletos: %w", err)
	}
	defer rows.Close()

	var boletos []*domain.Boleto
	for rows.Next() {
		boleto, err := scanBoleto(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan boleto: %w", err)
		}
		boletos = append(boletos, boleto)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating boletos: %w", err)
	}

	return boletos, nil
}

// Count возвращает количество боллетов
func (r *BoletoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM boletos`).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count boletos: %w", err)
	}

	return count, nil
}

// scanBoleto читает строку, выбранную с boletoColumns
func scanBoleto(row pgx.Row) (*domain.Boleto, error) {
	var (
		boleto         domain.Boleto
		dueDate        time.Time
		amount         string
		originalAmount *string
		paymentDate    *time.Time
		interestAmount *string
		fineAmount     *string
	)

	err := row.Scan(
		&boleto.ID, &boleto.Code, &dueDate, &amount,
		&boleto.RecipientName, &boleto.RecipientDocument, &boleto.Type,
		&originalAmount, &paymentDate, &interestAmount, &fineAmount,
	)
	if err != nil {
		return nil, err
	}

	boleto.DueDate = pgtype.Date{Time: dueDate, Valid: true}
	if boleto.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	if paymentDate != nil {
		boleto.PaymentDate = pgtype.Date{Time: *paymentDate, Valid: true}
	}
	if boleto.OriginalAmount, err = parseNullDecimal(originalAmount); err != nil {
		return nil, err
	}
	if boleto.InterestAmountCalculated, err = parseNullDecimal(interestAmount); err != nil {
		return nil, err
	}
	if boleto.FineAmountCalculated, err = parseNullDecimal(fineAmount); err != nil {
		return nil, err
	}

	return &boleto, nil
}

// boletoArgs собирает параметры INSERT в порядке колонок
func boletoArgs(id string, b *domain.Boleto) []any {
	return []any{
		id,
		b.Code,
		dateArg(b.DueDate),
		b.Amount.String(),
		b.RecipientName,
		b.RecipientDocument,
		b.Type,
		nullDecimalArg(b.OriginalAmount),
		dateArg(b.PaymentDate),
		nullDecimalArg(b.InterestAmountCalculated),
		nullDecimalArg(b.FineAmountCalculated),
	}
}

func dateArg(d pgtype.Date) any {
	if !d.Valid {
		return nil
	}
	return d.Time
}

func nullDecimalArg(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}

func parseNullDecimal(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid decimal %q: %w", *s, err)
	}

	return decimal.NewNullDecimal(d), nil
}
