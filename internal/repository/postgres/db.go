package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX общий интерфейс pgxpool.Pool, pgx.Tx и pgxmock
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isPgError проверяет код ошибки PostgreSQL
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// isUniqueViolation сообщает о нарушении уникального индекса
func isUniqueViolation(err error) bool {
	return isPgError(err, pgerrcode.UniqueViolation)
}

// isInvalidID сообщает, что переданный идентификатор не является UUID
func isInvalidID(err error) bool {
	return isPgError(err, pgerrcode.InvalidTextRepresentation)
}
