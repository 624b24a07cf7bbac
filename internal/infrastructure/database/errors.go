package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate
const (
	CodeForeignKeyViolation = "23503"
	CodeUniqueViolation     = "23505"
)

// IsNoRows reports whether QueryRow found nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsForeignKeyViolation - vd. books.author_id trỏ tới author không tồn tại
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, CodeForeignKeyViolation)
}

// IsUniqueViolation - vd. trùng tên author đã đăng ký
func IsUniqueViolation(err error) bool {
	return hasCode(err, CodeUniqueViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// Nullable turns a nil pointer into an untyped nil so the query builder
// renders NULL; otherwise it returns the pointed-to value.
func Nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
