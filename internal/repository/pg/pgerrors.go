package pg

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// ErrorDetail возвращает текст ошибки хранилища для ответа клиенту.
// Для ошибок PostgreSQL текст дополняется кодом ошибки, см.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
func ErrorDetail(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Sprintf("%s: %s", pgErr.Code, pgErr.Message)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Sprintf("%s: %s", pqErr.Code, pqErr.Message)
	}

	return err.Error()
}
