package postgres

import (
	"errors"

	"github.com/swasthya-setu/backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapPgError переводит коды postgres в доменные ошибки.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 - unique violation
		if pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
	}

	return err
}
