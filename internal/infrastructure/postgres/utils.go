package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de error de PostgreSQL para violaciones de constraint UNIQUE.
const pgUniqueViolation = "23505"

// isUniqueViolation indica si el error viene de un índice único (username,
// email, nombre de operadora o período de objetivo duplicados).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
