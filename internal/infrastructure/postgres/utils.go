package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de error de PostgreSQL que los repositorios traducen a errores de dominio.
const codeUniqueViolation = "23505"

// isUniqueViolation reporta si err viene de un índice único (SKU o email repetido).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
