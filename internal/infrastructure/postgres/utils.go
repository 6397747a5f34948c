package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// exists ejecuta un probe SELECT 1 ... LIMIT 1 y devuelve true si hay al menos una fila.
// Es de solo lectura: no bloquea filas (ver TxRunner para escrituras condicionales).
func exists(q Querier, query string, args ...any) (bool, error) {
	var one int
	err := q.QueryRow(context.Background(), query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
