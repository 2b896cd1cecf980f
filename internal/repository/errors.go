package repository

import (
	"errors"
	"fmt"

	"filmoteka/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// translate maps driver-level failures onto the domain error taxonomy.
// With SQLite the explicit existence checks fire first; PostgreSQL also
// enforces the constraints itself, so a foreign-key violation that slips
// past a check still surfaces as a reference error instead of a 500.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%s: %w", op, domain.ErrReferenceNotFound)
	}
	return &domain.StorageError{Op: op, Err: err}
}
