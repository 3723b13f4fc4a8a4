package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// translateError maps driver-level errors onto the store sentinels so
// callers never have to know which backend they are talking to.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return store.ErrDuplicate
		case pqForeignKeyViolation:
			return store.ErrInUse
		}
	}
	return err
}
