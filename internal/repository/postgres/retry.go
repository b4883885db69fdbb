package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobswipe-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// retryBackoff spaces the bounded internal retries for transient conflicts.
var retryBackoff = 25 * time.Millisecond

// isTransient reports whether err is a storage-level race worth retrying:
// serialization failure (40001) or deadlock (40P01).
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}

// isUniqueViolation reports whether err is a unique-constraint violation
// (23505), the expected loser outcome of a concurrent insert race.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505"
}

// withRetry runs fn up to attempts times, backing off between transient
// failures. Non-transient errors surface immediately; exhausted transient
// errors are wrapped in domain.ErrStorageConflict so callers can mark the
// operation retryable.
func withRetry(ctx context.Context, attempts int, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || !isTransient(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryBackoff * time.Duration(i+1)):
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageConflict, err)
}
