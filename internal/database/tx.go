package database

import (
	"context"
	"errors"
	"time"

	"socialnet/backend/internal/logger"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// IsRetryable reports whether err is a transient Postgres conflict worth retrying
// the whole transaction for.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
	}
	return false
}

// Transaction runs fn inside a transaction, committing on nil and rolling back on error or panic.
// Transient conflicts are retried up to attempts times with a short linear backoff.
func Transaction(ctx context.Context, db *gorm.DB, attempts int, fn func(tx *gorm.DB) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 1; i <= attempts; i++ {
		err = db.WithContext(ctx).Transaction(fn)
		if err == nil || !IsRetryable(err) || i == attempts {
			return err
		}

		logger.L().Warn("retrying transaction", zap.Int("attempt", i), zap.Error(err))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i) * 10 * time.Millisecond):
		}
	}
	return err
}
