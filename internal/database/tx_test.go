package database_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"socialnet/backend/internal/database"
	"socialnet/backend/internal/database/dbtest"
	"socialnet/backend/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsRetryable(t *testing.T) {
	assert.True(t, database.IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, database.IsRetryable(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "40P01"})))
	assert.False(t, database.IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, database.IsRetryable(errors.New("boom")))
	assert.False(t, database.IsRetryable(nil))
}

func TestTransactionRetriesTransientFailures(t *testing.T) {
	db := dbtest.New(t)

	calls := 0
	err := database.Transaction(context.Background(), db, 3, func(tx *gorm.DB) error {
		calls++
		if err := tx.Create(&models.User{Phone: fmt.Sprintf("+1555000000%d", calls), Email: fmt.Sprintf("u%d@x.io", calls)}).Error; err != nil {
			return err
		}
		if calls < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	// Failed attempts were rolled back.
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTransactionGivesUp(t *testing.T) {
	db := dbtest.New(t)

	calls := 0
	err := database.Transaction(context.Background(), db, 2, func(tx *gorm.DB) error {
		calls++
		return &pgconn.PgError{Code: "40P01"}
	})
	assert.True(t, database.IsRetryable(err))
	assert.Equal(t, 2, calls)

	calls = 0
	err = database.Transaction(context.Background(), db, 5, func(tx *gorm.DB) error {
		calls++
		return errors.New("permanent")
	})
	assert.EqualError(t, err, "permanent")
	assert.Equal(t, 1, calls)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := dbtest.New(t)
	require.NoError(t, database.Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.FriendEdge{}))
	assert.True(t, db.Migrator().HasIndex("friends", "idx_friends_pair"))
}
