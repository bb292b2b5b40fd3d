package database

import (
	"fmt"
	"time"

	"socialnet/backend/internal/logger"
	"socialnet/backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Options tune the connection opened by Connect.
type Options struct {
	AutoMigrate   bool
	SlowThreshold time.Duration
}

// Connect initializes the database connection and, if requested, runs migrations.
func Connect(dsn string, opts Options) error {
	if opts.SlowThreshold == 0 {
		opts.SlowThreshold = 200 * time.Millisecond
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         NewGormLogger(logger.L(), opts.SlowThreshold),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logger.L().Info("database connection established")

	if opts.AutoMigrate {
		if err := Migrate(db); err != nil {
			return err
		}
		logger.L().Info("database migrated successfully")
	}

	DB = db
	return nil
}

// Migrate creates the tables and the unordered-pair index on friends.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.FriendEdge{}, &models.Post{}, &models.Like{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	// One edge per unordered pair, whichever user sent the request.
	least, greatest := "LEAST", "GREATEST"
	if db.Dialector.Name() == "sqlite" {
		least, greatest = "MIN", "MAX"
	}
	stmt := fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_friends_pair ON friends (%s(user_id, friend_id), %s(user_id, friend_id))",
		least, greatest,
	)
	if err := db.Exec(stmt).Error; err != nil {
		logger.L().Error("create friends pair index", zap.Error(err))
		return fmt.Errorf("create friends pair index: %w", err)
	}
	return nil
}
