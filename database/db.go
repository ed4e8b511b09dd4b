package database

import (
	"fmt"
	"log/slog"
	"strings"

	"gapod/internal/config"
	"gapod/internal/http-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database selected by the configured DSN and provisions
// the schema. The caller owns the returned handle and is responsible for
// closing it on shutdown; nothing here is a process-wide singleton.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	dialector := openDialector(cfg.DatabaseURL)

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access database handle: %w", err)
	}

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := ensureSchema(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to provision schema: %w", err)
	}

	logger.Info("Connected to the database successfully", "driver", dialector.Name())
	return db, nil
}

// openDialector selects the driver by DSN scheme. Only a postgres URL picks
// the postgres driver; everything else is treated as a sqlite path, so a file
// named something like "postgres-backup.db" still opens as sqlite.
func openDialector(databaseURL string) gorm.Dialector {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return postgres.Open(databaseURL)
	}
	return sqlite.Open(sqliteDSN(databaseURL))
}

// sqliteDSN enables foreign keys on the sqlite DSN unless the caller already
// set them. sqlite ships with foreign keys off, and the cascade deletes from
// messages to likes and comments depend on them. The DSN parameter applies to
// every connection the pool opens, unlike a one-off PRAGMA.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// ensureSchema idempotently creates the three tables with their constraints,
// then the secondary indexes. Once the tables exist, index creation must
// never take the process down: failures there are logged and swallowed.
func ensureSchema(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(
		&models.Message{},
		&models.Like{},
		&models.Comment{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_messages_timestamp ON messages(timestamp DESC)",
		"CREATE INDEX IF NOT EXISTS idx_likes_message_id ON likes(message_id)",
		"CREATE INDEX IF NOT EXISTS idx_comments_message_id ON comments(message_id)",
		"CREATE INDEX IF NOT EXISTS idx_comments_parent_id ON comments(parent_id)",
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			logger.Warn("index creation failed, continuing", "statement", stmt, "error", err)
		}
	}

	logger.Info("Database schema provisioned")
	return nil
}

// Close shuts the underlying connection pool down.
func Close(db *gorm.DB, logger *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to access database handle on close", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
		return
	}
	logger.Info("Database connection closed")
}
