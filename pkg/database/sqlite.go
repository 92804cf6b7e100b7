package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go-portfolio-backend/pkg/logger"

	_ "modernc.org/sqlite"
)

// NewSQLiteConnection opens a local database file for single-instance deployments.
// Pass ":memory:" for a throwaway database.
func NewSQLiteConnection(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		// journal_mode(WAL):   readers do not block the writer
		// busy_timeout(5000):  wait 5s for a lock
		// synchronous(NORMAL): safe with WAL, much faster than FULL
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if path == ":memory:" {
		// Every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(4)
	}
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	logger.Log.Info("Database connection established successfully", "driver", "sqlite", "path", path)
	return db, nil
}
