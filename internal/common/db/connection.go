package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/vbb-change-positions/internal/common/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS interchange_entries (
	id                SERIAL PRIMARY KEY,
	run_id            TEXT NOT NULL,
	station           TEXT NOT NULL,
	station_name      TEXT NOT NULL,
	from_lines        TEXT[] NOT NULL,
	from_station      TEXT NOT NULL,
	from_station_name TEXT NOT NULL,
	from_track        TEXT,
	from_position     DOUBLE PRECISION NOT NULL,
	to_lines          TEXT[] NOT NULL,
	to_station        TEXT NOT NULL,
	to_station_name   TEXT NOT NULL,
	to_track          TEXT,
	to_position       DOUBLE PRECISION NOT NULL,
	same_platform     BOOLEAN NOT NULL,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_interchange_entries_station ON interchange_entries (station);
`

type DB struct {
	conn   *sql.DB
	logger logger.Logger
}

func New(ctx context.Context, connStr string, logger logger.Logger) (*DB, error) {
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	logger.Info("Database connection established")

	return &DB{
		conn:   conn,
		logger: logger,
	}, nil
}

// EnsureSchema creates the entries table if it doesn't exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	db.logger.Debug("Database schema ensured")
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return db.conn.BeginTx(ctx, nil)
}

// Logger returns the logger instance
func (db *DB) Logger() logger.Logger {
	return db.logger
}
