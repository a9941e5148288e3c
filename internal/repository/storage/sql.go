package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	// register the postgres and sqlite drivers with database/sql.
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	memoryDSN   = ":memory:"
	initTimeout = 5 * time.Second
)

var ErrUnknownDriver = errors.New("unknown sql driver")

var sqlitePragmas = []string{
	`PRAGMA busy_timeout = 5000;`,
	`PRAGMA journal_mode = WAL;`,
	`PRAGMA foreign_keys = ON;`,
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS players (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL DEFAULT '',
		created_at_ms BIGINT NOT NULL,
		updated_at_ms BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		mode TEXT NOT NULL,
		board TEXT NOT NULL,
		winner_id TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		completed_at_ms BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS game_players (
		game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
		player_id TEXT NOT NULL,
		side TEXT NOT NULL,
		is_winner INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (game_id, player_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_game_players_player ON game_players (player_id)`,
	`CREATE INDEX IF NOT EXISTS idx_games_completed ON games (completed_at_ms)`,
}

// Storage is a SQL database that keeps finished games and player profiles.
type Storage struct {
	Connection *sql.DB
	Driver     string
}

// New opens the database for driver and makes sure the schema exists.
func New(ctx context.Context, driver, dsn string) (*Storage, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, errors.New("empty database dsn")
	}

	var (
		conn *sql.DB
		err  error
	)

	switch driver {
	case DriverSQLite:
		conn, err = openSQLite(ctx, dsn)
	case DriverPostgres:
		conn, err = sql.Open(DriverPostgres, dsn)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}

	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	storage := &Storage{Connection: conn, Driver: driver}
	if err = storage.Init(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return storage, nil
}

func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path != memoryDSN {
		if parent := filepath.Dir(path); parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	conn, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return nil, err
	}

	// one connection keeps writes serialized and an in-memory database alive
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	for _, pragma := range sqlitePragmas {
		if _, err = conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	return conn, nil
}

func (that *Storage) Init(ctx context.Context) error {
	for _, query := range schema {
		if _, err := that.Connection.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("can't create table: %w", err)
		}
	}

	return nil
}

// Rebind rewrites ? placeholders into the driver's form.
func (that *Storage) Rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(that.Driver), query)
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
