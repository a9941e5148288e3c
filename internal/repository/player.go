package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
)

var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository keeps player profiles.
type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
}

type dbPlayer struct {
	storage *storage.Storage
	now     func() time.Time
}

func NewPlayerRepository(storage *storage.Storage) PlayerRepository {
	return &dbPlayer{
		storage: storage,
		now:     time.Now,
	}
}

// CreateOrUpdate inserts the profile or refreshes its username. An empty
// username never overwrites a known one.
func (that *dbPlayer) CreateOrUpdate(ctx context.Context, profile *entity.Profile) error {
	nowMs := that.now().UnixMilli()

	_, err := that.storage.Connection.ExecContext(ctx, that.storage.Rebind(`
		INSERT INTO players (id, username, created_at_ms, updated_at_ms)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			username = CASE WHEN excluded.username <> '' THEN excluded.username ELSE players.username END,
			updated_at_ms = excluded.updated_at_ms`),
		profile.ID, profile.Username, nowMs, nowMs,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert player: %w", err)
	}

	return nil
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	var (
		profile   entity.Profile
		createdMs int64
	)

	err := that.storage.Connection.QueryRowContext(ctx, that.storage.Rebind(
		`SELECT id, username, created_at_ms FROM players WHERE id = ?`), id,
	).Scan(&profile.ID, &profile.Username, &createdMs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by ID: %w", err)
	}

	profile.CreatedAt = time.UnixMilli(createdMs).UTC()

	return &profile, nil
}
