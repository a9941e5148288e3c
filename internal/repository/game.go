package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository/storage"
)

var ErrGameNotFound = errors.New("game not found")

// GameRepository stores finished games.
type GameRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.GameRecord, error)
	CountOutcomes(ctx context.Context, playerID string) (wins, losses, draws int, err error)
}

type dbGame struct {
	storage *storage.Storage
}

func NewGameRepository(storage *storage.Storage) GameRepository {
	return &dbGame{
		storage: storage,
	}
}

func (that *dbGame) Save(ctx context.Context, record *entity.GameRecord) error {
	boardJSON, err := json.Marshal(record.Board)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	tx, err := that.storage.Connection.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, that.storage.Rebind(
		`INSERT INTO games (id, mode, board, winner_id, status, completed_at_ms) VALUES (?, ?, ?, ?, ?, ?)`),
		record.ID, string(record.Mode), string(boardJSON), record.WinnerID, string(record.Status), record.CompletedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	insertPlayer := that.storage.Rebind(`INSERT INTO game_players (game_id, player_id, side, is_winner) VALUES (?, ?, ?, ?)`)
	for _, player := range record.Players {
		if _, err = tx.ExecContext(ctx, insertPlayer, record.ID, player.ID, string(player.Side), boolToInt(player.IsWinner)); err != nil {
			return fmt.Errorf("failed to insert game player: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	row := that.storage.Connection.QueryRowContext(ctx, that.storage.Rebind(
		`SELECT id, mode, board, winner_id, status, completed_at_ms FROM games WHERE id = ?`), id)

	record, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}

	if record.Players, err = that.players(ctx, record.ID); err != nil {
		return nil, err
	}

	return record, nil
}

// ListByPlayer returns the player's most recent games, newest first.
func (that *dbGame) ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.GameRecord, error) {
	rows, err := that.storage.Connection.QueryContext(ctx, that.storage.Rebind(`
		SELECT g.id, g.mode, g.board, g.winner_id, g.status, g.completed_at_ms
		FROM games g
		JOIN game_players gp ON gp.game_id = g.id
		WHERE gp.player_id = ?
		ORDER BY g.completed_at_ms DESC, g.id
		LIMIT ?`), playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var records []*entity.GameRecord
	for rows.Next() {
		record, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read games: %w", err)
	}

	for _, record := range records {
		if record.Players, err = that.players(ctx, record.ID); err != nil {
			return nil, err
		}
	}

	return records, nil
}

func (that *dbGame) CountOutcomes(ctx context.Context, playerID string) (int, int, int, error) {
	var wins, losses, draws int

	err := that.storage.Connection.QueryRowContext(ctx, that.storage.Rebind(`
		SELECT
			COALESCE(SUM(CASE WHEN gp.is_winner = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN g.winner_id <> '' AND gp.is_winner = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN g.winner_id = '' THEN 1 ELSE 0 END), 0)
		FROM game_players gp
		JOIN games g ON g.id = gp.game_id
		WHERE gp.player_id = ?`), playerID).Scan(&wins, &losses, &draws)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count outcomes: %w", err)
	}

	return wins, losses, draws, nil
}

func (that *dbGame) players(ctx context.Context, gameID string) ([]entity.RecordPlayer, error) {
	rows, err := that.storage.Connection.QueryContext(ctx, that.storage.Rebind(`
		SELECT gp.player_id, COALESCE(p.username, ''), gp.side, gp.is_winner
		FROM game_players gp
		LEFT JOIN players p ON p.id = gp.player_id
		WHERE gp.game_id = ?
		ORDER BY gp.side DESC`), gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game players: %w", err)
	}
	defer rows.Close()

	var players []entity.RecordPlayer
	for rows.Next() {
		var (
			player   entity.RecordPlayer
			side     string
			isWinner int
		)
		if err = rows.Scan(&player.ID, &player.Username, &side, &isWinner); err != nil {
			return nil, fmt.Errorf("failed to scan game player: %w", err)
		}
		player.Side = entity.Mark(side)
		player.IsWinner = isWinner == 1
		players = append(players, player)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game players: %w", err)
	}

	return players, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGame(row scanner) (*entity.GameRecord, error) {
	var (
		record      entity.GameRecord
		mode        string
		boardJSON   string
		status      string
		completedMs int64
	)

	if err := row.Scan(&record.ID, &mode, &boardJSON, &record.WinnerID, &status, &completedMs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan game: %w", err)
	}

	if err := json.Unmarshal([]byte(boardJSON), &record.Board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	record.Mode = entity.Mode(mode)
	record.Status = entity.Status(status)
	record.CompletedAt = time.UnixMilli(completedMs).UTC()

	return &record, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
