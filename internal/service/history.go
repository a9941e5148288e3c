package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

type HistoryService interface {
	SaveGame(ctx context.Context, record *entity.GameRecord) error
	GetHistory(ctx context.Context, playerID string, limit int) (*entity.History, error)
}

type gameRecordRepo interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	ListByPlayer(ctx context.Context, playerID string, limit int) ([]*entity.GameRecord, error)
	CountOutcomes(ctx context.Context, playerID string) (wins, losses, draws int, err error)
}

type historyService struct {
	gameRepo gameRecordRepo
}

func NewHistoryService(gameRepo gameRecordRepo) HistoryService {
	return &historyService{
		gameRepo: gameRepo,
	}
}

func (that *historyService) SaveGame(ctx context.Context, record *entity.GameRecord) error {
	if err := that.gameRepo.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetHistory returns the latest games of a player and totals over all games.
func (that *historyService) GetHistory(ctx context.Context, playerID string, limit int) (*entity.History, error) {
	games, err := that.gameRepo.ListByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	wins, losses, draws, err := that.gameRepo.CountOutcomes(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count outcomes: %w", err)
	}

	return &entity.History{
		Games:  games,
		Wins:   wins,
		Losses: losses,
		Draws:  draws,
	}, nil
}
