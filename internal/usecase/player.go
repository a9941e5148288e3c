package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	HistoryLimit     = 10
	LeaderboardLimit = 10
)

type PlayerUseCase interface {
	GetHistory(ctx context.Context, playerID string) (*entity.History, error)
	GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

type playerUseCase struct {
	historyService historyServiceDep
	statsService   statsServiceDep
}

func NewPlayerUseCase(historyService historyServiceDep, statsService statsServiceDep) PlayerUseCase {
	return &playerUseCase{
		historyService: historyService,
		statsService:   statsService,
	}
}

// GetHistory returns the last games of a player with win/loss/draw totals.
func (that *playerUseCase) GetHistory(ctx context.Context, playerID string) (*entity.History, error) {
	history, err := that.historyService.GetHistory(ctx, playerID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	return history, nil
}

func (that *playerUseCase) GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	entries, err := that.statsService.GetLeaderboard(ctx, LeaderboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return entries, nil
}
