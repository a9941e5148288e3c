package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

var ErrNotTwoHumans = errors.New("game does not have two human players")

type StatsService interface {
	RecordResult(ctx context.Context, game *entity.Game) error
	GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error)
	GetLeaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type statsRepo interface {
	RecordResult(ctx context.Context, first, second, winnerID string) error
	GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error)
	TopWinners(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type statsService struct {
	statsRepo     statsRepo
	playerService PlayerService
}

func NewStatsService(statsRepo statsRepo, playerService PlayerService) StatsService {
	return &statsService{
		statsRepo:     statsRepo,
		playerService: playerService,
	}
}

// RecordResult counts a finished two-human game in the head-to-head record
// and the leaderboard.
func (that *statsService) RecordResult(ctx context.Context, game *entity.Game) error {
	humans := game.Humans()
	if len(humans) != 2 {
		return ErrNotTwoHumans
	}

	if err := that.statsRepo.RecordResult(ctx, humans[0].ID, humans[1].ID, game.WinnerID); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *statsService) GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error) {
	h2h, err := that.statsRepo.GetHeadToHead(ctx, first, second)
	if err != nil {
		return nil, fmt.Errorf("failed to get head-to-head: %w", err)
	}

	return h2h, nil
}

// GetLeaderboard returns the top players by wins with their usernames.
func (that *statsService) GetLeaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	entries, err := that.statsRepo.TopWinners(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	for i := range entries {
		profile, err := that.playerService.GetByID(ctx, entries[i].PlayerID)
		if err != nil {
			// a missing profile only costs the display name
			continue
		}
		entries[i].Username = profile.Username
	}

	return entries, nil
}
