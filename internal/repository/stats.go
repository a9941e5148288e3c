package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	leaderboardKey = "leaderboard:wins"

	fieldPlayer1Wins = "player1Wins"
	fieldPlayer2Wins = "player2Wins"
	fieldDraws       = "draws"
	fieldTotalGames  = "totalGames"
)

var ErrSamePlayer = errors.New("head-to-head needs two different players")

// StatsRepository keeps head-to-head counters and the wins leaderboard.
type StatsRepository interface {
	RecordResult(ctx context.Context, first, second, winnerID string) error
	GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error)
	TopWinners(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

func headToHeadKey(playerA, playerB string) string {
	return "h2h:" + playerA + ":" + playerB
}

// RecordResult counts one finished game between first and second. An empty
// winnerID is a draw.
func (that *dbStats) RecordResult(ctx context.Context, first, second, winnerID string) error {
	if first == second {
		return ErrSamePlayer
	}

	playerA, playerB := entity.OrderedPair(first, second)
	key := headToHeadKey(playerA, playerB)

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		switch winnerID {
		case "":
			pipe.HIncrBy(ctx, key, fieldDraws, 1)
		case playerA:
			pipe.HIncrBy(ctx, key, fieldPlayer1Wins, 1)
		case playerB:
			pipe.HIncrBy(ctx, key, fieldPlayer2Wins, 1)
		}
		pipe.HIncrBy(ctx, key, fieldTotalGames, 1)

		if winnerID != "" {
			pipe.ZIncrBy(ctx, leaderboardKey, 1, winnerID)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *dbStats) GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error) {
	playerA, playerB := entity.OrderedPair(first, second)

	values, err := that.client.HGetAll(ctx, headToHeadKey(playerA, playerB)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get head-to-head: %w", err)
	}

	h2h := &entity.HeadToHead{PlayerA: playerA, PlayerB: playerB}
	counters := map[string]*int64{
		fieldPlayer1Wins: &h2h.PlayerAWin,
		fieldPlayer2Wins: &h2h.PlayerBWin,
		fieldDraws:       &h2h.Draws,
		fieldTotalGames:  &h2h.Total,
	}

	for field, target := range counters {
		raw, ok := values[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", field, err)
		}
	}

	return h2h, nil
}

// TopWinners returns players with the most wins, best first.
func (that *dbStats) TopWinners(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	scores, err := that.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		member, ok := score.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, entity.LeaderboardEntry{PlayerID: member, Wins: int64(score.Score)})
	}

	return entries, nil
}
