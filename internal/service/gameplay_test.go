package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/repository"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-bot/testing/suite"
)

var (
	alice = entity.Identity{ID: "alice", Username: "al"}
	bob   = entity.Identity{ID: "bob", Username: "bo"}
	carol = entity.Identity{ID: "carol"}
)

type services struct {
	sessions *repository.SessionRepository
	game     *gameService
	gameplay *gamePlayService
}

// newServices wires both services to one registry. flips are consumed in
// order by every coin flip; true seats the first human in slot 0.
func newServices(t *testing.T, flips ...bool) *services {
	t.Helper()

	var mu sync.Mutex
	flip := func() bool {
		mu.Lock()
		defer mu.Unlock()

		require.NotEmpty(t, flips, "unexpected coin flip")
		next := flips[0]
		flips = flips[1:]

		return next
	}

	logger := suite.NewLogger()
	sessions := repository.NewSessionRepository()
	bot := NewBotService()

	game := NewGameService(logger, sessions, bot).(*gameService)
	game.factory.flip = flip

	gameplay := NewGamePlayService(logger, sessions, bot).(*gamePlayService)
	gameplay.factory.flip = flip

	return &services{sessions: sessions, game: game, gameplay: gameplay}
}

func (that *services) startDuel(t *testing.T, ctx context.Context) *entity.Game {
	t.Helper()

	game, err := that.game.CreateGame(ctx, alice, entity.ModeDuel, 3, 3, entity.DifficultyNone)
	require.NoError(t, err)

	game, _, err = that.game.JoinGame(ctx, game.ID, bob)
	require.NoError(t, err)

	return game
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Duel alternates turns until a win", func(t *testing.T) {
		// Given: alice holds X in an active duel
		svc := newServices(t, true)
		game := svc.startDuel(t, ctx)

		moves := []struct {
			actor    string
			row, col int
		}{
			{"alice", 0, 0}, {"bob", 1, 1}, {"alice", 0, 1}, {"bob", 2, 2},
		}
		for _, move := range moves {
			var err error
			game, err = svc.gameplay.MakeTurn(ctx, game.ID, move.actor, move.row, move.col)
			require.NoError(t, err)
			assert.Equal(t, entity.StatusActive, game.Status)
		}
		assert.Equal(t, 0, game.Turn)

		// When: alice completes the top row
		game, err := svc.gameplay.MakeTurn(ctx, game.ID, "alice", 0, 2)

		// Then: alice wins and further moves are rejected
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWon, game.Status)
		assert.Equal(t, entity.MarkX, game.Winner)
		assert.Equal(t, "alice", game.WinnerID)

		_, err = svc.gameplay.MakeTurn(ctx, game.ID, "bob", 2, 2)
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
	})

	t.Run("Rejections leave the game unchanged", func(t *testing.T) {
		svc := newServices(t, true)
		game := svc.startDuel(t, ctx)
		game, err := svc.gameplay.MakeTurn(ctx, game.ID, "alice", 1, 1)
		require.NoError(t, err)

		tests := []struct {
			name     string
			gameID   string
			actor    string
			row, col int
			expected error
			kind     apperror.Kind
		}{
			{name: "unknown game", gameID: "missing", actor: "bob", expected: apperror.ErrGameNotFound, kind: apperror.KindNotFound},
			{name: "not your turn", gameID: game.ID, actor: "alice", expected: apperror.ErrNotYourTurn, kind: apperror.KindForbidden},
			{name: "stranger", gameID: game.ID, actor: "carol", expected: apperror.ErrNotYourTurn, kind: apperror.KindForbidden},
			{name: "out of range", gameID: game.ID, actor: "bob", row: 3, col: 0, expected: apperror.ErrInvalidCell, kind: apperror.KindInvalidInput},
			{name: "occupied", gameID: game.ID, actor: "bob", row: 1, col: 1, expected: apperror.ErrCellOccupied, kind: apperror.KindOccupied},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := svc.gameplay.MakeTurn(ctx, tt.gameID, tt.actor, tt.row, tt.col)

				require.ErrorIs(t, err, tt.expected)
				assert.Equal(t, tt.kind, apperror.KindOf(err))

				stored, err := svc.game.GetGameByID(ctx, game.ID)
				require.NoError(t, err)
				assert.Equal(t, game, stored)
			})
		}
	})

	t.Run("Open game rejects moves", func(t *testing.T) {
		svc := newServices(t, true)
		game, err := svc.game.CreateGame(ctx, alice, entity.ModeDuel, 3, 3, entity.DifficultyNone)
		require.NoError(t, err)

		_, err = svc.gameplay.MakeTurn(ctx, game.ID, "alice", 0, 0)

		require.ErrorIs(t, err, apperror.ErrGameNotStarted)
	})

	t.Run("Solo environment replies in the same step", func(t *testing.T) {
		// Given: alice holds X against the hard environment
		svc := newServices(t, true)
		game, err := svc.game.CreateGame(ctx, alice, entity.ModeSolo, 3, 3, entity.DifficultyHard)
		require.NoError(t, err)
		require.Equal(t, 0, game.Turn)

		// When: alice opens in the corner
		game, err = svc.gameplay.MakeTurn(ctx, game.ID, "alice", 0, 0)

		// Then: the environment answered in the center and it is alice's turn again
		require.NoError(t, err)
		assert.Equal(t, entity.MarkO, game.Board.At(1, 1))
		assert.Len(t, tictactoe.EmptyCells(game.Board), 7)
		assert.Equal(t, 0, game.Turn)
		assert.Equal(t, entity.StatusActive, game.Status)
	})

	t.Run("Solo environment finishes the game", func(t *testing.T) {
		// Given: the environment holds O and threatens the middle row
		svc := newServices(t, true)
		game, err := svc.game.CreateGame(ctx, alice, entity.ModeSolo, 3, 3, entity.DifficultyHard)
		require.NoError(t, err)

		_, err = svc.sessions.Update(ctx, game.ID, func(game *entity.Game) error {
			game.Board = boardOf(t, "X.X", "OO.", "X..")
			return nil
		})
		require.NoError(t, err)

		// When: alice ignores the threat
		game, err = svc.gameplay.MakeTurn(ctx, game.ID, "alice", 2, 2)

		// Then: the environment wins and no identity is recorded
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWon, game.Status)
		assert.Equal(t, entity.MarkO, game.Winner)
		assert.Empty(t, game.WinnerID)
	})

	t.Run("Concurrent moves on one turn", func(t *testing.T) {
		// Given: many requests for alice's single move
		svc := newServices(t, true)
		game := svc.startDuel(t, ctx)

		const attempts = 16

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
		)
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.gameplay.MakeTurn(ctx, game.ID, "alice", i%3, i/3%3)
				if err == nil {
					mu.Lock()
					succeeded++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		// Then: exactly one move landed
		assert.Equal(t, 1, succeeded)
		stored, err := svc.game.GetGameByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Len(t, tictactoe.EmptyCells(stored.Board), 8)
		assert.Equal(t, 1, stored.Turn)
	})
}

func TestGamePlayService_Rematch(t *testing.T) {
	ctx := context.Background()

	finishDuel := func(t *testing.T, svc *services) *entity.Game {
		t.Helper()

		game := svc.startDuel(t, ctx)
		moves := []struct {
			actor    string
			row, col int
		}{
			{"alice", 0, 0}, {"bob", 1, 1}, {"alice", 0, 1}, {"bob", 2, 2}, {"alice", 0, 2},
		}
		for _, move := range moves {
			var err error
			game, err = svc.gameplay.MakeTurn(ctx, game.ID, move.actor, move.row, move.col)
			require.NoError(t, err)
		}
		require.True(t, game.IsFinished())

		return game
	}

	t.Run("Duel needs both votes", func(t *testing.T) {
		// Given: a finished duel; the rematch seats bob first
		svc := newServices(t, true, false)
		game := finishDuel(t, svc)

		_, err := svc.game.AttachMessage(ctx, game.ID, "bob", entity.MessageRef{ChatID: 2, MessageID: 20})
		require.NoError(t, err)

		// When: alice votes
		result, err := svc.gameplay.Rematch(ctx, game.ID, "alice")

		// Then: the vote is visible and nothing started
		require.NoError(t, err)
		assert.False(t, result.Started)
		assert.Equal(t, 1, result.Votes)
		assert.Equal(t, 2, result.Needed)
		assert.Equal(t, game.ID, result.Game.ID)

		_, err = svc.gameplay.Rematch(ctx, game.ID, "alice")
		require.ErrorIs(t, err, apperror.ErrAlreadyVoted)

		// When: bob votes
		result, err = svc.gameplay.Rematch(ctx, game.ID, "bob")

		// Then: a fresh game replaces the old one
		require.NoError(t, err)
		require.True(t, result.Started)
		assert.Equal(t, 2, result.Votes)

		next := result.Game
		assert.NotEqual(t, game.ID, next.ID)
		assert.Equal(t, entity.StatusActive, next.Status)
		assert.Equal(t, entity.ModeDuel, next.Mode)
		assert.Equal(t, entity.NewBoard(3, 3), next.Board)
		assert.Empty(t, next.RematchVotes)
		assert.Equal(t, 0, next.Turn)
		assert.Equal(t, "bob", next.Players[0].ID)
		assert.Equal(t, "alice", next.Players[1].ID)
		assert.Equal(t, entity.MessageRef{ChatID: 2, MessageID: 20}, next.Players[0].Message)

		_, err = svc.game.GetGameByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		_, err = svc.gameplay.Rematch(ctx, game.ID, "alice")
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Equal(t, 1, svc.sessions.Len())
	})

	t.Run("Rejections", func(t *testing.T) {
		svc := newServices(t, true, true)
		active := svc.startDuel(t, ctx)

		_, err := svc.gameplay.Rematch(ctx, active.ID, "alice")
		require.ErrorIs(t, err, apperror.ErrGameNotOver)
		assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))

		finished := finishDuel(t, svc)
		_, err = svc.gameplay.Rematch(ctx, finished.ID, "carol")
		require.ErrorIs(t, err, apperror.ErrNotInGame)
		assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	})

	t.Run("Solo restarts on one vote", func(t *testing.T) {
		// Given: a finished solo game; the rematch hands X to the environment
		svc := newServices(t, true, false)
		game, err := svc.game.CreateGame(ctx, alice, entity.ModeSolo, 3, 3, entity.DifficultyHard)
		require.NoError(t, err)

		_, err = svc.sessions.Update(ctx, game.ID, func(game *entity.Game) error {
			game.Status = entity.StatusDrawn
			game.Players[0].Message = entity.MessageRef{ChatID: 1, MessageID: 10}
			return nil
		})
		require.NoError(t, err)

		// When: alice votes
		result, err := svc.gameplay.Rematch(ctx, game.ID, "alice")

		// Then: the new game is active, the environment opened and alice is to move
		require.NoError(t, err)
		require.True(t, result.Started)
		assert.Equal(t, 1, result.Needed)

		next := result.Game
		assert.Equal(t, entity.ModeSolo, next.Mode)
		assert.Equal(t, entity.DifficultyHard, next.Difficulty)
		assert.True(t, next.Players[0].IsEnvironment())
		assert.Equal(t, "alice", next.Players[1].ID)
		assert.Equal(t, entity.MessageRef{ChatID: 1, MessageID: 10}, next.Players[1].Message)
		assert.Equal(t, entity.MarkX, next.Board.At(0, 0))
		assert.Equal(t, 1, next.Turn)

		_, err = svc.game.GetGameByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}
