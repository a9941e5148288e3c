package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

// RematchResult describes a committed rematch vote.
type RematchResult struct {
	// Previous is the voted game after the vote was recorded.
	Previous *entity.Game
	// Game is the successor when Started, otherwise the same as Previous.
	Game    *entity.Game
	Started bool
	Votes   int
	Needed  int
}

type GamePlayService interface {
	MakeTurn(ctx context.Context, gameID, actorID string, row, col int) (*entity.Game, error)
	Rematch(ctx context.Context, gameID, voterID string) (*RematchResult, error)
}

type gamePlayService struct {
	logger *slog.Logger

	sessions   sessionRepo
	botService BotService
	factory    *gameFactory
}

func NewGamePlayService(logger *slog.Logger, sessions sessionRepo, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger,
		sessions:   sessions,
		botService: botService,
		factory:    newGameFactory(botService),
	}
}

// MakeTurn applies the actor's move and, in a solo game, the environment's
// reply in the same step.
func (that *gamePlayService) MakeTurn(ctx context.Context, gameID, actorID string, row, col int) (*entity.Game, error) {
	game, err := that.sessions.Update(ctx, gameID, func(game *entity.Game) error {
		if err := tictactoe.MakeTurn(game, actorID, row, col); err != nil {
			return err
		}

		if game.IsFinished() {
			return nil
		}

		if opponent := game.Opponent(game.Turn); game.IsSolo() && opponent.IsEnvironment() {
			playEnvironment(that.botService, game, opponent.Index)
			if game.IsFinished() {
				return nil
			}
		}

		game.Turn = tictactoe.NextTurnIndex(game)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return game, nil
}

// Rematch records a vote. Once a strict majority of the humans voted, the
// finished game is replaced by a fresh one with the same players.
func (that *gamePlayService) Rematch(ctx context.Context, gameID, voterID string) (*RematchResult, error) {
	log := that.logger.With("method", "Rematch", "gameID", gameID)

	previous, successor, err := that.sessions.Replace(ctx, gameID, func(game *entity.Game) (*entity.Game, error) {
		if !game.IsFinished() {
			return nil, apperror.ErrGameNotOver
		}

		if !game.HasPlayer(voterID) {
			return nil, apperror.ErrNotInGame
		}

		if game.HasVoted(voterID) {
			return nil, apperror.ErrAlreadyVoted
		}

		game.RematchVotes = append(game.RematchVotes, voterID)
		if len(game.RematchVotes) < game.RematchQuorum() {
			return nil, nil
		}

		return that.factory.rematch(game), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rematch: %w", err)
	}

	result := &RematchResult{
		Previous: previous,
		Game:     previous,
		Votes:    len(previous.RematchVotes),
		Needed:   previous.RematchQuorum(),
	}

	if successor != nil {
		result.Game = successor
		result.Started = true
		log.Info("rematch started", "newGameID", successor.ID)
	}

	return result, nil
}
