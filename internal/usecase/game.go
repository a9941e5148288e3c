package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

type GameUseCase interface {
	Play(ctx context.Context, player entity.Identity, difficulty entity.Difficulty) (*entity.Game, error)
	Challenge(ctx context.Context, player entity.Identity) (*entity.Game, error)
	Join(ctx context.Context, gameID string, player entity.Identity) (*entity.Game, entity.Mark, error)

	MakeTurn(ctx context.Context, gameID string, player entity.Identity, row, col int) (*entity.Game, error)
	Rematch(ctx context.Context, gameID string, player entity.Identity) (*service.RematchResult, error)

	AttachMessage(ctx context.Context, gameID, playerID string, ref entity.MessageRef) error
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
	GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error)
}

type gameServiceDep interface {
	CreateGame(ctx context.Context, creator entity.Identity, mode entity.Mode, rows, cols int, difficulty entity.Difficulty) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID string, joiner entity.Identity) (*entity.Game, entity.Mark, error)
	AttachMessage(ctx context.Context, gameID, playerID string, ref entity.MessageRef) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type gamePlayServiceDep interface {
	MakeTurn(ctx context.Context, gameID, actorID string, row, col int) (*entity.Game, error)
	Rematch(ctx context.Context, gameID, voterID string) (*service.RematchResult, error)
}

// BoardSize is the size of every new board.
type BoardSize struct {
	Rows int
	Cols int
}

type gameUseCase struct {
	logger *slog.Logger
	board  BoardSize

	gameService     gameServiceDep
	gamePlayService gamePlayServiceDep
	statsService    statsServiceDep
	recorder        *resultRecorder
}

func NewGameUseCase(
	logger *slog.Logger,
	board BoardSize,
	gameService gameServiceDep,
	gamePlayService gamePlayServiceDep,
	playerService playerServiceDep,
	historyService historyServiceDep,
	statsService statsServiceDep,
) GameUseCase {
	return &gameUseCase{
		logger:          logger,
		board:           board,
		gameService:     gameService,
		gamePlayService: gamePlayService,
		statsService:    statsService,
		recorder:        newResultRecorder(logger, playerService, historyService, statsService),
	}
}

// Play starts a game against the environment.
func (that *gameUseCase) Play(ctx context.Context, player entity.Identity, difficulty entity.Difficulty) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, player, entity.ModeSolo, that.board.Rows, that.board.Cols, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create solo game: %w", err)
	}

	return game, nil
}

// Challenge opens a game waiting for a second human.
func (that *gameUseCase) Challenge(ctx context.Context, player entity.Identity) (*entity.Game, error) {
	game, err := that.gameService.CreateGame(ctx, player, entity.ModeDuel, that.board.Rows, that.board.Cols, entity.DifficultyNone)
	if err != nil {
		return nil, fmt.Errorf("failed to create duel: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) Join(ctx context.Context, gameID string, player entity.Identity) (*entity.Game, entity.Mark, error) {
	game, side, err := that.gameService.JoinGame(ctx, gameID, player)
	if err != nil {
		return nil, entity.EmptyCell, fmt.Errorf("failed to connect to game: %w", err)
	}

	return game, side, nil
}

// MakeTurn applies the move. A finished two-human game is recorded once it
// is committed; recording failures are logged and do not fail the move.
func (that *gameUseCase) MakeTurn(ctx context.Context, gameID string, player entity.Identity, row, col int) (*entity.Game, error) {
	game, err := that.gamePlayService.MakeTurn(ctx, gameID, player.ID, row, col)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() && !game.IsSolo() {
		that.recorder.Record(ctx, game)
	}

	return game, nil
}

func (that *gameUseCase) Rematch(ctx context.Context, gameID string, player entity.Identity) (*service.RematchResult, error) {
	result, err := that.gamePlayService.Rematch(ctx, gameID, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to request rematch: %w", err)
	}

	return result, nil
}

func (that *gameUseCase) AttachMessage(ctx context.Context, gameID, playerID string, ref entity.MessageRef) error {
	if _, err := that.gameService.AttachMessage(ctx, gameID, playerID, ref); err != nil {
		return fmt.Errorf("failed to attach message: %w", err)
	}

	return nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetHeadToHead(ctx context.Context, first, second string) (*entity.HeadToHead, error) {
	h2h, err := that.statsService.GetHeadToHead(ctx, first, second)
	if err != nil {
		return nil, fmt.Errorf("failed to get head-to-head: %w", err)
	}

	return h2h, nil
}
