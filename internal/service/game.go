package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

// maxHardCells bounds the board size the exhaustive search is offered on.
const maxHardCells = 9

type GameService interface {
	CreateGame(ctx context.Context, creator entity.Identity, mode entity.Mode, rows, cols int, difficulty entity.Difficulty) (*entity.Game, error)
	JoinGame(ctx context.Context, gameID string, joiner entity.Identity) (*entity.Game, entity.Mark, error)
	AttachMessage(ctx context.Context, gameID, playerID string, ref entity.MessageRef) (*entity.Game, error)

	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
}

type sessionRepo interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
	Replace(ctx context.Context, id string, fn func(game *entity.Game) (*entity.Game, error)) (*entity.Game, *entity.Game, error)
}

type gameService struct {
	logger   *slog.Logger
	sessions sessionRepo
	factory  *gameFactory
}

func NewGameService(logger *slog.Logger, sessions sessionRepo, botService BotService) GameService {
	return &gameService{
		logger:   logger,
		sessions: sessions,
		factory:  newGameFactory(botService),
	}
}

func (that *gameService) CreateGame(
	ctx context.Context,
	creator entity.Identity,
	mode entity.Mode,
	rows, cols int,
	difficulty entity.Difficulty,
) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame", "player", creator.ID, "mode", mode)

	if err := validateNewGame(creator, mode, rows, cols, difficulty); err != nil {
		return nil, err
	}

	var game *entity.Game
	if mode == entity.ModeSolo {
		game = that.factory.solo(creator, entity.MessageRef{}, rows, cols, difficulty)
	} else {
		game = that.factory.duel(creator, rows, cols)
	}

	if err := that.sessions.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Debug("game created", "gameID", game.ID)

	return game, nil
}

func validateNewGame(creator entity.Identity, mode entity.Mode, rows, cols int, difficulty entity.Difficulty) error {
	if creator.ID == "" {
		return apperror.ErrInvalidPlayer
	}

	if rows <= 0 || cols <= 0 {
		return apperror.ErrInvalidDimensions
	}

	switch mode {
	case entity.ModeDuel:
		return nil
	case entity.ModeSolo:
	default:
		return apperror.ErrInvalidMode
	}

	switch difficulty {
	case entity.DifficultyEasy:
		return nil
	case entity.DifficultyHard:
		if rows*cols > maxHardCells {
			return apperror.ErrDifficultyTooLarge
		}
		return nil
	default:
		return apperror.ErrDifficultyRequired
	}
}

func (that *gameService) JoinGame(ctx context.Context, gameID string, joiner entity.Identity) (*entity.Game, entity.Mark, error) {
	if joiner.ID == "" {
		return nil, entity.EmptyCell, apperror.ErrInvalidPlayer
	}

	var side entity.Mark

	game, err := that.sessions.Update(ctx, gameID, func(game *entity.Game) error {
		switch {
		case game.IsActive():
			return apperror.ErrGameInProgress
		case game.IsFinished():
			return apperror.ErrGameFinished
		}

		if game.HasPlayer(joiner.ID) {
			return apperror.ErrOwnGame
		}

		index, ok := game.FreeSlot()
		if !ok {
			return apperror.ErrGameFull
		}

		game.Players[index].BindHuman(joiner)
		game.Status = entity.StatusActive
		side = game.Players[index].Side

		return nil
	})
	if err != nil {
		return nil, entity.EmptyCell, fmt.Errorf("failed to join game: %w", err)
	}

	return game, side, nil
}

// AttachMessage remembers which chat message shows the board to a player.
func (that *gameService) AttachMessage(ctx context.Context, gameID, playerID string, ref entity.MessageRef) (*entity.Game, error) {
	game, err := that.sessions.Update(ctx, gameID, func(game *entity.Game) error {
		index, ok := game.SlotOf(playerID)
		if !ok {
			return apperror.ErrNotInGame
		}

		game.Players[index].Message = ref

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to attach message: %w", err)
	}

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

// gameFactory seats players into fresh games.
type gameFactory struct {
	bot   BotService
	flip  func() bool
	newID func() string
}

func newGameFactory(botService BotService) *gameFactory {
	return &gameFactory{
		bot: botService,
		flip: func() bool {
			return rand.Intn(2) == 0 //nolint: gosec // it's ok
		},
		newID: pkg.GenerateGameID,
	}
}

// seat returns the slot for the first seated human: 0 on heads, 1 on tails.
func (that *gameFactory) seat() int {
	if that.flip() {
		return 0
	}
	return 1
}

func (that *gameFactory) duel(creator entity.Identity, rows, cols int) *entity.Game {
	game := entity.NewGame(that.newID(), entity.ModeDuel, entity.DifficultyNone, rows, cols)
	game.Players[that.seat()].BindHuman(creator)

	return game
}

func (that *gameFactory) solo(
	human entity.Identity,
	ref entity.MessageRef,
	rows, cols int,
	difficulty entity.Difficulty,
) *entity.Game {
	game := entity.NewGame(that.newID(), entity.ModeSolo, difficulty, rows, cols)
	game.Status = entity.StatusActive

	index := that.seat()
	game.Players[index].BindHuman(human)
	game.Players[index].Message = ref
	game.Players[1-index].BindEnvironment()

	// the environment holds X and opens
	if index == 1 {
		playEnvironment(that.bot, game, 0)
		game.Turn = tictactoe.NextTurnIndex(game)
	}

	return game
}

// rematch builds the successor of a finished game with the same players.
func (that *gameFactory) rematch(previous *entity.Game) *entity.Game {
	humans := previous.Humans()

	if previous.IsSolo() {
		human := humans[0]
		return that.solo(
			entity.Identity{ID: human.ID, Username: human.Username},
			human.Message,
			previous.Board.Rows,
			previous.Board.Cols,
			previous.Difficulty,
		)
	}

	game := entity.NewGame(that.newID(), entity.ModeDuel, entity.DifficultyNone, previous.Board.Rows, previous.Board.Cols)
	game.Status = entity.StatusActive

	first := that.seat()
	for i, human := range humans {
		index := (first + i) % len(game.Players)
		game.Players[index].BindHuman(entity.Identity{ID: human.ID, Username: human.Username})
		game.Players[index].Message = human.Message
	}

	return game
}

// playEnvironment lets the environment in slot index move, if a move exists.
func playEnvironment(botService BotService, game *entity.Game, index int) {
	cell, ok := botService.ChooseMove(game.Board, game.Difficulty, game.Players[index].Side)
	if !ok {
		return
	}

	tictactoe.Place(game, index, cell.Row, cell.Col)
}
