package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// MakeTurn places the mark of the slot to move after checking the actor may
// move there. The turn is not advanced.
func MakeTurn(game *entity.Game, actorID string, row, col int) error {
	if err := validateMove(game, actorID, row, col); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	Place(game, game.Turn, row, col)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, actorID string, row, col int) error {
	switch {
	case game.IsOpen():
		return apperror.ErrGameNotStarted
	case game.IsFinished():
		return apperror.ErrGameFinished
	}

	if !IsActorsTurn(game, actorID) {
		return apperror.ErrNotYourTurn
	}

	if !game.Board.InBounds(row, col) {
		return apperror.ErrInvalidCell
	}

	if game.Board.At(row, col) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// Place puts the mark of slot index at (row, col) and settles the status.
func Place(game *entity.Game, index, row, col int) {
	player := game.Players[index]
	game.Board = ApplyMove(game.Board, row, col, player.Side)

	updateGameStatus(game, player, row, col)
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(game *entity.Game, player entity.Player, row, col int) {
	if winner := Winner(game.Board, row, col); winner != entity.EmptyCell {
		game.Status = entity.StatusWon
		game.Winner = winner
		if player.IsHuman() {
			game.WinnerID = player.ID
		}
		return
	}

	if IsDraw(game.Board) {
		game.Status = entity.StatusDrawn
	}
}
