package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

func TestMakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: an active duel with alice to move
		game := duel("alice", "bob")

		// When: alice plays the corner
		err := MakeTurn(game, "alice", 0, 0)

		// Then: the mark is placed and the game goes on
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, game.Board.At(0, 0))
		assert.Equal(t, entity.StatusActive, game.Status)
	})

	t.Run("Rejections", func(t *testing.T) {
		tests := []struct {
			name     string
			prepare  func(game *entity.Game)
			actor    string
			row, col int
			expected error
		}{
			{name: "open game", prepare: func(g *entity.Game) { g.Status = entity.StatusOpen }, actor: "alice", expected: apperror.ErrGameNotStarted},
			{name: "finished game", prepare: func(g *entity.Game) { g.Status = entity.StatusDrawn }, actor: "alice", expected: apperror.ErrGameFinished},
			{name: "not your turn", prepare: func(*entity.Game) {}, actor: "bob", expected: apperror.ErrNotYourTurn},
			{name: "out of range", prepare: func(*entity.Game) {}, actor: "alice", row: 3, expected: apperror.ErrInvalidCell},
			{name: "occupied", prepare: func(g *entity.Game) { g.Board.Cells[0] = entity.MarkO }, actor: "alice", expected: apperror.ErrCellOccupied},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				game := duel("alice", "bob")
				tt.prepare(game)
				before := game.Board.Clone()

				err := MakeTurn(game, tt.actor, tt.row, tt.col)

				require.ErrorIs(t, err, tt.expected)
				assert.Equal(t, before, game.Board)
			})
		}
	})

	t.Run("Winning move records the winner", func(t *testing.T) {
		// Given: alice has two in the top row
		game := duel("alice", "bob")
		game.Board = boardOf(t, "XX.", "OO.", "...")

		// When: alice completes the row
		require.NoError(t, MakeTurn(game, "alice", 0, 2))

		// Then: she wins
		assert.Equal(t, entity.StatusWon, game.Status)
		assert.Equal(t, entity.MarkX, game.Winner)
		assert.Equal(t, "alice", game.WinnerID)
	})

	t.Run("Winning move on the last cell is a win", func(t *testing.T) {
		// Given: one cell left and alice can complete the diagonal with it
		game := duel("alice", "bob")
		game.Board = boardOf(t, "XOX", "OXO", "OX.")

		// When: alice fills the last cell
		require.NoError(t, MakeTurn(game, "alice", 2, 2))

		// Then: the line wins over the full board
		assert.Equal(t, entity.StatusWon, game.Status)
		assert.Equal(t, entity.MarkX, game.Winner)
		assert.Equal(t, "alice", game.WinnerID)
	})

	t.Run("Last cell without a line is a draw", func(t *testing.T) {
		game := duel("alice", "bob")
		game.Board = boardOf(t, "XOX", "XOO", "OX.")

		require.NoError(t, MakeTurn(game, "alice", 2, 2))

		assert.Equal(t, entity.StatusDrawn, game.Status)
		assert.Equal(t, entity.EmptyCell, game.Winner)
	})
}

func TestPlace_EnvironmentWin(t *testing.T) {
	game := entity.NewGame("g1", entity.ModeSolo, entity.DifficultyHard, 3, 3)
	game.Status = entity.StatusActive
	game.Players[0].BindEnvironment()
	game.Players[1].BindHuman(entity.Identity{ID: "alice"})
	game.Board = boardOf(t, "XX.", "OO.", "...")

	Place(game, 0, 0, 2)

	assert.Equal(t, entity.StatusWon, game.Status)
	assert.Equal(t, entity.MarkX, game.Winner)
	assert.Empty(t, game.WinnerID)
}
