package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

func boardOf(t *testing.T, rows ...string) entity.Board {
	t.Helper()

	board := entity.NewBoard(len(rows), len(rows[0]))
	for r, line := range rows {
		for c, ch := range line {
			switch ch {
			case 'X':
				board.Cells[r*board.Cols+c] = entity.MarkX
			case 'O':
				board.Cells[r*board.Cols+c] = entity.MarkO
			}
		}
	}

	return board
}

func TestBotService_ChooseMove(t *testing.T) {
	bot := NewBotService()

	t.Run("No empty cell", func(t *testing.T) {
		cell, ok := bot.ChooseMove(boardOf(t, "XOX", "XOO", "OXX"), entity.DifficultyHard, entity.MarkO)

		assert.False(t, ok)
		assert.Equal(t, NoMove, cell)
	})

	t.Run("Hard takes the immediate win", func(t *testing.T) {
		// Given: X can win now or later
		board := boardOf(t, "XX.", "OO.", "...")

		// When: hard X chooses
		cell, ok := bot.ChooseMove(board, entity.DifficultyHard, entity.MarkX)

		// Then: it wins at once
		require.True(t, ok)
		assert.Equal(t, entity.Cell{Row: 0, Col: 2}, cell)
	})

	t.Run("Hard blocks the opponent", func(t *testing.T) {
		board := boardOf(t, "XX.", "O..", "...")

		cell, ok := bot.ChooseMove(board, entity.DifficultyHard, entity.MarkO)

		require.True(t, ok)
		assert.Equal(t, entity.Cell{Row: 0, Col: 2}, cell)
	})

	t.Run("Hard wins instead of blocking", func(t *testing.T) {
		// Given: O can win in the middle row or block the top row
		board := boardOf(t, "X.X", "OO.", "X..")

		cell, ok := bot.ChooseMove(board, entity.DifficultyHard, entity.MarkO)

		require.True(t, ok)
		assert.Equal(t, entity.Cell{Row: 1, Col: 2}, cell)
	})

	t.Run("Hard breaks ties by row-major order", func(t *testing.T) {
		// every opening on an empty board draws under perfect play
		cell, ok := bot.ChooseMove(entity.NewBoard(3, 3), entity.DifficultyHard, entity.MarkX)

		require.True(t, ok)
		assert.Equal(t, entity.Cell{Row: 0, Col: 0}, cell)
	})

	t.Run("Easy picks among empty cells", func(t *testing.T) {
		// Given: a bot whose randomness always picks the last candidate
		easy := &botService{intn: func(n int) int { return n - 1 }}
		board := boardOf(t, "X.O", ".X.", "OOX")

		cell, ok := easy.ChooseMove(board, entity.DifficultyEasy, entity.MarkX)

		require.True(t, ok)
		assert.Equal(t, entity.Cell{Row: 1, Col: 2}, cell)
	})

	t.Run("Easy never picks an occupied cell", func(t *testing.T) {
		board := boardOf(t, "XO.", "OOX", "XXO")

		for range 50 {
			cell, ok := bot.ChooseMove(board, entity.DifficultyEasy, entity.MarkO)
			require.True(t, ok)
			assert.Equal(t, entity.Cell{Row: 0, Col: 2}, cell)
		}
	})
}

func TestBotService_HardSelfPlayDraws(t *testing.T) {
	bot := NewBotService()
	board := entity.NewBoard(3, 3)
	mark := entity.MarkX

	for {
		cell, ok := bot.ChooseMove(board, entity.DifficultyHard, mark)
		require.True(t, ok)

		board = tictactoe.ApplyMove(board, cell.Row, cell.Col, mark)
		require.Equal(t, entity.EmptyCell, tictactoe.Winner(board, cell.Row, cell.Col))

		if tictactoe.IsDraw(board) {
			break
		}
		mark = mark.Opponent()
	}
}

// TestBotService_HardNeverLoses plays every possible opponent line against hard.
func TestBotService_HardNeverLoses(t *testing.T) {
	bot := NewBotService()

	var explore func(t *testing.T, board entity.Board, botMark entity.Mark, toMove entity.Mark)
	explore = func(t *testing.T, board entity.Board, botMark entity.Mark, toMove entity.Mark) {
		if toMove == botMark {
			cell, ok := bot.ChooseMove(board, entity.DifficultyHard, botMark)
			if !ok {
				return
			}

			next := tictactoe.ApplyMove(board, cell.Row, cell.Col, botMark)
			if tictactoe.Winner(next, cell.Row, cell.Col) != entity.EmptyCell || tictactoe.IsDraw(next) {
				return
			}
			explore(t, next, botMark, botMark.Opponent())
			return
		}

		for _, cell := range tictactoe.EmptyCells(board) {
			next := tictactoe.ApplyMove(board, cell.Row, cell.Col, toMove)
			if !assert.Equal(t, entity.EmptyCell, tictactoe.Winner(next, cell.Row, cell.Col), "bot lost on %v", next.Cells) {
				return
			}
			if tictactoe.IsDraw(next) {
				continue
			}
			explore(t, next, botMark, botMark)
		}
	}

	t.Run("Bot plays X", func(t *testing.T) {
		explore(t, entity.NewBoard(3, 3), entity.MarkX, entity.MarkX)
	})

	t.Run("Bot plays O", func(t *testing.T) {
		explore(t, entity.NewBoard(3, 3), entity.MarkO, entity.MarkX)
	})
}
