package service

import (
	"math"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/tictactoe"
)

const winScore = 10

// NoMove is returned when the board has no empty cell.
var NoMove = entity.Cell{Row: -1, Col: -1}

type BotService interface {
	ChooseMove(board entity.Board, difficulty entity.Difficulty, mark entity.Mark) (entity.Cell, bool)
}

type botService struct {
	intn func(n int) int
}

func NewBotService() BotService {
	return &botService{
		intn: rand.Intn, //nolint: gosec // it's ok
	}
}

// ChooseMove picks a cell for mark. Easy plays a uniformly random empty cell,
// hard plays the first best cell in row-major order by minimax.
func (that *botService) ChooseMove(board entity.Board, difficulty entity.Difficulty, mark entity.Mark) (entity.Cell, bool) {
	cells := tictactoe.EmptyCells(board)
	if len(cells) == 0 {
		return NoMove, false
	}

	if difficulty != entity.DifficultyHard {
		return cells[that.intn(len(cells))], true
	}

	return bestMove(board, cells, mark), true
}

func bestMove(board entity.Board, cells []entity.Cell, mark entity.Mark) entity.Cell {
	best := NoMove
	bestScore := math.MinInt
	alpha, beta := math.MinInt, math.MaxInt

	for _, cell := range cells {
		next := tictactoe.ApplyMove(board, cell.Row, cell.Col, mark)

		// strict comparison keeps the first maximum
		if score := minimax(next, cell, 0, false, mark, alpha, beta); score > bestScore {
			bestScore = score
			best = cell
		}

		alpha = max(alpha, bestScore)
	}

	return best
}

// minimax scores board after last was played, from mark's point of view.
// Faster wins and slower losses score higher.
func minimax(board entity.Board, last entity.Cell, depth int, maximizing bool, mark entity.Mark, alpha, beta int) int {
	switch tictactoe.Winner(board, last.Row, last.Col) {
	case mark:
		return winScore - depth
	case mark.Opponent():
		return depth - winScore
	}

	if tictactoe.IsDraw(board) {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range tictactoe.EmptyCells(board) {
			next := tictactoe.ApplyMove(board, cell.Row, cell.Col, mark)
			best = max(best, minimax(next, cell, depth+1, false, mark, alpha, beta))
			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range tictactoe.EmptyCells(board) {
		next := tictactoe.ApplyMove(board, cell.Row, cell.Col, mark.Opponent())
		best = min(best, minimax(next, cell, depth+1, true, mark, alpha, beta))
		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}

	return best
}
