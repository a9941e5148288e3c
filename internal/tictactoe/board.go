package tictactoe

import "github.com/rocketscienceinc/tictactoe-bot/internal/entity"

// Winner reports the mark that completed a full line through (row, col).
// Diagonals only count on square boards.
func Winner(board entity.Board, row, col int) entity.Mark {
	mark := board.At(row, col)
	if mark == entity.EmptyCell {
		return entity.EmptyCell
	}

	if lineOf(board, mark, row, 0, 0, 1, board.Cols) ||
		lineOf(board, mark, 0, col, 1, 0, board.Rows) {
		return mark
	}

	if !board.IsSquare() {
		return entity.EmptyCell
	}

	size := board.Rows
	if row == col && lineOf(board, mark, 0, 0, 1, 1, size) {
		return mark
	}

	if row+col == size-1 && lineOf(board, mark, 0, size-1, 1, -1, size) {
		return mark
	}

	return entity.EmptyCell
}

// lineOf checks length cells starting at (row, col) stepping by (dRow, dCol).
func lineOf(board entity.Board, mark entity.Mark, row, col, dRow, dCol, length int) bool {
	for i := 0; i < length; i++ {
		if board.At(row+i*dRow, col+i*dCol) != mark {
			return false
		}
	}

	return true
}

// IsDraw reports whether every cell is occupied.
func IsDraw(board entity.Board) bool {
	for _, cell := range board.Cells {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// EmptyCells lists free cells in row-major order.
func EmptyCells(board entity.Board) []entity.Cell {
	cells := make([]entity.Cell, 0, len(board.Cells))
	for i, mark := range board.Cells {
		if mark == entity.EmptyCell {
			cells = append(cells, entity.Cell{Row: i / board.Cols, Col: i % board.Cols})
		}
	}

	return cells
}

// ApplyMove returns a copy of board with mark placed at (row, col).
// An out-of-range or occupied cell yields an unchanged copy.
func ApplyMove(board entity.Board, row, col int, mark entity.Mark) entity.Board {
	next := board.Clone()
	if !board.InBounds(row, col) || board.At(row, col) != entity.EmptyCell {
		return next
	}

	next.Cells[row*board.Cols+col] = mark

	return next
}
