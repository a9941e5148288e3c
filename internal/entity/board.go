package entity

type Mark string

const (
	MarkX     Mark = "X"
	MarkO     Mark = "O"
	EmptyCell Mark = ""
)

// Opponent returns the other side. EmptyCell has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return EmptyCell
	}
}

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a rows x cols grid stored row-major.
type Board struct {
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
	Cells []Mark `json:"cells"`
}

func NewBoard(rows, cols int) Board {
	return Board{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Mark, rows*cols),
	}
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Rows && col >= 0 && col < that.Cols
}

// At returns the mark at (row, col), EmptyCell when out of range.
func (that Board) At(row, col int) Mark {
	if !that.InBounds(row, col) {
		return EmptyCell
	}
	return that.Cells[row*that.Cols+col]
}

func (that Board) IsSquare() bool {
	return that.Rows == that.Cols
}

func (that Board) Clone() Board {
	cells := make([]Mark, len(that.Cells))
	copy(cells, that.Cells)

	return Board{Rows: that.Rows, Cols: that.Cols, Cells: cells}
}
