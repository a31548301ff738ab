package game

import "github.com/pkg/errors"

// Board holds the grid of a single game. It is reset in place between games
// so that one instance serves a whole training run.
type Board struct {
	squares [Length][Length]Marker
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// IsClear reports whether the cell at (row, col) is empty.
func (b *Board) IsClear(row, col int) bool {
	return b.squares[row][col] == Empty
}

// At returns the marker at c.
func (b *Board) At(c Cell) Marker {
	return b.squares[c.Row][c.Col]
}

// AddMove places m at c. A move onto an occupied cell is ignored and is not
// an error; agents rely on this when probing.
func (b *Board) AddMove(m Marker, c Cell) error {
	if !m.Valid() {
		return errors.Wrapf(ErrInvalidSymbol, "add move %d at (%d,%d)", m, c.Row, c.Col)
	}
	if !c.InBounds() {
		return errors.Wrapf(ErrCellOutOfRange, "add move %s at (%d,%d)", m, c.Row, c.Col)
	}
	if b.IsClear(c.Row, c.Col) {
		b.squares[c.Row][c.Col] = m
	}
	return nil
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Cell {
	cells := make([]Cell, 0, NumCells)
	for i := 0; i < Length; i++ {
		for j := 0; j < Length; j++ {
			if b.IsClear(i, j) {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}
	return cells
}

// Reset clears every cell.
func (b *Board) Reset() {
	b.squares = [Length][Length]Marker{}
}

// Winner sums every row, column and diagonal. A sum of ±Length can only come
// from three equal markers on a 3×3 board; this does not hold for larger boards.
func (b *Board) Winner() Result {
	var lines [2*Length + 2]int
	full := true
	for i := 0; i < Length; i++ {
		for j := 0; j < Length; j++ {
			v := int(b.squares[i][j])
			if v == 0 {
				full = false
			}
			lines[i] += v        // row i
			lines[Length+j] += v // column j
			if i == j {
				lines[2*Length] += v
			}
			if i+j == Length-1 {
				lines[2*Length+1] += v
			}
		}
	}

	for _, sum := range lines {
		switch sum {
		case Length * int(X):
			return XWon
		case Length * int(O):
			return OWon
		}
	}
	if full {
		return Draw
	}
	return Ongoing
}

// Reward is 1 if m has won and 0 otherwise. Draws score the same as losses.
func (b *Board) Reward(m Marker) float64 {
	if b.Winner() == Won(m) {
		return 1
	}
	return 0
}

// TerminalValue is the initial estimate of the current state for m: 1 for a
// win, 0 for a loss and 0.5 for anything else, drawn or unfinished.
func (b *Board) TerminalValue(m Marker) float64 {
	switch b.Winner() {
	case Won(m):
		return 1
	case Won(m.Opponent()):
		return 0
	}
	return 0.5
}
