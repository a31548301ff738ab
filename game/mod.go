package game

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	Length    = 3
	NumCells  = Length * Length
	NumStates = 19683 // 3^NumCells
)

// Marker is the content of a cell. The two player markers carry opposite
// signs so that a full line sums to ±Length.
type Marker int8

const (
	Empty Marker = 0
	X     Marker = 1
	O     Marker = -1
)

func (m Marker) Valid() bool {
	return m == X || m == O
}

// Opponent returns the other player marker. Empty has no opponent.
func (m Marker) Opponent() Marker {
	return -m
}

func (m Marker) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// ParseMarker accepts "x" or "o" in any case.
func ParseMarker(s string) (Marker, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "O":
		return O, nil
	}
	return Empty, errors.Wrapf(ErrInvalidSymbol, "parse marker %q", s)
}

// Cell addresses a square by row and column, both in [0, Length).
type Cell struct {
	Row int
	Col int
}

func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < Length && c.Col >= 0 && c.Col < Length
}

// index is the cell's position in row-major order.
func (c Cell) index() int {
	return c.Row*Length + c.Col
}

// State is the base-3 encoding of a whole board, in [0, NumStates).
type State uint32

// Result is the outcome of a board as seen by Board.Winner.
type Result int8

const (
	Ongoing Result = iota
	Draw
	XWon
	OWon
)

// Won returns the result of m completing a line.
func Won(m Marker) Result {
	switch m {
	case X:
		return XWon
	case O:
		return OWon
	}
	return Ongoing
}

// Winner returns the winning marker, or Empty for Ongoing and Draw.
func (r Result) Winner() Marker {
	switch r {
	case XWon:
		return X
	case OWon:
		return O
	}
	return Empty
}

func (r Result) IsTerminal() bool {
	return r != Ongoing
}

func (r Result) String() string {
	switch r {
	case Draw:
		return "draw"
	case XWon:
		return "X"
	case OWon:
		return "O"
	}
	return "ongoing"
}
