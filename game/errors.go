package game

import "github.com/pkg/errors"

var (
	// ErrInvalidSymbol is returned when a move uses a marker other than X or O.
	ErrInvalidSymbol = errors.New("invalid symbol")
	// ErrStateOutOfRange is returned when decoding a state outside [0, NumStates).
	ErrStateOutOfRange = errors.New("board state does not exist")
	// ErrCellOutOfRange is returned when a move targets a cell off the board.
	ErrCellOutOfRange = errors.New("cell out of range")
)
