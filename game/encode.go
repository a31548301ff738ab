package game

import "github.com/pkg/errors"

// Each cell is one ternary digit of the state, little-endian in row-major
// order: cell (r, c) is digit r*Length+c.
//
//	0 = empty, 1 = O, 2 = X

var pow3 = func() [NumCells]State {
	var p [NumCells]State
	p[0] = 1
	for i := 1; i < NumCells; i++ {
		p[i] = p[i-1] * 3
	}
	return p
}()

func digit(m Marker) State {
	switch m {
	case X:
		return 2
	case O:
		return 1
	}
	return 0
}

func marker(d State) Marker {
	switch d {
	case 2:
		return X
	case 1:
		return O
	}
	return Empty
}

// EncodeState maps the grid to its state number.
func (b *Board) EncodeState() State {
	var s State
	for i := 0; i < Length; i++ {
		for j := 0; j < Length; j++ {
			s += pow3[i*Length+j] * digit(b.squares[i][j])
		}
	}
	return s
}

// DecodeState overwrites the grid with the configuration numbered s. The
// board is left untouched when s is out of range.
func (b *Board) DecodeState(s State) error {
	if s >= NumStates {
		return errors.Wrapf(ErrStateOutOfRange, "decode state %d", s)
	}
	for p := 0; p < NumCells; p++ {
		b.squares[p/Length][p%Length] = marker(s % 3)
		s /= 3
	}
	return nil
}

// Peek returns the state the board would be in after m is placed at c,
// without modifying the board. An occupied cell yields the current state.
func (b *Board) Peek(m Marker, c Cell) State {
	s := b.EncodeState()
	if b.IsClear(c.Row, c.Col) {
		s += pow3[c.index()] * digit(m)
	}
	return s
}
