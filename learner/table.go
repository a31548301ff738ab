package learner

import (
	"tictactoe/game"

	"github.com/pkg/errors"
)

// Table maps every encoded state to the learner's estimate of winning from it.
// It is dense: index s holds V(s).
type Table []float64

func NewTable() Table {
	return make(Table, game.NumStates)
}

func (t Table) Value(s game.State) float64 {
	return t[s]
}

// fill stores the terminal value for m of every state, decoding each one
// into board. The board is returned to the empty state afterwards.
func (t Table) fill(board *game.Board, m game.Marker) error {
	for s := game.State(0); s < game.NumStates; s++ {
		if err := board.DecodeState(s); err != nil {
			return errors.WithMessagef(err, "initialize value of state %d", s)
		}
		t[s] = board.TerminalValue(m)
	}
	return board.DecodeState(0)
}
