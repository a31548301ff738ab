package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func place(t *testing.T, b *Board, m Marker, cells ...Cell) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, b.AddMove(m, c))
	}
}

func TestBoardAddMove(t *testing.T) {
	t.Run("placing on an empty cell", func(t *testing.T) {
		b := NewBoard()

		require.NoError(t, b.AddMove(X, Cell{1, 2}))

		require.Equal(t, X, b.At(Cell{1, 2}), "Cell should hold the placed marker")
		require.False(t, b.IsClear(1, 2), "Cell should no longer be clear")
		require.True(t, b.IsClear(2, 1), "Other cells should stay clear")
	})

	t.Run("occupied cell is silently ignored", func(t *testing.T) {
		b := NewBoard()
		place(t, b, X, Cell{0, 0})

		err := b.AddMove(O, Cell{0, 0})

		require.NoError(t, err, "Moving onto an occupied cell should not fail")
		require.Equal(t, X, b.At(Cell{0, 0}), "Occupied cell should not be overwritten")
	})

	t.Run("invalid symbol", func(t *testing.T) {
		b := NewBoard()

		err := b.AddMove(Empty, Cell{0, 0})
		require.ErrorIs(t, err, ErrInvalidSymbol)

		err = b.AddMove(Marker(5), Cell{0, 0})
		require.ErrorIs(t, err, ErrInvalidSymbol)
		require.Equal(t, State(0), b.EncodeState(), "Board should be unchanged")
	})

	t.Run("cell outside the board", func(t *testing.T) {
		b := NewBoard()

		require.ErrorIs(t, b.AddMove(X, Cell{3, 0}), ErrCellOutOfRange)
		require.ErrorIs(t, b.AddMove(X, Cell{0, -1}), ErrCellOutOfRange)
	})
}

func TestBoardWinner(t *testing.T) {
	lines := map[string][]Cell{
		"row 0":         {{0, 0}, {0, 1}, {0, 2}},
		"row 1":         {{1, 0}, {1, 1}, {1, 2}},
		"row 2":         {{2, 0}, {2, 1}, {2, 2}},
		"column 0":      {{0, 0}, {1, 0}, {2, 0}},
		"column 1":      {{0, 1}, {1, 1}, {2, 1}},
		"column 2":      {{0, 2}, {1, 2}, {2, 2}},
		"diagonal":      {{0, 0}, {1, 1}, {2, 2}},
		"anti-diagonal": {{0, 2}, {1, 1}, {2, 0}},
	}

	for name, cells := range lines {
		for _, m := range []Marker{X, O} {
			t.Run(name+" "+m.String(), func(t *testing.T) {
				b := NewBoard()
				place(t, b, m, cells...)

				require.Equal(t, Won(m), b.Winner(), "Full line should win")
				require.Equal(t, m, b.Winner().Winner())
			})
		}
	}

	t.Run("empty board is ongoing", func(t *testing.T) {
		require.Equal(t, Ongoing, NewBoard().Winner())
	})

	t.Run("full board without a line is a draw", func(t *testing.T) {
		b := NewBoard()
		order := []Marker{X, O, X, O, X, O, O, X, O}
		for p, m := range order {
			place(t, b, m, Cell{p / Length, p % Length})
		}

		require.Equal(t, Draw, b.Winner())
		require.Empty(t, b.EmptyCells())
	})

	t.Run("two markers in a line do not win", func(t *testing.T) {
		b := NewBoard()
		place(t, b, X, Cell{0, 0}, Cell{0, 1})
		place(t, b, O, Cell{0, 2})

		require.Equal(t, Ongoing, b.Winner())
	})
}

func TestBoardRowWinScenario(t *testing.T) {
	b := NewBoard()
	xs := []Cell{{0, 0}, {0, 1}, {0, 2}}
	oMoves := []Cell{{1, 0}, {1, 1}}

	for i, c := range xs {
		place(t, b, X, c)
		if i < len(xs)-1 {
			require.Equal(t, Ongoing, b.Winner(), "No winner after X move %d", i+1)
			place(t, b, O, oMoves[i])
			require.Equal(t, Ongoing, b.Winner(), "No winner after O move %d", i+1)
		}
	}

	require.Equal(t, XWon, b.Winner(), "X should win after its third move")
}

func TestBoardReward(t *testing.T) {
	t.Run("winner gets 1, loser 0", func(t *testing.T) {
		b := NewBoard()
		place(t, b, O, Cell{0, 0}, Cell{1, 1}, Cell{2, 2})

		require.Equal(t, 1.0, b.Reward(O))
		require.Equal(t, 0.0, b.Reward(X))
	})

	t.Run("draw gives 0 to both", func(t *testing.T) {
		b := NewBoard()
		for p, m := range []Marker{X, O, X, O, X, O, O, X, O} {
			place(t, b, m, Cell{p / Length, p % Length})
		}

		require.Equal(t, 0.0, b.Reward(X))
		require.Equal(t, 0.0, b.Reward(O))
	})

	t.Run("reward matches winner on every terminal state", func(t *testing.T) {
		b := NewBoard()
		for s := State(0); s < NumStates; s++ {
			require.NoError(t, b.DecodeState(s))
			result := b.Winner()
			if !result.IsTerminal() {
				continue
			}
			for _, m := range []Marker{X, O} {
				want := 0.0
				if result == Won(m) {
					want = 1.0
				}
				require.Equal(t, want, b.Reward(m), "state %d marker %s", s, m)
			}
		}
	})
}

func TestBoardTerminalValue(t *testing.T) {
	b := NewBoard()
	require.Equal(t, 0.5, b.TerminalValue(X), "Empty board should be neutral")

	place(t, b, X, Cell{0, 0}, Cell{1, 0}, Cell{2, 0})
	require.Equal(t, 1.0, b.TerminalValue(X), "Win should be worth 1")
	require.Equal(t, 0.0, b.TerminalValue(O), "Loss should be worth 0")

	b.Reset()
	for p, m := range []Marker{X, O, X, O, X, O, O, X, O} {
		place(t, b, m, Cell{p / Length, p % Length})
	}
	require.Equal(t, 0.5, b.TerminalValue(X), "Draw should be neutral")
	require.Equal(t, 0.5, b.TerminalValue(O), "Draw should be neutral")
}

func TestBoardReset(t *testing.T) {
	b := NewBoard()
	place(t, b, X, Cell{1, 1})
	place(t, b, O, Cell{0, 2})

	b.Reset()

	require.Equal(t, State(0), b.EncodeState())
	require.Len(t, b.EmptyCells(), NumCells)
}

func TestBoardEmptyCells(t *testing.T) {
	b := NewBoard()
	place(t, b, X, Cell{0, 1})
	place(t, b, O, Cell{2, 0})

	cells := b.EmptyCells()

	require.Equal(t, []Cell{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 1}, {2, 2}}, cells,
		"Empty cells should be listed in row-major order")
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	place(t, b, X, Cell{0, 0})
	place(t, b, O, Cell{1, 1})

	want := "-----------\n" +
		" X           \n" +
		"-----------\n" +
		"     O       \n" +
		"-----------\n" +
		"             \n" +
		"-----------\n"
	require.Equal(t, want, b.String())
}

func TestParseMarker(t *testing.T) {
	m, err := ParseMarker(" x ")
	require.NoError(t, err)
	require.Equal(t, X, m)

	m, err = ParseMarker("O")
	require.NoError(t, err)
	require.Equal(t, O, m)

	_, err = ParseMarker("z")
	require.ErrorIs(t, err, ErrInvalidSymbol)
}
