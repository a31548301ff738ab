package learner

import (
	"math"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrNoMoves is returned when asked to move on a board without empty cells.
var ErrNoMoves = errors.New("no empty cell to play")

type Option func(td *TD)

// TD is a tabular learner that plays one marker. It picks moves ε-greedily
// from its value table and, at the end of every game, backs the reward up
// through the states it recorded, newest first.
type TD struct {
	marker  game.Marker
	epsilon float64
	alpha   float64
	rand    *rand.Rand
	table   Table
	history []game.State
	metrics metrics.Collector
}

func WithEpsilon(epsilon float64) Option {
	return func(td *TD) {
		td.epsilon = epsilon
	}
}

func WithAlpha(alpha float64) Option {
	return func(td *TD) {
		td.alpha = alpha
	}
}

func WithSeed(seed uint64) Option {
	return func(td *TD) {
		td.rand = rand.New(rand.NewSource(seed))
	}
}

func WithSource(src rand.Source) Option {
	return func(td *TD) {
		if src != nil {
			td.rand = rand.New(src)
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(td *TD) {
		if collector != nil {
			td.metrics = collector
		}
	}
}

func New(marker game.Marker, options ...Option) *TD {
	td := &TD{ // Default values
		marker:  marker,
		epsilon: meta.EPSILON,
		alpha:   meta.ALPHA,
		rand:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		table:   NewTable(),
		history: make([]game.State, 0, game.NumCells),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(td)
	}
	if !marker.Valid() {
		panic("learner must play X or O")
	}
	if td.epsilon < 0 || td.epsilon > 1 {
		panic("epsilon must be in [0, 1]")
	}
	if td.alpha <= 0 || td.alpha > 1 {
		panic("alpha must be in (0, 1]")
	}
	td.metrics.Start(marker.String())
	return td
}

func (td *TD) Marker() game.Marker {
	return td.marker
}

func (td *TD) Table() Table {
	return td.table
}

func (td *TD) Metrics() metrics.Collector {
	return td.metrics
}

// History returns a copy of the states recorded in the current game.
func (td *TD) History() []game.State {
	history := make([]game.State, len(td.history))
	copy(history, td.history)
	return history
}

// Initialize seeds every state with its terminal value for this learner's
// marker. It must run once before training; board ends up empty.
func (td *TD) Initialize(board *game.Board) error {
	if err := td.table.fill(board, td.marker); err != nil {
		return errors.WithMessagef(err, "initialize %s learner", td.marker)
	}
	return nil
}

// TakeAction chooses a move and plays it on board.
func (td *TD) TakeAction(board *game.Board) error {
	cell, ok := td.ChooseAction(board)
	if !ok {
		return errors.Wrapf(ErrNoMoves, "%s to move", td.marker)
	}
	return board.AddMove(td.marker, cell)
}

// ChooseAction explores with probability epsilon and exploits otherwise.
func (td *TD) ChooseAction(board *game.Board) (game.Cell, bool) {
	if td.rand.Float64() < td.epsilon {
		cells := board.EmptyCells()
		if len(cells) == 0 {
			return game.Cell{}, false
		}
		log.Debug().Msgf("%s taking random action", td.marker)
		td.metrics.AddExplore()
		return cells[td.rand.Intn(len(cells))], true
	}

	cell, ok := td.ChooseBestAction(board)
	if ok {
		log.Debug().Msgf("%s taking best action (%d,%d)", td.marker, cell.Row, cell.Col)
		td.metrics.AddExploit()
	}
	return cell, ok
}

// ChooseBestAction returns the empty cell whose afterstate has the highest
// value. Ties go to the first cell in row-major order.
func (td *TD) ChooseBestAction(board *game.Board) (game.Cell, bool) {
	var best game.Cell
	bestValue := math.Inf(-1)
	found := false
	for _, cell := range board.EmptyCells() {
		value := td.table.Value(board.Peek(td.marker, cell))
		if value > bestValue {
			best, bestValue, found = cell, value, true
		}
	}
	return best, found
}

// Record appends state to the current game's history.
func (td *TD) Record(state game.State) {
	td.history = append(td.history, state)
}

// Update backs the game's reward up through the recorded history, newest
// state first, then clears the history:
//
//	V(s) ← V(s) + α(target − V(s)); target ← V(s)
func (td *TD) Update(board *game.Board) {
	target := board.Reward(td.marker)
	for i := len(td.history) - 1; i >= 0; i-- {
		s := td.history[i]
		td.table[s] += td.alpha * (target - td.table[s])
		target = td.table[s]
	}
	td.metrics.AddBackup(len(td.history))
	td.history = td.history[:0]
}
