package engine

import (
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/learner/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrNoProgress is returned when an agent's turn leaves the board unchanged.
var ErrNoProgress = errors.New("agent did not play a move")

type Option func(e *LocalEngine)

// LocalEngine runs games on one shared board, handing turns to its agents in
// slice order starting from the starter index.
type LocalEngine struct {
	Board     *game.Board
	Agents    []agent.Agent
	players   []string
	starter   int
	alternate bool
	observe   func(*game.Board)
}

var _ Engine = &LocalEngine{}

// WithStarter sets the index of the agent that moves first.
func WithStarter(index int) Option {
	return func(e *LocalEngine) {
		e.starter = index
	}
}

// WithAlternatingStarter hands the first move to the next agent after
// every game.
func WithAlternatingStarter() Option {
	return func(e *LocalEngine) {
		e.alternate = true
	}
}

// WithObserver calls fn with the board after every move.
func WithObserver(fn func(*game.Board)) Option {
	return func(e *LocalEngine) {
		if fn != nil {
			e.observe = fn
		}
	}
}

func New(board *game.Board, players []string, agents []agent.Agent, options ...Option) *LocalEngine {
	if len(players) != len(agents) {
		panic("number of players does not match number of agents")
	}
	if len(players) < 2 {
		panic("need at least two players")
	}

	e := &LocalEngine{
		Board:   board,
		Agents:  agents,
		players: players,
		observe: func(*game.Board) {},
	}
	for _, option := range options {
		option(e)
	}
	if e.starter < 0 || e.starter >= len(agents) {
		panic("starter is not a player")
	}
	return e
}

// Starter returns the index of the agent that opens the next game.
func (e *LocalEngine) Starter() int {
	return e.starter
}

// Run executes the game loop until the board is decided. The state after each
// move is recorded by the agent that made it; every agent is updated at the end
// and the board is reset for the next game.
func (e *LocalEngine) Run() (game.Result, metrics.GameMetric, error) {
	defer e.Board.Reset()

	gameMetric := metrics.GameMetric{
		Starter:   e.players[e.starter],
		StartTime: time.Now(),
	}
	log.Debug().Msgf("player %s is starting", e.players[e.starter])

	turn := e.starter
	result := e.Board.Winner()
	for !result.IsTerminal() {
		player, current := e.players[turn], e.Agents[turn]

		before := e.Board.EncodeState()
		if err := current.TakeAction(e.Board); err != nil {
			return game.Ongoing, gameMetric, errors.WithMessagef(err, "move %d by %s", gameMetric.TotalMoves+1, player)
		}
		after := e.Board.EncodeState()
		if after == before {
			return game.Ongoing, gameMetric, errors.Wrapf(ErrNoProgress, "move %d by %s", gameMetric.TotalMoves+1, player)
		}

		current.Record(after)
		gameMetric.TotalMoves++
		e.observe(e.Board)

		result = e.Board.Winner()
		turn = (turn + 1) % len(e.Agents)
	}

	for _, a := range e.Agents {
		a.Update(e.Board)
	}

	gameMetric.Winner = result.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	log.Debug().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, result)

	if e.alternate {
		e.starter = (e.starter + 1) % len(e.Agents)
	}
	return result, gameMetric, nil
}
