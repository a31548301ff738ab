package engine

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Engine interface {
	// Run plays a single game until the board has a winner or is full
	Run() (result game.Result, gameMetric metrics.GameMetric, err error)
}
