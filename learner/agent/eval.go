package agent

import (
	"tictactoe/game"
	"tictactoe/learner"
)

type evaluationAgent struct {
	td *learner.TD
}

// NewEvaluationAgent returns an agent that plays from a learner's table
// without changing it.
func NewEvaluationAgent(td *learner.TD) Agent {
	return evaluationAgent{td: td}
}

func (a evaluationAgent) TakeAction(board *game.Board) error {
	return a.td.TakeAction(board)
}

func (a evaluationAgent) Record(game.State)  {}
func (a evaluationAgent) Update(*game.Board) {}
