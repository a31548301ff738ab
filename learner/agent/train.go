package agent

import (
	"tictactoe/game"
	"tictactoe/learner"
)

type trainingAgent struct {
	td *learner.TD
}

// NewTrainingAgent returns a new agent for self-play during training.
func NewTrainingAgent(td *learner.TD) Agent {
	return trainingAgent{td: td}
}

func (a trainingAgent) TakeAction(board *game.Board) error {
	return a.td.TakeAction(board)
}

func (a trainingAgent) Record(state game.State) {
	a.td.Record(state)
}

func (a trainingAgent) Update(board *game.Board) {
	a.td.Update(board)
}
