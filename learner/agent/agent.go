package agent

import (
	"tictactoe/game"
)

// Agent is anything that can take a turn on a board. The engine records the
// state each agent produces and asks every agent to update once the game ends.
type Agent interface {
	// TakeAction plays exactly one move on board
	TakeAction(board *game.Board) error
	Record(state game.State)
	Update(board *game.Board)
}
