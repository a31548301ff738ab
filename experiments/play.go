package experiments

import (
	"context"
	"fmt"
	"io"

	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/learner/agent"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type PlayConfig struct {
	Human       game.Marker // marker the human plays; X moves first
	In          io.Reader
	Out         io.Writer
	MaxAttempts int
	Games       int // 0 plays until the input ends
}

// Play runs interactive games between a human reading from cfg.In and the
// trained learner of the other marker. The learner's table is frozen.
func Play(ctx context.Context, trained *Trained, cfg PlayConfig) error {
	if !cfg.Human.Valid() {
		return errors.Wrapf(game.ErrInvalidSymbol, "human marker %d", cfg.Human)
	}
	computer := trained.Learner(cfg.Human.Opponent())

	human := agent.NewHumanAgent(cfg.Human, cfg.In, cfg.Out, agent.WithMaxAttempts(cfg.MaxAttempts))
	frozen := agent.NewEvaluationAgent(computer)

	players := []string{cfg.Human.String(), computer.Marker().String()}
	agents := []agent.Agent{human, frozen}
	starter := 0
	if cfg.Human != game.X {
		starter = 1
	}

	board := game.NewBoard()
	e := engine.New(board, players, agents,
		engine.WithStarter(starter),
		engine.WithObserver(func(b *game.Board) { fmt.Fprint(cfg.Out, b) }))

	for i := 0; cfg.Games == 0 || i < cfg.Games; i++ {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprintln(cfg.Out, "Starting new game")
		fmt.Fprint(cfg.Out, board)

		result, _, err := e.Run()
		if errors.Is(err, agent.ErrInputClosed) {
			log.Info().Msg("input closed, leaving interactive session")
			return nil
		}
		if err != nil {
			return err
		}

		if result == game.Draw {
			fmt.Fprintln(cfg.Out, "the game is a draw!")
		} else {
			fmt.Fprintf(cfg.Out, "player %s won the game!\n", result.Winner())
		}
	}
	return nil
}
