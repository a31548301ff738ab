package main

import (
	"context"
	"os"
	"os/signal"

	"tictactoe/cmd"

	"github.com/rs/zerolog/log"
)

// main entry point: self-play training and interactive play
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCommand := cmd.GetRootCommand()
	if err := rootCommand.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("tictactoe failed")
		stop()
		os.Exit(1)
	}
}
