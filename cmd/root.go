package cmd

import (
	"os"
	"time"

	"tictactoe/experiments"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	config   = experiments.DefaultConfig()
	logLevel string
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Tic-tac-toe agents that learn by self-play",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(logLevel)
		},
	}
	rootCommand.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCommand.PersistentFlags().IntVarP(&config.Games, "games", "g", config.Games, "Number of self-play training games")
	rootCommand.PersistentFlags().Float64Var(&config.Epsilon, "epsilon", config.Epsilon, "Probability of a random move")
	rootCommand.PersistentFlags().Float64Var(&config.Alpha, "alpha", config.Alpha, "Learning rate")
	rootCommand.PersistentFlags().Uint64Var(&config.Seed, "seed", 0, "Random seed, 0 seeds from the clock")
	rootCommand.PersistentFlags().BoolVar(&config.Alternate, "alternate", false, "Alternate the first mover between training games")
	rootCommand.PersistentFlags().IntVar(&config.LogEvery, "log-every", config.LogEvery, "Games between progress logs")
	// adding the subcommands here
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(PlayCommand())
	return rootCommand
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	return nil
}
