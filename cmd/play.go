package cmd

import (
	"os"

	"tictactoe/experiments"
	"tictactoe/game"
	"tictactoe/meta"

	"github.com/spf13/cobra"
)

func PlayCommand() *cobra.Command {
	var human string
	var attempts int
	var rounds int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Train by self-play, then play against the frozen learner",
		RunE: func(cmd *cobra.Command, args []string) error {
			marker, err := game.ParseMarker(human)
			if err != nil {
				return err
			}
			trained, err := experiments.Train(cmd.Context(), config)
			if err != nil {
				return err
			}
			return experiments.Play(cmd.Context(), trained, experiments.PlayConfig{
				Human:       marker,
				In:          os.Stdin,
				Out:         os.Stdout,
				MaxAttempts: attempts,
				Games:       rounds,
			})
		},
	}
	cmd.Flags().StringVar(&human, "human", "x", "Marker you play (x moves first)")
	cmd.Flags().IntVar(&attempts, "max-attempts", meta.MAX_ATTEMPTS, "Invalid inputs allowed per move, 0 for no limit")
	cmd.Flags().IntVar(&rounds, "rounds", 0, "Games to play, 0 until input ends")
	return cmd
}
