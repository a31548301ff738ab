package cmd

import (
	"tictactoe/experiments"

	"github.com/spf13/cobra"
)

func TrainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train two learners against each other and report the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := experiments.Train(cmd.Context(), config)
			return err
		},
	}
	cmd.Flags().StringVarP(&config.OutDir, "out", "o", "", "Write run reports under this folder")
	cmd.Flags().BoolVar(&config.Plot, "plot", false, "Also plot the learning curve (needs --out)")
	cmd.Flags().IntVar(&config.Window, "window", config.Window, "Games per learning-curve point")
	return cmd
}
