package main

import (
	"github.com/drakos74/mlviz/internal/viz"
	"github.com/spf13/cobra"
)

var mlpCmd = &cobra.Command{
	Use:   "mlp MODE",
	Short: "Network output of dist.dat over the input plane with the samples of the mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := viz.ParsePerceptron(args)
		if err != nil {
			return err
		}
		return run(c)
	},
}

func init() {
	rootCmd.AddCommand(mlpCmd)
}
