package main

import (
	"github.com/drakos74/mlviz/internal/viz"
	"github.com/spf13/cobra"
)

func descentCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " path|loss SERIES...",
		Short: short,
		Long: short + `.
path (or 1) draws the trajectory of every SERIES.dat on the loss surface,
loss (or 2) draws the loss of every SERIES.dat per epoch.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := viz.ParseDescent(name, args)
			if err != nil {
				return err
			}
			return run(c)
		},
	}
}

func init() {
	rootCmd.AddCommand(descentCmd("gd", "Compares gradient descent optimizers"))
	rootCmd.AddCommand(descentCmd("sgd", "Compares stochastic gradient descent optimizers"))
}
