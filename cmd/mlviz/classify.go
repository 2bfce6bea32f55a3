package main

import (
	"github.com/drakos74/mlviz/internal/viz"
	"github.com/spf13/cobra"
)

var knnCmd = &cobra.Command{
	Use:   "knn",
	Short: "k-nearest-neighbours regions from class.dat with the samples of data0..2.dat",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := viz.ParseClassification("knn", args)
		if err != nil {
			return err
		}
		return run(c)
	},
}

var dtCmd = &cobra.Command{
	Use:   "dt ID",
	Short: "Decision tree regions from class.dat with the samples of data0..2.dat, consuming them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := viz.ParseClassification("dt", args)
		if err != nil {
			return err
		}
		return run(c)
	},
}

func init() {
	rootCmd.AddCommand(knnCmd)
	rootCmd.AddCommand(dtCmd)
}
