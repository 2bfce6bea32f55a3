package main

import (
	"github.com/drakos74/mlviz/internal/viz"
	"github.com/spf13/cobra"
)

var mccCmd = &cobra.Command{
	Use:   "mcc",
	Short: "Distance matrix of dist.dat as an image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(viz.Distance{})
	},
}

func init() {
	rootCmd.AddCommand(mccCmd)
}
