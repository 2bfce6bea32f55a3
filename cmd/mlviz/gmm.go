package main

import (
	"github.com/drakos74/mlviz/internal/viz"
	"github.com/spf13/cobra"
)

var gmmCmd = &cobra.Command{
	Use:   "gmm km|em [reverse]",
	Short: "Mixture components of mixt0.dat and mixt1.dat with their centroids",
	Long: `km draws the components found by k-means.
em first draws the estimated density of dense.dat with the training samples,
then the components over its contours. 'reverse' swaps the component colours.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := viz.ParseMixture(args)
		if err != nil {
			return err
		}
		return run(c)
	},
}

func init() {
	rootCmd.AddCommand(gmmCmd)
}
