package main

import (
	"github.com/drakos74/mlviz/internal/viz"
	"github.com/spf13/cobra"
)

var fit int

var lrCmd = &cobra.Command{
	Use:   "lr [-- w0 w1 ... wn]",
	Short: "Polynomial regression over the samples in dist.dat",
	Long: `Draws the (x, t) samples of dist.dat with the polynomial w0 + w1 x + ... + wn x^n.
Coefficients go after '--' so that negative values are not taken for flags.
Without coefficients, --fit gives the degree of a least squares fit on the samples.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := viz.ParseRegression(args, fit)
		if err != nil {
			return err
		}
		return run(c)
	},
}

func init() {
	lrCmd.Flags().IntVar(&fit, "fit", 0, "degree of the polynomial to fit when no coefficients are given")
	rootCmd.AddCommand(lrCmd)
}
