package main

import (
	"github.com/drakos74/mlviz/internal/viz"
	"github.com/spf13/cobra"
)

var shapes string

func regionsCmd(name, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := viz.ParseRegions(name, args)
			if err != nil {
				return err
			}
			return run(c, func(r *viz.Runner) {
				if shapes != "" {
					r.WithShapes(shapes)
				}
			})
		},
	}
	cmd.Flags().StringVar(&shapes, "shapes", "", "directory with the natural earth shapefiles, the working directory by default")
	return cmd
}

func init() {
	rootCmd.AddCommand(regionsCmd("nbc", "Prefectures of Japan painted with the colours of pref.dat"))
	rootCmd.AddCommand(regionsCmd("lda", "Prefectures of Japan painted with the palette indices of pref.dat, consuming it"))
}
