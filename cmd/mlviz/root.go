package main

import (
	"os"

	"github.com/drakos74/mlviz/internal/metrics"
	"github.com/drakos74/mlviz/internal/storage/file"
	"github.com/drakos74/mlviz/internal/viz"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	dir         string
	configs     string
	metricsFile string
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "mlviz",
	Short: "Renders the results of machine learning demos",
	Long: `mlviz reads the comma-delimited files a training run leaves in the working directory,
renders them as svg and eps figures next to them and, where configured, removes the inputs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute runs the selected visualization and exits non-zero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("mlviz failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "working directory with the inputs, figures are written there too")
	rootCmd.PersistentFlags().StringVar(&configs, "config", "", "directory with '<visualization>.yaml' files overriding the embedded ones")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics", "", "write prometheus metrics of the run to this textfile")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
}

// run renders the command from the working directory.
func run(c viz.Command, options ...func(r *viz.Runner)) error {
	r := viz.New(file.New(dir), dir).WithConfig(configs)
	for _, opt := range options {
		opt(r)
	}
	_, err := r.Run(c)
	if metricsFile != "" {
		if mErr := metrics.Observer.WriteTo(metricsFile); mErr != nil {
			log.Error().Err(mErr).Str("file", metricsFile).Msg("could not write metrics")
		}
	}
	return err
}
