package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vjjan91/diurnal-Acoustics/cmd/config"
	"github.com/vjjan91/diurnal-Acoustics/cmd/ingest"
	"github.com/vjjan91/diurnal-Acoustics/cmd/validate"
	"github.com/vjjan91/diurnal-Acoustics/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "diurnal-acoustics",
		Short: "Bioacoustic annotation ingestion pipeline",
		Long: `Ingests raw per-site, per-day bioacoustic annotation tables and produces
the canonical detection events dataset consumed by all downstream analyses.`,
	}

	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		ingest.Command(settings),
		validate.Command(settings),
		config.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Input.Taxonomy, "taxonomy", viper.GetString("input.taxonomy"), "Path to the standardized species-code table")
	rootCmd.PersistentFlags().IntVar(&settings.Filter.MinOccurrence, "min-occurrence", viper.GetInt("filter.minoccurrence"), "Minimum distinct site-date detections for a species to be retained")
	rootCmd.PersistentFlags().BoolVar(&settings.Filter.Symmetrize, "symmetrize", viper.GetBool("filter.symmetrize"), "Add zero-count rows for retained species missing one time of day")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %w", err)
	}

	return nil
}
