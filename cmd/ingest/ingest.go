// Package ingest implements the command that runs the full pipeline and
// writes the detections dataset.
package ingest

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vjjan91/diurnal-Acoustics/internal/conf"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
	"github.com/vjjan91/diurnal-Acoustics/internal/pipeline"
)

// Command creates the ingest command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Run the ingestion pipeline and write the detections dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := pipeline.RunAndWrite(settings)
			if err != nil {
				return err
			}
			logging.ForService("ingest").Info("ingestion complete",
				"events", len(result.Events),
				"output", settings.Output.File.Path)
			return nil
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

// setupFlags configures flags specific to the ingest command.
func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().StringVarP(&settings.Output.File.Path, "output", "o", viper.GetString("output.file.path"), "Path to the detections CSV")
	cmd.Flags().BoolVar(&settings.Output.SQLite.Enabled, "sqlite", viper.GetBool("output.sqlite.enabled"), "Also export the dataset to SQLite")
	cmd.Flags().StringVar(&settings.Output.SQLite.Path, "sqlite-path", viper.GetString("output.sqlite.path"), "Path to the SQLite database")
}
