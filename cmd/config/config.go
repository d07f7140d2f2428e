// Package config implements the command that writes the current settings to a
// YAML configuration file.
package config

import (
	"github.com/spf13/cobra"

	"github.com/vjjan91/diurnal-Acoustics/internal/conf"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
)

// Command creates the config command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate a configuration file with the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}
			if err := conf.SaveYAMLConfig(output, settings); err != nil {
				return err
			}
			logging.ForService("config").Info("configuration written", "path", output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "config.yaml", "Path to write the configuration file")

	return cmd
}
