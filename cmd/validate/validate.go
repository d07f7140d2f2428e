// Package validate implements a dry run of the pipeline: all stages execute
// but nothing is written, and the configured windows are checked against
// actual sun event times at the survey site.
package validate

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vjjan91/diurnal-Acoustics/internal/conf"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
	"github.com/vjjan91/diurnal-Acoustics/internal/pipeline"
	"github.com/vjjan91/diurnal-Acoustics/internal/suncalc"
)

// Command creates the validate command.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Dry-run the pipeline without writing the dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.ForService("validate")

			result, err := pipeline.Run(settings)
			if err != nil {
				return err
			}

			unbucketed := 0
			dates := make(map[string]bool)
			for i := range result.Events {
				if result.Events[i].HourOfDay == "" {
					unbucketed++
				}
				dates[result.Events[i].Date] = true
			}

			logger.Info("pipeline validated",
				"events", len(result.Events),
				"species_observed", len(result.Summary),
				"events_outside_hour_buckets", unbucketed)

			reportSunTimes(settings, dates)
			return nil
		},
	}
}

// reportSunTimes logs sunrise and sunset for every survey date so window
// configuration can be eyeballed against actual daylight.
func reportSunTimes(settings *conf.Settings, dates map[string]bool) {
	logger := logging.ForService("validate")
	if settings.Site.Latitude == 0 && settings.Site.Longitude == 0 {
		logger.Debug("site location not configured, skipping sun event report")
		return
	}

	sc := suncalc.NewSunCalc(settings.Site.Latitude, settings.Site.Longitude)
	for dateKey := range dates {
		date, err := time.Parse("2006-01-02", dateKey)
		if err != nil {
			continue
		}
		times, err := sc.GetSunEventTimes(date)
		if err != nil {
			logger.Warn("sun event calculation failed", "date", dateKey, "error", err)
			continue
		}
		logger.Debug("sun events",
			"date", dateKey,
			"civil_dawn", times.CivilDawn.Format("15:04:05"),
			"sunrise", times.Sunrise.Format("15:04:05"),
			"sunset", times.Sunset.Format("15:04:05"),
			"civil_dusk", times.CivilDusk.Format("15:04:05"))
	}
}
