// Package pipeline runs the ingestion stages in order: taxonomy mapping,
// annotation loading, event normalization, temporal binning, activity
// filtering, dataset writing. A failure at any stage aborts the run before
// anything is written.
package pipeline

import (
	"github.com/vjjan91/diurnal-Acoustics/internal/activity"
	"github.com/vjjan91/diurnal-Acoustics/internal/annotation"
	"github.com/vjjan91/diurnal-Acoustics/internal/conf"
	"github.com/vjjan91/diurnal-Acoustics/internal/errors"
	"github.com/vjjan91/diurnal-Acoustics/internal/events"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
	"github.com/vjjan91/diurnal-Acoustics/internal/observation"
	"github.com/vjjan91/diurnal-Acoustics/internal/taxonomy"
)

// Result holds the output of a completed pipeline run before serialization.
type Result struct {
	Events  []observation.Event
	Summary activity.Summary
}

// Run executes every stage up to and including the activity filter and
// returns the final event table. Nothing is written to disk.
func Run(settings *conf.Settings) (*Result, error) {
	logger := logging.ForService("pipeline")

	mapper, err := taxonomy.LoadMapper(settings.Input.Taxonomy)
	if err != nil {
		return nil, err
	}

	binner, err := events.NewBinner(settings.Windows)
	if err != nil {
		return nil, err
	}

	var tables []*annotation.Table
	for _, window := range []struct {
		timeOfDay annotation.TimeOfDay
		paths     []string
	}{
		{annotation.Dawn, nonEmpty(settings.Input.Dawn.Summer, settings.Input.Dawn.Winter)},
		{annotation.Dusk, nonEmpty(settings.Input.Dusk.Summer, settings.Input.Dusk.Winter)},
	} {
		if len(window.paths) == 0 {
			logger.Warn("no annotation tables configured for window", "time_of_day", string(window.timeOfDay))
			continue
		}
		table, err := annotation.LoadWindow(window.timeOfDay, window.paths, settings.Input.DropColumns)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	if len(tables) == 0 {
		return nil, errors.Newf("no annotation tables configured").
			Component("pipeline").
			Category(errors.CategoryConfiguration).
			Build()
	}

	allEvents, err := events.Normalize(tables, mapper, binner)
	if err != nil {
		return nil, err
	}

	retained, summary := activity.Filter(allEvents, settings.Filter.MinOccurrence)
	if settings.Filter.Symmetrize {
		retained = activity.Symmetrize(retained)
	}

	logger.Info("pipeline stages completed",
		"events", len(retained),
		"species_observed", len(summary))
	return &Result{Events: retained, Summary: summary}, nil
}

// RunAndWrite executes the full pipeline and serializes the dataset. The
// writer runs only after every prior stage has succeeded, so a failed run
// never leaves a partially built dataset for downstream analyses.
func RunAndWrite(settings *conf.Settings) (*Result, error) {
	result, err := Run(settings)
	if err != nil {
		return nil, err
	}

	if err := observation.WriteEventsCSV(result.Events, settings.Output.File.Path); err != nil {
		return nil, err
	}

	if settings.Output.SQLite.Enabled {
		store, err := observation.OpenStore(settings.Output.SQLite.Path)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		if err := store.SaveEvents(result.Events); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func nonEmpty(paths ...string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
