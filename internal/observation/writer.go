package observation

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vjjan91/diurnal-Acoustics/internal/errors"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
)

// csvHeader is the fixed column order of the detections dataset.
var csvHeader = []string{
	"site_id",
	"date",
	"start_time",
	"split_index",
	"time_of_day",
	"restoration_type",
	"hour_of_day",
	"species_code",
	"detection_count",
}

// WriteEventsCSV serializes events to the canonical CSV dataset at path,
// creating parent directories as needed. Row order is preserved, so identical
// inputs produce byte-identical output.
func WriteEventsCSV(events []Event, path string) error {
	logger := logging.ForService("observation")

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New(err).
				Component("observation").
				Category(errors.CategoryFileIO).
				FileContext(path).
				Build()
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.New(err).
			Component("observation").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return errors.New(err).
			Component("observation").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}

	for i := range events {
		e := &events[i]
		record := []string{
			e.SiteID,
			e.Date,
			e.StartTime,
			e.SplitIndex,
			e.TimeOfDay,
			e.RestorationType,
			e.HourOfDay,
			e.SpeciesCode,
			strconv.Itoa(e.DetectionCount),
		}
		if err := writer.Write(record); err != nil {
			return errors.New(err).
				Component("observation").
				Category(errors.CategoryFileIO).
				FileContext(path).
				Build()
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.New(err).
			Component("observation").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	if err := file.Close(); err != nil {
		return errors.New(err).
			Component("observation").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}

	logger.Info("detections dataset written", "path", path, "events", len(events))
	return nil
}
