// config.go: settings struct and loading for the diurnal acoustics ingestion pipeline.
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/vjjan91/diurnal-Acoustics/internal/errors"
)

// InputSettings holds paths to the raw annotation and taxonomy tables.
type InputSettings struct {
	Dawn struct {
		Summer string // summer dawn annotation CSV
		Winter string // winter dawn annotation CSV
	}
	Dusk struct {
		Summer string // summer dusk annotation CSV
		Winter string // winter dusk annotation CSV
	}
	Taxonomy    string   // standardized species-code table CSV
	DropColumns []string // annotator free-text columns dropped by the loader
}

// OutputSettings controls where the final detections dataset is written.
type OutputSettings struct {
	File struct {
		Path string // canonical detections CSV path
	}
	SQLite struct {
		Enabled bool   // also export the dataset to a SQLite database
		Path    string // path to SQLite database
	}
}

// FilterSettings controls the vocal-activity inclusion policy.
type FilterSettings struct {
	MinOccurrence int  // minimum distinct (site, date) detections per species, strict >
	Symmetrize    bool // add zero-count rows for retained species missing one time of day
}

// Window is a clock-time span in HH:MM form, start inclusive.
type Window struct {
	Start string
	End   string
}

// WindowSettings holds the recording-provenance windows. These describe when
// recorders ran, they are never used to filter rows.
type WindowSettings struct {
	Dawn Window
	Dusk Window
}

// SiteSettings holds the observer location used for sun event reporting.
type SiteSettings struct {
	Latitude  float64
	Longitude float64
}

// LogSettings controls the optional rotating log file.
type LogSettings struct {
	File struct {
		Enabled bool   // write structured logs to a rotating file
		Path    string // log file path
	}
}

// Settings is the root configuration for the pipeline.
type Settings struct {
	Debug   bool
	Log     LogSettings
	Input   InputSettings
	Output  OutputSettings
	Filter  FilterSettings
	Windows WindowSettings
	Site    SiteSettings
}

var settingsMutex sync.Mutex

// Load reads the configuration file (if any), applies defaults and environment
// overrides, and returns the populated settings.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	return settings, nil
}

func initViper() error {
	setDefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/diurnal-acoustics")
	viper.SetEnvPrefix("diurnal")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults and flags take over.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// ValidateSettings checks cross-field constraints that viper cannot express.
func ValidateSettings(settings *Settings) error {
	if settings.Filter.MinOccurrence < 0 {
		return errors.Newf("filter.minoccurrence must not be negative, got %d", settings.Filter.MinOccurrence).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}
	for _, w := range []struct {
		name   string
		window Window
	}{
		{"windows.dawn", settings.Windows.Dawn},
		{"windows.dusk", settings.Windows.Dusk},
	} {
		if _, err := w.window.StartSeconds(); err != nil {
			return errors.Newf("%s.start: %v", w.name, err).
				Component("conf").
				Category(errors.CategoryConfiguration).
				Build()
		}
		if _, err := w.window.EndSeconds(); err != nil {
			return errors.Newf("%s.end: %v", w.name, err).
				Component("conf").
				Category(errors.CategoryConfiguration).
				Build()
		}
	}
	return nil
}

// SaveYAMLConfig writes the settings to a YAML configuration file, replacing
// any existing file atomically.
func SaveYAMLConfig(configPath string, settings *Settings) error {
	yamlData, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error marshaling settings to YAML: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(configPath), "config-*.yaml")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	tempFileName := tempFile.Name()
	defer os.Remove(tempFileName)

	if _, err := tempFile.Write(yamlData); err != nil {
		tempFile.Close()
		return fmt.Errorf("error writing to temporary file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("error closing temporary file: %w", err)
	}

	if err := os.Rename(tempFileName, configPath); err != nil {
		return fmt.Errorf("error replacing config file: %w", err)
	}
	return nil
}
