// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("log.file.enabled", false)
	viper.SetDefault("log.file.path", "logs/diurnal-acoustics.log")

	viper.SetDefault("input.dawn.summer", "data/summer-dawn.csv")
	viper.SetDefault("input.dawn.winter", "data/winter-dawn.csv")
	viper.SetDefault("input.dusk.summer", "data/summer-dusk.csv")
	viper.SetDefault("input.dusk.winter", "data/winter-dusk.csv")
	viper.SetDefault("input.taxonomy", "data/species-annotation-codes.csv")
	viper.SetDefault("input.dropcolumns", []string{"Notes", "Annotator", "Comments", "Observer"})

	viper.SetDefault("output.file.path", "results/datasets/detections.csv")
	viper.SetDefault("output.sqlite.enabled", false)
	viper.SetDefault("output.sqlite.path", "results/datasets/detections.db")

	viper.SetDefault("filter.minoccurrence", 20)
	viper.SetDefault("filter.symmetrize", false)

	// Recording provenance windows, not a filter.
	viper.SetDefault("windows.dawn.start", "06:00")
	viper.SetDefault("windows.dawn.end", "10:00")
	viper.SetDefault("windows.dusk.start", "16:00")
	viper.SetDefault("windows.dusk.end", "19:00")

	viper.SetDefault("site.latitude", 0.000)
	viper.SetDefault("site.longitude", 0.000)
}
