package main

import (
	"fmt"
	"os"

	"github.com/vjjan91/diurnal-Acoustics/cmd"
	"github.com/vjjan91/diurnal-Acoustics/internal/conf"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
)

func main() {
	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if settings.Log.File.Enabled {
		closeLog, err := logging.InitFile(settings.Debug, settings.Log.File.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer closeLog()
	} else {
		logging.Init(settings.Debug)
	}

	if err := cmd.RootCommand(settings).Execute(); err != nil {
		logging.ForService("main").Error("pipeline run failed", "error", err)
		os.Exit(1)
	}
}
