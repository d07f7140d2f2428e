// Package annotation loads raw per-season, per-time-window annotation tables
// into a unified in-memory form.
package annotation

import (
	"time"
)

// TimeOfDay labels the recording window a chunk came from. It is assigned
// from file provenance, never inferred from the clock value.
type TimeOfDay string

const (
	Dawn TimeOfDay = "dawn"
	Dusk TimeOfDay = "dusk"
)

// Chunk is one manually annotated 10-second audio chunk.
type Chunk struct {
	SiteID          string
	Date            time.Time
	StartTime       string // 6-digit zero-padded HHMMSS
	SplitIndex      string
	TimeOfDay       TimeOfDay
	RestorationType string
	Counts          map[string]int // ad-hoc species code -> detection count, zero counts omitted
}

// Table is an ordered set of chunks sharing one species column layout.
type Table struct {
	SpeciesColumns []string // ad-hoc species codes in source column order
	Chunks         []Chunk
}

// Recognized non-species columns in the raw annotation tables.
const (
	ColumnFilename    = "Filename"
	ColumnRestoration = "Restoration.Type..Benchmark.Active.Passive."
	ColumnRawTime     = "Time..Morning.Evening.Night."
)
