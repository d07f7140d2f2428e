// Package observation defines the canonical detection event record and its
// serialization to the shared detections dataset.
package observation

import (
	"time"
)

// Event is one normalized detection: a species detected within one annotated
// audio chunk at a site on a date. This row shape is the sole contract with
// every downstream analysis.
type Event struct {
	ID              uint   `gorm:"column:id;primaryKey;autoIncrement"`
	SiteID          string `gorm:"index"`
	Date            string `gorm:"index"` // ISO 8601
	StartTime       string // 6-digit zero-padded HHMMSS
	SplitIndex      string
	TimeOfDay       string `gorm:"index"` // "dawn" or "dusk", set by provenance
	RestorationType string
	HourOfDay       string // bucket label, empty when outside all windows
	SpeciesCode     string `gorm:"index"` // canonical eBird code
	DetectionCount  int
	ScientificName  string // carried for the database export, not part of the CSV contract
	CommonName      string
}

// FormatDate renders a calendar date in the ISO 8601 form used throughout the
// dataset.
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}
