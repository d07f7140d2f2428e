// Package activity applies the vocal-activity inclusion policy: species that
// rarely vocalize across the survey are excluded from the final dataset.
package activity

import (
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
	"github.com/vjjan91/diurnal-Acoustics/internal/observation"
)

// Summary counts, per canonical species code, the number of distinct
// (site_id, date) combinations with at least one detection. It is derived
// for the inclusion decision only and never persisted.
type Summary map[string]int

// siteDate identifies one site on one calendar day.
type siteDate struct {
	siteID string
	date   string
}

// Summarize computes the per-species occurrence summary. Any number of
// events on the same site and date, across any time of day, count once.
func Summarize(events []observation.Event) Summary {
	seen := make(map[string]map[siteDate]bool)
	for i := range events {
		e := &events[i]
		if e.DetectionCount <= 0 {
			continue
		}
		days := seen[e.SpeciesCode]
		if days == nil {
			days = make(map[siteDate]bool)
			seen[e.SpeciesCode] = days
		}
		days[siteDate{siteID: e.SiteID, date: e.Date}] = true
	}

	summary := make(Summary, len(seen))
	for code, days := range seen {
		summary[code] = len(days)
	}
	return summary
}

// Filter retains only events whose species occurrence count strictly
// exceeds minOccurrence. This is a documented policy decision, not a
// statistical test: rarely-vocalizing species add noise without statistical
// power downstream. Event order is preserved, so the retained set is
// deterministic for identical inputs and threshold.
func Filter(events []observation.Event, minOccurrence int) ([]observation.Event, Summary) {
	summary := Summarize(events)

	retained := make([]observation.Event, 0, len(events))
	for i := range events {
		if summary[events[i].SpeciesCode] > minOccurrence {
			retained = append(retained, events[i])
		}
	}

	logging.ForService("activity").Info("activity filter applied",
		"min_occurrence", minOccurrence,
		"species_before", len(summary),
		"events_before", len(events),
		"events_after", len(retained))
	return retained, summary
}
