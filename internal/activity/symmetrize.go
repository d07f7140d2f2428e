package activity

import (
	"github.com/vjjan91/diurnal-Acoustics/internal/annotation"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
	"github.com/vjjan91/diurnal-Acoustics/internal/observation"
)

// Symmetrize appends one zero-count row per (species, time_of_day) pair that
// has detections only in the other time of day. Downstream time-of-day
// comparisons then see every retained species on both sides instead of a
// hand-maintained backfill list. The synthetic rows carry only the species
// and window; site, date and clock fields stay empty. The normalizer never
// emits zero counts, this policy stage is the single place they can appear.
func Symmetrize(events []observation.Event) []observation.Event {
	windows := make(map[string]map[string]bool) // species -> time_of_day set
	var speciesOrder []string
	for i := range events {
		e := &events[i]
		set := windows[e.SpeciesCode]
		if set == nil {
			set = make(map[string]bool)
			windows[e.SpeciesCode] = set
			speciesOrder = append(speciesOrder, e.SpeciesCode)
		}
		set[e.TimeOfDay] = true
	}

	out := events
	added := 0
	for _, code := range speciesOrder {
		set := windows[code]
		for _, timeOfDay := range []annotation.TimeOfDay{annotation.Dawn, annotation.Dusk} {
			if set[string(timeOfDay)] {
				continue
			}
			out = append(out, observation.Event{
				TimeOfDay:      string(timeOfDay),
				SpeciesCode:    code,
				DetectionCount: 0,
			})
			added++
		}
	}

	if added > 0 {
		logging.ForService("activity").Info("time-of-day zero rows added", "rows", added)
	}
	return out
}
