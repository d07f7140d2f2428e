package events

import (
	"github.com/vjjan91/diurnal-Acoustics/internal/annotation"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
	"github.com/vjjan91/diurnal-Acoustics/internal/observation"
	"github.com/vjjan91/diurnal-Acoustics/internal/taxonomy"
)

// groupKey uniquely identifies one annotated chunk after aggregation.
type groupKey struct {
	siteID          string
	date            string // ISO 8601
	startTime       string
	splitIndex      string
	timeOfDay       annotation.TimeOfDay
	restorationType string
}

// Normalize reshapes wide annotation tables into long-form detection events.
// Rows sharing a group key (duplicate annotator passes) have their species
// counts summed; only nonzero summed counts become events. Species codes are
// canonicalized through the taxonomy mapper, and an ad-hoc species column the
// mapper cannot resolve aborts the run. Event order is deterministic: groups
// in first-appearance order, species in canonical column order.
func Normalize(tables []*annotation.Table, mapper *taxonomy.Mapper, binner *Binner) ([]observation.Event, error) {
	logger := logging.ForService("events")

	var events []observation.Event
	for _, table := range tables {
		tableEvents, err := normalizeTable(table, mapper, binner)
		if err != nil {
			return nil, err
		}
		events = append(events, tableEvents...)
	}

	logger.Debug("annotation rows normalized", "tables", len(tables), "events", len(events))
	return events, nil
}

func normalizeTable(table *annotation.Table, mapper *taxonomy.Mapper, binner *Binner) ([]observation.Event, error) {
	// Resolve every species column up front so an unmapped code fails the
	// run even when all its counts are zero.
	canonicalOf := make(map[string]string, len(table.SpeciesColumns))
	var canonicalOrder []string
	seen := make(map[string]bool)
	for _, column := range table.SpeciesColumns {
		canonical, err := mapper.Resolve(column)
		if err != nil {
			return nil, err
		}
		canonicalOf[column] = canonical
		// Historical code variants may share one canonical code.
		if !seen[canonical] {
			seen[canonical] = true
			canonicalOrder = append(canonicalOrder, canonical)
		}
	}

	sums := make(map[groupKey]map[string]int)
	var groupOrder []groupKey
	for i := range table.Chunks {
		chunk := &table.Chunks[i]
		key := groupKey{
			siteID:          chunk.SiteID,
			date:            observation.FormatDate(chunk.Date),
			startTime:       chunk.StartTime,
			splitIndex:      chunk.SplitIndex,
			timeOfDay:       chunk.TimeOfDay,
			restorationType: chunk.RestorationType,
		}
		group, ok := sums[key]
		if !ok {
			group = make(map[string]int)
			sums[key] = group
			groupOrder = append(groupOrder, key)
		}
		for column, count := range chunk.Counts {
			group[canonicalOf[column]] += count
		}
	}

	var events []observation.Event
	for _, key := range groupOrder {
		group := sums[key]
		for _, canonical := range canonicalOrder {
			count := group[canonical]
			if count == 0 {
				continue // zero-count events are never materialized
			}
			event := observation.Event{
				SiteID:          key.siteID,
				Date:            key.date,
				StartTime:       key.startTime,
				SplitIndex:      key.splitIndex,
				TimeOfDay:       string(key.timeOfDay),
				RestorationType: key.restorationType,
				HourOfDay:       binner.Bucket(key.startTime),
				SpeciesCode:     canonical,
				DetectionCount:  count,
			}
			if sp, ok := mapper.Species(canonical); ok {
				event.ScientificName = sp.ScientificName
				event.CommonName = sp.CommonName
			}
			events = append(events, event)
		}
	}
	return events, nil
}
