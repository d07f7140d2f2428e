package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjjan91/diurnal-Acoustics/internal/observation"
)

func event(site, date, tod, species string, count int) observation.Event {
	return observation.Event{
		SiteID:         site,
		Date:           date,
		StartTime:      "060000",
		SplitIndex:     "1",
		TimeOfDay:      tod,
		SpeciesCode:    species,
		DetectionCount: count,
	}
}

func TestSummarizeCountsDistinctSiteDates(t *testing.T) {
	t.Parallel()

	events := []observation.Event{
		event("S1", "2020-03-08", "dawn", "inpeaf1", 3),
		event("S1", "2020-03-08", "dusk", "inpeaf1", 1),  // same site+date, counts once
		event("S1", "2020-03-09", "dawn", "inpeaf1", 2),  // new date
		event("S2", "2020-03-08", "dawn", "inpeaf1", 1),  // new site
		event("S1", "2020-03-08", "dawn", "grawar3", 10), // other species
	}

	summary := Summarize(events)
	assert.Equal(t, 3, summary["inpeaf1"])
	assert.Equal(t, 1, summary["grawar3"])
}

func TestFilterStrictThreshold(t *testing.T) {
	t.Parallel()

	events := []observation.Event{
		event("S1", "2020-03-08", "dawn", "inpeaf1", 1),
		event("S2", "2020-03-08", "dawn", "inpeaf1", 1),
		event("S1", "2020-03-08", "dawn", "grawar3", 1),
	}

	// inpeaf1 occurs on 2 site-dates, grawar3 on 1.
	retained, summary := Filter(events, 1)
	require.Len(t, retained, 2)
	for _, e := range retained {
		assert.Equal(t, "inpeaf1", e.SpeciesCode)
	}
	assert.Equal(t, 2, summary["inpeaf1"])

	// Threshold equal to the count excludes the species: strictly "exceeds".
	retained, _ = Filter(events, 2)
	assert.Empty(t, retained)
}

func TestFilterThresholdMonotonicity(t *testing.T) {
	t.Parallel()

	events := []observation.Event{
		event("S1", "2020-03-08", "dawn", "a", 1),
		event("S2", "2020-03-08", "dawn", "a", 1),
		event("S3", "2020-03-08", "dawn", "a", 1),
		event("S1", "2020-03-08", "dawn", "b", 1),
		event("S2", "2020-03-09", "dawn", "b", 1),
		event("S1", "2020-03-10", "dawn", "c", 1),
	}

	speciesSet := func(evts []observation.Event) map[string]bool {
		set := make(map[string]bool)
		for _, e := range evts {
			set[e.SpeciesCode] = true
		}
		return set
	}

	prev := speciesSet(events)
	for threshold := 0; threshold <= 4; threshold++ {
		retained, _ := Filter(events, threshold)
		current := speciesSet(retained)
		for code := range current {
			assert.True(t, prev[code],
				"raising the threshold to %d must not add species %s", threshold, code)
		}
		prev = current
	}
}

func TestFilterDeterministic(t *testing.T) {
	t.Parallel()

	events := []observation.Event{
		event("S1", "2020-03-08", "dawn", "a", 1),
		event("S2", "2020-03-09", "dusk", "a", 2),
		event("S3", "2020-03-10", "dawn", "b", 1),
	}

	first, _ := Filter(events, 1)
	second, _ := Filter(events, 1)
	assert.Equal(t, first, second)
}

func TestSymmetrizeAddsMissingWindowRows(t *testing.T) {
	t.Parallel()

	events := []observation.Event{
		event("S1", "2020-03-08", "dawn", "inpeaf1", 3), // dawn only
		event("S1", "2020-03-08", "dawn", "grawar3", 1),
		event("S1", "2020-03-08", "dusk", "grawar3", 2), // both windows
	}

	out := Symmetrize(events)
	require.Len(t, out, 4)

	added := out[3]
	assert.Equal(t, "inpeaf1", added.SpeciesCode)
	assert.Equal(t, "dusk", added.TimeOfDay)
	assert.Equal(t, 0, added.DetectionCount)
	assert.Empty(t, added.SiteID)
}

func TestSymmetrizeNoOpWhenBalanced(t *testing.T) {
	t.Parallel()

	events := []observation.Event{
		event("S1", "2020-03-08", "dawn", "grawar3", 1),
		event("S1", "2020-03-08", "dusk", "grawar3", 2),
	}

	out := Symmetrize(events)
	assert.Len(t, out, 2)
}
