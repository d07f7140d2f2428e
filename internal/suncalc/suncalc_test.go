package suncalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSunEventTimesOrdering(t *testing.T) {
	t.Parallel()

	// Valparai plateau, Western Ghats.
	sc := NewSunCalc(10.327, 76.955)
	date := time.Date(2020, 3, 8, 0, 0, 0, 0, time.UTC)

	times, err := sc.GetSunEventTimes(date)
	require.NoError(t, err)

	assert.True(t, times.CivilDawn.Before(times.Sunrise))
	assert.True(t, times.Sunrise.Before(times.Sunset))
	assert.True(t, times.Sunset.Before(times.CivilDusk))
}

func TestGetSunEventTimesCached(t *testing.T) {
	t.Parallel()

	sc := NewSunCalc(10.327, 76.955)
	date := time.Date(2020, 11, 22, 0, 0, 0, 0, time.UTC)

	first, err := sc.GetSunEventTimes(date)
	require.NoError(t, err)
	second, err := sc.GetSunEventTimes(date)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	_, found := sc.cache.Get("2020-11-22")
	assert.True(t, found)
}
