// Package suncalc provides sun event times for the survey site, used to
// report how the configured recording windows sit against actual daylight.
package suncalc

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sj14/astral/pkg/astral"

	"github.com/vjjan91/diurnal-Acoustics/internal/errors"
)

// SunEventTimes holds the calculated sun event times for one date.
type SunEventTimes struct {
	CivilDawn time.Time
	Sunrise   time.Time
	Sunset    time.Time
	CivilDusk time.Time
}

// SunCalc handles caching and calculation of sun event times.
type SunCalc struct {
	cache    *cache.Cache
	observer astral.Observer
}

// NewSunCalc creates a new SunCalc instance for the given location.
func NewSunCalc(latitude, longitude float64) *SunCalc {
	return &SunCalc{
		cache:    cache.New(cache.NoExpiration, cache.NoExpiration),
		observer: astral.Observer{Latitude: latitude, Longitude: longitude},
	}
}

// GetSunEventTimes returns the sun event times for a given date, using the
// cache if available. The survey revisits the same dates for every site, so
// each date is computed once.
func (sc *SunCalc) GetSunEventTimes(date time.Time) (SunEventTimes, error) {
	dateKey := date.Format("2006-01-02")

	if cached, found := sc.cache.Get(dateKey); found {
		return cached.(SunEventTimes), nil
	}

	times, err := sc.calculateSunEventTimes(date)
	if err != nil {
		return SunEventTimes{}, err
	}

	sc.cache.Set(dateKey, times, cache.NoExpiration)
	return times, nil
}

func (sc *SunCalc) calculateSunEventTimes(date time.Time) (SunEventTimes, error) {
	civilDawn, err := astral.Dawn(sc.observer, date, astral.DepressionCivil)
	if err != nil {
		return SunEventTimes{}, errors.Newf("failed to calculate civil dawn: %v", err).
			Component("suncalc").
			Category(errors.CategoryValidation).
			Build()
	}

	sunrise, err := astral.Sunrise(sc.observer, date)
	if err != nil {
		return SunEventTimes{}, errors.Newf("failed to calculate sunrise: %v", err).
			Component("suncalc").
			Category(errors.CategoryValidation).
			Build()
	}

	sunset, err := astral.Sunset(sc.observer, date)
	if err != nil {
		return SunEventTimes{}, errors.Newf("failed to calculate sunset: %v", err).
			Component("suncalc").
			Category(errors.CategoryValidation).
			Build()
	}

	civilDusk, err := astral.Dusk(sc.observer, date, astral.DepressionCivil)
	if err != nil {
		return SunEventTimes{}, errors.Newf("failed to calculate civil dusk: %v", err).
			Component("suncalc").
			Category(errors.CategoryValidation).
			Build()
	}

	return SunEventTimes{
		CivilDawn: civilDawn,
		Sunrise:   sunrise,
		Sunset:    sunset,
		CivilDusk: civilDusk,
	}, nil
}
