package conf

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClock converts an "HH:MM" string to seconds since midnight.
func parseClock(value string) (int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("clock time %q is not in HH:MM form", value)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("clock time %q has invalid hour", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q has invalid minute", value)
	}
	return hour*3600 + minute*60, nil
}

// StartSeconds returns the window start as seconds since midnight.
func (w Window) StartSeconds() (int, error) {
	return parseClock(w.Start)
}

// EndSeconds returns the window end as seconds since midnight.
func (w Window) EndSeconds() (int, error) {
	return parseClock(w.End)
}
