// Package events reshapes wide annotation rows into long-form detection
// events and assigns canonical hour-of-day buckets.
package events

import (
	"fmt"
	"strconv"

	"github.com/vjjan91/diurnal-Acoustics/internal/conf"
	"github.com/vjjan91/diurnal-Acoustics/internal/errors"
)

// interval is one hour-of-day bucket over numeric HHMMSS values. The final
// interval of each window is closed on the right.
type interval struct {
	lo, hi int
	closed bool
	label  string
}

// Binner maps a 6-digit start time to its hour-of-day bucket label. Buckets
// are derived from the configured dawn and dusk windows: one bucket per whole
// hour, the last bucket of each window right-closed. A start time outside all
// buckets yields the empty label, which downstream consumers treat as
// "excluded from hour-of-day analyses".
type Binner struct {
	intervals []interval
}

// NewBinner builds the bucket set from the recording windows. Windows must
// fall on whole hours.
func NewBinner(windows conf.WindowSettings) (*Binner, error) {
	b := &Binner{}
	for _, w := range []struct {
		name   string
		window conf.Window
	}{
		{"dawn", windows.Dawn},
		{"dusk", windows.Dusk},
	} {
		if err := b.addWindow(w.name, w.window); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Binner) addWindow(name string, window conf.Window) error {
	startSec, err := window.StartSeconds()
	if err != nil {
		return errors.Newf("%s window start: %v", name, err).
			Component("events").
			Category(errors.CategoryConfiguration).
			Build()
	}
	endSec, err := window.EndSeconds()
	if err != nil {
		return errors.Newf("%s window end: %v", name, err).
			Component("events").
			Category(errors.CategoryConfiguration).
			Build()
	}
	if startSec%3600 != 0 || endSec%3600 != 0 {
		return errors.Newf("%s window %s-%s must start and end on whole hours", name, window.Start, window.End).
			Component("events").
			Category(errors.CategoryConfiguration).
			Build()
	}

	startHour := startSec / 3600
	endHour := endSec / 3600
	if endHour <= startHour {
		return errors.Newf("%s window %s-%s is empty or inverted", name, window.Start, window.End).
			Component("events").
			Category(errors.CategoryConfiguration).
			Build()
	}

	for h := startHour; h < endHour; h++ {
		b.intervals = append(b.intervals, interval{
			lo:     h * 10000,
			hi:     (h + 1) * 10000,
			closed: h+1 == endHour,
			label:  hourLabel(h) + "-" + hourLabel(h+1),
		})
	}
	return nil
}

// Bucket returns the hour-of-day label for a 6-digit HHMMSS start time, or
// the empty string when the time falls outside every bucket.
func (b *Binner) Bucket(startTime string) string {
	if len(startTime) != 6 {
		return ""
	}
	t, err := strconv.Atoi(startTime)
	if err != nil {
		return ""
	}
	for _, iv := range b.intervals {
		if t >= iv.lo && (t < iv.hi || (iv.closed && t == iv.hi)) {
			return iv.label
		}
	}
	return ""
}

// Labels returns the bucket labels in window order.
func (b *Binner) Labels() []string {
	labels := make([]string, len(b.intervals))
	for i, iv := range b.intervals {
		labels[i] = iv.label
	}
	return labels
}

// hourLabel renders an hour of day as a 12-hour clock label, e.g. 6 -> "6AM",
// 16 -> "4PM".
func hourLabel(hour int) string {
	hour %= 24
	switch {
	case hour == 0:
		return "12AM"
	case hour < 12:
		return fmt.Sprintf("%dAM", hour)
	case hour == 12:
		return "12PM"
	default:
		return fmt.Sprintf("%dPM", hour-12)
	}
}
