package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vjjan91/diurnal-Acoustics/internal/conf"
)

func defaultWindows() conf.WindowSettings {
	return conf.WindowSettings{
		Dawn: conf.Window{Start: "06:00", End: "10:00"},
		Dusk: conf.Window{Start: "16:00", End: "19:00"},
	}
}

func TestBinnerDefaultLabels(t *testing.T) {
	t.Parallel()

	b, err := NewBinner(defaultWindows())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"6AM-7AM", "7AM-8AM", "8AM-9AM", "9AM-10AM",
		"4PM-5PM", "5PM-6PM", "6PM-7PM",
	}, b.Labels())
}

func TestBinnerBucketBoundaries(t *testing.T) {
	t.Parallel()

	b, err := NewBinner(defaultWindows())
	require.NoError(t, err)

	tests := []struct {
		startTime string
		want      string
	}{
		{"060000", "6AM-7AM"},
		{"065959", "6AM-7AM"},
		{"070000", "7AM-8AM"},
		{"095959", "9AM-10AM"},
		{"100000", "9AM-10AM"}, // final dawn interval is right-closed
		{"100001", ""},
		{"055959", ""},
		{"160000", "4PM-5PM"},
		{"175959", "5PM-6PM"},
		{"180000", "6PM-7PM"},
		{"190000", "6PM-7PM"}, // final dusk interval is right-closed
		{"190001", ""},
		{"120000", ""},
		{"000000", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Bucket(tt.startTime), "start_time %s", tt.startTime)
	}
}

func TestBinnerBucketMalformedTime(t *testing.T) {
	t.Parallel()

	b, err := NewBinner(defaultWindows())
	require.NoError(t, err)

	assert.Empty(t, b.Bucket("6AM"))
	assert.Empty(t, b.Bucket(""))
	assert.Empty(t, b.Bucket("60000"))
}

func TestBinnerRejectsPartialHourWindow(t *testing.T) {
	t.Parallel()

	_, err := NewBinner(conf.WindowSettings{
		Dawn: conf.Window{Start: "06:30", End: "10:00"},
		Dusk: conf.Window{Start: "16:00", End: "19:00"},
	})
	require.Error(t, err)
}

func TestBinnerRejectsInvertedWindow(t *testing.T) {
	t.Parallel()

	_, err := NewBinner(conf.WindowSettings{
		Dawn: conf.Window{Start: "10:00", End: "06:00"},
		Dusk: conf.Window{Start: "16:00", End: "19:00"},
	})
	require.Error(t, err)
}

func TestHourLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12AM", hourLabel(0))
	assert.Equal(t, "6AM", hourLabel(6))
	assert.Equal(t, "12PM", hourLabel(12))
	assert.Equal(t, "4PM", hourLabel(16))
	assert.Equal(t, "12AM", hourLabel(24))
}
