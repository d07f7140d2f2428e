package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "dawn start", input: "06:00", want: 6 * 3600},
		{name: "dusk end", input: "19:00", want: 19 * 3600},
		{name: "with minutes", input: "06:30", want: 6*3600 + 30*60},
		{name: "midnight", input: "00:00", want: 0},
		{name: "missing colon", input: "0600", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "06:60", wantErr: true},
		{name: "non numeric", input: "six:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	valid := &Settings{}
	valid.Filter.MinOccurrence = 20
	valid.Windows.Dawn = Window{Start: "06:00", End: "10:00"}
	valid.Windows.Dusk = Window{Start: "16:00", End: "19:00"}
	require.NoError(t, ValidateSettings(valid))

	negative := &Settings{}
	negative.Filter.MinOccurrence = -1
	negative.Windows = valid.Windows
	require.Error(t, ValidateSettings(negative))

	badWindow := &Settings{}
	badWindow.Filter.MinOccurrence = 20
	badWindow.Windows.Dawn = Window{Start: "dawnish", End: "10:00"}
	badWindow.Windows.Dusk = valid.Windows.Dusk
	require.Error(t, ValidateSettings(badWindow))
}

func TestSaveYAMLConfig(t *testing.T) {
	t.Parallel()

	settings := &Settings{Debug: true}
	settings.Input.Taxonomy = "data/species-annotation-codes.csv"
	settings.Output.File.Path = "results/datasets/detections.csv"
	settings.Filter.MinOccurrence = 25
	settings.Filter.Symmetrize = true
	settings.Windows.Dawn = Window{Start: "06:00", End: "10:00"}
	settings.Windows.Dusk = Window{Start: "16:00", End: "19:00"}

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveYAMLConfig(configPath, settings))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var loaded Settings
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, settings, &loaded)
}

func TestSaveYAMLConfigReplacesExisting(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("stale: true\n"), 0o644))

	settings := &Settings{}
	settings.Filter.MinOccurrence = 20
	require.NoError(t, SaveYAMLConfig(configPath, settings))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
	assert.Contains(t, string(data), "minoccurrence: 20")
}

func TestWindowSeconds(t *testing.T) {
	t.Parallel()

	w := Window{Start: "16:00", End: "19:00"}
	start, err := w.StartSeconds()
	require.NoError(t, err)
	assert.Equal(t, 16*3600, start)

	end, err := w.EndSeconds()
	require.NoError(t, err)
	assert.Equal(t, 19*3600, end)
}
