package annotation

import (
	"encoding/csv"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/vjjan91/diurnal-Acoustics/internal/errors"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
)

// ErrSchemaMismatch indicates seasonal annotation tables that disagree on
// their column set.
var ErrSchemaMismatch = errors.NewStd("annotation tables disagree on columns")

// sourceTable is one raw CSV as read from disk.
type sourceTable struct {
	path   string
	header []string
	rows   [][]string
}

// LoadWindow reads the per-season annotation tables for one time-of-day
// window and concatenates them into a single Table. All rows are tagged with
// the given timeOfDay regardless of their clock values. Columns listed in
// dropColumns carry no species information and are discarded.
func LoadWindow(timeOfDay TimeOfDay, paths, dropColumns []string) (*Table, error) {
	logger := logging.ForService("annotation")

	if len(paths) == 0 {
		return nil, errors.Newf("no annotation tables given for %s window", timeOfDay).
			Component("annotation").
			Category(errors.CategoryValidation).
			Build()
	}

	sources := make([]sourceTable, 0, len(paths))
	for _, path := range paths {
		src, err := readSource(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	// Seasonal tables must agree on their column set exactly.
	reference := sources[0]
	for _, src := range sources[1:] {
		if err := compareColumns(reference, src); err != nil {
			return nil, err
		}
	}

	dropped := make(map[string]bool, len(dropColumns)+3)
	for _, name := range dropColumns {
		dropped[name] = true
	}
	dropped[ColumnFilename] = true
	dropped[ColumnRestoration] = true
	dropped[ColumnRawTime] = true

	var speciesColumns []string
	for _, name := range reference.header {
		if !dropped[name] {
			speciesColumns = append(speciesColumns, name)
		}
	}

	table := &Table{SpeciesColumns: speciesColumns}
	for _, src := range sources {
		chunks, err := decodeRows(src, timeOfDay, speciesColumns)
		if err != nil {
			return nil, err
		}
		table.Chunks = append(table.Chunks, chunks...)
	}

	logger.Debug("annotation window loaded",
		"time_of_day", string(timeOfDay),
		"files", len(paths),
		"chunks", len(table.Chunks),
		"species_columns", len(speciesColumns))
	return table, nil
}

func readSource(path string) (sourceTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return sourceTable{}, errors.New(err).
			Component("annotation").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return sourceTable{}, errors.New(err).
			Component("annotation").
			Category(errors.CategoryFileParsing).
			FileContext(path).
			Build()
	}
	if len(records) == 0 {
		return sourceTable{}, errors.Newf("annotation table %s is empty", path).
			Component("annotation").
			Category(errors.CategorySchema).
			Build()
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}
	if !slices.Contains(header, ColumnFilename) {
		return sourceTable{}, errors.Newf("%w: %s lacks column %q", ErrSchemaMismatch, path, ColumnFilename).
			Component("annotation").
			Category(errors.CategorySchema).
			FileContext(path).
			Build()
	}

	return sourceTable{path: path, header: header, rows: records[1:]}, nil
}

// compareColumns fails with the name of the first missing or extra column
// when two seasonal tables disagree on their column set.
func compareColumns(reference, other sourceTable) error {
	refSet := make(map[string]bool, len(reference.header))
	for _, name := range reference.header {
		refSet[name] = true
	}
	otherSet := make(map[string]bool, len(other.header))
	for _, name := range other.header {
		otherSet[name] = true
	}

	for _, name := range reference.header {
		if !otherSet[name] {
			return errors.Newf("%w: %s is missing column %q present in %s", ErrSchemaMismatch, other.path, name, reference.path).
				Component("annotation").
				Category(errors.CategorySchema).
				Context("column", name).
				Build()
		}
	}
	for _, name := range other.header {
		if !refSet[name] {
			return errors.Newf("%w: %s has extra column %q absent from %s", ErrSchemaMismatch, other.path, name, reference.path).
				Component("annotation").
				Category(errors.CategorySchema).
				Context("column", name).
				Build()
		}
	}
	return nil
}

func decodeRows(src sourceTable, timeOfDay TimeOfDay, speciesColumns []string) ([]Chunk, error) {
	columnIndex := make(map[string]int, len(src.header))
	for i, name := range src.header {
		columnIndex[name] = i
	}

	cell := func(row []string, column string) string {
		idx, ok := columnIndex[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	chunks := make([]Chunk, 0, len(src.rows))
	for _, row := range src.rows {
		id, err := parseFilename(cell(row, ColumnFilename))
		if err != nil {
			return nil, err
		}

		counts := make(map[string]int)
		for _, column := range speciesColumns {
			raw := cell(row, column)
			if raw == "" {
				continue // blank cells are zero detections
			}
			count, err := strconv.Atoi(raw)
			if err != nil {
				return nil, errors.Newf("non-numeric detection count %q in column %q of %s", raw, column, src.path).
					Component("annotation").
					Category(errors.CategoryFileParsing).
					Context("column", column).
					Build()
			}
			if count < 0 {
				return nil, errors.Newf("negative detection count %d in column %q of %s", count, column, src.path).
					Component("annotation").
					Category(errors.CategoryValidation).
					Context("column", column).
					Build()
			}
			if count != 0 {
				counts[column] = count
			}
		}

		chunks = append(chunks, Chunk{
			SiteID:          id.SiteID,
			Date:            id.Date,
			StartTime:       id.StartTime,
			SplitIndex:      id.SplitIndex,
			TimeOfDay:       timeOfDay,
			RestorationType: cell(row, ColumnRestoration),
			Counts:          counts,
		})
	}
	return chunks, nil
}
