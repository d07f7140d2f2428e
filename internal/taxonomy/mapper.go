// Package taxonomy builds the mapping from ad-hoc annotation species codes to
// canonical eBird codes.
package taxonomy

import (
	"encoding/csv"
	"log/slog"
	"os"
	"strings"

	"github.com/vjjan91/diurnal-Acoustics/internal/errors"
	"github.com/vjjan91/diurnal-Acoustics/internal/logging"
)

// Sentinel errors for taxonomy resolution failures.
var (
	ErrAmbiguousCode = errors.NewStd("ad-hoc species code claimed by multiple canonical codes")
	ErrUnknownCode   = errors.NewStd("species code missing from taxonomy")
	ErrMissingColumn = errors.NewStd("taxonomy table missing required column")
)

// Required taxonomy table columns.
const (
	columnCanonical = "eBird_codes"
	columnAdHoc     = "species_annotation_codes"
)

// Optional name columns carried through when present.
const (
	columnScientific = "scientific_name"
	columnCommon     = "common_name"
)

// Species holds the canonical identity of one species.
type Species struct {
	Code           string // canonical eBird code
	ScientificName string
	CommonName     string
}

// Mapper resolves ad-hoc annotation codes to canonical species codes. The
// mapping is total over the codes present in the taxonomy table and injective:
// one ad-hoc code resolves to exactly one canonical code.
type Mapper struct {
	adHocToCanonical map[string]string
	species          map[string]Species // keyed by canonical code
	logger           *slog.Logger
}

// LoadMapper reads the taxonomy CSV and builds the code mapper.
func LoadMapper(path string) (*Mapper, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New(err).
			Component("taxonomy").
			Category(errors.CategoryFileIO).
			FileContext(path).
			Build()
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.New(err).
			Component("taxonomy").
			Category(errors.CategoryFileParsing).
			FileContext(path).
			Build()
	}
	if len(records) == 0 {
		return nil, errors.Newf("taxonomy table %s is empty", path).
			Component("taxonomy").
			Category(errors.CategorySchema).
			Build()
	}

	header := records[0]
	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		columnIndex[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{columnCanonical, columnAdHoc} {
		if _, ok := columnIndex[required]; !ok {
			return nil, errors.Newf("%w: %s", ErrMissingColumn, required).
				Component("taxonomy").
				Category(errors.CategorySchema).
				FileContext(path).
				Build()
		}
	}

	m := &Mapper{
		adHocToCanonical: make(map[string]string),
		species:          make(map[string]Species),
		logger:           logging.ForService("taxonomy"),
	}

	cell := func(record []string, column string) string {
		idx, ok := columnIndex[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	for _, record := range records[1:] {
		canonical := cell(record, columnCanonical)
		adHoc := cell(record, columnAdHoc)
		if canonical == "" || adHoc == "" {
			continue // incomplete taxonomy rows carry no usable mapping
		}

		if existing, ok := m.adHocToCanonical[adHoc]; ok && existing != canonical {
			return nil, errors.Newf("%w: %q maps to both %q and %q", ErrAmbiguousCode, adHoc, existing, canonical).
				Component("taxonomy").
				Category(errors.CategoryTaxonomy).
				Context("ad_hoc_code", adHoc).
				Build()
		}
		m.adHocToCanonical[adHoc] = canonical

		if _, ok := m.species[canonical]; !ok {
			m.species[canonical] = Species{
				Code:           canonical,
				ScientificName: cell(record, columnScientific),
				CommonName:     cell(record, columnCommon),
			}
		}
	}

	m.logger.Debug("taxonomy loaded", "path", path, "codes", len(m.adHocToCanonical))
	return m, nil
}

// Resolve maps an ad-hoc species code to its canonical code. Unknown codes are
// a hard error, data is never silently dropped.
func (m *Mapper) Resolve(adHocCode string) (string, error) {
	canonical, ok := m.adHocToCanonical[adHocCode]
	if !ok {
		return "", errors.Newf("%w: %q", ErrUnknownCode, adHocCode).
			Component("taxonomy").
			Category(errors.CategoryTaxonomy).
			Context("ad_hoc_code", adHocCode).
			Build()
	}
	return canonical, nil
}

// Canonicalize maps a column name to its canonical species code when the name
// is a known ad-hoc code, and passes it through unchanged otherwise. The
// passthrough tolerates metadata columns mixed in with species columns.
func (m *Mapper) Canonicalize(name string) string {
	if canonical, ok := m.adHocToCanonical[name]; ok {
		return canonical
	}
	return name
}

// Species returns the species identity for a canonical code.
func (m *Mapper) Species(canonical string) (Species, bool) {
	sp, ok := m.species[canonical]
	return sp, ok
}

// Len returns the number of ad-hoc codes in the mapping.
func (m *Mapper) Len() int {
	return len(m.adHocToCanonical)
}
