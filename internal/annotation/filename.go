package annotation

import (
	"strings"
	"time"

	"github.com/vjjan91/diurnal-Acoustics/internal/errors"
)

// ErrFilenameFormat indicates a composite filename that does not decompose
// into site, date, time and split index.
var ErrFilenameFormat = errors.NewStd("malformed recording filename")

// filenameDelimiter joins the four filename parts.
const filenameDelimiter = "_"

// Date layouts accepted in the filename date token.
var dateLayouts = []string{"20060102", "2006-01-02"}

// recordingID holds the structured metadata encoded in a composite filename
// such as "INBS04_20200308_063000_2".
type recordingID struct {
	SiteID     string
	Date       time.Time
	StartTime  string // 6-digit zero-padded
	SplitIndex string
}

// parseFilename decomposes a composite filename into exactly four parts.
func parseFilename(filename string) (recordingID, error) {
	parts := strings.Split(filename, filenameDelimiter)
	if len(parts) != 4 {
		return recordingID{}, errors.Newf("%w: %q splits into %d parts, want 4", ErrFilenameFormat, filename, len(parts)).
			Component("annotation").
			Category(errors.CategorySchema).
			Context("filename", filename).
			Build()
	}

	date, err := parseDateToken(parts[1])
	if err != nil {
		return recordingID{}, errors.Newf("%w: %q has unparseable date %q", ErrFilenameFormat, filename, parts[1]).
			Component("annotation").
			Category(errors.CategorySchema).
			Context("filename", filename).
			Build()
	}

	startTime, err := normalizeStartTime(parts[2])
	if err != nil {
		return recordingID{}, errors.Newf("%w: %q has unparseable start time %q", ErrFilenameFormat, filename, parts[2]).
			Component("annotation").
			Category(errors.CategorySchema).
			Context("filename", filename).
			Build()
	}

	return recordingID{
		SiteID:     parts[0],
		Date:       date,
		StartTime:  startTime,
		SplitIndex: parts[3],
	}, nil
}

func parseDateToken(token string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, token)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// normalizeStartTime left-pads a clock token to the canonical 6-digit HHMMSS
// form. Spreadsheet round-trips strip leading zeros, so "63000" means 06:30:00.
func normalizeStartTime(token string) (string, error) {
	if len(token) == 0 || len(token) > 6 {
		return "", errors.Newf("start time token %q has invalid length", token).Build()
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return "", errors.Newf("start time token %q is not numeric", token).Build()
		}
	}
	return strings.Repeat("0", 6-len(token)) + token, nil
}
