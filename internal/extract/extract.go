package extract

import (
	"regexp"

	"github.com/skarn-dev/sqlsweep/pkg/sqlsweep"
)

// Extractor pulls identifiers out of scanner console output.
// The zero value is not usable; construct with New.
type Extractor struct {
	pattern *regexp.Regexp
}

// defaultPattern matches the scanner's database listing lines,
// e.g. "[*] information_schema".
var defaultPattern = markerPattern(sqlsweep.DefaultMarker)

func markerPattern(marker string) *regexp.Regexp {
	// Marker at start of line, identifier up to the terminating newline.
	// Lines without a trailing newline do not match.
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(marker) + `(.*)\n`)
}

// New creates an Extractor for the given line marker.
// An empty marker falls back to the default "[*] ".
func New(marker string) Extractor {
	if marker == "" || marker == sqlsweep.DefaultMarker {
		return Extractor{pattern: defaultPattern}
	}
	return Extractor{pattern: markerPattern(marker)}
}

// Identifiers returns every identifier following the marker, in order of
// appearance, without deduplication. No matches yields an empty slice,
// never an error.
func (e Extractor) Identifiers(output string) []string {
	matches := e.pattern.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return nil
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}
