package listing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize uppercases, strips diacritics and trims, so that matching is
// case- and accent-insensitive.
func normalize(s string) string {
	folded, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		folded = s
	}
	return strings.ToUpper(strings.TrimSpace(folded))
}

// The division-row heuristic is display policy for one institution only:
// inside it, departments named like directorates are structural division
// headers rather than line departments.
const (
	reservedInstitutionName = "LEGISLATURE"
	divisionRowPrefix       = "DIRECTORATE"
)

// isDivisionRow reports whether a department row should render as a
// structural division header. Scoped to the reserved institution; every
// other unit's rows are ordinary.
func isDivisionRow(unitName, departmentName string) bool {
	if normalize(unitName) != reservedInstitutionName {
		return false
	}
	return strings.HasPrefix(normalize(departmentName), divisionRowPrefix)
}
