package listing

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"switchboard/internal/model"
)

// Reaggregate filters rows by the free-text query, sorts them by the
// chosen mode and regroups them per org unit and division. It is a pure
// function of its inputs; rerunning it with the same arguments yields
// the same output.
func Reaggregate(rows []Row, query string, mode SortMode) []OrgUnitGroup {
	filtered := filterRows(rows, query)
	sortRows(filtered, mode)
	return groupRows(filtered)
}

// filterRows keeps rows whose unit, division, department or person name
// matches the normalized query, or whose raw extension contains it. An
// empty query keeps everything.
func filterRows(rows []Row, query string) []Row {
	q := normalize(query)
	if q == "" {
		out := make([]Row, len(rows))
		copy(out, rows)
		return out
	}

	var out []Row
	for _, row := range rows {
		if strings.Contains(normalize(row.OrgUnitName), q) ||
			strings.Contains(normalize(row.DivisionName), q) ||
			strings.Contains(normalize(row.DepartmentName), q) ||
			strings.Contains(normalize(row.PersonName), q) ||
			strings.Contains(row.Extension, strings.TrimSpace(query)) {
			out = append(out, row)
		}
	}
	return out
}

// sortRows orders rows by org unit id, then titular first, then by the
// mode's tertiary key.
func sortRows(rows []Row, mode SortMode) {
	collator := collate.New(language.Spanish, collate.IgnoreCase)

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.OrgUnitID != b.OrgUnitID {
			return a.OrgUnitID < b.OrgUnitID
		}
		if a.Titular != b.Titular {
			return a.Titular
		}

		switch mode {
		case SortByName:
			return collator.CompareString(a.PersonName, b.PersonName) < 0
		case SortByExtension:
			return extensionLess(collator, a.Extension, b.Extension)
		default:
			if a.DivisionID != b.DivisionID {
				return a.DivisionID < b.DivisionID
			}
			return a.DepartmentID < b.DepartmentID
		}
	})
}

// extensionLess compares extensions numerically when both parse, places
// the no-extension sentinel last, and falls back to collation otherwise.
func extensionLess(collator *collate.Collator, a, b string) bool {
	if a == model.NoExtensionOnFile {
		return false
	}
	if b == model.NoExtensionOnFile {
		return true
	}
	an, aErr := strconv.Atoi(a)
	bn, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		return an < bn
	}
	return collator.CompareString(a, b) < 0
}

// groupRows partitions sorted rows into one group per org unit, factoring
// the first titular row out of its division, then into one sub-group per
// division id in encountered order.
func groupRows(rows []Row) []OrgUnitGroup {
	var groups []OrgUnitGroup
	for _, row := range rows {
		if len(groups) == 0 || groups[len(groups)-1].OrgUnitID != row.OrgUnitID {
			groups = append(groups, OrgUnitGroup{
				OrgUnitID:    row.OrgUnitID,
				OrgUnitName:  row.OrgUnitName,
				LocationLine: FormatLocation(row.UnitLocation),
			})
		}
		group := &groups[len(groups)-1]

		if row.Titular && group.Titular == nil {
			titular := row
			group.Titular = &titular
			continue
		}

		var division *DivisionGroup
		for i := range group.Divisions {
			if group.Divisions[i].DivisionID == row.DivisionID {
				division = &group.Divisions[i]
				break
			}
		}
		if division == nil {
			group.Divisions = append(group.Divisions, DivisionGroup{
				DivisionID:   row.DivisionID,
				DivisionName: row.DivisionName,
			})
			division = &group.Divisions[len(group.Divisions)-1]
		}
		division.Rows = append(division.Rows, row)
	}
	return groups
}
