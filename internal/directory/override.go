package directory

import (
	"switchboard/internal/model"
	"switchboard/internal/util"
)

// The coordination board's listing is mandated by protocol: its id and
// exact name select a fixed set of departments that replaces whatever the
// store holds for it.
const (
	reservedDivisionID   = 1
	reservedDivisionName = "Joint Political Coordination Board"
)

// applyReservedUnitOverride replaces the assembled departments of the
// reserved coordination-board division with its fixed listing. The match
// is on id and exact name; everything else passes through untouched.
func applyReservedUnitOverride(division model.DirectoryDivision) model.DirectoryDivision {
	if division.ID != reservedDivisionID || division.FullName != reservedDivisionName {
		return division
	}

	division.Departments = []model.DirectoryDepartment{
		{
			ID:       1,
			FullName: "Office of the Presidency",
			Entries: []model.DirectoryEntry{{
				Name:      "Board President",
				Title:     "President of the Joint Political Coordination Board",
				Rank:      util.Some(1),
				Extension: "6494",
			}},
		},
		{
			ID:       2,
			FullName: "Executive Secretariat",
			Entries: []model.DirectoryEntry{{
				Name:      "Executive Secretary",
				Title:     "Executive Secretariat",
				Extension: "6609",
			}},
		},
		{
			ID:       3,
			FullName: "Reception",
			Entries: []model.DirectoryEntry{{
				Title:     "Reception of the Presidency",
				Extension: "6606",
			}},
		},
	}
	return division
}
