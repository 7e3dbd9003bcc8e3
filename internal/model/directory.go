package model

import (
	"switchboard/internal/util"
)

// NoExtensionOnFile is the extension value carried by the placeholder
// entry of a department with no extension-bearing personnel.
const NoExtensionOnFile = "no extension on file"

// DirectoryEntry is one assembled row: a person (or placeholder) inside
// a department, with the resolved extension and location.
type DirectoryEntry struct {
	PersonID  util.Optional[int64]    `json:"person_id"`
	Name      string                  `json:"name"`
	Title     string                  `json:"title"`
	Rank      util.Optional[int]      `json:"rank"`
	Extension string                  `json:"extension"`
	Location  util.Optional[Location] `json:"location"`
}

type DirectoryDepartment struct {
	ID       int64            `json:"id"`
	FullName string           `json:"full_name"`
	Entries  []DirectoryEntry `json:"entries"`
}

type DirectoryDivision struct {
	ID          int64                 `json:"id"`
	FullName    string                `json:"full_name"`
	Departments []DirectoryDepartment `json:"departments"`
}

// DirectoryTree is the assembled directory of one org unit. Location is
// inferred from the first entry that carries one.
type DirectoryTree struct {
	OrgUnitID int64                   `json:"org_unit_id"`
	FullName  string                  `json:"full_name"`
	Location  util.Optional[Location] `json:"location"`
	Divisions []DirectoryDivision     `json:"divisions"`
}
