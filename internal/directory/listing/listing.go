// Package listing is the presentation half of the directory: it flattens
// assembled trees into rows and re-filters, re-sorts and regroups them
// for display. Every function is a pure transform over its inputs.
package listing

import (
	"switchboard/internal/model"
	"switchboard/internal/util"
)

type SortMode string

const (
	SortByHierarchy SortMode = "hierarchy"
	SortByName      SortMode = "name"
	SortByExtension SortMode = "extension"
)

// Row is one flattened directory line: a person or placeholder with its
// full denormalized hierarchy context.
type Row struct {
	Titular        bool                          `json:"titular"`
	IsDivisionRow  bool                          `json:"is_division_row"`
	OrgUnitID      int64                         `json:"org_unit_id"`
	OrgUnitName    string                        `json:"org_unit_name"`
	DivisionID     int64                         `json:"division_id"`
	DivisionName   string                        `json:"division_name"`
	DepartmentID   int64                         `json:"department_id"`
	DepartmentName string                        `json:"department_name"`
	PersonName     string                        `json:"person_name"`
	Rank           util.Optional[int]            `json:"rank"`
	Title          string                        `json:"title"`
	Extension      string                        `json:"extension"`
	UnitLocation   util.Optional[model.Location] `json:"unit_location"`
}

// DivisionGroup is one display block of rows under a division.
type DivisionGroup struct {
	DivisionID   int64  `json:"division_id"`
	DivisionName string `json:"division_name"`
	Rows         []Row  `json:"rows"`
}

// OrgUnitGroup is one display section: the unit's titular factored out,
// its formatted location line, and its rows regrouped per division.
type OrgUnitGroup struct {
	OrgUnitID    int64           `json:"org_unit_id"`
	OrgUnitName  string          `json:"org_unit_name"`
	Titular      *Row            `json:"titular"`
	LocationLine string          `json:"location_line"`
	Divisions    []DivisionGroup `json:"divisions"`
}

// Flatten turns assembled directory trees into display rows, one per
// entry, in tree order.
func Flatten(trees []model.DirectoryTree) []Row {
	var rows []Row
	for _, tree := range trees {
		for _, division := range tree.Divisions {
			for _, department := range division.Departments {
				for _, entry := range department.Entries {
					rows = append(rows, Row{
						Titular:        entry.Rank.IsSet && entry.Rank.Val == 1,
						IsDivisionRow:  isDivisionRow(tree.FullName, department.FullName),
						OrgUnitID:      tree.OrgUnitID,
						OrgUnitName:    tree.FullName,
						DivisionID:     division.ID,
						DivisionName:   division.FullName,
						DepartmentID:   department.ID,
						DepartmentName: department.FullName,
						PersonName:     entry.Name,
						Rank:           entry.Rank,
						Title:          entry.Title,
						Extension:      entry.Extension,
						UnitLocation:   tree.Location,
					})
				}
			}
		}
	}
	return rows
}
