package model

import (
	"switchboard/internal/util"
)

// OrgUnit is the top level of the organizational hierarchy.
type OrgUnit struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type Division struct {
	ID        int64  `json:"id"`
	OrgUnitID int64  `json:"org_unit_id"`
	FullName  string `json:"full_name"`
}

type Department struct {
	ID         int64  `json:"id"`
	DivisionID int64  `json:"division_id"`
	FullName   string `json:"full_name"`
	Active     bool   `json:"active"`
}

// Person is a personnel record. Rank 1 marks the unit's titular;
// an unset department means the person is unassigned and never
// appears in the directory.
type Person struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Title        string                `json:"title"`
	Active       bool                  `json:"active"`
	DepartmentID util.Optional[int64]  `json:"department_id"`
	Rank         util.Optional[int]    `json:"rank"`
}

// ExtensionRecord links a phone extension (and optionally a physical
// location) to a person. Records without a person link are excluded at
// the store boundary.
type ExtensionRecord struct {
	ID              int64                   `json:"id"`
	ExtensionNumber util.Optional[string]   `json:"extension_number"`
	PersonID        util.Optional[int64]    `json:"person_id"`
	Location        util.Optional[Location] `json:"location"`
}

// OrgUnitHierarchy is the store's nested fetch result: one org unit with
// its divisions and their active departments, in store iteration order.
type OrgUnitHierarchy struct {
	OrgUnit
	Divisions []DivisionHierarchy `json:"divisions"`
}

type DivisionHierarchy struct {
	Division
	Departments []Department `json:"departments"`
}

type Location struct {
	Street         util.Optional[string] `json:"street"`
	ExteriorNumber util.Optional[string] `json:"exterior_number"`
	InteriorNumber util.Optional[string] `json:"interior_number"`
	Neighborhood   util.Optional[string] `json:"neighborhood"`
	PostalCode     util.Optional[string] `json:"postal_code"`
}
