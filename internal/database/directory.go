package database

import (
	"context"
	"fmt"

	"switchboard/internal/model"
	"switchboard/internal/util"
)

// ListOrgUnitHierarchy fetches org units with their divisions and active
// departments in one query, regrouped into nested rows. An unset unitID
// fetches every unit; a set unitID that matches nothing yields zero rows.
func (db *Database) ListOrgUnitHierarchy(ctx context.Context, unitID util.Optional[int64]) ([]model.OrgUnitHierarchy, error) {
	query := `SELECT u.id, u.full_name, v.id, v.full_name, d.id, d.full_name
		FROM org_unit u
		LEFT JOIN division v ON v.org_unit_id = u.id
		LEFT JOIN department d ON d.division_id = v.id AND d.active`
	var args []any
	if unitID.IsSet {
		query += ` WHERE u.id = $1`
		args = append(args, unitID.Val)
	}
	query += ` ORDER BY u.id, v.id, d.id`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list org unit hierarchy: %w", err)
	}
	defer rows.Close()

	var units []model.OrgUnitHierarchy
	for rows.Next() {
		var (
			unitRowID    int64
			unitName     string
			divisionID   util.Optional[int64]
			divisionName util.Optional[string]
			deptID       util.Optional[int64]
			deptName     util.Optional[string]
		)
		if err := rows.Scan(&unitRowID, &unitName, &divisionID, &divisionName, &deptID, &deptName); err != nil {
			return nil, fmt.Errorf("database: failed to scan org unit hierarchy row: %w", err)
		}

		if len(units) == 0 || units[len(units)-1].ID != unitRowID {
			units = append(units, model.OrgUnitHierarchy{
				OrgUnit: model.OrgUnit{ID: unitRowID, FullName: unitName},
			})
		}
		unit := &units[len(units)-1]

		if !divisionID.IsSet {
			continue
		}
		if len(unit.Divisions) == 0 || unit.Divisions[len(unit.Divisions)-1].ID != divisionID.Val {
			unit.Divisions = append(unit.Divisions, model.DivisionHierarchy{
				Division: model.Division{
					ID:        divisionID.Val,
					OrgUnitID: unitRowID,
					FullName:  divisionName.Val,
				},
			})
		}
		division := &unit.Divisions[len(unit.Divisions)-1]

		if !deptID.IsSet {
			continue
		}
		division.Departments = append(division.Departments, model.Department{
			ID:         deptID.Val,
			DivisionID: divisionID.Val,
			FullName:   deptName.Val,
			Active:     true,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate org unit hierarchy: %w", err)
	}

	return units, nil
}

// ListActivePersonnel fetches active persons assigned to one of the given
// departments.
func (db *Database) ListActivePersonnel(ctx context.Context, departmentIDs []int64) ([]model.Person, error) {
	if len(departmentIDs) == 0 {
		return nil, nil
	}

	rows, err := db.Pool.Query(ctx, `SELECT id, name, title, active, department_id, rank FROM person WHERE active AND department_id = ANY($1) ORDER BY id`, departmentIDs)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list personnel: %w", err)
	}
	defer rows.Close()

	var persons []model.Person
	for rows.Next() {
		var person model.Person
		if err := rows.Scan(&person.ID, &person.Name, &person.Title, &person.Active, &person.DepartmentID, &person.Rank); err != nil {
			return nil, fmt.Errorf("database: failed to scan person: %w", err)
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate personnel: %w", err)
	}

	return persons, nil
}

// ListExtensions fetches extension records linked to a person, each with
// its optional location.
func (db *Database) ListExtensions(ctx context.Context) ([]model.ExtensionRecord, error) {
	rows, err := db.Pool.Query(ctx, `SELECT e.id, e.extension_number, e.person_id, l.id, l.street, l.exterior_number, l.interior_number, l.neighborhood, l.postal_code
		FROM extension e
		LEFT JOIN location l ON l.id = e.location_id
		WHERE e.person_id IS NOT NULL
		ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list extensions: %w", err)
	}
	defer rows.Close()

	var records []model.ExtensionRecord
	for rows.Next() {
		var (
			record     model.ExtensionRecord
			locationID util.Optional[int64]
			location   model.Location
		)
		if err := rows.Scan(&record.ID, &record.ExtensionNumber, &record.PersonID, &locationID,
			&location.Street, &location.ExteriorNumber, &location.InteriorNumber, &location.Neighborhood, &location.PostalCode); err != nil {
			return nil, fmt.Errorf("database: failed to scan extension: %w", err)
		}
		if locationID.IsSet {
			record.Location = util.Some(location)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate extensions: %w", err)
	}

	return records, nil
}

// ListOrgUnits fetches id and name of every org unit, for the search
// form's unit selector.
func (db *Database) ListOrgUnits(ctx context.Context) ([]model.OrgUnit, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, full_name FROM org_unit ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list org units: %w", err)
	}
	defer rows.Close()

	var units []model.OrgUnit
	for rows.Next() {
		var unit model.OrgUnit
		if err := rows.Scan(&unit.ID, &unit.FullName); err != nil {
			return nil, fmt.Errorf("database: failed to scan org unit: %w", err)
		}
		units = append(units, unit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate org units: %w", err)
	}

	return units, nil
}

// RegistryRecord is one row of the extension registry table: every
// extension regardless of person link, with its holder and location.
type RegistryRecord struct {
	ID               int64                 `json:"id"`
	ExtensionNumber  util.Optional[string] `json:"extension_number"`
	PrivateExtension util.Optional[string] `json:"private_extension"`
	HolderName       util.Optional[string] `json:"holder_name"`
	LocationName     util.Optional[string] `json:"location_name"`
}

// ListExtensionRegistry fetches the full extension registry for the
// administrative table view.
func (db *Database) ListExtensionRegistry(ctx context.Context) ([]RegistryRecord, error) {
	rows, err := db.Pool.Query(ctx, `SELECT e.id, e.extension_number, e.private_extension, p.name, l.street
		FROM extension e
		LEFT JOIN person p ON p.id = e.person_id
		LEFT JOIN location l ON l.id = e.location_id
		ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("database: failed to list extension registry: %w", err)
	}
	defer rows.Close()

	var records []RegistryRecord
	for rows.Next() {
		var record RegistryRecord
		if err := rows.Scan(&record.ID, &record.ExtensionNumber, &record.PrivateExtension, &record.HolderName, &record.LocationName); err != nil {
			return nil, fmt.Errorf("database: failed to scan extension registry row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: failed to iterate extension registry: %w", err)
	}

	return records, nil
}
