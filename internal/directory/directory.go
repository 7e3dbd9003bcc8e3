// Package directory assembles the consolidated organizational phone
// directory: the org hierarchy joined with the personnel roster and the
// extension registry, grouped per org unit and ranked per department.
package directory

import (
	"context"
	"fmt"
	"sort"

	"switchboard/internal/model"
	"switchboard/internal/util"
)

// Store is the read-only entity access the engine consumes. Departments
// come pre-filtered to active, extensions pre-filtered to person-linked.
type Store interface {
	ListOrgUnitHierarchy(ctx context.Context, unitID util.Optional[int64]) ([]model.OrgUnitHierarchy, error)
	ListActivePersonnel(ctx context.Context, departmentIDs []int64) ([]model.Person, error)
	ListExtensions(ctx context.Context) ([]model.ExtensionRecord, error)
}

// Selector scopes a directory request to one org unit or to all of them.
type Selector struct {
	unitID util.Optional[int64]
}

func AllUnits() Selector {
	return Selector{}
}

func Unit(id int64) Selector {
	return Selector{unitID: util.Some(id)}
}

type Service struct {
	store Store
}

func NewService(store Store) Service {
	return Service{store: store}
}

// resolvedExtension is what an extension record contributes to a person's
// directory entry once the registry has been indexed by person.
type resolvedExtension struct {
	number   string
	location util.Optional[model.Location]
}

// GetDirectory assembles one directory tree per org unit matching the
// selector, in store iteration order. A selector naming a unit that does
// not exist yields (nil, nil): not found is a normal outcome here, not an
// error. Store failures propagate unretried.
func (s Service) GetDirectory(ctx context.Context, selector Selector) ([]model.DirectoryTree, error) {
	units, err := s.store.ListOrgUnitHierarchy(ctx, selector.unitID)
	if err != nil {
		return nil, fmt.Errorf("directory: failed to fetch org unit hierarchy: %w", err)
	}
	if len(units) == 0 {
		return nil, nil
	}

	var departmentIDs []int64
	for _, unit := range units {
		for _, division := range unit.Divisions {
			for _, department := range division.Departments {
				departmentIDs = append(departmentIDs, department.ID)
			}
		}
	}

	persons, err := s.store.ListActivePersonnel(ctx, departmentIDs)
	if err != nil {
		return nil, fmt.Errorf("directory: failed to fetch personnel: %w", err)
	}

	extensions, err := s.store.ListExtensions(ctx)
	if err != nil {
		return nil, fmt.Errorf("directory: failed to fetch extensions: %w", err)
	}

	// Lookups live only for this call; nothing is shared across requests.
	extensionByPerson := make(map[int64]resolvedExtension)
	for _, record := range extensions {
		if !record.PersonID.IsSet {
			continue
		}
		if !record.ExtensionNumber.IsSet || record.ExtensionNumber.Val == "" {
			// A person link without an extension number is treated as
			// no record at all.
			continue
		}
		extensionByPerson[record.PersonID.Val] = resolvedExtension{
			number:   record.ExtensionNumber.Val,
			location: record.Location,
		}
	}

	// A person without a matching extension record is invisible to the
	// directory; this join is the authoritative filter.
	entriesByDepartment := make(map[int64][]model.DirectoryEntry)
	for _, person := range persons {
		if !person.DepartmentID.IsSet {
			continue
		}
		resolved, ok := extensionByPerson[person.ID]
		if !ok {
			continue
		}
		entriesByDepartment[person.DepartmentID.Val] = append(entriesByDepartment[person.DepartmentID.Val], model.DirectoryEntry{
			PersonID:  util.Some(person.ID),
			Name:      person.Name,
			Title:     person.Title,
			Rank:      person.Rank,
			Extension: resolved.number,
			Location:  resolved.location,
		})
	}

	trees := make([]model.DirectoryTree, 0, len(units))
	for _, unit := range units {
		tree := model.DirectoryTree{
			OrgUnitID: unit.ID,
			FullName:  unit.FullName,
		}

		for _, division := range unit.Divisions {
			node := model.DirectoryDivision{
				ID:       division.ID,
				FullName: division.FullName,
			}
			for _, department := range division.Departments {
				entries := entriesByDepartment[department.ID]
				if len(entries) == 0 {
					entries = []model.DirectoryEntry{placeholderEntry()}
				} else {
					sortEntriesByRank(entries)
				}
				node.Departments = append(node.Departments, model.DirectoryDepartment{
					ID:       department.ID,
					FullName: department.FullName,
					Entries:  entries,
				})
			}
			tree.Divisions = append(tree.Divisions, applyReservedUnitOverride(node))
		}

		tree.Location = inferLocation(tree.Divisions)
		trees = append(trees, tree)
	}

	return trees, nil
}

// placeholderEntry stands in for a department with no extension-bearing
// personnel on file.
func placeholderEntry() model.DirectoryEntry {
	return model.DirectoryEntry{
		Extension: model.NoExtensionOnFile,
	}
}

// sortEntriesByRank orders entries by rank ascending, an unset rank
// sorting first as rank 0.
func sortEntriesByRank(entries []model.DirectoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank.UnwrapOr(0) < entries[j].Rank.UnwrapOr(0)
	})
}

// inferLocation picks the location of the first entry, in division and
// department order, that carries one.
func inferLocation(divisions []model.DirectoryDivision) util.Optional[model.Location] {
	for _, division := range divisions {
		for _, department := range division.Departments {
			for _, entry := range department.Entries {
				if entry.Location.IsSet {
					return entry.Location
				}
			}
		}
	}
	return util.None[model.Location]()
}
