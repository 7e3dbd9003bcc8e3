package directory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/directory"
	"switchboard/internal/model"
	"switchboard/internal/util"
)

// stubStore serves canned snapshot data, optionally scoped by unit id.
type stubStore struct {
	units      []model.OrgUnitHierarchy
	persons    []model.Person
	extensions []model.ExtensionRecord
	err        error
}

func (s *stubStore) ListOrgUnitHierarchy(_ context.Context, unitID util.Optional[int64]) ([]model.OrgUnitHierarchy, error) {
	if s.err != nil {
		return nil, s.err
	}
	if !unitID.IsSet {
		return s.units, nil
	}
	for _, unit := range s.units {
		if unit.ID == unitID.Val {
			return []model.OrgUnitHierarchy{unit}, nil
		}
	}
	return nil, nil
}

func (s *stubStore) ListActivePersonnel(_ context.Context, departmentIDs []int64) ([]model.Person, error) {
	if s.err != nil {
		return nil, s.err
	}
	inSet := make(map[int64]bool, len(departmentIDs))
	for _, id := range departmentIDs {
		inSet[id] = true
	}
	var out []model.Person
	for _, person := range s.persons {
		if person.Active && person.DepartmentID.IsSet && inSet[person.DepartmentID.Val] {
			out = append(out, person)
		}
	}
	return out, nil
}

func (s *stubStore) ListExtensions(_ context.Context) ([]model.ExtensionRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.extensions, nil
}

func financeStore() *stubStore {
	return &stubStore{
		units: []model.OrgUnitHierarchy{{
			OrgUnit: model.OrgUnit{ID: 5, FullName: "Administration"},
			Divisions: []model.DivisionHierarchy{{
				Division: model.Division{ID: 10, OrgUnitID: 5, FullName: "General Secretariat"},
				Departments: []model.Department{
					{ID: 100, DivisionID: 10, FullName: "Finance", Active: true},
				},
			}},
		}},
		persons: []model.Person{
			{ID: 1, Name: "Ana Pérez", Title: "Director", Active: true, DepartmentID: util.Some[int64](100), Rank: util.Some(1)},
		},
		extensions: []model.ExtensionRecord{
			{
				ID:              1,
				ExtensionNumber: util.Some("1234"),
				PersonID:        util.Some[int64](1),
				Location: util.Some(model.Location{
					Street:         util.Some("Main"),
					ExteriorNumber: util.Some("S/N"),
					Neighborhood:   util.Some("Centro"),
					PostalCode:     util.Some("50000"),
				}),
			},
		},
	}
}

func TestGetDirectory_AssemblesFinanceUnit(t *testing.T) {
	service := directory.NewService(financeStore())

	trees, err := service.GetDirectory(context.Background(), directory.Unit(5))
	require.NoError(t, err)
	require.Len(t, trees, 1)

	tree := trees[0]
	assert.Equal(t, int64(5), tree.OrgUnitID)
	require.Len(t, tree.Divisions, 1)
	assert.Equal(t, int64(10), tree.Divisions[0].ID)
	require.Len(t, tree.Divisions[0].Departments, 1)

	department := tree.Divisions[0].Departments[0]
	assert.Equal(t, int64(100), department.ID)
	require.Len(t, department.Entries, 1)

	entry := department.Entries[0]
	assert.Equal(t, "Ana Pérez", entry.Name)
	assert.Equal(t, util.Some(1), entry.Rank)
	assert.Equal(t, "1234", entry.Extension)

	// Unit location is inferred from the first entry carrying one.
	require.True(t, tree.Location.IsSet)
	assert.Equal(t, "Main", tree.Location.Val.Street.Val)
	assert.Equal(t, "Centro", tree.Location.Val.Neighborhood.Val)
}

func TestGetDirectory_UnknownUnitIsNotFound(t *testing.T) {
	service := directory.NewService(financeStore())

	trees, err := service.GetDirectory(context.Background(), directory.Unit(999))
	assert.NoError(t, err)
	assert.Nil(t, trees)
}

func TestGetDirectory_PersonWithoutExtensionIsExcluded(t *testing.T) {
	store := financeStore()
	store.persons = append(store.persons, model.Person{
		ID: 2, Name: "No Phone", Active: true, DepartmentID: util.Some[int64](100), Rank: util.Some(2),
	})

	service := directory.NewService(store)
	trees, err := service.GetDirectory(context.Background(), directory.Unit(5))
	require.NoError(t, err)
	require.Len(t, trees, 1)

	entries := trees[0].Divisions[0].Departments[0].Entries
	require.Len(t, entries, 1)
	assert.Equal(t, "Ana Pérez", entries[0].Name)
}

func TestGetDirectory_ExtensionWithoutNumberIsAbsent(t *testing.T) {
	store := financeStore()
	// The only extension record loses its number: the person must drop
	// out and the department falls back to the placeholder.
	store.extensions[0].ExtensionNumber = util.None[string]()

	service := directory.NewService(store)
	trees, err := service.GetDirectory(context.Background(), directory.Unit(5))
	require.NoError(t, err)

	entries := trees[0].Divisions[0].Departments[0].Entries
	require.Len(t, entries, 1)
	assert.Equal(t, "", entries[0].Name)
	assert.Equal(t, model.NoExtensionOnFile, entries[0].Extension)
	assert.False(t, trees[0].Location.IsSet)
}

func TestGetDirectory_EmptyDepartmentGetsPlaceholder(t *testing.T) {
	store := financeStore()
	store.units[0].Divisions[0].Departments = append(store.units[0].Divisions[0].Departments,
		model.Department{ID: 101, DivisionID: 10, FullName: "Protocol", Active: true})

	service := directory.NewService(store)
	trees, err := service.GetDirectory(context.Background(), directory.Unit(5))
	require.NoError(t, err)

	departments := trees[0].Divisions[0].Departments
	require.Len(t, departments, 2)
	require.Len(t, departments[1].Entries, 1)
	assert.Equal(t, model.NoExtensionOnFile, departments[1].Entries[0].Extension)
	assert.Equal(t, "", departments[1].Entries[0].Name)
}

func TestGetDirectory_EntriesSortedByRankNullFirst(t *testing.T) {
	store := financeStore()
	store.persons = []model.Person{
		{ID: 1, Name: "Third", Active: true, DepartmentID: util.Some[int64](100), Rank: util.Some(3)},
		{ID: 2, Name: "First", Active: true, DepartmentID: util.Some[int64](100), Rank: util.None[int]()},
		{ID: 3, Name: "Second", Active: true, DepartmentID: util.Some[int64](100), Rank: util.Some(1)},
	}
	store.extensions = []model.ExtensionRecord{
		{ID: 1, ExtensionNumber: util.Some("3001"), PersonID: util.Some[int64](1)},
		{ID: 2, ExtensionNumber: util.Some("3002"), PersonID: util.Some[int64](2)},
		{ID: 3, ExtensionNumber: util.Some("3003"), PersonID: util.Some[int64](3)},
	}

	service := directory.NewService(store)
	trees, err := service.GetDirectory(context.Background(), directory.Unit(5))
	require.NoError(t, err)

	entries := trees[0].Divisions[0].Departments[0].Entries
	require.Len(t, entries, 3)

	// Unset rank counts as 0 and sorts first; ranks never decrease.
	assert.Equal(t, "First", entries[0].Name)
	assert.Equal(t, "Second", entries[1].Name)
	assert.Equal(t, "Third", entries[2].Name)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i].Rank.UnwrapOr(0), entries[i-1].Rank.UnwrapOr(0))
	}
}

func TestGetDirectory_StoreFailurePropagates(t *testing.T) {
	store := financeStore()
	store.err = errors.New("connection refused")

	service := directory.NewService(store)
	_, err := service.GetDirectory(context.Background(), directory.AllUnits())
	assert.Error(t, err)
	assert.ErrorContains(t, err, "connection refused")
}
