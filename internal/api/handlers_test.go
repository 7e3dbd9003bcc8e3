package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"switchboard/internal/api"
	"switchboard/internal/directory"
	"switchboard/internal/model"
	"switchboard/internal/util"
	"switchboard/internal/validator"
)

type stubStore struct {
	units []model.OrgUnitHierarchy
}

func (s *stubStore) ListOrgUnitHierarchy(_ context.Context, unitID util.Optional[int64]) ([]model.OrgUnitHierarchy, error) {
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

func (s *stubStore) ListActivePersonnel(_ context.Context, _ []int64) ([]model.Person, error) {
	return []model.Person{
		{ID: 1, Name: "Ana Pérez", Title: "Director", Active: true, DepartmentID: util.Some[int64](100), Rank: util.Some(1)},
	}, nil
}

func (s *stubStore) ListExtensions(_ context.Context) ([]model.ExtensionRecord, error) {
	return []model.ExtensionRecord{
		{ID: 1, ExtensionNumber: util.Some("1234"), PersonID: util.Some[int64](1)},
	}, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := &stubStore{
		units: []model.OrgUnitHierarchy{{
			OrgUnit: model.OrgUnit{ID: 5, FullName: "Administration"},
			Divisions: []model.DivisionHierarchy{{
				Division: model.Division{ID: 10, OrgUnitID: 5, FullName: "General Secretariat"},
				Departments: []model.Department{
					{ID: 100, DivisionID: 10, FullName: "Finance", Active: true},
				},
			}},
		}},
	}

	handler := api.NewHandler(nil, directory.NewService(store), validator.New())

	app := fiber.New()
	app.Get("/api/directory", handler.GetDirectory)
	app.Get("/api/directory/search", handler.SearchDirectory)
	app.Get("/api/directory/:unitID", handler.GetOrgUnitDirectory)
	return app
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestGetDirectory(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/directory", nil))
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	body := decodeBody(t, res)
	trees, ok := body["directory"].([]any)
	require.True(t, ok)
	assert.Len(t, trees, 1)
}

func TestGetOrgUnitDirectory(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "known unit", path: "/api/directory/5", wantStatus: http.StatusOK},
		{name: "unknown unit", path: "/api/directory/404", wantStatus: http.StatusNotFound},
		{name: "malformed id", path: "/api/directory/abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			res, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tt.wantStatus, res.StatusCode)
		})
	}
}

func TestSearchDirectory(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantTotal  float64
	}{
		{name: "default sort", path: "/api/directory/search", wantStatus: http.StatusOK, wantTotal: 1},
		{name: "matching query", path: "/api/directory/search?q=finance", wantStatus: http.StatusOK, wantTotal: 1},
		{name: "accent insensitive query", path: "/api/directory/search?q=perez", wantStatus: http.StatusOK, wantTotal: 1},
		{name: "no results", path: "/api/directory/search?q=9999", wantStatus: http.StatusOK, wantTotal: 0},
		{name: "unit scope", path: "/api/directory/search?unit=5&sort=extension", wantStatus: http.StatusOK, wantTotal: 1},
		{name: "unknown sort mode", path: "/api/directory/search?sort=bogus", wantStatus: http.StatusBadRequest},
		{name: "malformed unit", path: "/api/directory/search?unit=abc", wantStatus: http.StatusBadRequest},
		{name: "negative unit", path: "/api/directory/search?unit=-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			res, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer res.Body.Close()

			require.Equal(t, tt.wantStatus, res.StatusCode)
			if tt.wantStatus != http.StatusOK {
				return
			}

			body := decodeBody(t, res)
			assert.Equal(t, tt.wantTotal, body["total"])
		})
	}
}
