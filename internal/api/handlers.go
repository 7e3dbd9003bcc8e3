package api

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"switchboard/internal/database"
	"switchboard/internal/directory"
	"switchboard/internal/directory/listing"
	"switchboard/internal/validator"
)

type Handler struct {
	db        *database.Database
	directory directory.Service
	validate  *validator.Validator
}

func NewHandler(db *database.Database, service directory.Service, validate *validator.Validator) Handler {
	return Handler{db: db, directory: service, validate: validate}
}

// ListOrgUnits returns id and name of every org unit, for the search
// form's unit selector.
func (h *Handler) ListOrgUnits(c *fiber.Ctx) error {
	units, err := h.db.ListOrgUnits(c.Context())
	if err != nil {
		slog.Error("Failed to list org units", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "directory data unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"org_units": units,
	})
}

// GetDirectory returns the assembled directory tree for every org unit.
func (h *Handler) GetDirectory(c *fiber.Ctx) error {
	trees, err := h.directory.GetDirectory(c.Context(), directory.AllUnits())
	if err != nil {
		slog.Error("Failed to assemble directory", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "directory data unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"directory": trees,
	})
}

// GetOrgUnitDirectory returns the assembled directory tree of one org
// unit, or 404 when the unit does not exist.
func (h *Handler) GetOrgUnitDirectory(c *fiber.Ctx) error {
	unitID, err := strconv.ParseInt(c.Params("unitID"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid org unit id",
		})
	}

	trees, err := h.directory.GetDirectory(c.Context(), directory.Unit(unitID))
	if err != nil {
		slog.Error("Failed to assemble directory", "unit_id", unitID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "directory data unavailable",
		})
	}
	if len(trees) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "org unit not found",
		})
	}

	return c.JSON(fiber.Map{
		"directory": trees[0],
	})
}

type searchRequest struct {
	UnitID int64  `validate:"omitempty,min=1"`
	Query  string `validate:"max=200"`
	Sort   string `validate:"omitempty,sort_mode"`
}

// SearchDirectory flattens the assembled directory and re-aggregates it
// with the caller's query and sort mode, the same transform the browser
// UI applies client-side. A prior fetch failure yields empty groups
// rather than an error from the re-aggregation itself.
func (h *Handler) SearchDirectory(c *fiber.Ctx) error {
	req := searchRequest{
		Query: c.Query("q"),
		Sort:  c.Query("sort", string(listing.SortByHierarchy)),
	}
	if unit := c.Query("unit"); unit != "" {
		unitID, err := strconv.ParseInt(unit, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid org unit id",
			})
		}
		req.UnitID = unitID
	}
	if err := h.validate.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid search parameters",
		})
	}

	selector := directory.AllUnits()
	if req.UnitID != 0 {
		selector = directory.Unit(req.UnitID)
	}

	trees, err := h.directory.GetDirectory(c.Context(), selector)
	if err != nil {
		slog.Error("Failed to assemble directory for search", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "directory data unavailable",
		})
	}

	groups := listing.Reaggregate(listing.Flatten(trees), req.Query, listing.SortMode(req.Sort))

	return c.JSON(fiber.Map{
		"groups": groups,
		"total":  countRows(groups),
	})
}

// ListExtensionRegistry returns the full extension registry for the
// administrative table view.
func (h *Handler) ListExtensionRegistry(c *fiber.Ctx) error {
	records, err := h.db.ListExtensionRegistry(c.Context())
	if err != nil {
		slog.Error("Failed to list extension registry", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "directory data unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"extensions": records,
	})
}

func countRows(groups []listing.OrgUnitGroup) int {
	total := 0
	for _, group := range groups {
		if group.Titular != nil {
			total++
		}
		for _, division := range group.Divisions {
			total += len(division.Rows)
		}
	}
	return total
}
