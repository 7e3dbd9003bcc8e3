package main

import (
	"context"
	"log"

	"switchboard/internal/config"
	"switchboard/internal/database"
)

// Seeds a small directory: two org units, a reserved coordination-board
// division, a couple of line departments and their extensions.
func main() {
	ctx := context.Background()
	cfg := config.NewConfig()

	db := database.NewDatabase()
	if err := db.Connect(ctx, cfg.Database.DSN()); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	statements := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO org_unit (id, full_name) VALUES ($1, $2)`, []any{1, "Legislature"}},
		{`INSERT INTO org_unit (id, full_name) VALUES ($1, $2)`, []any{2, "Administration"}},

		{`INSERT INTO division (id, org_unit_id, full_name) VALUES ($1, $2, $3)`, []any{1, 1, "Joint Political Coordination Board"}},
		{`INSERT INTO division (id, org_unit_id, full_name) VALUES ($1, $2, $3)`, []any{2, 1, "General Secretariat"}},
		{`INSERT INTO division (id, org_unit_id, full_name) VALUES ($1, $2, $3)`, []any{3, 2, "Comptroller"}},

		{`INSERT INTO department (id, division_id, full_name, active) VALUES ($1, $2, $3, $4)`, []any{10, 2, "Directorate of Finance", true}},
		{`INSERT INTO department (id, division_id, full_name, active) VALUES ($1, $2, $3, $4)`, []any{11, 2, "Parliamentary Archive", true}},
		{`INSERT INTO department (id, division_id, full_name, active) VALUES ($1, $2, $3, $4)`, []any{12, 2, "Closed Records Office", false}},
		{`INSERT INTO department (id, division_id, full_name, active) VALUES ($1, $2, $3, $4)`, []any{20, 3, "Internal Audit", true}},

		{`INSERT INTO person (id, name, title, active, department_id, rank) VALUES ($1, $2, $3, $4, $5, $6)`, []any{100, "Esmeralda García Villa", "Director of Finance", true, 10, 1}},
		{`INSERT INTO person (id, name, title, active, department_id, rank) VALUES ($1, $2, $3, $4, $5, $6)`, []any{101, "Fernando Zarza Valdés", "Analyst", true, 10, 2}},
		{`INSERT INTO person (id, name, title, active, department_id, rank) VALUES ($1, $2, $3, $4, $5, $6)`, []any{102, "Omar Olvera Herreros", "Archivist", true, 11, nil}},
		{`INSERT INTO person (id, name, title, active, department_id, rank) VALUES ($1, $2, $3, $4, $5, $6)`, []any{103, "José Vázquez Rodríguez", "Auditor", true, 20, 1}},

		{`INSERT INTO location (id, street, exterior_number, interior_number, neighborhood, postal_code) VALUES ($1, $2, $3, $4, $5, $6)`, []any{1, "Plaza Hidalgo", "S/N", nil, "Centro", "50000"}},
		{`INSERT INTO location (id, street, exterior_number, interior_number, neighborhood, postal_code) VALUES ($1, $2, $3, $4, $5, $6)`, []any{2, "Av. Independencia", "102", "2B", "Centro", "50000"}},

		{`INSERT INTO extension (id, extension_number, private_extension, person_id, location_id) VALUES ($1, $2, $3, $4, $5)`, []any{1, "4003", "4003", 100, 1}},
		{`INSERT INTO extension (id, extension_number, private_extension, person_id, location_id) VALUES ($1, $2, $3, $4, $5)`, []any{2, "4203", nil, 101, 1}},
		{`INSERT INTO extension (id, extension_number, private_extension, person_id, location_id) VALUES ($1, $2, $3, $4, $5)`, []any{3, "6101", nil, 103, 2}},
		{`INSERT INTO extension (id, extension_number, private_extension, person_id, location_id) VALUES ($1, $2, $3, $4, $5)`, []any{4, nil, nil, 102, nil}},
	}

	for _, stmt := range statements {
		if _, err := db.Pool.Exec(ctx, stmt.sql, stmt.args...); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
	}

	log.Println("Test data created")
}
