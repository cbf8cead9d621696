package seeder

import (
	"context"

	"fitpartner/internal/database"
)

// Result reports what a seeder actually did, so bootstrap can log it
// structurally instead of each seeder printing to the console.
type Result struct {
	Name     string
	Inserted int64
	Skipped  int
}

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) (Result, error)
}
