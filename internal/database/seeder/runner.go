package seeder

import (
	"context"
	"fmt"

	"fitpartner/internal/database"
)

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, db database.DB) ([]Result, error) {
	if db == nil {
		return nil, fmt.Errorf("nil db")
	}

	results := make([]Result, 0, len(r.Seeders))
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		res, err := s.Run(ctx, db)
		if err != nil {
			return results, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		results = append(results, res)
	}
	return results, nil
}
