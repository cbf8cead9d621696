package seeder

import (
	"context"
	"fmt"

	"fitpartner/internal/database"
)

// WorkoutPreferencesSeeder installs the fixed catalog of workout categories.
// Each run is an idempotent upsert: names already present are left alone.
type WorkoutPreferencesSeeder struct{}

func (WorkoutPreferencesSeeder) Name() string { return "workout_preferences" }

var workoutPreferenceNames = []string{
	"Peito",
	"Costas",
	"Ombro",
	"Braço",
	"Perna",
	"Abdômen",
	"Cardio",
	"Funcional",
	"Crossfit",
	"Yoga",
	"Pilates",
	"Natação",
}

func (s WorkoutPreferencesSeeder) Run(ctx context.Context, db database.DB) (Result, error) {
	res := Result{Name: s.Name()}

	tx, err := db.Begin(ctx)
	if err != nil {
		return res, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, name := range workoutPreferenceNames {
		affected, err := tx.Exec(ctx,
			`INSERT INTO workout_preferences (id, name)
			 VALUES (gen_random_uuid(), $1)
			 ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			return res, err
		}
		if affected == 0 {
			res.Skipped++
			continue
		}
		res.Inserted += affected
	}

	if err := tx.Commit(ctx); err != nil {
		return res, fmt.Errorf("commit: %w", err)
	}
	return res, nil
}
