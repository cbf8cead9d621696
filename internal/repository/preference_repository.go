package repository

import (
	"context"

	"fitpartner/internal/database"
	"fitpartner/internal/domain/preference"

	"github.com/google/uuid"
)

type PostgresPreferenceRepository struct {
	db database.DB
}

func NewPostgresPreferenceRepository(db database.DB) *PostgresPreferenceRepository {
	return &PostgresPreferenceRepository{db: db}
}

func (r *PostgresPreferenceRepository) ListAll(ctx context.Context) ([]preference.WorkoutPreference, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name FROM workout_preferences ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPreferences(rows)
}

func (r *PostgresPreferenceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]preference.WorkoutPreference, error) {
	rows, err := r.db.Query(ctx,
		`SELECT wp.id, wp.name
		 FROM workout_preferences wp
		 JOIN user_workout_preferences uwp ON uwp.workout_preference_id = wp.id
		 WHERE uwp.user_id = $1
		 ORDER BY wp.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPreferences(rows)
}

// ReplaceForUser rewrites the link table for one user inside a single
// transaction. Ids that don't exist in the catalog are silently skipped.
func (r *PostgresPreferenceRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, prefIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx,
		`DELETE FROM user_workout_preferences WHERE user_id = $1`,
		userID,
	); err != nil {
		return err
	}

	if len(prefIDs) > 0 {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_workout_preferences (id, user_id, workout_preference_id)
			 SELECT gen_random_uuid(), $1, wp.id
			 FROM workout_preferences wp
			 WHERE wp.id = ANY($2)`,
			userID, prefIDs,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func scanPreferences(rows database.Rows) ([]preference.WorkoutPreference, error) {
	out := make([]preference.WorkoutPreference, 0)
	for rows.Next() {
		var p preference.WorkoutPreference
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
