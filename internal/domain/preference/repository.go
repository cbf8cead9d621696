package preference

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListAll(ctx context.Context) ([]WorkoutPreference, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]WorkoutPreference, error)

	// ReplaceForUser swaps the user's preference links for the given set.
	// Unknown ids are ignored rather than rejected.
	ReplaceForUser(ctx context.Context, userID uuid.UUID, prefIDs []uuid.UUID) error
}
