package preference

import "github.com/google/uuid"

// WorkoutPreference is immutable reference data: a named workout category
// from the seeded catalog.
type WorkoutPreference struct {
	ID   uuid.UUID
	Name string
}
