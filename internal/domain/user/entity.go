package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered profile. Height and weight are nullable in the
// store; a nil pointer means the field was never filled in and must not
// contribute to compatibility scoring.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Height       *int
	Weight       *int
	Goal         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GoalText returns the goal string or "" when unset.
func (u User) GoalText() string {
	if u.Goal == nil {
		return ""
	}
	return *u.Goal
}
