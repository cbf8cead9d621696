package dto

import (
	"time"

	"github.com/google/uuid"

	"fitpartner/internal/domain/user"
)

// UserResponse is the public projection of a profile. The password hash is
// never part of it.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Height    *int      `json:"height"`
	Weight    *int      `json:"weight"`
	Goal      *string   `json:"goal"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Height:    u.Height,
		Weight:    u.Weight,
		Goal:      u.Goal,
		CreatedAt: u.CreatedAt,
	}
}
