package user

import (
	"context"
	"errors"
	"strings"

	"fitpartner/internal/domain/preference"
	"fitpartner/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// UpdateProfileInput carries partial updates: nil means "leave unchanged".
type UpdateProfileInput struct {
	Name   *string
	Height *int
	Weight *int
	Goal   *string
}

type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
	GetWorkoutPreferences(ctx context.Context, userID uuid.UUID) ([]preference.WorkoutPreference, error)
	SetWorkoutPreferences(ctx context.Context, userID uuid.UUID, prefIDs []uuid.UUID) ([]preference.WorkoutPreference, error)
}

type Service struct {
	users user.Repository
	prefs preference.Repository
}

func NewService(users user.Repository, prefs preference.Repository) *Service {
	return &Service{users: users, prefs: prefs}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	return sanitizeUser(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	if in.Name == nil && in.Height == nil && in.Weight == nil && in.Goal == nil {
		return user.User{}, ErrInvalidInput
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return user.User{}, ErrInvalidInput
		}
		u.Name = name
	}
	if in.Height != nil {
		if *in.Height <= 0 {
			return user.User{}, ErrInvalidInput
		}
		u.Height = in.Height
	}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return user.User{}, ErrInvalidInput
		}
		u.Weight = in.Weight
	}
	if in.Goal != nil {
		goal := strings.TrimSpace(*in.Goal)
		u.Goal = &goal
	}

	if err := s.users.Update(ctx, u); err != nil {
		return user.User{}, ErrInternal
	}

	updated, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(updated), nil
}

func (s *Service) GetWorkoutPreferences(ctx context.Context, userID uuid.UUID) ([]preference.WorkoutPreference, error) {
	out, err := s.prefs.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *Service) SetWorkoutPreferences(ctx context.Context, userID uuid.UUID, prefIDs []uuid.UUID) ([]preference.WorkoutPreference, error) {
	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if !exists {
		return nil, ErrNotFound
	}

	if err := s.prefs.ReplaceForUser(ctx, userID, prefIDs); err != nil {
		return nil, ErrInternal
	}

	out, err := s.prefs.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
