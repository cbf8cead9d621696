package handler

import (
	"errors"

	"fitpartner/internal/delivery/http/dto"
	"fitpartner/internal/delivery/http/middleware"
	"fitpartner/internal/pkg/response"
	ucuser "fitpartner/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc ucuser.UserUsecase
}

type updateProfileRequest struct {
	Name   *string `json:"name"`
	Height *int    `json:"height"`
	Weight *int    `json:"weight"`
	Goal   *string `json:"goal"`
}

type setPreferencesRequest struct {
	PreferenceIDs []uuid.UUID `json:"preference_ids"`
}

func NewUserHandler(uc ucuser.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/me", h.UpdateMe)
	r.Get("/me/workout-preferences", h.GetWorkoutPreferences)
	r.Put("/me/workout-preferences", h.SetWorkoutPreferences)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	usr, err := h.uc.GetMe(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, ucuser.UpdateProfileInput{
		Name:   req.Name,
		Height: req.Height,
		Weight: req.Weight,
		Goal:   req.Goal,
	})
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) GetWorkoutPreferences(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	prefs, err := h.uc.GetWorkoutPreferences(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewWorkoutPreferenceList(prefs))
}

func (h *UserHandler) SetWorkoutPreferences(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	var req setPreferencesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	prefs, err := h.uc.SetWorkoutPreferences(c.Context(), userID, req.PreferenceIDs)
	if err != nil {
		return mapUserUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewWorkoutPreferenceList(prefs))
}

func mapUserUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucuser.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageUserNotFound, err)
	case errors.Is(err, ucuser.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
