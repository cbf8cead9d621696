package handler

import (
	"errors"

	"fitpartner/internal/delivery/http/dto"
	"fitpartner/internal/delivery/http/middleware"
	"fitpartner/internal/pkg/response"
	"fitpartner/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/discover", h.Discover)
	r.Get("/stats", h.Stats)
	r.Get("/compatibility/:user_id", h.Compatibility)
	r.Post("/like/:user_id", h.Like)
	r.Post("/skip/:user_id", h.Skip)
	r.Get("/", h.List)
}

func (h *MatchHandler) Discover(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	candidates, err := h.uc.Discover(c.Context(), userID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := make([]dto.DiscoverItemResponse, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, dto.DiscoverItemResponse{
			UserResponse:       dto.NewUserResponse(cand.User),
			CompatibilityScore: cand.CompatibilityScore,
		})
	}

	return response.JSON(c, fiber.StatusOK, out)
}

func (h *MatchHandler) Like(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	res, err := h.uc.Like(c.Context(), userID, targetID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.LikeResponse{
		MatchStatus: string(res.MatchStatus),
		MatchID:     res.MatchID,
	})
}

func (h *MatchHandler) Skip(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	if err := h.uc.Skip(c.Context(), userID, targetID); err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.SkipResponse{Status: "ok"})
}

func (h *MatchHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	matches, err := h.uc.ListMatches(c.Context(), userID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := make([]dto.MatchItemResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.MatchItemResponse{
			MatchID:            m.Match.ID,
			User:               dto.NewUserResponse(m.Partner),
			Status:             string(m.Match.Status),
			CompatibilityScore: m.Match.CompatibilityScore,
			CreatedAt:          m.Match.CreatedAt,
		})
	}

	return response.JSON(c, fiber.StatusOK, out)
}

func (h *MatchHandler) Compatibility(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	targetID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	score, err := h.uc.Compatibility(c.Context(), userID, targetID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.CompatibilityResponse{CompatibilityScore: score})
}

func (h *MatchHandler) Stats(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, nil)
	}

	st, err := h.uc.Stats(c.Context(), userID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.MatchStatsResponse{
		Pending:  st.Pending,
		Accepted: st.Accepted,
		Rejected: st.Rejected,
	})
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageInvalidToken, err)
	case errors.Is(err, usecase.ErrUserNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageUserNotFound, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
