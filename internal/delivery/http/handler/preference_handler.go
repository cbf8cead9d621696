package handler

import (
	"fitpartner/internal/delivery/http/dto"
	"fitpartner/internal/delivery/http/middleware"
	"fitpartner/internal/pkg/response"
	"fitpartner/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PreferenceHandler struct {
	uc usecase.PreferenceUsecase
}

func NewPreferenceHandler(uc usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

func (h *PreferenceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListCatalog)
}

func (h *PreferenceHandler) ListCatalog(c fiber.Ctx) error {
	items, err := h.uc.ListCatalog(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewWorkoutPreferenceList(items))
}
