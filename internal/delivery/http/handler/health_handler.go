package handler

import (
	"github.com/gofiber/fiber/v3"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	statsuc "job-portal/internal/usecase/stats"
)

type HealthHandler struct {
	uc statsuc.Usecase
}

func NewHealthHandler(uc statsuc.Usecase) *HealthHandler {
	return &HealthHandler{uc: uc}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	if err := h.uc.Healthy(c.Context()); err != nil {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "database unavailable", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"status": "up"})
}
