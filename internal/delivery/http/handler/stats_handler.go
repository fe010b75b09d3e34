package handler

import (
	"github.com/gofiber/fiber/v3"

	"job-portal/internal/pkg/response"
	statsuc "job-portal/internal/usecase/stats"
)

type StatsHandler struct {
	uc statsuc.Usecase
}

func NewStatsHandler(uc statsuc.Usecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// RegisterRoutes expects r to be gated to admins.
func (h *StatsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/stats", h.GetStats)
}

func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	st, err := h.uc.Status(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
