package handler

import (
	"github.com/gofiber/fiber/v3"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	useruc "job-portal/internal/usecase/user"
)

type UserHandler struct {
	uc useruc.Usecase
}

func NewUserHandler(uc useruc.Usecase) *UserHandler {
	return &UserHandler{uc: uc}
}

// RegisterRoutes guards every route with authn.
func (h *UserHandler) RegisterRoutes(r fiber.Router, authn fiber.Handler) {
	if r == nil || authn == nil {
		return
	}

	r.Get("/profile", authn, h.GetProfile)
	r.Put("/update-profile", authn, h.UpdateProfile)
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	id, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	u, err := h.uc.GetProfile(c.Context(), id.UserID)
	if err != nil {
		return mapDomainError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewUserProfileResponse(u))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	id, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	u, err := h.uc.UpdateProfile(c.Context(), id.UserID, useruc.UpdateProfileInput{
		Name:      req.Name,
		About:     req.About,
		Location:  req.Location,
		Skills:    req.Skills.Ptr(),
		Education: req.Education,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewUserProfileResponse(u))
}
