package handler

import (
	"github.com/gofiber/fiber/v3"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/pkg/response"
	ucauth "job-portal/internal/usecase/auth"
)

type AuthHandler struct {
	uc ucauth.Usecase
}

func NewAuthHandler(uc ucauth.Usecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RegisterRoutes mounts the public auth endpoints. limit throttles both and
// may be nil.
func (h *AuthHandler) RegisterRoutes(r fiber.Router, limit fiber.Handler) {
	if r == nil {
		return
	}

	if limit != nil {
		r.Post("/register", limit, h.Register)
		r.Post("/login", limit, h.Login)
		return
	}
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Register(c fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Register(c.Context(), ucauth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return response.JSON(c, fiber.StatusCreated, dto.NewAuthResponse(res.User, res.Token))
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Login(c.Context(), ucauth.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return mapDomainError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewAuthResponse(res.User, res.Token))
}
