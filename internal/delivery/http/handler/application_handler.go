package handler

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v3"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/pkg/response"
	appuc "job-portal/internal/usecase/application"
)

const (
	applicationDataField = "applicationData"
	resumeField          = "resume"
)

type ApplicationHandler struct {
	uc appuc.Usecase
}

func NewApplicationHandler(uc appuc.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/apply", h.Apply)
	r.Get("/applications/user/:email", h.ListByApplicant)
	r.Get("/applications", h.ListAll)
}

// Apply expects a multipart form: the applicationData field holds the
// submission as a JSON string and the resume field holds the file.
func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	var resume *appuc.ResumeFile
	fh, err := c.FormFile(resumeField)
	if err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return badRequest(err)
		}
		defer f.Close()
		resume = &appuc.ResumeFile{FileName: fh.Filename, Body: f}
	}

	var req dto.ApplyRequest
	if raw := strings.TrimSpace(c.FormValue(applicationDataField)); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			return badRequest(err)
		}
	}

	a, err := h.uc.Submit(c.Context(), req.Submission(), resume)
	if err != nil {
		return mapDomainError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.ApplyResponse{
		Message:     "Application submitted successfully",
		Application: a,
	})
}

func (h *ApplicationHandler) ListByApplicant(c fiber.Ctx) error {
	email, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return badRequest(err)
	}

	apps, err := h.uc.ListByApplicant(c.Context(), email)
	if err != nil {
		return mapDomainError(err)
	}
	return response.JSON(c, fiber.StatusOK, apps)
}

func (h *ApplicationHandler) ListAll(c fiber.Ctx) error {
	apps, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.JSON(c, fiber.StatusOK, apps)
}
