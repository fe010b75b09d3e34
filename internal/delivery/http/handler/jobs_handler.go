package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"job-portal/internal/delivery/http/dto"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/pkg/response"
	jobuc "job-portal/internal/usecase/job"
)

type JobsHandler struct {
	uc jobuc.Usecase
}

func NewJobsHandler(uc jobuc.Usecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	j, err := h.uc.Create(c.Context(), jobuc.CreateInput{
		Company:     req.Company,
		Title:       req.Title,
		Role:        req.Role,
		Location:    req.Location,
		Experience:  req.Experience,
		Skills:      []string(req.Skills),
		Salary:      req.Salary,
		Description: req.Description,
		Image:       req.Image,
		PostingDate: req.PostingDate,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return response.JSON(c, fiber.StatusCreated, j)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.JSON(c, fiber.StatusOK, jobs)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return response.JSON(c, fiber.StatusOK, j)
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	j, err := h.uc.Update(c.Context(), id, req.Patch())
	if err != nil {
		return mapDomainError(err)
	}
	return response.JSON(c, fiber.StatusOK, j)
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapDomainError(err)
	}
	return response.JSON(c, fiber.StatusOK, dto.DeleteJobResponse{
		Message: "Job deleted successfully",
		ID:      id.String(),
		Deleted: true,
	})
}

// jobID treats an unparseable id as an unknown job.
func jobID(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	}
	return id, nil
}
