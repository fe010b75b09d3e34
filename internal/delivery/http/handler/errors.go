package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain"
	"job-portal/internal/pkg/response"
)

// mapDomainError translates use case failures into HTTP errors.
func mapDomainError(err error) error {
	if err == nil {
		return nil
	}

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", verr.Fields, err)
	case errors.Is(err, domain.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", nil, err)
	case errors.Is(err, domain.ErrDuplicateCredential):
		return middleware.NewAppError(fiber.StatusBadRequest, "User already exists", nil, err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, domain.ErrUnauthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, domain.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, domain.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, domain.ErrMissingResume):
		return middleware.NewAppError(fiber.StatusBadRequest, "Resume file is required", nil, err)
	case errors.Is(err, domain.ErrUploadFailed):
		return middleware.NewAppError(fiber.StatusInternalServerError, "Resume upload failed", nil, err)
	case errors.Is(err, domain.ErrPersistenceFailed):
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to save application", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
}
