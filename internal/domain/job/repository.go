package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	List(ctx context.Context) ([]Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}
