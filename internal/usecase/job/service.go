package job

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"job-portal/internal/domain"
	"job-portal/internal/domain/job"
	"job-portal/internal/pkg/logger"
)

const (
	listCacheKey  = "jobs:list"
	itemKeyPrefix = "jobs:item:"
	cachePattern  = "jobs:*"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type CreateInput struct {
	Company     string
	Title       string
	Role        string
	Location    string
	Experience  string
	Skills      []string
	Salary      string
	Description string
	Image       string
	PostingDate string
}

type Usecase interface {
	Create(ctx context.Context, in CreateInput) (job.Job, error)
	List(ctx context.Context) ([]job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	Update(ctx context.Context, id uuid.UUID, patch job.Patch) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	jobs   job.Repository
	cache  Cache
	logger *zap.Logger
	now    func() time.Time

	// generation is bumped by every write so a read that raced a write
	// does not leave its stale result in the cache.
	generation atomic.Uint64
}

// NewService accepts a nil cache.
func NewService(jobs job.Repository, cache Cache, l *zap.Logger) *Service {
	return &Service{jobs: jobs, cache: cache, logger: logger.OrNop(l), now: time.Now}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (job.Job, error) {
	now := s.now().UTC()
	j := job.Job{
		ID:          uuid.New(),
		Company:     strings.TrimSpace(in.Company),
		Title:       strings.TrimSpace(in.Title),
		Role:        strings.TrimSpace(in.Role),
		Location:    strings.TrimSpace(in.Location),
		Experience:  strings.TrimSpace(in.Experience),
		Skills:      in.Skills,
		Salary:      strings.TrimSpace(in.Salary),
		Description: strings.TrimSpace(in.Description),
		Image:       strings.TrimSpace(in.Image),
		PostingDate: strings.TrimSpace(in.PostingDate),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if j.Image == "" {
		j.Image = job.DefaultImage
	}

	if err := job.Validate(j); err != nil {
		return job.Job{}, err
	}
	if err := s.jobs.Create(ctx, j); err != nil {
		return job.Job{}, fmt.Errorf("%w: %v", domain.ErrUnknown, err)
	}

	s.invalidate(ctx)
	return j, nil
}

func (s *Service) List(ctx context.Context) ([]job.Job, error) {
	var cached []job.Job
	if s.cacheGet(ctx, listCacheKey, &cached) {
		return cached, nil
	}

	gen := s.generation.Load()
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknown, err)
	}

	s.cacheSet(ctx, listCacheKey, jobs, gen)
	return jobs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	key := itemKeyPrefix + id.String()
	var cached job.Job
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	gen := s.generation.Load()
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, mapRepoError(err)
	}

	s.cacheSet(ctx, key, j, gen)
	return j, nil
}

// Update re-validates the merged job with the creation rules.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch job.Patch) (job.Job, error) {
	current, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, mapRepoError(err)
	}
	if patch.Empty() {
		return current, nil
	}

	updated := patch.Apply(current)
	if strings.TrimSpace(updated.Image) == "" {
		updated.Image = job.DefaultImage
	}
	updated.UpdatedAt = s.now().UTC()

	if err := job.Validate(updated); err != nil {
		return job.Job{}, err
	}
	if err := s.jobs.Update(ctx, updated); err != nil {
		return job.Job{}, mapRepoError(err)
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) cacheGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	hit, err := s.cache.GetJSON(ctx, key, out)
	if err != nil {
		s.logger.Debug("job cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return hit
}

// cacheSet stores v only while no write happened since gen was read. A
// write that lands between the check and the store is caught by the second
// check, or by the write's own invalidation when it comes later.
func (s *Service) cacheSet(ctx context.Context, key string, v any, gen uint64) {
	if s.cache == nil || s.generation.Load() != gen {
		return
	}
	if err := s.cache.SetJSON(ctx, key, v, 0); err != nil {
		s.logger.Debug("job cache write failed", zap.String("key", key), zap.Error(err))
		return
	}
	if s.generation.Load() != gen {
		if err := s.cache.DeleteByPattern(ctx, key); err != nil {
			s.logger.Warn("job cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func (s *Service) invalidate(ctx context.Context) {
	s.generation.Add(1)
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, cachePattern); err != nil {
		s.logger.Warn("job cache invalidation failed", zap.Error(err))
	}
}

func mapRepoError(err error) error {
	if errors.Is(err, job.ErrNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrUnknown, err)
}
