package stats

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"job-portal/internal/domain"
	"job-portal/internal/pkg/logger"
	"job-portal/internal/repository"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Subscribers reports how many live feed clients are connected.
type Subscribers interface {
	ClientCount() int
}

type Usecase interface {
	Status(ctx context.Context) (domain.PortalStatus, error)
	Healthy(ctx context.Context) error
}

type Service struct {
	repo   repository.StatsRepository
	db     Pinger
	cache  Pinger
	subs   Subscribers
	logger *zap.Logger
	now    func() time.Time
}

// NewService accepts nil cache and subs.
func NewService(repo repository.StatsRepository, db Pinger, cache Pinger, subs Subscribers, l *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		db:     db,
		cache:  cache,
		subs:   subs,
		logger: logger.OrNop(l),
		now:    time.Now,
	}
}

// Status never fails on a degraded dependency; it reports it unhealthy
// and leaves the counts it could not read at zero.
func (s *Service) Status(ctx context.Context) (domain.PortalStatus, error) {
	now := s.now().UTC()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		counts   repository.PortalCounts
		errCount error
		errDB    error
		errCache error
	)

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		counts, errCount = s.repo.Counts(ctx, since)
		if errCount != nil {
			s.logger.Warn("portal status counts failed", zap.Error(errCount))
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		errDB = s.db.Ping(ctx)
		if errDB != nil {
			s.logger.Warn("portal status database ping failed", zap.Error(errDB))
		}
	}()

	if s.cache != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCache = s.cache.Ping(ctx)
		}()
	}

	wg.Wait()

	out := domain.PortalStatus{
		TotalUsers:        counts.Users,
		TotalJobs:         counts.Jobs,
		TotalApplications: counts.Applications,
		ApplicationsToday: counts.ApplicationsSince,
		DatabaseHealthy:   errDB == nil,
		RedisHealthy:      s.cache != nil && errCache == nil,
		ServerTime:        now,
	}
	if s.subs != nil {
		out.LiveSubscribers = s.subs.ClientCount()
	}
	return out, nil
}

func (s *Service) Healthy(ctx context.Context) error {
	return s.db.Ping(ctx)
}
