package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"job-portal/internal/domain"
	"job-portal/internal/domain/application"
	"job-portal/internal/metrics"
	"job-portal/internal/pkg/logger"
)

// Notifier receives stored applications. Implementations must not block.
type Notifier interface {
	ApplicationSubmitted(a application.Application)
}

type ResumeFile struct {
	FileName string
	Body     io.Reader
}

type Usecase interface {
	Submit(ctx context.Context, sub application.Submission, resume *ResumeFile) (application.Application, error)
	ListByApplicant(ctx context.Context, email string) ([]application.Application, error)
	ListAll(ctx context.Context) ([]application.Application, error)
}

type Service struct {
	apps     application.Repository
	store    application.ObjectStore
	notifier Notifier
	metrics  metrics.Recorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	apps application.Repository,
	store application.ObjectStore,
	notifier Notifier,
	rec metrics.Recorder,
	l *zap.Logger,
) *Service {
	return &Service{
		apps:     apps,
		store:    store,
		notifier: notifier,
		metrics:  metrics.OrNop(rec),
		logger:   logger.OrNop(l),
		now:      time.Now,
	}
}

// Submit uploads the resume and then stores the application. Nothing is
// stored when the upload fails. A stored application always references a
// resume URL returned by the object store.
func (s *Service) Submit(ctx context.Context, sub application.Submission, resume *ResumeFile) (application.Application, error) {
	if resume == nil || resume.Body == nil {
		s.metrics.RecordApplication(metrics.ResultMissingResume)
		return application.Application{}, domain.ErrMissingResume
	}

	sub = sub.Normalize()
	verr := &domain.ValidationError{}
	if err := sub.Validate(); err != nil && !errors.As(err, &verr) {
		s.metrics.RecordApplication(metrics.ResultInvalid)
		return application.Application{}, err
	}
	fileName := strings.TrimSpace(resume.FileName)
	if fileName == "" {
		verr.Add("resume", "file name is required")
	}
	if err := verr.Err(); err != nil {
		s.metrics.RecordApplication(metrics.ResultInvalid)
		return application.Application{}, err
	}

	key := application.ResumeKey(sub.Name)
	started := s.now()
	url, err := s.store.Upload(ctx, resume.Body, key, application.ResourceRaw)
	s.metrics.ObserveUpload(s.now().Sub(started))
	if err != nil {
		s.metrics.RecordApplication(metrics.ResultUploadFailed)
		s.logger.Error("resume upload failed",
			zap.String("key", key),
			zap.String("email", sub.Email),
			zap.Error(err),
		)
		return application.Application{}, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	a := sub.Build(uuid.New(), application.Resume{FileName: fileName, FileURL: url}, s.now())
	if err := s.apps.Create(ctx, a); err != nil {
		s.metrics.RecordApplication(metrics.ResultPersistenceFailed)
		s.logger.Error("application persistence failed, uploaded resume is orphaned",
			zap.String("application_id", a.ID.String()),
			zap.String("resume_url", url),
			zap.Error(err),
		)
		return application.Application{}, fmt.Errorf("%w: %v", domain.ErrPersistenceFailed, err)
	}

	s.metrics.RecordApplication(metrics.ResultOK)
	if s.notifier != nil {
		s.notifier.ApplicationSubmitted(a)
	}
	return a, nil
}

func (s *Service) ListByApplicant(ctx context.Context, email string) ([]application.Application, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		v := &domain.ValidationError{}
		v.Add("email", "is required")
		return nil, v
	}

	apps, err := s.apps.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknown, err)
	}
	return newestFirst(apps), nil
}

func (s *Service) ListAll(ctx context.Context) ([]application.Application, error) {
	apps, err := s.apps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnknown, err)
	}
	return newestFirst(apps), nil
}

func newestFirst(apps []application.Application) []application.Application {
	if apps == nil {
		return []application.Application{}
	}
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].AppliedAt.After(apps[j].AppliedAt)
	})
	return apps
}
