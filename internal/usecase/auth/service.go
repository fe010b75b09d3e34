package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/domain"
	"job-portal/internal/domain/user"
	"job-portal/internal/metrics"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/pkg/password"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Email    string
	Password string
}

// Result never carries the password hash.
type Result struct {
	User  user.User
	Token string
}

type Usecase interface {
	Register(ctx context.Context, in RegisterInput) (Result, error)
	Login(ctx context.Context, in LoginInput) (Result, error)
}

type Service struct {
	users   user.Repository
	hasher  password.Hasher
	tokens  jwt.Service
	metrics metrics.Recorder
	now     func() time.Time

	// dummyHash is compared against when the email is unknown.
	dummyHash string
}

func NewService(users user.Repository, hasher password.Hasher, tokens jwt.Service, rec metrics.Recorder) (*Service, error) {
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("auth: prepare dummy digest: %w", err)
	}

	return &Service{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		metrics:   metrics.OrNop(rec),
		now:       time.Now,
		dummyHash: dummy,
	}, nil
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Result, error) {
	name := strings.TrimSpace(in.Name)
	email := user.NormalizeEmail(in.Email)
	role := strings.ToLower(strings.TrimSpace(in.Role))
	if role == "" {
		role = user.RoleApplicant
	}

	if err := user.ValidateSignup(name, email, in.Password, role); err != nil {
		return Result{}, err
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return Result{}, fmt.Errorf("%w: lookup email: %v", domain.ErrUnknown, err)
	}
	if exists {
		return Result{}, domain.ErrDuplicateCredential
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Result{}, fmt.Errorf("%w: hash password: %v", domain.ErrUnknown, err)
	}

	now := s.now().UTC()
	u := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Skills:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return Result{}, domain.ErrDuplicateCredential
		}
		return Result{}, fmt.Errorf("%w: create user: %v", domain.ErrUnknown, err)
	}

	token, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return Result{}, fmt.Errorf("%w: issue token: %v", domain.ErrUnknown, err)
	}

	s.metrics.RecordRegistration()
	return Result{User: sanitizeUser(u), Token: token}, nil
}

// Login answers ErrInvalidCredentials for an unknown email and for a wrong
// password alike, and spends one bcrypt comparison on both paths.
func (s *Service) Login(ctx context.Context, in LoginInput) (Result, error) {
	email := user.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		s.metrics.RecordLogin(metrics.ResultInvalidCredential)
		return Result{}, domain.ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			s.hasher.Verify(in.Password, s.dummyHash)
			s.metrics.RecordLogin(metrics.ResultInvalidCredential)
			return Result{}, domain.ErrInvalidCredentials
		}
		s.metrics.RecordLogin(metrics.ResultError)
		return Result{}, fmt.Errorf("%w: lookup user: %v", domain.ErrUnknown, err)
	}

	if !s.hasher.Verify(in.Password, u.PasswordHash) {
		s.metrics.RecordLogin(metrics.ResultInvalidCredential)
		return Result{}, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		s.metrics.RecordLogin(metrics.ResultError)
		return Result{}, fmt.Errorf("%w: issue token: %v", domain.ErrUnknown, err)
	}

	s.metrics.RecordLogin(metrics.ResultOK)
	return Result{User: sanitizeUser(u), Token: token}, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
