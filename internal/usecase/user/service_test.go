package user

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"job-portal/internal/domain"
	"job-portal/internal/domain/user"
)

type mockUserRepo struct {
	users   map[uuid.UUID]user.User
	updates int
}

func (m *mockUserRepo) Create(context.Context, user.User) error { return nil }
func (m *mockUserRepo) GetByEmail(context.Context, string) (user.User, error) {
	return user.User{}, user.ErrNotFound
}
func (m *mockUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, p user.ProfilePatch) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	m.updates++
	u = p.Apply(u)
	m.users[id] = u
	return u, nil
}

func seeded() (*mockUserRepo, uuid.UUID) {
	id := uuid.New()
	return &mockUserRepo{users: map[uuid.UUID]user.User{
		id: {ID: id, Name: "Alice", Email: "alice@x.com", PasswordHash: "$2a$hash", Role: "applicant", About: "hi"},
	}}, id
}

func TestGetProfile_OmitsHash(t *testing.T) {
	repo, id := seeded()
	u, err := NewService(repo).GetProfile(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if u.Name != "Alice" {
		t.Fatalf("unexpected profile: %+v", u)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	repo, _ := seeded()
	_, err := NewService(repo).GetProfile(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProfile_PartialMerge(t *testing.T) {
	repo, id := seeded()
	loc := "  Pune "
	skills := user.SplitSkills("Go, Rust , C++")

	u, err := NewService(repo).UpdateProfile(context.Background(), id, UpdateProfileInput{Location: &loc, Skills: &skills})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Location != "Pune" || u.About != "hi" || u.Name != "Alice" {
		t.Fatalf("unexpected merge result: %+v", u)
	}
	want := []string{"Go", "Rust", "C++"}
	if len(u.Skills) != 3 || u.Skills[0] != want[0] || u.Skills[1] != want[1] || u.Skills[2] != want[2] {
		t.Fatalf("skills = %v, want %v", u.Skills, want)
	}
}

func TestUpdateProfile_EmptyPatchReturnsProfile(t *testing.T) {
	repo, id := seeded()
	u, err := NewService(repo).UpdateProfile(context.Background(), id, UpdateProfileInput{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.updates != 0 || u.Name != "Alice" {
		t.Fatalf("expected no write and current profile, got updates=%d %+v", repo.updates, u)
	}
}

func TestUpdateProfile_BlankName(t *testing.T) {
	repo, id := seeded()
	blank := "   "
	_, err := NewService(repo).UpdateProfile(context.Background(), id, UpdateProfileInput{Name: &blank})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
