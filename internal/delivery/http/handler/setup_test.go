package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/pkg/password"
	"job-portal/internal/repository"
	appuc "job-portal/internal/usecase/application"
	ucauth "job-portal/internal/usecase/auth"
	jobuc "job-portal/internal/usecase/job"
	statsuc "job-portal/internal/usecase/stats"
	useruc "job-portal/internal/usecase/user"
)

type memUsers struct {
	mu   sync.Mutex
	byID map[uuid.UUID]user.User
}

func (m *memUsers) Create(_ context.Context, u user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *memUsers) UpdateProfile(_ context.Context, id uuid.UUID, p user.ProfilePatch) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u = p.Apply(u)
	m.byID[id] = u
	return u, nil
}

type memJobs struct {
	mu    sync.Mutex
	items map[uuid.UUID]job.Job
}

func (m *memJobs) Create(_ context.Context, j job.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[j.ID] = j
	return nil
}

func (m *memJobs) List(context.Context) ([]job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]job.Job, 0, len(m.items))
	for _, j := range m.items {
		out = append(out, j)
	}
	return out, nil
}

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.items[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *memJobs) Update(_ context.Context, j job.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[j.ID]; !ok {
		return job.ErrNotFound
	}
	m.items[j.ID] = j
	return nil
}

func (m *memJobs) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return job.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memApps struct {
	mu        sync.Mutex
	items     []application.Application
	createErr error
}

func (m *memApps) Create(_ context.Context, a application.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.items = append(m.items, a)
	return nil
}

func (m *memApps) ListByEmail(_ context.Context, email string) ([]application.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []application.Application
	for _, a := range m.items {
		if a.Email == email {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memApps) ListAll(context.Context) ([]application.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]application.Application(nil), m.items...), nil
}

type fakeStore struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeStore) Upload(_ context.Context, body io.Reader, key string, _ application.ResourceClass) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	return "https://files.example.com/resumes/" + key, nil
}

type fakeCounts struct{}

func (fakeCounts) Counts(context.Context, time.Time) (repository.PortalCounts, error) {
	return repository.PortalCounts{Users: 1, Jobs: 2, Applications: 3}, nil
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type testEnv struct {
	app    *fiber.App
	users  *memUsers
	jobs   *memJobs
	apps   *memApps
	store  *fakeStore
	tokens jwt.Service
	db     *pinger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:  &memUsers{byID: map[uuid.UUID]user.User{}},
		jobs:   &memJobs{items: map[uuid.UUID]job.Job{}},
		apps:   &memApps{},
		store:  &fakeStore{},
		tokens: jwt.NewHMACService("test-secret", "job-portal-test", time.Hour),
		db:     &pinger{},
	}

	hasher := password.NewBcryptHasher(4)
	stats := statsuc.NewService(fakeCounts{}, env.db, nil, nil, nil)
	auth, err := ucauth.NewService(env.users, hasher, env.tokens, nil)
	require.NoError(t, err)

	h := routes.Handlers{
		Auth:         handler.NewAuthHandler(auth),
		User:         handler.NewUserHandler(useruc.NewService(env.users)),
		Jobs:         handler.NewJobsHandler(jobuc.NewService(env.jobs, nil, nil)),
		Applications: handler.NewApplicationHandler(appuc.NewService(env.apps, env.store, nil, nil, nil)),
		Health:       handler.NewHealthHandler(stats),
		Stats:        handler.NewStatsHandler(stats),
	}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	routes.NewRegistry(h, middleware.NewAuthMiddleware(env.tokens), nil, nil).Register(app)
	env.app = app
	return env
}

// envelope decodes error bodies and the status routes. Raw always holds the
// whole body, which is what the public routes answer with on success.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`

	Raw json.RawMessage `json:"-"`
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) (int, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return e.send(t, req)
}

func (e *testEnv) send(t *testing.T, req *http.Request) (int, envelope) {
	t.Helper()

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, json.Valid(raw), string(raw))
	env := envelope{Raw: raw}
	if bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func multipartApply(t *testing.T, data any, fileName string, file []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if data != nil {
		b, err := json.Marshal(data)
		require.NoError(t, err)
		require.NoError(t, w.WriteField("applicationData", string(b)))
	}
	if file != nil {
		fw, err := w.CreateFormFile("resume", fileName)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/apply", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

var errBoom = errors.New("boom")
