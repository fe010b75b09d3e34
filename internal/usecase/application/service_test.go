package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-portal/internal/domain"
	"job-portal/internal/domain/application"
)

type memApps struct {
	mu      sync.Mutex
	items   []application.Application
	failErr error
}

func (m *memApps) Create(_ context.Context, a application.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
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
	calls   int
	keys    []string
	classes []application.ResourceClass
	bodies  []string
	err     error
}

func (f *fakeStore) Upload(_ context.Context, body io.Reader, key string, class application.ResourceClass) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	b, _ := io.ReadAll(body)
	f.keys = append(f.keys, key)
	f.classes = append(f.classes, class)
	f.bodies = append(f.bodies, string(b))
	return "https://cdn.example.com/resumes/" + key, nil
}

type recordingNotifier struct {
	got []application.Application
}

func (r *recordingNotifier) ApplicationSubmitted(a application.Application) {
	r.got = append(r.got, a)
}

type countingRecorder struct {
	apps    map[string]int
	uploads int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{apps: map[string]int{}}
}

func (c *countingRecorder) RecordRegistration()             {}
func (c *countingRecorder) RecordLogin(string)              {}
func (c *countingRecorder) RecordApplication(result string) { c.apps[result]++ }
func (c *countingRecorder) ObserveUpload(time.Duration)     { c.uploads++ }
func (c *countingRecorder) RecordHTTPRequest(string, int)   {}

func f64(v float64) *float64 { return &v }

func submission() application.Submission {
	return application.Submission{
		JobID:            uuid.NewString(),
		JobTitle:         "Backend Engineer",
		Name:             "Alice  Smith",
		Email:            "Alice@X.com",
		Phone:            "9876543210",
		Skills:           []string{"Go"},
		TenthMark:        f64(90),
		TwelfthMark:      f64(85),
		Qualification:    "B.Tech",
		DegreePercentage: f64(80),
	}
}

func resume() *ResumeFile {
	return &ResumeFile{FileName: "cv.pdf", Body: strings.NewReader("%PDF-1.4")}
}

type fixture struct {
	apps     *memApps
	store    *fakeStore
	notifier *recordingNotifier
	rec      *countingRecorder
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		apps:     &memApps{},
		store:    &fakeStore{},
		notifier: &recordingNotifier{},
		rec:      newCountingRecorder(),
	}
	f.svc = NewService(f.apps, f.store, f.notifier, f.rec, nil)
	return f
}

func TestSubmit_Success(t *testing.T) {
	f := newFixture()

	a, err := f.svc.Submit(context.Background(), submission(), resume())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, "alice@x.com", a.Email)
	assert.Equal(t, "cv.pdf", a.Resume.FileName)
	assert.Equal(t, "https://cdn.example.com/resumes/Alice_Smith_resume", a.Resume.FileURL)
	assert.False(t, a.AppliedAt.IsZero())

	require.Equal(t, 1, f.store.calls)
	assert.Equal(t, "Alice_Smith_resume", f.store.keys[0])
	assert.Equal(t, application.ResourceRaw, f.store.classes[0])
	assert.Equal(t, "%PDF-1.4", f.store.bodies[0])

	require.Len(t, f.apps.items, 1)
	assert.Equal(t, a.Resume.FileURL, f.apps.items[0].Resume.FileURL)
	require.Len(t, f.notifier.got, 1)
	assert.Equal(t, a.ID, f.notifier.got[0].ID)
	assert.Equal(t, 1, f.rec.apps["ok"])
	assert.Equal(t, 1, f.rec.uploads)
}

func TestSubmit_MissingResumeNeverUploads(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Submit(context.Background(), submission(), nil)
	assert.ErrorIs(t, err, domain.ErrMissingResume)

	sub := submission()
	sub.Email = "not-an-email"
	_, err = f.svc.Submit(context.Background(), sub, nil)
	assert.ErrorIs(t, err, domain.ErrMissingResume, "missing resume is reported before field validation")

	assert.Zero(t, f.store.calls)
	assert.Empty(t, f.apps.items)
	assert.Equal(t, 2, f.rec.apps["missing_resume"])
}

func TestSubmit_ValidationFailsBeforeUpload(t *testing.T) {
	f := newFixture()
	sub := submission()
	sub.Phone = "123"
	sub.JobID = "job-1"

	_, err := f.svc.Submit(context.Background(), sub, resume())
	require.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	fields := map[string]string{}
	for _, fe := range verr.Fields {
		fields[fe.Field] = fe.Message
	}
	assert.Equal(t, "Please enter a valid 10-digit phone number", fields["phone"])
	assert.Contains(t, fields, "jobId")
	assert.Zero(t, f.store.calls)
}

func TestSubmit_EmptyFileName(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Submit(context.Background(), submission(), &ResumeFile{Body: strings.NewReader("x")})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, f.store.calls)
}

func TestSubmit_UploadFailureStoresNothing(t *testing.T) {
	f := newFixture()
	f.store.err = errors.New("storage down")

	_, err := f.svc.Submit(context.Background(), submission(), resume())
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Empty(t, f.apps.items)
	assert.Empty(t, f.notifier.got)
	assert.Equal(t, 1, f.rec.apps["upload_failed"])
}

func TestSubmit_PersistenceFailure(t *testing.T) {
	f := newFixture()
	f.apps.failErr = errors.New("connection reset")

	_, err := f.svc.Submit(context.Background(), submission(), resume())
	assert.ErrorIs(t, err, domain.ErrPersistenceFailed)
	assert.Equal(t, 1, f.store.calls)
	assert.Empty(t, f.notifier.got)
	assert.Equal(t, 1, f.rec.apps["persistence_failed"])
}

func TestListByApplicant_NewestFirst(t *testing.T) {
	f := newFixture()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	f.apps.items = []application.Application{
		{ID: uuid.New(), Email: "alice@x.com", AppliedAt: base},
		{ID: uuid.New(), Email: "bob@x.com", AppliedAt: base.Add(time.Hour)},
		{ID: uuid.New(), Email: "alice@x.com", AppliedAt: base.Add(2 * time.Hour)},
	}

	got, err := f.svc.ListByApplicant(context.Background(), " Alice@X.com ")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].AppliedAt.After(got[1].AppliedAt))

	none, err := f.svc.ListByApplicant(context.Background(), "carol@x.com")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = f.svc.ListByApplicant(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListAll(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.svc.Submit(ctx, submission(), resume())
		require.NoError(t, err)
	}

	all, err := f.svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].AppliedAt.After(all[i-1].AppliedAt))
	}
}
