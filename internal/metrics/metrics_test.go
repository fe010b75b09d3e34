package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_RecordsApplications(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordApplication(ResultOK)
	c.RecordApplication(ResultOK)
	c.RecordApplication(ResultUploadFailed)

	if got := testutil.ToFloat64(c.applications.WithLabelValues(ResultOK)); got != 2 {
		t.Fatalf("ok applications = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.applications.WithLabelValues(ResultUploadFailed)); got != 1 {
		t.Fatalf("upload_failed applications = %v, want 1", got)
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRegistration()
	c.RecordLogin(ResultInvalidCredential)
	c.ObserveUpload(150 * time.Millisecond)
	c.RecordHTTPRequest(http.MethodPost, http.StatusCreated)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body, _ := io.ReadAll(w.Body)
	for _, name := range []string{
		"jobportal_registrations_total",
		"jobportal_logins_total",
		"jobportal_resume_upload_seconds",
		"jobportal_http_requests_total",
	} {
		if !strings.Contains(string(body), name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestOrNop(t *testing.T) {
	r := OrNop(nil)
	r.RecordApplication(ResultOK)
	r.ObserveUpload(time.Second)
}
