package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultOK                = "ok"
	ResultInvalid           = "invalid"
	ResultMissingResume     = "missing_resume"
	ResultUploadFailed      = "upload_failed"
	ResultPersistenceFailed = "persistence_failed"
	ResultInvalidCredential = "invalid_credentials"
	ResultError             = "error"
)

// Recorder is what use cases and middleware report into.
type Recorder interface {
	RecordRegistration()
	RecordLogin(result string)
	RecordApplication(result string)
	ObserveUpload(d time.Duration)
	RecordHTTPRequest(method string, status int)
}

type Collector struct {
	registrations prometheus.Counter
	logins        *prometheus.CounterVec
	applications  *prometheus.CounterVec
	uploadLatency prometheus.Histogram
	httpRequests  *prometheus.CounterVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "jobportal_registrations_total",
			Help: "Successful user registrations.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		applications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_applications_total",
			Help: "Application submissions by result.",
		}, []string{"result"}),
		uploadLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "jobportal_resume_upload_seconds",
			Help:    "Resume upload latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobportal_http_requests_total",
			Help: "HTTP responses by method and status code.",
		}, []string{"method", "status"}),
	}

	reg.MustRegister(
		c.registrations,
		c.logins,
		c.applications,
		c.uploadLatency,
		c.httpRequests,
	)

	return c
}

func (c *Collector) RecordRegistration() {
	c.registrations.Inc()
}

func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordApplication(result string) {
	c.applications.WithLabelValues(result).Inc()
}

func (c *Collector) ObserveUpload(d time.Duration) {
	c.uploadLatency.Observe(d.Seconds())
}

func (c *Collector) RecordHTTPRequest(method string, status int) {
	c.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

type nop struct{}

func (nop) RecordRegistration()           {}
func (nop) RecordLogin(string)            {}
func (nop) RecordApplication(string)      {}
func (nop) ObserveUpload(time.Duration)   {}
func (nop) RecordHTTPRequest(string, int) {}

func Nop() Recorder { return nop{} }

func OrNop(r Recorder) Recorder {
	if r == nil {
		return nop{}
	}
	return r
}
