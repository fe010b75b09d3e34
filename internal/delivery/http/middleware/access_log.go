package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"job-portal/internal/metrics"
	"job-portal/internal/pkg/logger"
)

type AccessLogMiddleware struct {
	logger  *zap.Logger
	metrics metrics.Recorder
}

func NewAccessLogMiddleware(l *zap.Logger, rec metrics.Recorder) *AccessLogMiddleware {
	return &AccessLogMiddleware{logger: logger.OrNop(l), metrics: metrics.OrNop(rec)}
}

// Middleware must be installed outside the error middleware so the status it
// records is the one written to the client.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()
		method := c.Method()

		m.metrics.RecordHTTPRequest(method, status)
		m.logger.Info("http access",
			zap.String("rid", rid),
			zap.String("ip", c.IP()),
			zap.String("host", c.Hostname()),
			zap.String("method", method),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", status),
			zap.Duration("latency", dur),
			zap.Int("req_bytes", c.Request().Header.ContentLength()),
			zap.Int("resp_bytes", len(c.Response().Body())),
			zap.String("ua", c.Get("User-Agent")),
		)

		return err
	}
}
