package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"job-portal/internal/config"
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"
	"job-portal/internal/metrics"
	"job-portal/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the HTTP surface over an already constructed container.
func New(c *Container) *App {
	cfg := c.Config

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: cfg.App.BodyLimitMB * 1024 * 1024,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, l *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, l)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(c.Logger, c.Metrics)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware(c.Logger)
	app.Use(errMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	h := routes.Handlers{
		Auth:         handler.NewAuthHandler(c.Auth),
		User:         handler.NewUserHandler(c.Users),
		Jobs:         handler.NewJobsHandler(c.Jobs),
		Applications: handler.NewApplicationHandler(c.Applications),
		Health:       handler.NewHealthHandler(c.Stats),
		Stats:        handler.NewStatsHandler(c.Stats),
		Feed:         ws.NewHandler(c.Hub, c.Logger),
	}

	limiter := middleware.NewRateLimiter(c.Config.Security.AuthRatePerMin, c.Config.Security.AuthRateBurst)

	routes.NewRegistry(
		h,
		middleware.NewAuthMiddleware(c.Tokens),
		limiter.Middleware(),
		metrics.Handler(c.Registry),
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
