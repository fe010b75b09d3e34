package routes

import (
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/user"
	"job-portal/internal/ws"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Jobs         *handler.JobsHandler
	Applications *handler.ApplicationHandler
	Health       *handler.HealthHandler
	Stats        *handler.StatsHandler
	Feed         *ws.Handler
}

type Registry struct {
	handlers  Handlers
	auth      *middleware.AuthMiddleware
	authLimit fiber.Handler
	metrics   http.Handler
}

// NewRegistry accepts a nil authLimit and a nil metrics handler.
func NewRegistry(h Handlers, auth *middleware.AuthMiddleware, authLimit fiber.Handler, metrics http.Handler) *Registry {
	return &Registry{handlers: h, auth: auth, authLimit: authLimit, metrics: metrics}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerOps(app)
	r.registerUsers(app)
	r.registerJobs(app)
	r.registerApplications(app)
	r.registerAdmin(app)
}

func (r *Registry) registerOps(app *fiber.App) {
	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(app)
	}
	if r.metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.metrics))
	}
}

func (r *Registry) registerUsers(app *fiber.App) {
	users := app.Group("/users")
	if r.handlers.Auth != nil {
		r.handlers.Auth.RegisterRoutes(users, r.authLimit)
	}
	if r.handlers.User != nil {
		r.handlers.User.RegisterRoutes(users, r.auth.Middleware())
	}
}

func (r *Registry) registerJobs(app *fiber.App) {
	if r.handlers.Jobs != nil {
		r.handlers.Jobs.RegisterRoutes(app.Group("/jobs"))
	}
}

func (r *Registry) registerApplications(app *fiber.App) {
	if r.handlers.Applications != nil {
		r.handlers.Applications.RegisterRoutes(app)
	}
}

func (r *Registry) registerAdmin(app *fiber.App) {
	authn := r.auth.Middleware()
	adminOnly := middleware.RequireRoles(user.RoleAdmin)

	if r.handlers.Stats != nil {
		r.handlers.Stats.RegisterRoutes(app.Group("/admin", authn, adminOnly))
	}
	if r.handlers.Feed != nil {
		app.Get("/ws/applications", authn, adminOnly, r.handlers.Feed.HandleApplicationsWS)
	}
}
