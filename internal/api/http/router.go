package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/civichub/mts/internal/api/http/handlers"
	"github.com/civichub/mts/internal/auth"
	"github.com/civichub/mts/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Departments    *handlers.DepartmentsHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Department mutation and user
// administration are gated on the ADMIN role; the services themselves stay
// authorization-free and trust this boundary.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/auth/register", cfg.Auth.Register)
	api.Post("/auth/login", cfg.Auth.Login)

	adminOnly := auth.RequireRole(domain.RoleAdmin)

	tickets := api.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Put("/:id/status", cfg.Tickets.UpdateStatus)

	departments := api.Group("/departments", cfg.AuthMiddleware.Handle)
	departments.Get("/", cfg.Departments.List)
	departments.Post("/", adminOnly, cfg.Departments.Create)
	departments.Put("/:id", adminOnly, cfg.Departments.Update)
	departments.Delete("/:id", adminOnly, cfg.Departments.Delete)

	users := api.Group("/users", cfg.AuthMiddleware.Handle, adminOnly)
	users.Get("/", cfg.Users.List)
	users.Put("/:id/role", cfg.Users.UpdateRole)
	users.Put("/:id/department", cfg.Users.UpdateDepartment)
}
