package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Categories     *handlers.CategoriesHandler
	Clients        *handlers.ClientsHandler
	Technicians    *handlers.TechniciansHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Auth.Logout)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Post("/", auth.RequirePermission(auth.OpTicketCreate), cfg.Tickets.Create)
	tickets.Get("/", auth.RequirePermission(auth.OpTicketList), cfg.Tickets.List)
	tickets.Get("/client/:id", auth.RequirePermission(auth.OpTicketListByClient), cfg.Tickets.ListByClient)
	tickets.Get("/technician/:id", auth.RequirePermission(auth.OpTicketListByTechnician), cfg.Tickets.ListByTechnician)
	tickets.Get("/:id", auth.RequirePermission(auth.OpTicketGet), cfg.Tickets.Get)
	tickets.Patch("/:id", auth.RequirePermission(auth.OpTicketUpdate), cfg.Tickets.Update)
	tickets.Patch("/:id/status", auth.RequirePermission(auth.OpTicketUpdateStatus), cfg.Tickets.UpdateStatus)
	tickets.Delete("/:id", auth.RequirePermission(auth.OpTicketDelete), cfg.Tickets.Delete)

	categories := app.Group("/categories", cfg.AuthMiddleware.Handle)
	categories.Post("/", auth.RequirePermission(auth.OpCategoryCreate), cfg.Categories.Create)
	categories.Get("/", auth.RequirePermission(auth.OpCategoryRead), cfg.Categories.List)
	categories.Get("/:id", auth.RequirePermission(auth.OpCategoryRead), cfg.Categories.Get)
	categories.Patch("/:id", auth.RequirePermission(auth.OpCategoryUpdate), cfg.Categories.Update)
	categories.Delete("/:id", auth.RequirePermission(auth.OpCategoryDelete), cfg.Categories.Delete)

	clients := app.Group("/clients", cfg.AuthMiddleware.Handle, auth.RequirePermission(auth.OpClientManage))
	clients.Post("/", cfg.Clients.Create)
	clients.Get("/", cfg.Clients.List)
	clients.Get("/:id", cfg.Clients.Get)
	clients.Patch("/:id", cfg.Clients.Update)
	clients.Delete("/:id", cfg.Clients.Delete)

	technicians := app.Group("/technicians", cfg.AuthMiddleware.Handle, auth.RequirePermission(auth.OpTechnicianManage))
	technicians.Post("/", cfg.Technicians.Create)
	technicians.Get("/", cfg.Technicians.List)
	technicians.Get("/:id", cfg.Technicians.Get)
	technicians.Patch("/:id", cfg.Technicians.Update)
	technicians.Delete("/:id", cfg.Technicians.Delete)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, auth.RequirePermission(auth.OpUserManage))
	users.Post("/", cfg.Users.Create)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Patch("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)
}
