package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health       *handlers.HealthHandler
	Appointments *handlers.AppointmentsHandler
	Donors       *handlers.DonorsHandler
	Contact      *handlers.ContactHandler
	Content      *handlers.ContentHandler
	SubmitLimit  fiber.Handler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	appointments := api.Group("/appointments")
	appointments.Post("/", cfg.SubmitLimit, cfg.Appointments.Create)
	appointments.Get("/", cfg.Appointments.List)
	appointments.Get("/whatsapp-link", cfg.Appointments.WhatsAppLink)
	appointments.Patch("/:id/status", cfg.Appointments.UpdateStatus)

	donations := api.Group("/blood-donations")
	donations.Post("/", cfg.SubmitLimit, cfg.Donors.Create)
	donations.Get("/", cfg.Donors.List)
	donations.Patch("/:id/status", cfg.Donors.UpdateStatus)

	contact := api.Group("/contact-messages")
	contact.Post("/", cfg.SubmitLimit, cfg.Contact.Create)
	contact.Get("/", cfg.Contact.List)
	contact.Patch("/:id/status", cfg.Contact.UpdateStatus)

	api.Get("/gallery", cfg.Content.Gallery)
	api.Get("/testimonials", cfg.Content.Testimonials)
}
