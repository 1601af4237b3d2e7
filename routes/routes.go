package routes

import (
	"github.com/gofiber/fiber/v2"

	"proprospect-backend/controllers"
	"proprospect-backend/middlewares"
)

// Register wires all HTTP routes.
func Register(app *fiber.App) {
	api := app.Group("/api")

	// Public auth endpoints
	api.Post("/registration", controllers.Register)
	api.Post("/login", controllers.Login)
	api.Post("/logout", controllers.Logout)

	// Protected endpoints (JWT auth)
	protected := api.Group("")
	protected.Use(middlewares.IsAuthenticatedHeader())

	// Idempotency guard FIRST (not tied to request TX)
	protected.Use(middlewares.Idempotency())

	// Then per-request transaction for handler-level DB access
	protected.Use(middlewares.Tx())

	// Property reference data
	protected.Get("/property/:id", controllers.GetProperty)

	// Contact panel (ordered collections + edit sessions)
	protected.Get("/property/:id/panel", controllers.GetPanel)
	protected.Post("/property/:id/contacts", controllers.AddContact)
	protected.Post("/property/:id/contacts/reorder", controllers.Reorder)
	protected.Post("/property/:id/contacts/expand-all", controllers.ToggleExpandAll)
	protected.Post("/property/:id/contacts/:contactId/expand", controllers.ToggleExpand)
	protected.Delete("/property/:id/contacts/:contactId", controllers.DeleteContact)
	protected.Post("/property/:id/contacts/:contactId/edit", controllers.BeginEdit)
	protected.Patch("/property/:id/contacts/:contactId/edit", controllers.UpdateDraft)
	protected.Post("/property/:id/contacts/:contactId/edit/commit", controllers.CommitEdit)
	protected.Post("/property/:id/contacts/:contactId/edit/cancel", controllers.CancelEdit)
	protected.Post("/property/:id/contacts/:contactId/script", controllers.GenerateScript)

	// Activity feed
	protected.Get("/property/:id/notes", controllers.GetNotes)
	protected.Post("/property/:id/notes", controllers.CreateNote)
	protected.Put("/property/:id/notes/filter", controllers.SetNoteFilter)
	protected.Put("/property/:id/notes/:noteId", controllers.UpdateNote)
	protected.Delete("/property/:id/notes/:noteId", controllers.DeleteNote)
	protected.Post("/property/:id/follow-up", controllers.ScheduleFollowUp)
}
