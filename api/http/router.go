package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/robot-coder/converso-multimodal/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, conv *handlers.ConversationHandler, cmp *handlers.CompareHandler, media *handlers.MediaHandler, health *handlers.HealthHandler) {
	// Front-end facing routes stay at the root; the deployed clients post to
	// these exact paths.
	app.Post("/start_conversation", conv.Start)
	app.Post("/send_message", conv.Send)
	app.Get("/get_conversation", conv.Get)
	app.Post("/compare_models", cmp.Compare)
	app.Post("/upload_media", media.Upload)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Get("/conversations", conv.List)
}
