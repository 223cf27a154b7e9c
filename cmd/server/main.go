// @title         converso-multimodal API
// @version       1.0
// @description   Conversation-relay service: keeps per-conversation chat history in memory, stores media uploads on disk and relays assembled prompts to pluggable text-generation backends.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"

	_ "github.com/robot-coder/converso-multimodal/docs"

	// internal imports
	"github.com/robot-coder/converso-multimodal/api/http"
	"github.com/robot-coder/converso-multimodal/api/http/handlers"
	"github.com/robot-coder/converso-multimodal/pkg/compare"
	"github.com/robot-coder/converso-multimodal/pkg/config"
	"github.com/robot-coder/converso-multimodal/pkg/conversation"
	"github.com/robot-coder/converso-multimodal/pkg/health"
	"github.com/robot-coder/converso-multimodal/pkg/health/checkers"
	"github.com/robot-coder/converso-multimodal/pkg/llm"
	"github.com/robot-coder/converso-multimodal/pkg/llm/relay"
	"github.com/robot-coder/converso-multimodal/pkg/media"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 16 << 20, // uploads are capped at 15MB further in
	})
	app.Use(recover.New())
	app.Use(fiberlog.New())
	app.Use(cors.New())

	// Load configuration from env/.env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	registry, err := llm.NewRegistry(cfg.Backends, cfg.DefaultBackend)
	if err != nil {
		log.Fatalf("init backend registry: %v", err)
	}
	client := relay.New(time.Duration(cfg.LLMTimeoutSeconds) * time.Second)
	mediaStore := media.NewStore(cfg.MediaDir)
	store := conversation.NewMemoryStore()

	// Wire dependencies (Clean Architecture)
	convUC := conversation.NewService(store, mediaStore, registry, client)
	convHandler := handlers.NewConversationHandler(convUC)
	cmpUC := compare.NewService(registry, client)
	cmpHandler := handlers.NewCompareHandler(cmpUC)
	mediaHandler := handlers.NewMediaHandler(mediaStore)

	// Health service: compose checkers
	readiness := health.NewService(
		checkers.NewMediaDirChecker(cfg.MediaDir),
		checkers.NewBackendsChecker(registry),
	)
	healthHandler := handlers.NewHealthHandler(readiness)

	// Register routes
	http.Register(app, convHandler, cmpHandler, mediaHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Static front-end and stored media
	app.Static("/", "./static")
	app.Static(media.URLPrefix, cfg.MediaDir)

	// Start server
	log.Printf("HTTP server listening on :%s (default backend %q)", cfg.Port, registry.Default())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
