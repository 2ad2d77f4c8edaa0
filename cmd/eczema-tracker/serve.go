package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/eczema-tracker/internal/api"
	"github.com/terraincognita07/eczema-tracker/internal/config"
	"github.com/terraincognita07/eczema-tracker/internal/services"
)

const (
	apiRateLimit       = 300
	apiRateLimitWindow = time.Minute
	shutdownTimeout    = 10 * time.Second
)

type serveCmd struct{}

func (cmd *serveCmd) Run(app *appContext) error {
	documents, closeDocuments, err := openDocuments(app.cfg)
	if err != nil {
		return err
	}
	defer closeDocuments()

	photoStore, err := openPhotoStore(context.Background(), app.cfg)
	if err != nil {
		return err
	}
	logStorage(app.cfg)

	journal := services.NewJournalService(documents, photoStore)
	server := newServerApp(app.cfg, api.NewHandler(journal, app.location, app.cfg.ClientDir))

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("server shutdown failed: %v", err)
		}
	}()

	log.Infof("eczema-tracker listening on http://0.0.0.0%s (tz: %s)", app.cfg.ListenAddr(), app.location.String())
	return server.Listen(app.cfg.ListenAddr())
}

func newServerApp(cfg config.Config, handler *api.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Eczema Tracker",
		DisableStartupMessage: true,
		BodyLimit:             cfg.UploadLimitBytes(),
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use("/api", limiter.New(limiter.Config{
		Max:        apiRateLimit,
		Expiration: apiRateLimitWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many requests"})
		},
	}))

	api.RegisterRoutes(app, handler)
	return app
}
