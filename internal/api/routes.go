package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
	app.Get("/photos/:filename", handler.ServePhoto)
	registerClientRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/data", handler.GetData)
	api.Post("/start-date", handler.SetStartDate)
	api.Get("/catalog", handler.GetCatalog)
	api.Get("/protocol", handler.GetProtocol)
	api.Get("/progress", handler.GetProgress)

	days := api.Group("/day")
	days.Get("/:day", handler.GetDay)
	days.Post("/:day", handler.PutDay)
	days.Post("/:day/photo", handler.UploadPhoto)
	days.Delete("/:day/photo/:filename", handler.DeletePhoto)

	export := api.Group("/export")
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)
}

// registerClientRoutes serves the built browser client with an index.html
// fallback for client-side routes. Nothing is registered without a bundle.
func registerClientRoutes(app *fiber.App, handler *Handler) {
	if !handler.hasClientBundle() {
		return
	}
	app.Static("/", handler.clientDir)
	app.Get("*", handler.ServeClient)
}
