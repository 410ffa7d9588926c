package api

import (
	"net/http"
	"time"

	"github.com/bilgisen/atlas/internal/config"
	"github.com/bilgisen/atlas/internal/middleware"
	"github.com/bilgisen/atlas/internal/view"
	"github.com/bilgisen/atlas/internal/web"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber app with views, error handling, middleware and
// every route.
func NewApp(cfg *config.Config, h *Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Support Atlas",
		Views:        web.NewEngine(),
		ViewsLayout:  web.Layout,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout,
		IdleTimeout:  120 * time.Second,
		ErrorHandler: middleware.NewErrorHandler(h.RenderError),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())

	SetupRoutes(app, h, cfg)
	return app
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, h *Handlers, cfg *config.Config) {
	// API group with versioning
	api := app.Group("/api/v1")

	api.Get("/health", h.HealthCheck)
	api.Get("/feed", h.GetFeed)
	api.Get("/content", middleware.ValidateQuery[view.Filter](), h.GetContent)
	api.Get("/content/:kind/:id", h.GetContentByID)
	api.Get("/search", middleware.ValidateQuery[SearchQuery](), h.SearchContent)
	api.Get("/collections", h.ListCollections)
	api.Get("/collections/:name", h.GetCollection)
	api.Get("/accounts/:id", h.GetAccount)

	admin := api.Group("/admin", middleware.AdminOnly(cfg.AdminAPIKey))
	admin.Delete("/cache", h.PurgeCache)

	api.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Endpoint not found")
	})

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))

	// Pages
	app.Get("/", h.Home)
	app.Get("/content", middleware.ValidateQuery[view.Filter](), h.ContentList)
	app.Get("/search", middleware.ValidateQuery[SearchQuery](), h.Search)
	app.Get("/product/:id", h.ProductGuide)
	app.Get("/account/:id", h.Account)
	app.Get("/:kind/:id", h.Detail)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
