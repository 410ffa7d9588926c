package api

import (
	"context"

	"github.com/bilgisen/atlas/internal/dispatch"
	"github.com/bilgisen/atlas/internal/logger"
	"github.com/bilgisen/atlas/internal/middleware"
	"github.com/bilgisen/atlas/internal/models"
	"github.com/bilgisen/atlas/internal/queries"
	"github.com/bilgisen/atlas/internal/view"
	"github.com/bilgisen/atlas/internal/web"
	"github.com/gofiber/fiber/v2"
)

// load runs fetch through a page loader. Each request owns its loader, so
// a response always belongs to the request that issued it and the loader
// never sees a superseded load.
func load[T any](c *fiber.Ctx, fetch func(context.Context) (T, error)) view.Snapshot[T] {
	path, id := c.Path(), middleware.GetRequestID(c)
	l := view.NewLoader[T]()
	l.OnTransition(func(from, to view.Status) {
		logger.Get().Debug().
			Str("path", path).
			Str("request_id", id).
			Stringer("from", from).
			Stringer("to", to).
			Msg("Page load")
	})
	return l.Run(c.UserContext(), fetch)
}

// outcome turns a failed snapshot into the error the error handler renders.
func outcome(status view.Status, err error, notFound string) error {
	if status == view.NotFound {
		return fiber.NewError(fiber.StatusNotFound, notFound)
	}
	logger.Get().Error().Err(err).Msg("Error loading page")
	return fiber.NewError(fiber.StatusBadGateway, "Failed to load content")
}

func (h *Handlers) render(c *fiber.Ctx, status int, name, title string, data any) error {
	p := web.NewPage(c, title, data)
	p.Status = status
	return c.Status(status).Render(name, p)
}

// RenderError renders the HTML page for a failed request: the not-found page
// for 404s and the error page otherwise.
func (h *Handlers) RenderError(c *fiber.Ctx, code int, message string) error {
	name, title := "error", "Error"
	if code == fiber.StatusNotFound {
		name, title = "not_found", "Not Found"
	}
	p := web.NewPage(c, title, nil)
	p.Status = code
	p.Message = message
	if err := c.Status(code).Render(name, p); err != nil {
		logger.Get().Error().Err(err).Str("template", name).Msg("Error rendering error page")
		return c.Status(code).SendString(message)
	}
	return nil
}

// Home handles GET /
func (h *Handlers) Home(c *fiber.Ctx) error {
	snap := load(c, h.content.Home)
	if snap.Status != view.Success {
		return outcome(snap.Status, snap.Err, "Not Found")
	}
	return h.render(c, fiber.StatusOK, "home", "", snap.Value)
}

// ContentList handles GET /content?type=...
func (h *Handlers) ContentList(c *fiber.Ctx) error {
	f := middleware.Query[view.Filter](c).Normalize()
	cfg, ok := dispatch.ListingType(f.Type)
	if !ok {
		return h.render(c, fiber.StatusNotFound, "type_not_found", "Content Type Not Found", f.Type)
	}

	snap := load(c, func(ctx context.Context) ([]models.Item, error) {
		return h.content.Listing(ctx, f.Type)
	})
	if snap.Status != view.Success {
		return outcome(snap.Status, snap.Err, "Not Found")
	}
	return h.render(c, fiber.StatusOK, "listing", cfg.Name, web.NewListing(cfg, f, view.ApplyFilter(snap.Value, f)))
}

// ProductGuide handles GET /product/:id
func (h *Handlers) ProductGuide(c *fiber.Ctx) error {
	id := c.Params("id")
	snap := load(c, func(ctx context.Context) (models.Item, error) {
		return h.content.ProductGuide(ctx, id)
	})
	if snap.Status != view.Success {
		return outcome(snap.Status, snap.Err, "Product Guide Not Found")
	}
	return h.render(c, fiber.StatusOK, "product", snap.Value.Title, web.NewDetail(snap.Value, h.assets))
}

// Detail handles GET /:kind/:id for every kind with a single-record query.
func (h *Handlers) Detail(c *fiber.Ctx) error {
	kind := dispatch.KindForSegment(c.Params("kind"))
	if _, ok := queries.ByIDQuery(kind); !ok {
		return fiber.ErrNotFound
	}

	id := c.Params("id")
	snap := load(c, func(ctx context.Context) (models.Item, error) {
		return h.content.Detail(ctx, kind, id)
	})
	if snap.Status != view.Success {
		return outcome(snap.Status, snap.Err, dispatch.FormatCategoryName(kind)+" Not Found")
	}
	return h.render(c, fiber.StatusOK, "detail", snap.Value.Title, web.NewDetail(snap.Value, h.assets))
}

// Search handles GET /search?q=...
func (h *Handlers) Search(c *fiber.Ctx) error {
	q := middleware.Query[SearchQuery](c)
	snap := load(c, func(ctx context.Context) (view.SearchResults, error) {
		return h.search(ctx, q)
	})
	if snap.Status != view.Success {
		return outcome(snap.Status, snap.Err, "Not Found")
	}
	return h.render(c, fiber.StatusOK, "search", "Search", snap.Value)
}

// Account handles GET /account/:id
func (h *Handlers) Account(c *fiber.Ctx) error {
	id := c.Params("id")
	snap := load(c, func(ctx context.Context) (models.Account, error) {
		return h.content.Account(ctx, id)
	})
	if snap.Status != view.Success {
		return outcome(snap.Status, snap.Err, "Account Not Found")
	}
	return h.render(c, fiber.StatusOK, "account", snap.Value.Customer.Name, snap.Value)
}
