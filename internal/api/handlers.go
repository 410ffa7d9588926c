package api

import (
	"context"
	"errors"
	"time"

	"github.com/bilgisen/atlas/internal/cache"
	"github.com/bilgisen/atlas/internal/cms"
	"github.com/bilgisen/atlas/internal/config"
	"github.com/bilgisen/atlas/internal/content"
	"github.com/bilgisen/atlas/internal/dispatch"
	"github.com/bilgisen/atlas/internal/logger"
	"github.com/bilgisen/atlas/internal/middleware"
	"github.com/bilgisen/atlas/internal/queries"
	"github.com/bilgisen/atlas/internal/view"
	"github.com/bilgisen/atlas/internal/web"
	"github.com/gofiber/fiber/v2"
)

// SearchQuery is the query string of the search page and endpoint.
type SearchQuery struct {
	Q    string `query:"q" validate:"max=200"`
	Sort string `query:"sort" validate:"omitempty,oneof=updated"`
}

type Handlers struct {
	config  *config.Config
	content *content.Service
	cache   cache.Store
	assets  web.Assets
}

// NewHandlers wires the handlers. store may be nil when caching is off.
func NewHandlers(cfg *config.Config, svc *content.Service, store cache.Store) *Handlers {
	return &Handlers{
		config:  cfg,
		content: svc,
		cache:   store,
		assets:  web.Assets{ProjectID: cfg.SanityProjectID, Dataset: cfg.SanityDataset},
	}
}

// HealthCheck handles GET /api/v1/health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
		"cache":   h.cache != nil,
	})
}

// GetFeed handles GET /api/v1/feed
func (h *Handlers) GetFeed(c *fiber.Ctx) error {
	home, err := h.content.Home(c.UserContext())
	if err != nil {
		return fetchError(err)
	}
	return c.JSON(home)
}

// GetContent handles GET /api/v1/content?type=...
func (h *Handlers) GetContent(c *fiber.Ctx) error {
	f := middleware.Query[view.Filter](c).Normalize()
	cfg, ok := dispatch.ListingType(f.Type)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Content Type Not Found")
	}

	items, err := h.content.Listing(c.UserContext(), f.Type)
	if err != nil {
		return fetchError(err)
	}
	l := view.ApplyFilter(items, f)

	return c.JSON(fiber.Map{
		"type":        f.Type,
		"name":        cfg.Name,
		"description": cfg.Description,
		"items":       l.Items,
		"total":       len(l.Items),
		"categories":  l.Categories,
		"guideTypes":  l.GuideTypes,
	})
}

// GetContentByID handles GET /api/v1/content/:kind/:id
func (h *Handlers) GetContentByID(c *fiber.Ctx) error {
	kind := dispatch.KindForSegment(c.Params("kind"))
	item, err := h.content.Detail(c.UserContext(), kind, c.Params("id"))
	if err != nil {
		return fetchError(err)
	}
	return c.JSON(fiber.Map{
		"item":        item,
		"route":       dispatch.ItemRoute(&item),
		"description": dispatch.Description(&item),
	})
}

// SearchContent handles GET /api/v1/search?q=...
func (h *Handlers) SearchContent(c *fiber.Ctx) error {
	res, err := h.search(c.UserContext(), middleware.Query[SearchQuery](c))
	if err != nil {
		return fetchError(err)
	}
	return c.JSON(res)
}

// ListCollections handles GET /api/v1/collections
func (h *Handlers) ListCollections(c *fiber.Ctx) error {
	names := queries.Collections()
	out := make([]fiber.Map, 0, len(names))
	for _, n := range names {
		out = append(out, fiber.Map{"name": n, "param": queries.CollectionParam(n)})
	}
	return c.JSON(out)
}

// GetCollection handles GET /api/v1/collections/:name. A collection that
// takes a parameter reads it from the query string under its own name.
func (h *Handlers) GetCollection(c *fiber.Ctx) error {
	name := c.Params("name")
	arg := ""
	if p := queries.CollectionParam(name); p != "" {
		arg = c.Query(p)
	}
	raw, err := h.content.Collection(c.UserContext(), name, arg)
	if err != nil {
		return fetchError(err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

// GetAccount handles GET /api/v1/accounts/:id
func (h *Handlers) GetAccount(c *fiber.Ctx) error {
	acc, err := h.content.Account(c.UserContext(), c.Params("id"))
	if err != nil {
		return fetchError(err)
	}
	return c.JSON(acc)
}

// PurgeCache handles DELETE /api/v1/admin/cache
func (h *Handlers) PurgeCache(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(fiber.Map{"enabled": false, "purged": 0})
	}
	n, err := h.cache.Purge(c.UserContext())
	if err != nil {
		logger.Get().Error().Err(err).Msg("Error purging response cache")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to purge cache")
	}
	logger.Get().Info().Int("purged", n).Msg("Purged response cache")
	return c.JSON(fiber.Map{"enabled": true, "purged": n})
}

func (h *Handlers) search(ctx context.Context, q SearchQuery) (view.SearchResults, error) {
	if q.Q == "" && q.Sort == "updated" {
		return h.content.Recent(ctx)
	}
	return h.content.Search(ctx, q.Q)
}

// fetchError maps a service error onto the response status.
func fetchError(err error) error {
	switch {
	case cms.IsNotFound(err):
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	case errors.Is(err, content.ErrUnknownType):
		return fiber.NewError(fiber.StatusNotFound, "Content Type Not Found")
	case errors.Is(err, content.ErrUnknownKind), errors.Is(err, content.ErrUnknownCollection):
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	}
	logger.Get().Error().Err(err).Msg("Error loading content")
	return fiber.NewError(fiber.StatusBadGateway, "Failed to load content")
}
