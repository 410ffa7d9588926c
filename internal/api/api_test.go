package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bilgisen/atlas/internal/cache"
	"github.com/bilgisen/atlas/internal/cms"
	"github.com/bilgisen/atlas/internal/cms/cmstest"
	"github.com/bilgisen/atlas/internal/config"
	"github.com/bilgisen/atlas/internal/content"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminKey = "admin-key"

const feedFixture = `{
  "featured": [{"_id": "f1", "_type": "demo", "title": "Featured demo", "featuredStatus": "featured", "_updatedAt": "2025-03-01T00:00:00Z"}],
  "latest": [{"_id": "k1", "_type": "knowledgeArticle", "title": "Latest article", "_updatedAt": "2025-02-01T00:00:00Z"}]
}`

const resourcesFixture = `[
  {"_id": "r1", "_type": "resource", "title": "Q3 pitch deck", "resourceCategory": "pitchDeck"},
  {"_id": "r2", "_type": "resource", "title": "Objection guide", "resourceCategory": "objectionHandling"}
]`

type fixture struct {
	atlas    *cmstest.Server
	accounts *cmstest.Server
	store    *cache.MemoryClient
	app      *fiber.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		atlas:    cmstest.NewServer(t),
		accounts: cmstest.NewServer(t),
		store:    cache.NewMemoryClient(),
	}
	f.atlas.
		Result(`"featured":`, feedFixture).
		Result(`_type == "productGuide" && _id == $id`, `{"_id": "g1", "_type": "productGuide", "title": "Studio guide", "overview": "All about it."}`).
		Result(`_type == "painPoint" && _id == $id`, `{"_id": "p1", "_type": "painPoint", "title": "Slow publishing", "description": "Content takes days."}`).
		Result(`_type == "demo" && _id == $id`, `{"_id": "d1", "_type": "demo", "title": "Live preview"}`).
		Result(`_type == "persona" && _id == $id`, `null`).
		Result(`_type == $type`, resourcesFixture).
		Result(`$searchTerm`, `{"personas": [{"_id": "pe1", "_type": "persona", "title": "CMS buyer"}]}`).
		Result(`_type == "role"`, `[{"_id": "role1", "title": "AE"}]`)
	f.accounts.
		Result(`type._ref != $cmsId`, `[{"_id": "t1", "name": "Vercel"}]`).
		Result(`type._ref == $cmsId`, `[]`).
		Result(`_type == "customer"`, `{"name": "Acme Corp"}`)

	cfg := config.FromEnv()
	cfg.AdminAPIKey = adminKey
	svc := content.NewService(f.atlas.Client(), f.accounts.Client())
	f.app = NewApp(cfg, NewHandlers(cfg, svc, f.store))
	return f
}

func (f *fixture) get(t *testing.T, target string) (int, string) {
	t.Helper()
	resp, err := f.app.Test(httptest.NewRequest(http.MethodGet, target, nil), 5000)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHomePage(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Featured demo")
	assert.Contains(t, body, "Latest article")
	assert.Contains(t, body, `href="/demo/f1"`)
}

func TestContentPageUnknownType(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/content?type=widget")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Content Type Not Found")
	assert.Empty(t, f.atlas.Params(), "no query for unknown types")

	status, body = f.get(t, "/content")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Content Type Not Found")
}

func TestContentPageFilters(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/content?type=resource&pitch=true")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Q3 pitch deck")
	assert.NotContains(t, body, "Objection guide")

	status, body = f.get(t, "/content?type=resource&filter=objectionHandling")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Objection guide")
	assert.NotContains(t, body, "Q3 pitch deck")
}

func TestContentPageFetchFailure(t *testing.T) {
	srv := cmstest.NewServer(t).Fail(`_type == $type`, http.StatusInternalServerError)
	cfg := config.FromEnv()
	app := NewApp(cfg, NewHandlers(cfg, content.NewService(srv.Client(), nil), nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/content?type=knowledgeArticle", nil), 5000)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, string(body), "Failed to load content")
}

func TestProductGuidePage(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/product/g1")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Studio guide")
	assert.Contains(t, body, "All about it.")
}

func TestDetailPages(t *testing.T) {
	f := newFixture(t)

	status, body := f.get(t, "/painpoint/p1")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Slow publishing")
	assert.Contains(t, body, "Content takes days.")

	status, body = f.get(t, "/persona/missing")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Persona Not Found")

	status, _ = f.get(t, "/widget/x")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestSearchPage(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/search?q=cms")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `value="cms"`)
	assert.Contains(t, body, "CMS buyer")

	status, body = f.get(t, "/search?sort=updated")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Latest article")

	status, _ = f.get(t, "/search?sort=random")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestAccountPage(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/account/c1")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Acme Corp")
	assert.Contains(t, body, "Vercel")
}

func TestStaticAssets(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/static/app.js")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "data-menu-toggle")
}

func decode(t *testing.T, body string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestAPIHealth(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/api/v1/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", decode(t, body)["status"])
}

func TestAPIFeed(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/api/v1/feed")
	assert.Equal(t, http.StatusOK, status)
	got := decode(t, body)
	assert.Len(t, got["featured"], 1)
	assert.Len(t, got["categories"], 3)
}

func TestAPIContent(t *testing.T) {
	f := newFixture(t)

	status, body := f.get(t, "/api/v1/content?type=resource&pitch=true")
	assert.Equal(t, http.StatusOK, status)
	got := decode(t, body)
	assert.Equal(t, "Resources", got["name"])
	assert.Equal(t, float64(1), got["total"])

	status, body = f.get(t, "/api/v1/content?type=widget")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Content Type Not Found", decode(t, body)["error"])
}

func TestAPIContentByID(t *testing.T) {
	f := newFixture(t)

	status, body := f.get(t, "/api/v1/content/demo/d1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "/demo/d1", decode(t, body)["route"])

	status, _ = f.get(t, "/api/v1/content/persona/missing")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPISearch(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/api/v1/search?q=cms")
	assert.Equal(t, http.StatusOK, status)
	got := decode(t, body)
	assert.Equal(t, "cms", got["term"])
	assert.Equal(t, float64(1), got["total"])
}

func TestAPICollections(t *testing.T) {
	f := newFixture(t)

	status, body := f.get(t, "/api/v1/collections/roles")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"_id": "role1", "title": "AE"}]`, body)

	status, _ = f.get(t, "/api/v1/collections/contentByRole")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = f.get(t, "/api/v1/collections")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"name":"demosByType","param":"demoType"`)
}

func TestAPIAccount(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/api/v1/accounts/c1")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Acme Corp", decode(t, body)["customer"].(map[string]any)["name"])
}

func TestAPIUnknownEndpoint(t *testing.T) {
	f := newFixture(t)
	status, body := f.get(t, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Endpoint not found", decode(t, body)["error"])
}

func TestPurgeCache(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.Set(context.Background(), "k", []byte("v"), time.Minute))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/cache", nil)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/admin/cache", nil)
	req.Header.Set("X-API-Key", adminKey)
	resp, err = f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, float64(1), decode(t, string(body))["purged"])
	assert.Equal(t, 0, f.store.Len())
}

func TestLoadClassifiesOutcome(t *testing.T) {
	app := fiber.New()
	app.Get("/ok", func(c *fiber.Ctx) error {
		snap := load(c, func(context.Context) (string, error) { return "value", nil })
		return c.SendString(snap.Status.String() + ":" + snap.Value)
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		snap := load(c, func(context.Context) (string, error) { return "", cms.ErrNotFound })
		return c.SendString(snap.Status.String())
	})

	for target, want := range map[string]string{"/ok": "success:value", "/missing": "notFound"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, want, string(body), target)
	}
}
