package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listQuery struct {
	Type  string `query:"type" validate:"required,max=8"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

func newApp(render PageRenderer) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(render)})
	app.Use(RequestID())
	app.Use(RequestLogger())
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestValidateQuery(t *testing.T) {
	app := newApp(nil)
	app.Get("/api/v1/list", ValidateQuery[listQuery](), func(c *fiber.Ctx) error {
		q := Query[listQuery](c)
		return c.JSON(fiber.Map{"type": q.Type, "limit": q.Limit})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/list?type=demo&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"type": "demo", "limit": float64(5)}, decodeBody(t, resp))

	// A second request must not see the first one's values.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/list?type=resource", nil))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"type": "resource", "limit": float64(0)}, decodeBody(t, resp))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/list?limit=500", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid query parameters", body["error"])
	assert.Equal(t, map[string]any{"Type": "required", "Limit": "max"}, body["fields"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/list?type=demo&limit=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQueryWithoutValidation(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(Query[listQuery](c))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminOnly(t *testing.T) {
	app := newApp(nil)
	app.Delete("/api/v1/admin/cache", AdminOnly("s3cret"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	tests := []struct {
		name string
		key  string
		want int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusForbidden},
		{"right", "s3cret", http.StatusNoContent},
		{"bearer", "Bearer s3cret", http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/cache", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAdminOnlyWithoutKeyRejectsAll(t *testing.T) {
	app := newApp(nil)
	app.Delete("/x", AdminOnly(""), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	req := httptest.NewRequest(http.MethodDelete, "/x", nil)
	req.Header.Set("X-API-Key", "anything")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequestID(t *testing.T) {
	app := newApp(nil)
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(GetRequestID(c)) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	id := resp.Header.Get(RequestIDHeader)
	assert.Len(t, id, 36)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, id, string(body))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-id", resp.Header.Get(RequestIDHeader))
}

func TestErrorHandlerSplitsHTMLAndJSON(t *testing.T) {
	app := newApp(func(c *fiber.Ctx, code int, message string) error {
		return c.Status(code).SendString("<p>" + message + "</p>")
	})
	app.Get("/api/v1/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "Failed to load content") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "Failed to load content") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Failed to load content", decodeBody(t, resp)["error"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "<p>Failed to load content</p>", string(body))
}
