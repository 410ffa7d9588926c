package web

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// Page is what every template receives. Data holds the page-specific view
// model.
type Page struct {
	Title      string
	Path       string
	SearchTerm string
	Nav        []NavSection
	Status     int
	Message    string
	Data       any
}

// NewPage builds the layout data for the current request. The header search
// box is only prefilled on the search page.
func NewPage(c *fiber.Ctx, title string, data any) Page {
	query := url.Values{}
	c.Context().QueryArgs().VisitAll(func(k, v []byte) {
		query.Add(string(k), string(v))
	})

	p := Page{
		Title:  title,
		Path:   c.Path(),
		Nav:    Sidebar(c.Path(), query),
		Status: fiber.StatusOK,
		Data:   data,
	}
	if p.Path == "/search" {
		p.SearchTerm = query.Get("q")
	}
	return p
}
