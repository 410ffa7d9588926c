package view

import (
	"sort"

	"github.com/bilgisen/atlas/internal/models"
)

const (
	MaxFeatured = 6
	MaxLatest   = 12
)

// Category is a "Browse by Category" tile on the home page.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Href        string `json:"href"`
	Color       string `json:"color"`
	Count       int    `json:"count"`
	Unit        string `json:"unit"`
}

var homeCategories = []Category{
	{Name: "Resources", Description: "PDFs, guides, and downloadable content", Icon: "file-text", Href: "/content?type=resource", Color: "bg-blue-500", Unit: "resources"},
	{Name: "Knowledge Articles", Description: "Best practices, tips, and insights", Icon: "info", Href: "/content?type=knowledgeArticle", Color: "bg-yellow-500", Unit: "articles"},
	{Name: "Product Guides", Description: "Product features and walkthroughs", Icon: "book", Href: "/content?type=productGuide", Color: "bg-green-500", Unit: "guides"},
}

var categoryTypes = []string{models.TypeResource, models.TypeKnowledgeArticle, models.TypeProductGuide}

// Home is the home page view model.
type Home struct {
	Featured   []models.Item `json:"featured"`
	Latest     []models.Item `json:"latest"`
	Categories []Category    `json:"categories"`
}

// HomeFeed orders both lists by update time, newest first, caps them and
// counts the latest list per category type.
func HomeFeed(feed models.Feed) Home {
	h := Home{
		Featured: newestFirst(feed.Featured, MaxFeatured),
		Latest:   newestFirst(feed.Latest, MaxLatest),
	}
	h.Categories = make([]Category, len(homeCategories))
	copy(h.Categories, homeCategories)
	for i, t := range categoryTypes {
		for j := range h.Latest {
			if h.Latest[j].Type == t {
				h.Categories[i].Count++
			}
		}
	}
	return h
}

func newestFirst(items []models.Item, limit int) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
