// Package dispatch maps a content item's type discriminator to how it is
// presented: icon, color, label, detail route and description.
package dispatch

import (
	"strings"

	"github.com/bilgisen/atlas/internal/models"
)

// Presentation is the display metadata for one type discriminator.
type Presentation struct {
	Icon  string
	Color string
	// Route is the detail route with "{id}" standing for the record id.
	// Empty means the generic /{type}/{id} form.
	Route string
}

const (
	defaultIcon  = "file-text"
	defaultColor = "bg-gray-100 text-gray-600"
)

var table = map[string]Presentation{
	models.TypeResource:         {Icon: "file-text", Color: "bg-blue-100 text-blue-600", Route: "/template/{id}"},
	models.TypeKnowledgeArticle: {Icon: "info", Color: "bg-yellow-100 text-yellow-600", Route: "/article/{id}"},
	models.TypeProductGuide:     {Icon: "book", Color: "bg-green-100 text-green-600", Route: "/product/{id}"},
	models.TypeBattleCard:       {Icon: "shield", Color: "bg-red-100 text-red-600", Route: "/battle-card/{id}"},
	models.TypeCompliance:       {Icon: "shield", Color: "bg-purple-100 text-purple-600"},
	models.TypeDemo:             {Icon: "rocket", Color: "bg-orange-100 text-orange-600", Route: "/demo/{id}"},
	models.TypePainPoint:        {Icon: "target", Color: "bg-red-100 text-red-600", Route: "/painpoint/{id}"},
	models.TypePersona:          {Icon: "users", Color: "bg-blue-100 text-blue-600", Route: "/persona/{id}"},
}

// canonical folds known aliases onto the discriminator used in the table.
func canonical(t string) string {
	if t == "painpoint" {
		return models.TypePainPoint
	}
	return t
}

// Lookup returns the presentation for a type, falling back to the default
// icon and color for unknown types.
func Lookup(contentType string) (Presentation, bool) {
	p, ok := table[canonical(contentType)]
	if !ok {
		return Presentation{Icon: defaultIcon, Color: defaultColor}, false
	}
	return p, true
}

// Route returns the detail page path for a record, or "" when the record
// has no type or id to address it by.
func Route(contentType, id string) string {
	if contentType == "" || id == "" {
		return ""
	}
	p, _ := Lookup(contentType)
	if p.Route == "" {
		return "/" + contentType + "/" + id
	}
	return strings.Replace(p.Route, "{id}", id, 1)
}

// ItemRoute is Route for an item.
func ItemRoute(item *models.Item) string {
	return Route(item.Type, item.ID)
}

// KindForSegment maps a detail route's first path segment back to the type
// discriminator, so /painpoint/x resolves to painPoint.
func KindForSegment(segment string) string {
	for t, p := range table {
		if p.Route != "" && strings.HasPrefix(p.Route, "/"+segment+"/") {
			return t
		}
	}
	return segment
}
