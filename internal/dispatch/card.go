package dispatch

import "github.com/bilgisen/atlas/internal/models"

// Card is everything a list view needs to draw one item.
type Card struct {
	ID          string
	Type        string
	Title       string
	Href        string
	Icon        string
	Color       string
	Label       string
	LabelColor  string
	Badges      []Badge
	Description string
	Featured    bool
}

// NewCard builds the card for an item. Resources with a category show the
// category instead of the type label.
func NewCard(item *models.Item) Card {
	p, _ := Lookup(item.Type)
	c := Card{
		ID:          item.ID,
		Type:        item.Type,
		Title:       item.Title,
		Href:        ItemRoute(item),
		Icon:        p.Icon,
		Color:       p.Color,
		Label:       FormatCategoryName(item.Type),
		LabelColor:  "bg-gray-100 text-gray-700",
		Badges:      Badges(item),
		Description: Description(item),
		Featured:    item.Featured(),
	}
	if item.ResourceCategory != "" {
		rp, _ := Lookup(models.TypeResource)
		c.Icon, c.Color = rp.Icon, rp.Color
		c.Label = FormatCategoryName(item.ResourceCategory)
		c.LabelColor = CategoryColor(item.ResourceCategory)
	}
	return c
}

// NewCards maps NewCard over items.
func NewCards(items []models.Item) []Card {
	out := make([]Card, len(items))
	for i := range items {
		out[i] = NewCard(&items[i])
	}
	return out
}
