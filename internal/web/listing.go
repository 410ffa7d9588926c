package web

import (
	"github.com/bilgisen/atlas/internal/dispatch"
	"github.com/bilgisen/atlas/internal/view"
)

// Listing is the view model of a /content page.
type Listing struct {
	Type    string
	Config  dispatch.TypeConfig
	Filter  view.Filter
	Listing view.Listing
	Cards   []dispatch.Card
}

// NewListing applies f to the fetched items and builds the cards.
func NewListing(cfg dispatch.TypeConfig, f view.Filter, l view.Listing) Listing {
	return Listing{
		Type:    f.Type,
		Config:  cfg,
		Filter:  f.Normalize(),
		Listing: l,
		Cards:   dispatch.NewCards(l.Items),
	}
}
