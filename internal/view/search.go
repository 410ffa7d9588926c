package view

import "github.com/bilgisen/atlas/internal/models"

// MaxPerBucket caps every search bucket.
const MaxPerBucket = 10

// Bucket is one titled group of search hits.
type Bucket struct {
	Key   string        `json:"key"`
	Title string        `json:"title"`
	Items []models.Item `json:"items"`
}

// SearchResults is the search page view model.
type SearchResults struct {
	Term    string   `json:"term"`
	Buckets []Bucket `json:"buckets"`
	Total   int      `json:"total"`
}

// Empty reports whether the search found nothing.
func (r SearchResults) Empty() bool {
	return r.Total == 0
}

// All flattens every bucket in display order.
func (r SearchResults) All() []models.Item {
	out := make([]models.Item, 0, r.Total)
	for _, b := range r.Buckets {
		out = append(out, b.Items...)
	}
	return out
}

// NewSearchResults caps each bucket and drops empty ones.
func NewSearchResults(term string, b models.SearchBuckets) SearchResults {
	r := SearchResults{Term: term}
	for _, bk := range []Bucket{
		{"resources", "Resources", b.Resources},
		{"knowledgeArticles", "Knowledge Articles", b.KnowledgeArticles},
		{"productGuides", "Product Guides", b.ProductGuides},
		{"battleCards", "Battle Cards", b.BattleCards},
		{"compliance", "Compliance", b.Compliance},
		{"demos", "Demos", b.Demos},
		{"painPoints", "Pain Points", b.PainPoints},
		{"personas", "Personas", b.Personas},
	} {
		if len(bk.Items) == 0 {
			continue
		}
		if len(bk.Items) > MaxPerBucket {
			bk.Items = bk.Items[:MaxPerBucket]
		}
		r.Total += len(bk.Items)
		r.Buckets = append(r.Buckets, bk)
	}
	return r
}

// RecentResults presents the newest items as a single search bucket.
func RecentResults(latest []models.Item) SearchResults {
	r := SearchResults{}
	if len(latest) > 0 {
		r.Buckets = []Bucket{{Key: "recent", Title: "Recent Updates", Items: latest}}
		r.Total = len(latest)
	}
	return r
}
