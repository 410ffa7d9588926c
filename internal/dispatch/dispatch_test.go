package dispatch

import (
	"testing"

	"github.com/bilgisen/atlas/internal/models"
	"github.com/bilgisen/atlas/internal/portabletext"
	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		typ  string
		want string
	}{
		{"demo", "/demo/x1"},
		{"productGuide", "/product/x1"},
		{"persona", "/persona/x1"},
		{"painPoint", "/painpoint/x1"},
		{"painpoint", "/painpoint/x1"},
		{"battleCard", "/battle-card/x1"},
		{"resource", "/template/x1"},
		{"knowledgeArticle", "/article/x1"},
		{"compliance", "/compliance/x1"},
		{"salesPlay", "/salesPlay/x1"},
		{"somethingNew", "/somethingNew/x1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Route(tt.typ, "x1"), tt.typ)
	}
}

func TestRouteNeedsTypeAndID(t *testing.T) {
	assert.Empty(t, Route("", "x1"))
	assert.Empty(t, Route("demo", ""))
	assert.Empty(t, NewCard(&models.Item{ID: "x1", Title: "Untyped"}).Href)
}

func TestLookupFallsBack(t *testing.T) {
	p, ok := Lookup("unknownType")
	assert.False(t, ok)
	assert.Equal(t, defaultIcon, p.Icon)
	assert.Equal(t, defaultColor, p.Color)

	p, ok = Lookup("demo")
	assert.True(t, ok)
	assert.Equal(t, "rocket", p.Icon)
}

func TestKindForSegment(t *testing.T) {
	assert.Equal(t, models.TypePainPoint, KindForSegment("painpoint"))
	assert.Equal(t, models.TypeProductGuide, KindForSegment("product"))
	assert.Equal(t, models.TypeResource, KindForSegment("template"))
	assert.Equal(t, "lesson", KindForSegment("lesson"))
}

func TestFormatCategoryName(t *testing.T) {
	assert.Equal(t, "Financial Services", FormatCategoryName("financialServices"))
	assert.Equal(t, "Retail Ecommerce", FormatCategoryName("retailEcommerce"))
	assert.Equal(t, "Enterprise", FormatCategoryName("enterprise"))
	assert.Equal(t, "Knowledge Article", FormatCategoryName("knowledgeArticle"))
	assert.Equal(t, "", FormatCategoryName(""))
}

func TestTwoSentences(t *testing.T) {
	assert.Equal(t, "First sentence. Second sentence.", TwoSentences("First sentence. Second sentence. Third sentence."))
	assert.Equal(t, "Only one.", TwoSentences("Only one."))
	assert.Equal(t, "No period at all", TwoSentences("No period at all"))
	assert.Equal(t, "A. B.", TwoSentences("A. B"))
}

func TestDescriptionRichText(t *testing.T) {
	item := models.Item{
		Type: models.TypeKnowledgeArticle,
		Body: portabletext.FromString("First sentence. Second sentence. Third sentence."),
	}
	assert.Equal(t, "First sentence. Second sentence.", Description(&item))
}

func TestDescriptionPerType(t *testing.T) {
	long := "One. Two. Three."
	tests := []struct {
		name string
		item models.Item
		want string
	}{
		{"battle card positioning", models.Item{Type: models.TypeBattleCard, Positioning: portabletext.FromString(long), Description: "ignored"}, "One. Two."},
		{"battle card without positioning", models.Item{Type: models.TypeBattleCard, Description: "ignored"}, ""},
		{"article without body falls back", models.Item{Type: models.TypeKnowledgeArticle, Description: "Desc"}, "Desc"},
		{"product guide overview", models.Item{Type: models.TypeProductGuide, Overview: long}, "One. Two."},
		{"demo description", models.Item{Type: models.TypeDemo, Description: long}, "One. Two."},
		{"pain point verbatim", models.Item{Type: models.TypePainPoint, Description: long}, long},
		{"persona verbatim", models.Item{Type: models.TypePersona, Description: long}, long},
		{"generic description", models.Item{Type: "lesson", Description: long}, long},
		{"generic overview", models.Item{Type: "lesson", Overview: "Over"}, "Over"},
		{"generic summary", models.Item{Type: "lesson", Summary: "Sum"}, "Sum"},
		{"nothing", models.Item{Type: "lesson"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Description(&tt.item))
		})
	}
}

func TestCaseStudyBadges(t *testing.T) {
	item := models.Item{
		Type:             models.TypeResource,
		ResourceCategory: "caseStudy",
		CaseStudyDetails: &models.CaseStudyDetails{
			Industry:    "financialServices",
			UseCase:     "contentOperations",
			CompanySize: "enterprise",
		},
	}
	badges := CaseStudyBadges(&item)
	labels := make([]string, len(badges))
	for i, b := range badges {
		labels[i] = b.Label
	}
	assert.Equal(t, []string{"Financial Services", "Content Operations", "Enterprise"}, labels)
	assert.Equal(t, "Financial Services • enterprise • Content Operations", CaseStudySummary(&item))

	item.ResourceCategory = "pitchDeck"
	assert.Empty(t, CaseStudyBadges(&item))
}

func TestNewCard(t *testing.T) {
	item := models.Item{ID: "r1", Type: models.TypeResource, Title: "Deck", ResourceCategory: "pitchDeck", Description: "Slides."}
	c := NewCard(&item)
	assert.Equal(t, "/template/r1", c.Href)
	assert.Equal(t, "Pitch Deck", c.Label)
	assert.Equal(t, "bg-yellow-200 text-yellow-900", c.LabelColor)
	assert.Equal(t, "Slides.", c.Description)

	demo := models.Item{ID: "d1", Type: models.TypeDemo, DemoType: "useCase", Difficulty: "advanced", FeaturedStatus: "featured"}
	c = NewCard(&demo)
	assert.Equal(t, "Demo", c.Label)
	assert.Equal(t, "rocket", c.Icon)
	assert.True(t, c.Featured)
	assert.Len(t, c.Badges, 2)
	assert.Equal(t, "Use Case", c.Badges[0].Label)
}

func TestListingType(t *testing.T) {
	c, ok := ListingType("painPoint")
	assert.True(t, ok)
	assert.Equal(t, "Pain Points", c.Name)

	_, ok = ListingType("nope")
	assert.False(t, ok)
}
