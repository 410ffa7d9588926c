package dispatch

import (
	"strings"

	"github.com/bilgisen/atlas/internal/models"
)

// Badge is a small colored label on a card.
type Badge struct {
	Label string
	Color string
}

var categoryColors = map[string]string{
	"bestPractices":        "bg-green-100 text-green-800",
	"calculator":           "bg-yellow-100 text-yellow-800",
	"caseStudy":            "bg-blue-100 text-blue-800",
	"checklist":            "bg-purple-100 text-purple-800",
	"competitorAnalysis":   "bg-pink-100 text-pink-800",
	"customerSuccess":      "bg-teal-100 text-teal-800",
	"externalLink":         "bg-gray-100 text-gray-800",
	"industryReport":       "bg-indigo-100 text-indigo-800",
	"internalLink":         "bg-gray-100 text-gray-800",
	"internalPresentation": "bg-orange-100 text-orange-800",
	"marketResearch":       "bg-cyan-100 text-cyan-800",
	"marketingCollateral":  "bg-blue-200 text-blue-900",
	"objectionHandling":    "bg-red-100 text-red-800",
	"other":                "bg-gray-200 text-gray-800",
	"pitchDeck":            "bg-yellow-200 text-yellow-900",
	"podcastEpisode":       "bg-pink-200 text-pink-900",
	"processDocumentation": "bg-blue-300 text-blue-900",
	"productDemo":          "bg-green-200 text-green-900",
	"productGuide":         "bg-green-300 text-green-900",
	"referenceMaterial":    "bg-gray-300 text-gray-900",
	"salesGuide":           "bg-indigo-200 text-indigo-900",
	"salesPresentation":    "bg-orange-200 text-orange-900",
	"salesScript":          "bg-purple-200 text-purple-900",
	"salesTool":            "bg-teal-200 text-teal-900",
	"template":             "bg-gray-100 text-gray-800",
	"testimonial":          "bg-yellow-100 text-yellow-800",
	"trainingMaterial":     "bg-green-100 text-green-800",
	"videoResource":        "bg-blue-100 text-blue-800",
	"webinarRecording":     "bg-pink-100 text-pink-800",
	"worksheet":            "bg-gray-100 text-gray-800",
	"commercialTemplates":  "bg-blue-500 text-white",
}

// CategoryColor returns the badge color for a resource category.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return "bg-gray-100 text-gray-800"
}

// CaseStudyBadges returns industry, use case and company size badges for a
// case-study resource, in that order. Other items get none.
func CaseStudyBadges(item *models.Item) []Badge {
	if !item.IsCaseStudy() {
		return nil
	}
	d := item.CaseStudyDetails
	var out []Badge
	if d.Industry != "" {
		out = append(out, Badge{FormatCategoryName(d.Industry), "bg-blue-100 text-blue-800"})
	}
	if d.UseCase != "" {
		out = append(out, Badge{FormatCategoryName(d.UseCase), "bg-green-100 text-green-800"})
	}
	if d.CompanySize != "" {
		out = append(out, Badge{FormatCategoryName(d.CompanySize), "bg-yellow-100 text-yellow-800"})
	}
	return out
}

// CaseStudySummary is the one-line "Industry • size • Use Case" summary.
func CaseStudySummary(item *models.Item) string {
	if !item.IsCaseStudy() {
		return ""
	}
	d := item.CaseStudyDetails
	var parts []string
	if d.Industry != "" {
		parts = append(parts, FormatCategoryName(d.Industry))
	}
	if d.CompanySize != "" {
		parts = append(parts, d.CompanySize)
	}
	if d.UseCase != "" {
		parts = append(parts, FormatCategoryName(d.UseCase))
	}
	return strings.Join(parts, " • ")
}

// Badges returns every type-specific badge for a card.
func Badges(item *models.Item) []Badge {
	switch canonical(item.Type) {
	case models.TypeResource:
		return CaseStudyBadges(item)
	case models.TypeDemo:
		var out []Badge
		if item.DemoType != "" {
			out = append(out, Badge{FormatCategoryName(item.DemoType), "bg-orange-100 text-orange-800"})
		}
		if item.Difficulty != "" {
			out = append(out, Badge{item.Difficulty, "bg-purple-100 text-purple-800"})
		}
		if item.EstimatedDuration != "" {
			out = append(out, Badge{item.EstimatedDuration, "bg-green-100 text-green-800"})
		}
		return out
	case models.TypeProductGuide:
		if item.GuideType != "" {
			return []Badge{{FormatCategoryName(item.GuideType), "bg-blue-100 text-blue-800"}}
		}
	}
	return nil
}
