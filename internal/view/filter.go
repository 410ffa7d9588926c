// Package view holds the pure selectors and state rules behind the pages:
// listing filters, the home feed, search results and the page loader.
package view

import (
	"sort"

	"github.com/bilgisen/atlas/internal/models"
)

// All is the "no selection" value of every dropdown.
const All = "all"

// Filter is the listing's filter configuration, read once from the request.
// It is a value: selectors never modify it.
type Filter struct {
	Type        string `query:"type" validate:"omitempty,max=64"`
	Category    string `query:"category" validate:"omitempty,max=64"`
	Pitch       string `query:"pitch" validate:"omitempty,max=8"`
	Dropdown    string `query:"filter" validate:"omitempty,max=64"`
	GuideType   string `query:"guideType" validate:"omitempty,max=64"`
	Industry    string `query:"industry" validate:"omitempty,max=64"`
	UseCase     string `query:"useCase" validate:"omitempty,max=64"`
	CompanySize string `query:"companySize" validate:"omitempty,max=64"`
}

// Normalize returns f with empty dropdowns set to All. Missing query
// parameters read as "no selection".
func (f Filter) Normalize() Filter {
	for _, p := range []*string{&f.Dropdown, &f.GuideType, &f.Industry, &f.UseCase, &f.CompanySize} {
		if *p == "" {
			*p = All
		}
	}
	return f
}

// IsCaseStudyPage reports whether the filter selects the case-study view.
func (f Filter) IsCaseStudyPage() bool {
	return f.Type == models.TypeResource && f.Category == "caseStudy"
}

// Listing is the outcome of applying a Filter to a fetched list.
type Listing struct {
	Items []models.Item

	ShowCategoryDropdown  bool
	ShowGuideTypeDropdown bool
	IsCaseStudyPage       bool

	Categories []string
	GuideTypes []string

	IndustryOptions    []string
	UseCaseOptions     []string
	CompanySizeOptions []string
}

// ApplyFilter selects the items a listing shows. Resources follow this
// precedence: commercialTemplates, then pitch, then caseStudy, then the
// category dropdown. The first three hide the dropdown.
func ApplyFilter(items []models.Item, f Filter) Listing {
	f = f.Normalize()
	isResource := f.Type == models.TypeResource
	isGuide := f.Type == models.TypeProductGuide

	out := Listing{
		Items:                 items,
		ShowCategoryDropdown:  isResource,
		ShowGuideTypeDropdown: isGuide,
		IsCaseStudyPage:       f.IsCaseStudyPage(),
	}
	if isResource {
		out.Categories = distinct(items, func(it *models.Item) string { return it.ResourceCategory })
	}
	if isGuide {
		out.GuideTypes = distinct(items, func(it *models.Item) string { return it.GuideType })
	}

	switch {
	case isResource && f.Category == "commercialTemplates":
		out.Items = selectItems(items, func(it *models.Item) bool { return it.ResourceCategory == "commercialTemplates" })
		out.ShowCategoryDropdown = false
	case isResource && f.Pitch == "true":
		out.Items = selectItems(items, func(it *models.Item) bool {
			return it.ResourceCategory == "pitchDeck" || it.ResourceCategory == "salesPresentation"
		})
		out.ShowCategoryDropdown = false
	case isResource && f.Category == "caseStudy":
		out.Items = selectItems(items, func(it *models.Item) bool { return it.ResourceCategory == "caseStudy" })
		out.ShowCategoryDropdown = false
	case isResource && f.Dropdown != All:
		out.Items = selectItems(items, func(it *models.Item) bool { return it.ResourceCategory == f.Dropdown })
	}

	if isGuide && f.GuideType != All {
		out.Items = selectItems(items, func(it *models.Item) bool { return it.GuideType == f.GuideType })
	}

	if out.IsCaseStudyPage {
		studies := out.Items
		out.IndustryOptions = distinct(studies, func(it *models.Item) string { return details(it).Industry })
		out.UseCaseOptions = distinct(studies, func(it *models.Item) string { return details(it).UseCase })
		out.CompanySizeOptions = distinct(studies, func(it *models.Item) string { return details(it).CompanySize })
		out.Items = selectItems(studies, func(it *models.Item) bool {
			d := details(it)
			return matches(f.Industry, d.Industry) && matches(f.UseCase, d.UseCase) && matches(f.CompanySize, d.CompanySize)
		})
	}

	return out
}

func details(it *models.Item) models.CaseStudyDetails {
	if it.CaseStudyDetails == nil {
		return models.CaseStudyDetails{}
	}
	return *it.CaseStudyDetails
}

func matches(selected, value string) bool {
	return selected == All || selected == value
}

// selectItems never aliases the input slice.
func selectItems(items []models.Item, keep func(*models.Item) bool) []models.Item {
	out := make([]models.Item, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

func distinct(items []models.Item, field func(*models.Item) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range items {
		v := field(&items[i])
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
