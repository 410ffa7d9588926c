package web

import (
	"html/template"

	"github.com/bilgisen/atlas/internal/dispatch"
	"github.com/bilgisen/atlas/internal/models"
	"github.com/bilgisen/atlas/internal/portabletext"
)

// Section is a titled block of rendered rich text.
type Section struct {
	Title string
	HTML  template.HTML
}

// RefLink is a related record as shown in a "Related" panel.
type RefLink struct {
	Title       string
	Description string
	Label       string
	Href        string
}

// RefGroup is a titled list of related records.
type RefGroup struct {
	Title string
	Links []RefLink
}

// Detail is the view model of a record page.
type Detail struct {
	Item        models.Item
	Card        dispatch.Card
	Summary     string
	FileURL     string
	Sections    []Section
	Related     []RefGroup
	CaseStudy   string
	UpdatedDate string
}

// Assets locates uploaded files for a dataset.
type Assets struct {
	ProjectID string
	Dataset   string
}

// NewDetail assembles the record page for item.
func NewDetail(item models.Item, assets Assets) Detail {
	d := Detail{
		Item:      item,
		Card:      dispatch.NewCard(&item),
		Summary:   dispatch.Description(&item),
		CaseStudy: dispatch.CaseStudySummary(&item),
	}
	if !item.UpdatedAt.IsZero() {
		d.UpdatedDate = item.UpdatedAt.Format("January 2, 2006")
	}
	if item.File != nil {
		d.FileURL = FileURL(item.File.Asset.Ref, assets.ProjectID, assets.Dataset)
	}

	for _, s := range []struct {
		title  string
		blocks portabletext.Blocks
		styles portabletext.Styles
	}{
		{"", item.Body, portabletext.Full},
		{"", item.Content, portabletext.Full},
		{"Details", item.Details, portabletext.Full},
		{"Positioning", item.Positioning, portabletext.Full},
		{"Symptoms", item.Symptoms, portabletext.Compact},
		{"Consequences", item.Consequences, portabletext.Compact},
		{"Solution", item.Solution, portabletext.Compact},
		{"Competitive Differentiators", item.CompetitiveDifferentiators, portabletext.Compact},
		{"Demo Steps", item.DemoSteps, portabletext.Compact},
		{"Technical Notes", item.TechnicalNotes, portabletext.Compact},
	} {
		if s.blocks.IsEmpty() {
			continue
		}
		d.Sections = append(d.Sections, Section{Title: s.title, HTML: portabletext.HTML(s.blocks, s.styles)})
	}

	for _, g := range []struct {
		title string
		refs  []models.Ref
		kind  string
	}{
		{"Related Resources", item.RelatedResources, models.TypeResource},
		{"Resources", item.Resources, models.TypeResource},
		{"Product Guides", item.ProductGuides, models.TypeProductGuide},
		{"Personas", item.Personas, models.TypePersona},
		{"Pain Points", item.PainPoints, models.TypePainPoint},
		{"Lessons", item.Lessons, models.TypeLesson},
		{"Sales Plays", item.SalesPlays, models.TypeSalesPlay},
		{"Target Roles", item.TargetRoles, ""},
		{"Roles", item.Roles, ""},
		{"Affected Roles", item.AffectedRoles, ""},
		{"Sales Stages", item.SalesStages, ""},
	} {
		if len(g.refs) == 0 {
			continue
		}
		group := RefGroup{Title: g.title}
		for _, r := range g.refs {
			group.Links = append(group.Links, refLink(r, g.kind))
		}
		d.Related = append(d.Related, group)
	}
	return d
}

// refLink links a reference when its type is known. Roles and stages have no
// page of their own.
func refLink(r models.Ref, kind string) RefLink {
	l := RefLink{Title: r.Title, Description: r.Description}
	if l.Title == "" {
		l.Title = r.Name
	}
	if l.Description == "" {
		l.Description = r.Summary
	}
	if r.Kind != "" {
		l.Label = dispatch.FormatCategoryName(r.Kind)
	} else if r.Category != "" {
		l.Label = dispatch.FormatCategoryName(r.Category)
	}
	if r.Type != "" {
		kind = r.Type
	}
	if kind != "" && r.ID != "" {
		l.Href = dispatch.Route(kind, r.ID)
	}
	return l
}
