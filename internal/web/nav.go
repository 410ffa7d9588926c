package web

import (
	"net/url"
	"strings"
)

// NavItem is one sidebar link.
type NavItem struct {
	Name        string
	Href        string
	Icon        string
	IconColor   string
	Description string
	Active      bool
}

// NavSection is a titled group of sidebar links.
type NavSection struct {
	Title string
	Items []NavItem
}

var sidebar = []NavSection{
	{Title: "Navigation", Items: []NavItem{
		{Name: "Home", Href: "/", Icon: "home", IconColor: "text-blue-600", Description: "Dashboard and overview"},
		{Name: "Browse All", Href: "/search", Icon: "search", IconColor: "text-blue-600", Description: "Search and browse all content"},
	}},
	{Title: "Content Categories", Items: []NavItem{
		{Name: "Knowledge Articles", Href: "/content?type=knowledgeArticle", Icon: "info", IconColor: "text-yellow-600", Description: "Best practices, techniques, and insights"},
		{Name: "Resources", Href: "/content?type=resource", Icon: "file-text", IconColor: "text-blue-600", Description: "PDFs, templates, and downloadable content"},
		{Name: "Product Guides", Href: "/content?type=productGuide", Icon: "book", IconColor: "text-green-600", Description: "Product knowledge and selling guides"},
		{Name: "Demos", Href: "/content?type=demo", Icon: "rocket", IconColor: "text-orange-600", Description: "Product demos and technical walkthroughs"},
		{Name: "Pain Points", Href: "/content?type=painpoint", Icon: "target", IconColor: "text-red-600", Description: "Customer pain points and solutions"},
		{Name: "Personas", Href: "/content?type=persona", Icon: "users", IconColor: "text-blue-600", Description: "Buyer personas and job roles"},
	}},
	{Title: "Quick Access", Items: []NavItem{
		{Name: "Pitch Materials", Href: "/content?type=resource&pitch=true", Icon: "file-text", IconColor: "text-yellow-600"},
		{Name: "Case Studies", Href: "/content?type=resource&category=caseStudy", Icon: "file-text", IconColor: "text-pink-600"},
		{Name: "Commercial Templates", Href: "/content?type=resource&category=commercialTemplates", Icon: "file-text", IconColor: "text-blue-600"},
		{Name: "Recent Updates", Href: "/search?sort=updated", Icon: "clock", IconColor: "text-purple-600"},
	}},
}

// IsActive reports whether href points at the current location. A link with
// a query matches when the path is equal and every link parameter has the
// same value in the current query; extra current parameters are ignored.
// A link without a query matches on path alone.
func IsActive(path string, query url.Values, href string) bool {
	base, rawQuery, hasQuery := strings.Cut(href, "?")
	if path != base {
		return false
	}
	if !hasQuery {
		return true
	}
	want, err := url.ParseQuery(rawQuery)
	if err != nil {
		return false
	}
	for key := range want {
		if query.Get(key) != want.Get(key) {
			return false
		}
	}
	return true
}

// Sidebar returns the sidebar with Active set for the current location.
func Sidebar(path string, query url.Values) []NavSection {
	out := make([]NavSection, len(sidebar))
	for i, s := range sidebar {
		items := make([]NavItem, len(s.Items))
		for j, it := range s.Items {
			it.Active = IsActive(path, query, it.Href)
			items[j] = it
		}
		out[i] = NavSection{Title: s.Title, Items: items}
	}
	return out
}
