package dispatch

// TypeConfig is the header of a /content listing.
type TypeConfig struct {
	Name        string
	Icon        string
	Color       string
	IconColor   string
	Description string
}

var listingTypes = map[string]TypeConfig{
	"resource":              {"Resources", "file-text", "bg-blue-500", "text-blue-600", "PDFs, guides, and downloadable content"},
	"knowledgeArticle":      {"Knowledge Articles", "info", "bg-yellow-500", "text-yellow-600", "Best practices, tips, and insights"},
	"productGuide":          {"Product Guides", "book", "bg-green-500", "text-green-600", "Product features and walkthroughs"},
	"battleCard":            {"Battle Cards", "shield", "bg-red-500", "text-red-600", "Competitive intelligence and positioning"},
	"compliance":            {"Compliance", "shield", "bg-purple-500", "text-purple-600", "Legal documents and compliance materials"},
	"demo":                  {"Demo Documentation", "rocket", "bg-orange-500", "text-orange-600", "Product demos and technical walkthroughs"},
	"academyModule":         {"Academy Modules", "shield", "bg-blue-500", "text-blue-600", "Training modules and courses"},
	"salesPlay":             {"Sales Plays", "shield", "bg-blue-500", "text-blue-600", "Strategic sales plays and tactics"},
	"playbook":              {"Playbooks", "book", "bg-blue-500", "text-blue-600", "Sales playbooks and methodologies"},
	"tool":                  {"Tools", "shield", "bg-blue-500", "text-blue-600", "Sales tools and utilities"},
	"externalLink":          {"External Links", "shield", "bg-blue-500", "text-blue-600", "External resources and links"},
	"platformUpdate":        {"Platform Updates", "shield", "bg-blue-500", "text-blue-600", "Platform updates and announcements"},
	"salesPlaybook":         {"Sales Playbooks", "book", "bg-blue-500", "text-blue-600", "Sales playbooks and strategies"},
	"salesPlaybookTemplate": {"Playbook Templates", "file-text", "bg-blue-500", "text-blue-600", "Templates for sales playbooks"},
	"canvasTemplate":        {"Canvas Templates", "file-text", "bg-blue-500", "text-blue-600", "Canvas templates and frameworks"},
	"certification":         {"Certifications", "shield", "bg-blue-500", "text-blue-600", "Certification programs and materials"},
	"feed":                  {"Feeds", "shield", "bg-blue-500", "text-blue-600", "Content feeds and updates"},
	"painpoint":             {"Pain Points", "target", "bg-red-500", "text-red-600", "Customer pain points and solutions"},
	"persona":               {"Personas", "users", "bg-blue-500", "text-blue-600", "Buyer personas and job roles"},
}

// ListingType returns the header config for a /content?type= value.
// "painPoint" is accepted as an alias of "painpoint".
func ListingType(t string) (TypeConfig, bool) {
	if t == "painPoint" {
		t = "painpoint"
	}
	c, ok := listingTypes[t]
	return c, ok
}
