package queries

// Listings
const (
	AllResources = `*[_type == "resource"] | order(order asc) {` + resourceFields + `
}`

	AllLessons = `*[_type == "lesson"] | order(order asc) {` + lessonFields + `
}`

	AllModules = `*[_type == "academyModule"] | order(order asc) {` + moduleFields + `
}`

	AllSalesPlays = `*[_type == "salesPlay"] | order(title asc) {` + salesPlayFields + `
}`

	AllPlaybooks = `*[_type == "playbook"] | order(title asc) {` + playbookFields + `
}`

	AllPosts = `*[_type == "post"] | order(publishedAt desc) {` + postFields + `
}`

	AllBattleCards = `*[_type == "battleCard"] | order(title asc) {
  _id,
  _type,
  title,
  slug,
  logo,
  featuredStatus,
  _updatedAt
}`

	AllCompliance = `*[_type == "compliance" && isActive == true] | order(order asc) {` + complianceFields + `
}`

	AllDemos = `*[_type == "demo"] | order(title asc) {` + demoFields + `
}`

	AllProductGuides = `*[_type == "productGuide"] | order(title asc) {` + productGuideFields + `
}`

	AllPainPoints = `*[_type == "painPoint"] | order(title asc) {` + painPointFields + `
}`

	AllPersonas = `*[_type == "persona"] | order(title asc) {` + personaFields + `
}`
)

// Search. SearchContent takes $query; GlobalSearch takes $searchTerm and
// returns the 10 most recently updated matches per bucket.
const (
	SearchContent = `{
  "resources": *[_type == "resource" && (title match $query || description match $query)] | order(order asc) {` + resourceFields + `
  },
  "lessons": *[_type == "lesson" && (title match $query || summary match $query)] | order(order asc) {` + lessonFields + `
  },
  "salesPlays": *[_type == "salesPlay" && (title match $query || description match $query)] | order(title asc) {` + salesPlayFields + `
  },
  "playbooks": *[_type == "playbook" && (title match $query || description match $query)] | order(title asc) {` + playbookFields + `
  },
  "posts": *[_type == "post" && (title match $query || excerpt match $query)] | order(publishedAt desc) {` + postFields + `
  },
  "painPoints": *[_type == "painPoint" && (title match $query || description match $query)] | order(title asc) {` + painPointFields + `
  },
  "personas": *[_type == "persona" && (title match $query || description match $query)] | order(title asc) {` + personaFields + `
  }
}`

	GlobalSearch = `{
  "resources": *[_type == "resource" && (title match $searchTerm + "*" || description match $searchTerm + "*")] | order(_updatedAt desc) [0...10] {
    _id, _type, title, description, type, resourceCategory, caseStudyDetails, featuredStatus, _updatedAt
  },
  "knowledgeArticles": *[_type == "knowledgeArticle" && (title match $searchTerm + "*" || pt::text(body) match $searchTerm + "*" || description match $searchTerm + "*")] | order(_updatedAt desc) [0...10] {
    _id, _type, title, description, slug, body, featuredStatus, _updatedAt
  },
  "productGuides": *[_type == "productGuide" && (title match $searchTerm + "*" || overview match $searchTerm + "*" || pt::text(details) match $searchTerm + "*")] | order(_updatedAt desc) [0...10] {
    _id, _type, title, slug, productFocus, guideType, overview, details, featuredStatus, _updatedAt
  },
  "battleCards": *[_type == "battleCard" && (title match $searchTerm + "*")] | order(_updatedAt desc) [0...10] {
    _id, _type, title, slug, positioningSanityValue, featuredStatus, _updatedAt
  },
  "compliance": *[_type == "compliance" && (title match $searchTerm + "*" || description match $searchTerm + "*")] | order(_updatedAt desc) [0...10] {
    _id, _type, title, description, complianceCategory, type, isActive, _updatedAt
  },
  "demos": *[_type == "demo" && (title match $searchTerm + "*" || description match $searchTerm + "*")] | order(_updatedAt desc) [0...10] {
    _id, _type, title, slug, description, demoType, difficulty, estimatedDuration, featuredStatus, _updatedAt
  },
  "painPoints": *[_type == "painPoint" && (title match $searchTerm + "*" || description match $searchTerm + "*")] | order(_updatedAt desc) [0...10] {
    _id, _type, title, description, _updatedAt
  },
  "personas": *[_type == "persona" && (title match $searchTerm + "*" || description match $searchTerm + "*")] | order(_updatedAt desc) [0...10] {
    _id, _type, title, category, description, _updatedAt
  }
}`
)

// Home page: 6 newest featured items and the 12 newest items overall.
const HomepageFeed = `{
  "featured": *[_type in ` + feedTypes + ` && featuredStatus == "featured"] | order(_updatedAt desc) [0...6] {
    ` + cardFields + `
  },
  "latest": *[_type in ` + feedTypes + `] | order(_updatedAt desc) [0...12] {
    ` + cardFields + `
  }
}`

// Filtered listings
const (
	ResourcesByCategory = `*[_type == "resource" && resourceCategory == $category] | order(_updatedAt desc) {
  _id, _type, title, description, type, resourceCategory, featuredStatus, _updatedAt
}`

	ResourcesByType = `*[_type == "resource" && type == $resourceType] | order(order asc) {` + resourceFields + `
}`

	ContentByRole = `*[_type in ["resource", "lesson", "salesPlay"] && $roleId in targetRoles[]._ref] | order(order asc, title asc) {
  _id,
  _type,
  title,
  description,
  order
}`

	ContentByStage = `*[_type == "salesPlay" && $stageId in salesStages[]._ref] | order(title asc) {` + salesPlayFields + `
}`

	ComplianceByCategory = `*[_type == "compliance" && complianceCategory == $category && isActive == true] | order(order asc) {` + complianceFields + `
}`

	DemosByType = `*[_type == "demo" && demoType == $demoType] | order(title asc) {` + demoFields + `
}`

	ComplianceCategories = `array::distinct(*[_type == "compliance" && isActive == true].complianceCategory) | order(asc)`
)

// Single records, all keyed by $id.
const (
	ResourceByID = `*[_type == "resource" && _id == $id][0] {` + resourceFields + `
}`
	LessonByID = `*[_type == "lesson" && _id == $id][0] {` + lessonFields + `
}`
	ModuleByID = `*[_type == "academyModule" && _id == $id][0] {` + moduleFields + `
}`
	SalesPlayByID = `*[_type == "salesPlay" && _id == $id][0] {` + salesPlayFields + `
}`
	PlaybookByID = `*[_type == "playbook" && _id == $id][0] {` + playbookFields + `
}`
	PostByID = `*[_type == "post" && _id == $id][0] {` + postFields + `
}`
	DemoByID = `*[_type == "demo" && _id == $id][0] {` + demoFields + `
}`
	ProductGuideByID = `*[_type == "productGuide" && _id == $id][0] {` + productGuideFields + `
}`
	PainPointByID = `*[_type == "painPoint" && _id == $id][0] {` + painPointFields + `
}`
	PersonaByID = `*[_type == "persona" && _id == $id][0] {` + personaFields + `
}`
	ComplianceByID = `*[_type == "compliance" && _id == $id][0] {` + complianceFields + `
}`
	KnowledgeArticleByID = `*[_type == "knowledgeArticle" && _id == $id][0] {
  _id,
  _type,
  title,
  description,
  slug,
  body,
  featuredStatus,
  _updatedAt
}`
	BattleCardByID = `*[_type == "battleCard" && _id == $id][0] {
  _id,
  _type,
  title,
  slug,
  logo,
  positioningSanityValue,
  _updatedAt
}`
)

// Supporting lists
const (
	AllRoles = `*[_type == "role"] | order(title asc) {
  _id,
  title,
  description
}`

	AllSalesStages = `*[_type == "salesStage"] | order(order asc) {
  _id,
  title,
  description,
  order
}`
)

var byID = map[string]string{
	"resource":      ResourceByID,
	"lesson":        LessonByID,
	"academyModule": ModuleByID,
	"salesPlay":     SalesPlayByID,
	"playbook":      PlaybookByID,
	"post":          PostByID,
	"demo":          DemoByID,
	"productGuide":  ProductGuideByID,
	"painPoint":     PainPointByID,
	"persona":       PersonaByID,

	"compliance":       ComplianceByID,
	"knowledgeArticle": KnowledgeArticleByID,
	"battleCard":       BattleCardByID,
}

// ByIDQuery returns the single-record template for a type discriminator.
func ByIDQuery(contentType string) (string, bool) {
	q, ok := byID[contentType]
	return q, ok
}
