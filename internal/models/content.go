package models

import (
	"time"

	"github.com/bilgisen/atlas/internal/portabletext"
)

// Type discriminators used by the content platform.
const (
	TypeResource         = "resource"
	TypeKnowledgeArticle = "knowledgeArticle"
	TypeProductGuide     = "productGuide"
	TypeBattleCard       = "battleCard"
	TypeCompliance       = "compliance"
	TypeDemo             = "demo"
	TypePainPoint        = "painPoint"
	TypePersona          = "persona"
	TypeLesson           = "lesson"
	TypeModule           = "academyModule"
	TypeSalesPlay        = "salesPlay"
	TypePlaybook         = "playbook"
	TypePost             = "post"
)

// Slug is the platform's slug object.
type Slug struct {
	Current string `json:"current"`
}

// AssetRef points at an uploaded file or image.
type AssetRef struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
	Alt string `json:"alt,omitempty"`
}

// Ref is an expanded reference: a read-only snapshot of a related record
// resolved by the query.
type Ref struct {
	ID            string `json:"_id"`
	Type          string `json:"_type,omitempty"`
	Title         string `json:"title,omitempty"`
	Name          string `json:"name,omitempty"`
	Description   string `json:"description,omitempty"`
	Summary       string `json:"summary,omitempty"`
	Category      string `json:"category,omitempty"`
	Kind          string `json:"type,omitempty"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
	Slug          *Slug  `json:"slug,omitempty"`
}

// CaseStudyDetails is set on resources in the caseStudy category.
type CaseStudyDetails struct {
	Industry          string `json:"industry,omitempty"`
	UseCase           string `json:"useCase,omitempty"`
	CompanySize       string `json:"companySize,omitempty"`
	BusinessChallenge string `json:"businessChallenge,omitempty"`
}

// IsZero reports whether none of the badge fields are set.
func (d *CaseStudyDetails) IsZero() bool {
	return d == nil || (d.Industry == "" && d.UseCase == "" && d.CompanySize == "")
}

// DemoURL is one of a demo's entry points.
type DemoURL struct {
	Label       string `json:"label"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// DemoUseCase describes where a demo applies.
type DemoUseCase struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Industry    string `json:"industry,omitempty"`
	CompanySize string `json:"companySize,omitempty"`
}

// Item is a flat content record. Type decides which optional fields carry
// meaning; the rest stay zero.
type Item struct {
	ID        string    `json:"_id"`
	Type      string    `json:"_type"`
	Title     string    `json:"title"`
	UpdatedAt time.Time `json:"_updatedAt"`
	Slug      *Slug     `json:"slug,omitempty"`
	Order     float64   `json:"order,omitempty"`

	Description string `json:"description,omitempty"`
	Overview    string `json:"overview,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Excerpt     string `json:"excerpt,omitempty"`

	FeaturedStatus string `json:"featuredStatus,omitempty"`
	IsFeatured     bool   `json:"isFeatured,omitempty"`

	// resource, compliance
	Kind               string            `json:"type,omitempty"`
	File               *AssetRef         `json:"file,omitempty"`
	Link               string            `json:"link,omitempty"`
	ResourceCategory   string            `json:"resourceCategory,omitempty"`
	CaseStudyDetails   *CaseStudyDetails `json:"caseStudyDetails,omitempty"`
	ComplianceCategory string            `json:"complianceCategory,omitempty"`
	EffectiveDate      string            `json:"effectiveDate,omitempty"`
	LastUpdated        string            `json:"lastUpdated,omitempty"`
	Version            string            `json:"version,omitempty"`
	IsActive           bool              `json:"isActive,omitempty"`
	IsPublic           bool              `json:"isPublic,omitempty"`
	Regions            []string          `json:"regions,omitempty"`

	// productGuide
	ProductFocus string              `json:"productFocus,omitempty"`
	GuideType    string              `json:"guideType,omitempty"`
	Details      portabletext.Blocks `json:"details,omitempty"`

	// knowledgeArticle, post, battleCard
	Body        portabletext.Blocks `json:"body,omitempty"`
	Positioning portabletext.Blocks `json:"positioningSanityValue,omitempty"`
	Logo        *AssetRef           `json:"logo,omitempty"`
	PublishedAt string              `json:"publishedAt,omitempty"`

	// demo
	DemoType          string              `json:"demoType,omitempty"`
	URLs              []DemoURL           `json:"urls,omitempty"`
	UseCases          []DemoUseCase       `json:"useCases,omitempty"`
	DemoSteps         portabletext.Blocks `json:"demoSteps,omitempty"`
	TechnicalNotes    portabletext.Blocks `json:"technicalNotes,omitempty"`
	EstimatedDuration string              `json:"estimatedDuration,omitempty"`
	Difficulty        string              `json:"difficulty,omitempty"`
	Tags              []string            `json:"tags,omitempty"`

	// painPoint, persona
	Category                   string              `json:"category,omitempty"`
	Symptoms                   portabletext.Blocks `json:"symptoms,omitempty"`
	Consequences               portabletext.Blocks `json:"consequences,omitempty"`
	Solution                   portabletext.Blocks `json:"solution,omitempty"`
	CompetitiveDifferentiators portabletext.Blocks `json:"competitiveDifferentiators,omitempty"`
	Owner                      *Ref                `json:"owner,omitempty"`

	// lesson, salesPlay, playbook
	EstimatedTime string              `json:"estimatedTime,omitempty"`
	Content       portabletext.Blocks `json:"content,omitempty"`

	// expanded references
	TargetRoles      []Ref `json:"targetRoles,omitempty"`
	Roles            []Ref `json:"roles,omitempty"`
	AffectedRoles    []Ref `json:"affectedRoles,omitempty"`
	RelatedResources []Ref `json:"relatedResources,omitempty"`
	ProductGuides    []Ref `json:"productGuides,omitempty"`
	Personas         []Ref `json:"personas,omitempty"`
	PainPoints       []Ref `json:"painPoints,omitempty"`
	DiscoRecordings  []Ref `json:"discoRecordings,omitempty"`
	DemoRecordings   []Ref `json:"demoRecordings,omitempty"`
	Lessons          []Ref `json:"lessons,omitempty"`
	Videos           []Ref `json:"videos,omitempty"`
	Quizzes          []Ref `json:"quizzes,omitempty"`
	Resources        []Ref `json:"resources,omitempty"`
	SalesPlays       []Ref `json:"salesPlays,omitempty"`
	SalesStages      []Ref `json:"salesStages,omitempty"`
}

// Featured reports whether the item is promoted on the home page.
func (i *Item) Featured() bool {
	return i.FeaturedStatus == "featured" || i.IsFeatured
}

// IsCaseStudy reports whether the item is a case-study resource with details.
func (i *Item) IsCaseStudy() bool {
	return i.Type == TypeResource && i.ResourceCategory == "caseStudy" && !i.CaseStudyDetails.IsZero()
}

// Feed is the home page bundle.
type Feed struct {
	Featured []Item `json:"featured"`
	Latest   []Item `json:"latest"`
}

// SearchBuckets is the keyed result of the global search query.
type SearchBuckets struct {
	Resources         []Item `json:"resources"`
	KnowledgeArticles []Item `json:"knowledgeArticles"`
	ProductGuides     []Item `json:"productGuides"`
	BattleCards       []Item `json:"battleCards"`
	Compliance        []Item `json:"compliance"`
	Demos             []Item `json:"demos"`
	PainPoints        []Item `json:"painPoints"`
	Personas          []Item `json:"personas"`
}
