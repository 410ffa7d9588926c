// Package queries is the catalog of GROQ templates the front-end issues.
// Each template fixes its projection, reference expansion and ordering;
// callers pass parameters ($id, $type, $searchTerm, ...) separately.
package queries

const baseFields = `
  _id,
  _type,
  title,
  description,
  order,
  _updatedAt`

const resourceFields = baseFields + `,
  type,
  file,
  link,
  resourceCategory,
  caseStudyDetails,
  featuredStatus,
  targetRoles[]->{ _id, title },
  feedback[]->{ _id },
  analytics->{ _id }`

const lessonFields = baseFields + `,
  summary,
  estimatedTime,
  content,
  videos[]->{ _id, title },
  quizzes[]->{ _id, title },
  resources[]->{ _id, title },
  feedback[]->{ _id },
  analytics->{ _id }`

const moduleFields = baseFields + `,
  lessons[]->{ _id, title, summary, estimatedTime }`

const salesPlayFields = baseFields + `,
  content,
  targetRoles[]->{ _id, title },
  salesStages[]->{ _id, title }`

const playbookFields = baseFields + `,
  content,
  salesPlays[]->{ _id, title }`

const postFields = baseFields + `,
  slug,
  excerpt,
  body,
  publishedAt`

const complianceFields = `
  _id,
  _type,
  title,
  description,
  type,
  complianceCategory,
  file,
  link,
  effectiveDate,
  lastUpdated,
  version,
  isActive,
  isPublic,
  regions,
  order,
  _updatedAt`

const demoFields = `
  _id,
  _type,
  title,
  slug,
  description,
  demoType,
  urls,
  useCases,
  productGuides[]->{ _id, title, slug },
  demoSteps,
  technicalNotes,
  estimatedDuration,
  difficulty,
  targetRoles[]->{ _id, title },
  tags,
  featuredStatus,
  _updatedAt`

const productGuideFields = `
  _id,
  _type,
  title,
  slug,
  productFocus,
  guideType,
  overview,
  details,
  relatedResources[]->{ _id, _type, title, description, type },
  featuredStatus,
  isFeatured,
  _updatedAt`

const painPointFields = `
  _id,
  _type,
  title,
  description,
  personas[]->{ _id, title, category, description },
  symptoms,
  consequences,
  solution,
  competitiveDifferentiators,
  discoRecordings[]->{ _id, title, description },
  demoRecordings[]->{ _id, title, description },
  relatedResources[]->{ _id, title, description },
  owner->{ _id, name },
  _updatedAt`

const personaFields = `
  _id,
  _type,
  title,
  category,
  description,
  painPoints[]->{ _id, title, description },
  _updatedAt`

// cardFields is the projection shared by the home feed buckets.
const cardFields = `_id, _type, title, description, type, resourceCategory, caseStudyDetails, slug, productFocus, guideType, overview, details, complianceCategory, positioningSanityValue, body, demoType, difficulty, estimatedDuration, category, featuredStatus, _updatedAt`

// feedTypes are the types that appear on the home page.
const feedTypes = `["resource", "knowledgeArticle", "productGuide", "battleCard", "compliance", "demo", "painPoint", "persona"]`
