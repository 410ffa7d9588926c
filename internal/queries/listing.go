package queries

const (
	demoListing = `*[_type == "demo"] {
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
  isFeatured,
  _updatedAt
} | order(title asc)`

	painPointListing = `*[_type == "painPoint"] {
  _id,
  _type,
  title,
  description,
  personas[]->{ _id, title, category },
  _updatedAt
} | order(title asc)`

	personaListing = `*[_type == "persona"] {
  _id,
  _type,
  title,
  category,
  description,
  painPoints[]->{ _id, title },
  _updatedAt
} | order(title asc)`

	// genericListing expects $type.
	genericListing = `*[_type == $type] {
  _id,
  _type,
  title,
  description,
  publishedAt,
  resourceCategory,
  caseStudyDetails,
  positioningSanityValue,
  body,
  overview,
  details,
  productFocus,
  guideType,
  _updatedAt,
  "roles": roles[]->{_id, title, type, level},
  "targetRoles": targetRoles[]->{_id, title, type, level},
  "affectedRoles": affectedRoles[]->{_id, title, type, level}
} | order(publishedAt desc)`
)

// ListingQuery returns the template and parameters for the /content listing
// of a listing type. The pain point listing is addressed as "painpoint".
func ListingQuery(listingType string) (string, map[string]any) {
	switch listingType {
	case "demo":
		return demoListing, nil
	case "painpoint", "painPoint":
		return painPointListing, nil
	case "persona":
		return personaListing, nil
	default:
		return genericListing, map[string]any{"type": listingType}
	}
}
