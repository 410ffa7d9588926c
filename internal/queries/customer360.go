package queries

// Customer 360 lives in its own project.
const (
	Customer360ProjectID = "hzao7xsp"
	Customer360Dataset   = "production"

	// CMSTechnologyID is the technology type that marks content platforms.
	CMSTechnologyID = "9dcd4c38-08dc-4e69-bbe0-64a2e494d955"
)

// Customer takes $id.
const Customer = `*[_type == "customer" && _id == $id][0] {
  'name': coalesce(nameOverride, name),
  companyOverview,
  industry,
  "logo": logo.asset->.url,
  plan,
  arr,
  nameUse,
  "region": region->.name,
  _createdAt,
  useCases[]{
    title,
    description,
    "categories": categories[]->.name,
    greatExampleOf,
    valueDelivered,
    whySanity,
  },
  initialLaunch,
  "allUsecaseCategories": array::unique(useCases[].categories[]->.name)
}`

// TechnologiesForCustomer and PreviousCMSForCustomer take $id and $cmsId.
const (
	TechnologiesForCustomer = `*[_type == "technology" && type._ref != $cmsId && count(*[_type == "customer" && _id == $id && references(^._id)]) > 0 ]{
  _id,
  name,
  "logo": logo.asset->.url,
  "type": type->.name,
}`

	PreviousCMSForCustomer = `*[_type == "technology" && type._ref == $cmsId && count(*[_type == "customer" && _id == $id && references(^._id)]) > 0 ]{
  _id,
  name,
  "logo": logo.asset->.url,
}`
)
