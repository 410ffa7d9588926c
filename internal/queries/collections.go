package queries

import "sort"

type collection struct {
	query string
	// param names the single $parameter the template takes, if any.
	param string
}

var collections = map[string]collection{
	"resources":            {query: AllResources},
	"lessons":              {query: AllLessons},
	"modules":              {query: AllModules},
	"salesPlays":           {query: AllSalesPlays},
	"playbooks":            {query: AllPlaybooks},
	"posts":                {query: AllPosts},
	"battleCards":          {query: AllBattleCards},
	"compliance":           {query: AllCompliance},
	"demos":                {query: AllDemos},
	"productGuides":        {query: AllProductGuides},
	"painPoints":           {query: AllPainPoints},
	"personas":             {query: AllPersonas},
	"roles":                {query: AllRoles},
	"salesStages":          {query: AllSalesStages},
	"complianceCategories": {query: ComplianceCategories},

	"resourcesByCategory":  {query: ResourcesByCategory, param: "category"},
	"resourcesByType":      {query: ResourcesByType, param: "resourceType"},
	"contentByRole":        {query: ContentByRole, param: "roleId"},
	"contentByStage":       {query: ContentByStage, param: "stageId"},
	"complianceByCategory": {query: ComplianceByCategory, param: "category"},
	"demosByType":          {query: DemosByType, param: "demoType"},
	"searchContent":        {query: SearchContent, param: "query"},
}

// Collection returns the template and parameters for a named collection.
// arg fills the template's parameter and must be set exactly when it takes one.
func Collection(name, arg string) (string, map[string]any, bool) {
	c, ok := collections[name]
	if !ok {
		return "", nil, false
	}
	if c.param == "" {
		return c.query, nil, arg == ""
	}
	if arg == "" {
		return "", nil, false
	}
	return c.query, map[string]any{c.param: arg}, true
}

// CollectionParam returns the parameter a collection takes, or "".
func CollectionParam(name string) string {
	return collections[name].param
}

// Collections lists every collection name, sorted.
func Collections() []string {
	out := make([]string, 0, len(collections))
	for name := range collections {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
