package models

// ScenicCategory groups nearby-search keywords under a point type.
type ScenicCategory struct {
	Type     string
	Keywords []string
	Weight   float64
}

// SimpleScenicCategories is the table the scenic point finder walks, in order.
var SimpleScenicCategories = []ScenicCategory{
	{
		Type:     "attraction",
		Keywords: []string{"tourist attraction", "landmark", "point of interest"},
		Weight:   1.0,
	},
	{
		Type:     "nature",
		Keywords: []string{"park", "lake", "scenic view"},
		Weight:   1.0,
	},
}

// AttractionCategories is the full weighted catalogue. The finder does not use
// it; weights are carried on points but nothing ranks by them.
var AttractionCategories = []ScenicCategory{
	{
		Type: "water",
		Keywords: []string{
			"lake", "beach", "waterfront", "river view", "marina", "harbor",
			"waterfall", "bay view", "ocean view", "pond", "reservoir",
			"coastal view", "spring", "hot spring", "swimming hole",
			"water feature", "fountain", "lagoon", "cove", "inlet",
		},
		Weight: 1.5,
	},
	{
		Type: "landmark",
		Keywords: []string{
			"tourist attraction", "historic site", "landmark", "monument",
			"historic landmark", "historic district", "scenic overlook",
			"observation point", "national monument", "historic park",
			"historic building", "historic house", "historic bridge",
			"historic church", "castle", "lighthouse", "lookout tower",
			"vista point", "scenic spot", "overlook",
		},
		Weight: 1.4,
	},
	{
		Type: "nature",
		Keywords: []string{
			"state park", "national park", "scenic viewpoint", "garden",
			"nature preserve", "scenic trail", "nature center",
			"wildlife viewing", "botanical garden", "mountain view",
			"forest preserve", "canyon", "valley", "meadow", "prairie",
			"desert view", "rock formation", "cave", "natural wonder",
			"geological formation",
		},
		Weight: 1.3,
	},
	{
		Type: "cultural",
		Keywords: []string{
			"museum", "art gallery", "theater", "historical place",
			"cultural center", "heritage site", "art center",
			"performing arts", "science museum", "children's museum",
			"history museum", "cultural landmark", "archaeological site",
			"historic mansion", "historic mill", "historic fort",
		},
		Weight: 1.2,
	},
	{
		Type: "entertainment",
		Keywords: []string{
			"amusement park", "theme park", "water park", "zoo", "aquarium",
			"adventure park", "fun center", "miniature golf", "go karts",
			"observation wheel", "scenic railroad", "tourist railroad",
			"scenic drive", "scenic route", "parkway", "boardwalk",
		},
		Weight: 1.1,
	},
	{
		Type: "local",
		Keywords: []string{
			"local attraction", "town square", "main street", "historic downtown",
			"farmers market", "scenic restaurant", "viewpoint cafe",
			"scenic overlook restaurant", "historic inn", "scenic winery",
			"brewery with view", "scenic cafe", "rooftop restaurant",
			"scenic picnic area", "observation deck restaurant",
		},
		Weight: 1.0,
	},
}

// ScenicKeyword is one (category, keyword) pair in iteration order.
type ScenicKeyword struct {
	Category ScenicCategory
	Keyword  string
}

// FlattenKeywords lists every keyword of the given categories in table order.
func FlattenKeywords(categories []ScenicCategory) []ScenicKeyword {
	var out []ScenicKeyword
	for _, c := range categories {
		for _, k := range c.Keywords {
			out = append(out, ScenicKeyword{Category: c, Keyword: k})
		}
	}
	return out
}
