package analysis

// Static vocabulary tables backing the bucketing heuristics. Matching is
// substring containment, not classification, so entries are lowercase stems
// that tolerate pluralization and compounding.

// mediumAliases maps a primary medium to the secondary mediums it implies
var mediumAliases = map[string][]string{
	"painting":    {"oil painting", "acrylic painting", "watercolor", "mixed media"},
	"drawing":     {"illustration", "sketching", "printmaking"},
	"sculpture":   {"installation", "ceramics", "mixed media"},
	"photography": {"digital photography", "film photography", "photojournalism"},
	"printmaking": {"screen printing", "etching", "lithography"},
	"ceramics":    {"pottery", "sculpture"},
	"textile":     {"fiber art", "weaving", "embroidery"},
	"digital":     {"digital illustration", "generative art", "3d modeling"},
	"video":       {"film", "animation", "video installation"},
	"performance": {"dance", "theater", "performance art"},
	"music":       {"sound art", "composition", "audio installation"},
	"writing":     {"poetry", "creative nonfiction", "playwriting"},
}

// Skill category vocabularies. Technical and traditional skills are treated
// as core; business and digital skills as supporting.
var (
	technicalSkillVocab = []string{
		"welding", "woodworking", "metalwork", "casting", "carving",
		"kiln", "glazing", "darkroom", "lighting", "fabrication",
		"screen printing", "etching", "bookbinding", "mold making",
	}
	traditionalSkillVocab = []string{
		"painting", "drawing", "sketching", "illustration", "sculpting",
		"printmaking", "calligraphy", "weaving", "embroidery", "pottery",
		"figure drawing", "color theory", "composition",
	}
	businessSkillVocab = []string{
		"marketing", "grant writing", "fundraising", "budgeting",
		"curation", "project management", "teaching", "networking",
		"sales", "pricing", "negotiation", "exhibition planning",
	}
	digitalSkillVocab = []string{
		"photoshop", "illustrator", "indesign", "procreate", "blender",
		"3d modeling", "video editing", "animation", "web design",
		"social media", "digital photography", "photogrammetry",
	}
)

// interestClusters maps a cluster label to the keywords that place an
// interest in it
var interestClusters = map[string][]string{
	"social practice":  {"community", "social", "activism", "justice", "public"},
	"environment":      {"environment", "climate", "nature", "ecology", "sustainab"},
	"identity":         {"identity", "heritage", "culture", "diaspora", "gender", "queer"},
	"technology":       {"technology", "digital", "ai", "generative", "interactive", "new media"},
	"history":          {"history", "archive", "memory", "tradition", "folklore"},
	"abstraction":      {"abstract", "minimal", "geometry", "form", "color"},
	"figuration":       {"figure", "portrait", "body", "human", "narrative"},
	"craft":            {"craft", "material", "handmade", "textile", "fiber"},
	"urbanism":         {"urban", "city", "architecture", "street", "space"},
	"science":          {"science", "biology", "astronomy", "data", "research"},
}

// interestClusterOrder fixes iteration order so derived lists are deterministic
var interestClusterOrder = []string{
	"social practice", "environment", "identity", "technology", "history",
	"abstraction", "figuration", "craft", "urbanism", "science",
}

// experienceKeywords maps each experience category to its signal keywords
var experienceKeywords = map[string][]string{
	"professional": {
		"professional", "established", "exhibited", "represented",
		"collected", "commissioned", "gallery", "museum", "award",
	},
	"advanced": {
		"advanced", "experienced", "accomplished", "mfa", "residency",
		"solo show", "published", "juried",
	},
	"intermediate": {
		"intermediate", "developing", "emerging", "bfa", "group show",
		"practicing", "portfolio",
	},
	"beginner": {
		"beginner", "beginning", "new to", "learning", "student",
		"hobbyist", "self-taught", "aspiring",
	},
}

// experienceCategoryOrder is the fixed tie-break priority, highest first
var experienceCategoryOrder = []string{"professional", "advanced", "intermediate", "beginner"}

// usStateRegions maps two-letter US state codes to broad regions
var usStateRegions = map[string]string{
	"CT": "Northeast", "ME": "Northeast", "MA": "Northeast", "NH": "Northeast",
	"RI": "Northeast", "VT": "Northeast", "NJ": "Northeast", "NY": "Northeast",
	"PA": "Northeast",
	"IL": "Midwest", "IN": "Midwest", "MI": "Midwest", "OH": "Midwest",
	"WI": "Midwest", "IA": "Midwest", "KS": "Midwest", "MN": "Midwest",
	"MO": "Midwest", "NE": "Midwest", "ND": "Midwest", "SD": "Midwest",
	"DE": "South", "FL": "South", "GA": "South", "MD": "South",
	"NC": "South", "SC": "South", "VA": "South", "WV": "South",
	"AL": "South", "KY": "South", "MS": "South", "TN": "South",
	"AR": "South", "LA": "South", "OK": "South", "TX": "South",
	"DC": "South",
	"AZ": "West", "CO": "West", "ID": "West", "MT": "West",
	"NV": "West", "NM": "West", "UT": "West", "WY": "West",
	"AK": "West", "CA": "West", "HI": "West", "OR": "West",
	"WA": "West",
}

// usStateNames maps full state names (lowercase) to their two-letter codes
var usStateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN",
	"mississippi": "MS", "missouri": "MO", "montana": "MT", "nebraska": "NE",
	"nevada": "NV", "new hampshire": "NH", "new jersey": "NJ",
	"new mexico": "NM", "new york": "NY", "north carolina": "NC",
	"north dakota": "ND", "ohio": "OH", "oklahoma": "OK", "oregon": "OR",
	"pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA",
	"west virginia": "WV", "wisconsin": "WI", "wyoming": "WY",
}
