package classify

// Curated keyword tables used by the classifier. All tables are package-wide
// read-only constant data; nothing mutates them after init.

// coastalTypes matches OSM category/type values that indicate open coast.
var coastalTypes = map[string]bool{
	"beach":     true,
	"coastline": true,
	"bay":       true,
	"strait":    true,
	"harbor":    true,
	"harbour":   true,
	"cape":      true,
	"reef":      true,
	"shoal":     true,
	"fjord":     true,
}

// islandTypes are unconditionally coastal regardless of any other signal.
var islandTypes = map[string]bool{
	"island":    true,
	"islet":     true,
	"peninsula": true,
}

// waterTypes matches inland large-water features.
var waterTypes = map[string]bool{
	"lake":      true,
	"reservoir": true,
	"lagoon":    true,
	"river":     true,
	"riverbank": true,
	"estuary":   true,
	"water":     true,
	"wetland":   true,
}

// parkTypes matches protected or recreational green areas.
var parkTypes = map[string]bool{
	"park":           true,
	"nature_reserve": true,
	"national_park":  true,
	"reserve":        true,
	"forest":         true,
	"wood":           true,
	"protected_area": true,
	"garden":         true,
}

// urbanTypes matches settlement place types.
var urbanTypes = map[string]bool{
	"city":          true,
	"town":          true,
	"suburb":        true,
	"neighbourhood": true,
	"neighborhood":  true,
	"quarter":       true,
	"borough":       true,
}

// skiTypes matches winter-sports infrastructure types.
var skiTypes = map[string]bool{
	"ski":           true,
	"ski_resort":    true,
	"ski_area":      true,
	"winter_sports": true,
	"piste":         true,
}

// Free-text keyword lists for the fallback tier. Matched as substrings
// against the lowercased blob of display name, category/type, and tags.
var (
	coastalKeywords = []string{
		"beach", "coast", "bay", "harbour", "harbor", "cove", "headland",
		"pier", "jetty", "peninsula", "island", "seaside", "surf",
	}

	waterKeywords = []string{
		"lake", "river", "reservoir", "lagoon", "loch", "estuary",
	}

	parkKeywords = []string{
		"national park", "nature reserve", "state park", "park", "reserve",
		"forest", "trailhead", "wilderness",
	}

	urbanKeywords = []string{
		"city centre", "city center", "downtown", "cbd", "city", "suburb",
	}

	snowKeywords = []string{
		"ski", "snowboard", "snow park", "alpine resort", "glacier", "piste",
	}
)

// Tag markers recognized in tier 1. User tags are the strongest signal.
var (
	surfTagMarkers = []string{"surf", "surfing", "surf spot", "surf-spot", "surfspot", "surf break"}
	snowTagMarkers = []string{"ski", "skiing", "snowboard", "snowboarding", "ski resort", "snow resort"}
)

// knownLocationKind categorizes an entry in the known-locations table.
type knownLocationKind int

const (
	knownSnowResort knownLocationKind = iota
	knownSurfTown
	knownPark
)

// knownLocation is one entry in the curated named-locations table.
type knownLocation struct {
	name string
	kind knownLocationKind
}

// knownLocations is a short curated list of well-known named resorts, parks,
// and coastal surf towns. Consulted only by the free-text fallback tier, as a
// substring match against the text blob. Kept as an ordered slice so that
// classification stays deterministic when more than one name matches.
var knownLocations = []knownLocation{
	// Snow resorts
	{"whistler", knownSnowResort},
	{"aspen", knownSnowResort},
	{"chamonix", knownSnowResort},
	{"zermatt", knownSnowResort},
	{"verbier", knownSnowResort},
	{"niseko", knownSnowResort},
	{"park city", knownSnowResort},
	{"st. anton", knownSnowResort},
	{"st anton", knownSnowResort},
	{"thredbo", knownSnowResort},
	{"queenstown", knownSnowResort},

	// Surf towns and breaks
	{"bondi", knownSurfTown},
	{"malibu", knownSurfTown},
	{"pipeline", knownSurfTown},
	{"jeffreys bay", knownSurfTown},
	{"nazare", knownSurfTown},
	{"nazaré", knownSurfTown},
	{"hossegor", knownSurfTown},
	{"uluwatu", knownSurfTown},
	{"raglan", knownSurfTown},
	{"santa cruz", knownSurfTown},
	{"byron bay", knownSurfTown},
	{"huntington beach", knownSurfTown},

	// Parks
	{"yosemite", knownPark},
	{"yellowstone", knownPark},
	{"banff", knownPark},
	{"zion", knownPark},
	{"snowdonia", knownPark},
	{"torres del paine", knownPark},
}
