package fashion

import "strings"

// StyleLevel ranks the formality of a garment type. Several labels share a
// rank (streetwear and athleisure sit at the casual rank), so ordering and
// equality for occasion checks go by Rank only.
type StyleLevel struct {
	Rank  int
	Label string
}

var (
	StyleCasual         = StyleLevel{1, "casual"}
	StyleStreetwear     = StyleLevel{1, "streetwear"}
	StyleAthleisure     = StyleLevel{1, "athleisure"}
	StyleBohemian       = StyleLevel{1, "bohemian"}
	StyleSmartCasual    = StyleLevel{2, "smart_casual"}
	StyleMinimalist     = StyleLevel{2, "minimalist"}
	StyleBusinessCasual = StyleLevel{3, "business_casual"}
	StyleFormal         = StyleLevel{4, "formal"}
)

var styleByGarmentType = map[string]StyleLevel{
	// Casual items
	"t-shirt":    StyleCasual,
	"tank top":   StyleCasual,
	"sweatshirt": StyleCasual,
	"hoodie":     StyleCasual,
	"jeans":      StyleCasual,
	"sneakers":   StyleCasual,

	// Smart casual items
	"polo shirt": StyleSmartCasual,
	"chinos":     StyleSmartCasual,
	"loafers":    StyleSmartCasual,
	"blazer":     StyleSmartCasual,

	// Business casual items
	"dress shirt": StyleBusinessCasual,
	"dress pants": StyleBusinessCasual,
	"dress shoes": StyleBusinessCasual,

	// Formal items
	"suit":         StyleFormal,
	"tie":          StyleFormal,
	"formal shoes": StyleFormal,
}

// Directed relation keyed by label, same shape as the color table.
var styleCompatibility = map[string][]string{
	"casual":          {"casual", "smart_casual", "athleisure"},
	"smart_casual":    {"casual", "smart_casual", "business_casual", "minimalist"},
	"business_casual": {"smart_casual", "business_casual", "formal", "minimalist"},
	"formal":          {"business_casual", "formal"},
	"streetwear":      {"casual", "streetwear", "athleisure"},
	"athleisure":      {"casual", "streetwear", "athleisure"},
	"bohemian":        {"casual", "bohemian"},
	"minimalist":      {"smart_casual", "business_casual", "minimalist"},
}

// StyleLevelOf infers the style level from the garment type text, falling
// back to casual for unknown types.
func StyleLevelOf(garmentType string) StyleLevel {
	if level, ok := styleByGarmentType[strings.ToLower(garmentType)]; ok {
		return level
	}
	return StyleCasual
}

func StylesCompatible(style1, style2 StyleLevel) bool {
	for _, label := range styleCompatibility[style1.Label] {
		if label == style2.Label {
			return true
		}
	}
	return false
}

func ScoreStyleCombination(items []Item) float64 {
	if len(items) == 0 {
		return 0.0
	}

	levels := make([]StyleLevel, len(items))
	for i, item := range items {
		levels[i] = StyleLevelOf(item.GarmentType)
	}

	compatiblePairs := 0
	totalPairs := 0
	for i := 0; i < len(levels); i++ {
		for j := i + 1; j < len(levels); j++ {
			if StylesCompatible(levels[i], levels[j]) {
				compatiblePairs++
			}
			totalPairs++
		}
	}
	if totalPairs > 0 {
		return float64(compatiblePairs) / float64(totalPairs)
	}
	return 0.0
}
