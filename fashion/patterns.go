package fashion

import "strings"

type PatternType string

const (
	PatternSolid     PatternType = "solid"
	PatternStriped   PatternType = "striped"
	PatternChecked   PatternType = "checked"
	PatternPlaid     PatternType = "plaid"
	PatternFloral    PatternType = "floral"
	PatternGeometric PatternType = "geometric"
	PatternAbstract  PatternType = "abstract"
	PatternAnimal    PatternType = "animal"
)

type Pattern struct {
	Type    PatternType
	Scale   string // small, medium, large
	Density string // sparse, medium, dense
}

// Solid goes with everything; everything else only goes back to solid,
// except striped and checked which also mix with each other.
var patternCompatibility = map[PatternType][]PatternType{
	PatternSolid: {PatternSolid, PatternStriped, PatternChecked, PatternPlaid,
		PatternFloral, PatternGeometric, PatternAbstract, PatternAnimal},
	PatternStriped:   {PatternSolid, PatternChecked},
	PatternChecked:   {PatternSolid, PatternStriped},
	PatternPlaid:     {PatternSolid},
	PatternFloral:    {PatternSolid},
	PatternGeometric: {PatternSolid},
	PatternAbstract:  {PatternSolid},
	PatternAnimal:    {PatternSolid},
}

// PatternOf infers a pattern from the garment type text. The color is
// accepted but not consulted; inference is a pure function of the type
// text, with solid as the fallback.
func PatternOf(garmentType string, color string) Pattern {
	lower := strings.ToLower(garmentType)
	switch {
	case strings.Contains(lower, "striped"):
		return Pattern{PatternStriped, "medium", "medium"}
	case strings.Contains(lower, "plaid"):
		return Pattern{PatternPlaid, "large", "dense"}
	case strings.Contains(lower, "floral"):
		return Pattern{PatternFloral, "medium", "medium"}
	case strings.Contains(lower, "check"):
		return Pattern{PatternChecked, "medium", "medium"}
	case strings.Contains(lower, "animal"):
		return Pattern{PatternAnimal, "large", "sparse"}
	default:
		return Pattern{PatternSolid, "small", "sparse"}
	}
}

func PatternsCompatible(pattern1, pattern2 Pattern) bool {
	for _, p := range patternCompatibility[pattern1.Type] {
		if p == pattern2.Type {
			return true
		}
	}
	return false
}

func ScorePatternCombination(items []Item) float64 {
	if len(items) == 0 {
		return 0.0
	}

	patterns := make([]Pattern, len(items))
	for i, item := range items {
		patterns[i] = PatternOf(item.GarmentType, item.Color)
	}

	compatiblePairs := 0
	totalPairs := 0
	for i := 0; i < len(patterns); i++ {
		for j := i + 1; j < len(patterns); j++ {
			if PatternsCompatible(patterns[i], patterns[j]) {
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
