package fashion

import "strings"

type ColorCategory string

const (
	ColorNeutral ColorCategory = "neutral"
	ColorWarm    ColorCategory = "warm"
	ColorCool    ColorCategory = "cool"
	ColorAccent  ColorCategory = "accent"
	ColorPastel  ColorCategory = "pastel"
	ColorEarth   ColorCategory = "earth"
	ColorJewel   ColorCategory = "jewel"
)

type Color struct {
	Name          string
	Category      ColorCategory
	HexCode       string
	Complementary []string
	Analogous     []string
}

var colorPalette = map[string]Color{
	// Neutrals
	"white": {"white", ColorNeutral, "#FFFFFF", []string{"black", "navy"}, []string{"beige", "light gray"}},
	"black": {"black", ColorNeutral, "#000000", []string{"white", "gold"}, []string{"charcoal", "navy"}},
	"gray":  {"gray", ColorNeutral, "#808080", []string{"burgundy", "teal"}, []string{"light gray", "dark gray"}},
	"beige": {"beige", ColorNeutral, "#F5F5DC", []string{"navy", "burgundy"}, []string{"cream", "tan"}},
	"navy":  {"navy", ColorNeutral, "#000080", []string{"white", "gold"}, []string{"royal blue", "dark blue"}},
	"khaki": {"khaki", ColorNeutral, "#C3B091", []string{"burgundy", "teal"}, []string{"tan", "olive"}},

	// Warm colors
	"red":    {"red", ColorWarm, "#FF0000", []string{"green", "teal"}, []string{"burgundy", "coral"}},
	"orange": {"orange", ColorWarm, "#FFA500", []string{"blue", "navy"}, []string{"coral", "amber"}},
	"yellow": {"yellow", ColorWarm, "#FFFF00", []string{"purple", "navy"}, []string{"gold", "amber"}},
	"brown":  {"brown", ColorWarm, "#A52A2A", []string{"teal", "mint"}, []string{"tan", "burgundy"}},

	// Cool colors
	"blue":   {"blue", ColorCool, "#0000FF", []string{"orange", "amber"}, []string{"navy", "teal"}},
	"green":  {"green", ColorCool, "#008000", []string{"red", "burgundy"}, []string{"mint", "olive"}},
	"purple": {"purple", ColorCool, "#800080", []string{"yellow", "gold"}, []string{"lavender", "plum"}},

	// Accent colors
	"pink":     {"pink", ColorAccent, "#FFC0CB", []string{"mint", "sage"}, []string{"rose", "coral"}},
	"teal":     {"teal", ColorAccent, "#008080", []string{"coral", "amber"}, []string{"mint", "navy"}},
	"burgundy": {"burgundy", ColorAccent, "#800020", []string{"sage", "mint"}, []string{"maroon", "wine"}},

	// Pastel colors
	"mint":     {"mint", ColorPastel, "#98FF98", []string{"lavender", "pink"}, []string{"sage", "seafoam"}},
	"lavender": {"lavender", ColorPastel, "#E6E6FA", []string{"sage", "mint"}, []string{"lilac", "periwinkle"}},
	"coral":    {"coral", ColorPastel, "#FF7F50", []string{"teal", "mint"}, []string{"peach", "salmon"}},

	// Earth tones
	"olive": {"olive", ColorEarth, "#808000", []string{"burgundy", "wine"}, []string{"sage", "khaki"}},
	"sage":  {"sage", ColorEarth, "#BCB88A", []string{"burgundy", "wine"}, []string{"olive", "mint"}},
	"rust":  {"rust", ColorEarth, "#B7410E", []string{"teal", "mint"}, []string{"terracotta", "amber"}},

	// Jewel tones
	"emerald":  {"emerald", ColorJewel, "#50C878", []string{"ruby", "burgundy"}, []string{"forest", "jade"}},
	"sapphire": {"sapphire", ColorJewel, "#0F52BA", []string{"amber", "gold"}, []string{"navy", "royal"}},
	"ruby":     {"ruby", ColorJewel, "#E0115F", []string{"emerald", "sage"}, []string{"burgundy", "wine"}},
}

// Directed relation: the categories listed for A are the ones A goes with.
// Not symmetric, always evaluated A -> B.
var colorCompatibility = map[ColorCategory][]ColorCategory{
	ColorNeutral: {ColorNeutral, ColorWarm, ColorCool, ColorAccent, ColorPastel, ColorEarth, ColorJewel},
	ColorWarm:    {ColorNeutral, ColorWarm, ColorEarth},
	ColorCool:    {ColorNeutral, ColorCool, ColorPastel},
	ColorAccent:  {ColorNeutral, ColorPastel},
	ColorPastel:  {ColorNeutral, ColorCool, ColorAccent},
	ColorEarth:   {ColorNeutral, ColorWarm, ColorAccent},
	ColorJewel:   {ColorNeutral, ColorAccent},
}

// ColorCategoryOf maps a free-text color name to its category. Colors
// outside the palette count as neutral.
func ColorCategoryOf(colorName string) ColorCategory {
	if color, ok := colorPalette[strings.ToLower(colorName)]; ok {
		return color.Category
	}
	return ColorNeutral
}

func ColorsCompatible(color1, color2 string) bool {
	cat1 := ColorCategoryOf(color1)
	cat2 := ColorCategoryOf(color2)
	for _, c := range colorCompatibility[cat1] {
		if c == cat2 {
			return true
		}
	}
	return false
}

// ScoreColorCombination scores a set of colors: up to 0.5 for the share of
// neutrals, plus up to 0.5 for the share of compatible pairs.
func ScoreColorCombination(colors []string) float64 {
	if len(colors) == 0 {
		return 0.0
	}

	score := 0.0
	neutralCount := 0
	for _, color := range colors {
		if ColorCategoryOf(color) == ColorNeutral {
			neutralCount++
		}
	}
	neutralFraction := float64(neutralCount) / float64(len(colors))
	if neutralFraction > 0.5 {
		neutralFraction = 0.5
	}
	score += neutralFraction

	compatiblePairs := 0
	totalPairs := 0
	for i := 0; i < len(colors); i++ {
		for j := i + 1; j < len(colors); j++ {
			if ColorsCompatible(colors[i], colors[j]) {
				compatiblePairs++
			}
			totalPairs++
		}
	}
	if totalPairs > 0 {
		score += float64(compatiblePairs) / float64(totalPairs) * 0.5
	}

	return score
}
