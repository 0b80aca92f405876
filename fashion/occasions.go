package fashion

import (
	"fmt"
	"strings"
)

type Occasion string

const (
	OccasionWork   Occasion = "work"
	OccasionCasual Occasion = "casual"
	OccasionFormal Occasion = "formal"
	OccasionSport  Occasion = "sport"
	OccasionParty  Occasion = "party"
	OccasionDate   Occasion = "date"
	OccasionTravel Occasion = "travel"
	OccasionBeach  Occasion = "beach"
)

var AllOccasions = []Occasion{
	OccasionWork, OccasionCasual, OccasionFormal, OccasionSport,
	OccasionParty, OccasionDate, OccasionTravel, OccasionBeach,
}

// OccasionRequirement bounds what an occasion tolerates: a style rank
// interval (inclusive), patterns that are out, and color-name substrings
// that are out.
type OccasionRequirement struct {
	MinStyleLevel       StyleLevel
	MaxStyleLevel       StyleLevel
	PatternRestrictions []PatternType
	ColorRestrictions   []string
}

var occasionRequirements = map[Occasion]OccasionRequirement{
	OccasionWork: {
		MinStyleLevel:       StyleBusinessCasual,
		MaxStyleLevel:       StyleFormal,
		PatternRestrictions: []PatternType{PatternAnimal, PatternFloral},
		ColorRestrictions:   []string{"neon", "bright"},
	},
	OccasionCasual: {
		MinStyleLevel: StyleCasual,
		MaxStyleLevel: StyleSmartCasual,
	},
	OccasionFormal: {
		MinStyleLevel:       StyleFormal,
		MaxStyleLevel:       StyleFormal,
		PatternRestrictions: []PatternType{PatternFloral, PatternGeometric, PatternAbstract, PatternAnimal},
		ColorRestrictions:   []string{"neon", "bright"},
	},
	OccasionSport: {
		MinStyleLevel: StyleAthleisure,
		MaxStyleLevel: StyleAthleisure,
	},
	OccasionParty: {
		MinStyleLevel: StyleSmartCasual,
		MaxStyleLevel: StyleFormal,
	},
	OccasionDate: {
		MinStyleLevel:       StyleSmartCasual,
		MaxStyleLevel:       StyleFormal,
		PatternRestrictions: []PatternType{PatternAnimal},
		ColorRestrictions:   []string{"neon"},
	},
	OccasionTravel: {
		MinStyleLevel: StyleCasual,
		MaxStyleLevel: StyleSmartCasual,
	},
	OccasionBeach: {
		MinStyleLevel: StyleCasual,
		MaxStyleLevel: StyleCasual,
	},
}

// ParseOccasion validates a caller-supplied occasion token. Unknown tokens
// are a caller error, rejected here before any scoring happens.
func ParseOccasion(value string) (Occasion, error) {
	occasion := Occasion(strings.ToLower(value))
	if _, ok := occasionRequirements[occasion]; !ok {
		return "", fmt.Errorf("unknown occasion: %q", value)
	}
	return occasion, nil
}

// RequirementFor looks up the requirement for a parsed Occasion. The table
// covers every Occasion value, so a miss is a broken invariant.
func RequirementFor(occasion Occasion) OccasionRequirement {
	requirement, ok := occasionRequirements[occasion]
	if !ok {
		panic(fmt.Sprintf("fashion: no requirement entry for occasion %q", occasion))
	}
	return requirement
}
