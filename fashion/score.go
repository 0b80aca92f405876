package fashion

import "strings"

// Weights for the ranking total. Ranking only, the four sub-scores are
// what callers surface.
const (
	colorWeight      = 0.30
	styleWeight      = 0.25
	patternWeight    = 0.20
	preferenceWeight = 0.25
)

type Scores struct {
	Color      float64 `json:"color"`
	Style      float64 `json:"style"`
	Pattern    float64 `json:"pattern"`
	Preference float64 `json:"preference"`
}

func (s Scores) Total() float64 {
	return colorWeight*s.Color + styleWeight*s.Style + patternWeight*s.Pattern + preferenceWeight*s.Preference
}

// ScoreOutfit rates an outfit on color, style and pattern compatibility
// plus the user's rating history, then applies the occasion penalties.
// Occasion and preferences are both optional.
func ScoreOutfit(outfit Outfit, occasion *Occasion, preferences *Preferences) Scores {
	items := outfit.Items()

	colors := make([]string, len(items))
	for i, item := range items {
		colors[i] = item.Color
	}

	scores := Scores{
		Color:      ScoreColorCombination(colors),
		Style:      ScoreStyleCombination(items),
		Pattern:    ScorePatternCombination(items),
		Preference: 0.5,
	}
	if preferences != nil {
		scores.Preference = preferences.Rating(outfit.Fingerprint())
	}

	if occasion != nil {
		applyOccasionAdjustment(&scores, items, colors, *occasion)
	}

	return scores
}

func applyOccasionAdjustment(scores *Scores, items []Item, colors []string, occasion Occasion) {
	requirement := RequirementFor(occasion)

	if len(items) > 0 {
		minRank := StyleLevelOf(items[0].GarmentType).Rank
		maxRank := minRank
		for _, item := range items[1:] {
			rank := StyleLevelOf(item.GarmentType).Rank
			if rank < minRank {
				minRank = rank
			}
			if rank > maxRank {
				maxRank = rank
			}
		}
		if minRank < requirement.MinStyleLevel.Rank || maxRank > requirement.MaxStyleLevel.Rank {
			scores.Style *= 0.5
		}
	}

	// Each offending item halves again, so penalties compound.
	for _, item := range items {
		pattern := PatternOf(item.GarmentType, item.Color)
		for _, restricted := range requirement.PatternRestrictions {
			if pattern.Type == restricted {
				scores.Pattern *= 0.5
				break
			}
		}
	}

	for _, color := range colors {
		if colorRestricted(color, requirement.ColorRestrictions) {
			scores.Color *= 0.5
		}
	}
}

func colorRestricted(color string, restrictions []string) bool {
	lower := strings.ToLower(color)
	for _, restricted := range restrictions {
		if restricted != "" && strings.Contains(lower, restricted) {
			return true
		}
	}
	return false
}
