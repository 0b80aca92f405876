package fashion

import "math/rand"

// DefaultCandidateCount bounds how many random outfits one recommendation
// explores. The wardrobe cross-product is too large to enumerate and a
// good-enough outfit does not need it.
const DefaultCandidateCount = 20

// warmth window around the target level an item may deviate by and still
// be worn in that band
const warmthWindow = 2

// GenerateCandidates assembles up to n randomized candidate outfits from
// the wardrobe. Per category it keeps items within the warmth window,
// narrows to favorite colors/styles when at least one eligible item
// matches, and picks uniformly from what is left. A category with no
// eligible item is simply left out; only outfits with no categories at
// all are dropped.
func GenerateCandidates(items []Item, categories []string, targetWarmth int, preferences *Preferences, n int, rng *rand.Rand) []Outfit {
	if n <= 0 {
		n = DefaultCandidateCount
	}

	byCategory := make(map[string][]Item)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	candidates := make([]Outfit, 0, n)
	for i := 0; i < n; i++ {
		outfit := Outfit{}
		for _, category := range categories {
			eligible := eligibleItems(byCategory[category], targetWarmth)
			if len(eligible) == 0 {
				continue
			}
			if favored := favoredItems(eligible, preferences); len(favored) > 0 {
				eligible = favored
			}
			outfit[category] = eligible[rng.Intn(len(eligible))]
		}
		if len(outfit) == 0 {
			continue
		}
		candidates = append(candidates, outfit)
	}
	return candidates
}

func eligibleItems(items []Item, targetWarmth int) []Item {
	var eligible []Item
	for _, item := range items {
		diff := item.WarmthLevel - targetWarmth
		if diff < 0 {
			diff = -diff
		}
		if diff <= warmthWindow {
			eligible = append(eligible, item)
		}
	}
	return eligible
}

// favoredItems narrows to items matching a stated favorite color or style.
// Empty result means no bias, the caller falls back to the full set.
func favoredItems(items []Item, preferences *Preferences) []Item {
	if preferences == nil {
		return nil
	}
	if len(preferences.FavoriteColors) == 0 && len(preferences.FavoriteStyles) == 0 {
		return nil
	}
	var favored []Item
	for _, item := range items {
		if preferences.likesColor(item.Color) || preferences.likesStyle(StyleLevelOf(item.GarmentType).Label) {
			favored = append(favored, item)
		}
	}
	return favored
}
