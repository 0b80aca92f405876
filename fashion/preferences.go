package fashion

import "strings"

// Preferences is a user's stated taste plus their outfit rating history,
// keyed by outfit fingerprint.
type Preferences struct {
	FavoriteColors   []string           `json:"favorite_colors"`
	FavoriteStyles   []string           `json:"favorite_styles"`
	FavoritePatterns []string           `json:"favorite_patterns"`
	DislikedColors   []string           `json:"disliked_colors"`
	DislikedStyles   []string           `json:"disliked_styles"`
	DislikedPatterns []string           `json:"disliked_patterns"`
	OutfitRatings    map[string]float64 `json:"outfit_ratings"`
}

func DefaultPreferences() *Preferences {
	return &Preferences{
		FavoriteColors:   []string{},
		FavoriteStyles:   []string{},
		FavoritePatterns: []string{},
		DislikedColors:   []string{},
		DislikedStyles:   []string{},
		DislikedPatterns: []string{},
		OutfitRatings:    map[string]float64{},
	}
}

// Rating returns the stored rating for a fingerprint, 0.5 when the outfit
// has never been rated.
func (p *Preferences) Rating(fingerprint string) float64 {
	if p == nil || p.OutfitRatings == nil {
		return 0.5
	}
	if rating, ok := p.OutfitRatings[fingerprint]; ok {
		return rating
	}
	return 0.5
}

func (p *Preferences) likesColor(color string) bool {
	return containsFold(p.FavoriteColors, color)
}

func (p *Preferences) likesStyle(label string) bool {
	return containsFold(p.FavoriteStyles, label)
}

func containsFold(values []string, lookFor string) bool {
	for _, v := range values {
		if strings.EqualFold(v, lookFor) {
			return true
		}
	}
	return false
}
