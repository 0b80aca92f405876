package models

type ClothingItemIn struct {
	Brand       string  `json:"brand" validate:"omitempty,max=100"`
	GarmentType string  `json:"type" validate:"required,max=100"`
	Material    string  `json:"material" validate:"omitempty,max=100"`
	Color       string  `json:"color" validate:"required,max=50"`
	WarmthLevel int     `json:"warmth_level" validate:"min=0,max=10"`
	Category    string  `json:"category" validate:"required,category"`
	FileName    *string `json:"file_name" validate:"omitempty,max=200"`
}

type PreferencesIn struct {
	FavoriteColors   []string `json:"favorite_colors" validate:"dive,max=50"`
	FavoriteStyles   []string `json:"favorite_styles" validate:"dive,max=50"`
	FavoritePatterns []string `json:"favorite_patterns" validate:"dive,max=50"`
	DislikedColors   []string `json:"disliked_colors" validate:"dive,max=50"`
	DislikedStyles   []string `json:"disliked_styles" validate:"dive,max=50"`
	DislikedPatterns []string `json:"disliked_patterns" validate:"dive,max=50"`
}

type OutfitRatingIn struct {
	Fingerprint string  `json:"fingerprint" validate:"required,max=128"`
	Rating      float64 `json:"rating" validate:"min=0,max=1"`
}

type RecommendIn struct {
	City     string `json:"city" validate:"required,max=100"`
	Occasion string `json:"occasion" validate:"omitempty,occasion"`
}
