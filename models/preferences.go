package models

import (
	"regexp"

	"github.com/go-playground/validator"
)

type UserPreference struct {
	JsonModel
	UserAccount   UserAccount `json:"-"`
	UserAccountID uint        `gorm:"uniqueIndex" json:"-"`

	FavoriteColors   []string `gorm:"serializer:json" json:"favorite_colors"`
	FavoriteStyles   []string `gorm:"serializer:json" json:"favorite_styles"`
	FavoritePatterns []string `gorm:"serializer:json" json:"favorite_patterns"`
	DislikedColors   []string `gorm:"serializer:json" json:"disliked_colors"`
	DislikedStyles   []string `gorm:"serializer:json" json:"disliked_styles"`
	DislikedPatterns []string `gorm:"serializer:json" json:"disliked_patterns"`
}

type OutfitRating struct {
	JsonModel
	UserAccount   UserAccount `json:"-"`
	UserAccountID uint        `gorm:"index:idx_rating_user_fingerprint,unique" json:"-"`
	Fingerprint   string      `gorm:"index:idx_rating_user_fingerprint,unique" json:"fingerprint"`
	Rating        float64     `json:"rating"`
}

var occasionRegex = regexp.MustCompile("^(work|casual|formal|sport|party|date|travel|beach)$")

func ValidateOccasion(fl validator.FieldLevel) bool {
	return occasionRegex.MatchString(fl.Field().String())
}
