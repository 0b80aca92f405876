package models

import (
	"regexp"

	"github.com/go-playground/validator"
)

const (
	CategoryTop       = "Top"
	CategoryBottom    = "Bottom"
	CategoryOuterwear = "Outerwear"
	CategoryFootwear  = "Footwear"
	CategoryAccessory = "Accessory"
)

type ClothingItem struct {
	JsonModel
	Owner       UserAccount `json:"-"`
	OwnerID     uint        `json:"-"`
	Brand       string      `json:"brand"`
	GarmentType string      `json:"type"` // e.g., t-shirt, jeans, blazer; drives style/pattern inference
	Material    string      `json:"material"`
	Color       string      `json:"color"`
	WarmthLevel int         `json:"warmth_level"` // higher = warmer
	Category    string      `json:"category"`     // Top, Bottom, Outerwear, Footwear, Accessory
	ImageURL    *string     `json:"image_url"`
}

var categoryRegex = regexp.MustCompile("^(Top|Bottom|Outerwear|Footwear|Accessory)$")

func ValidateCategory(fl validator.FieldLevel) bool {
	return categoryRegex.MatchString(fl.Field().String())
}
