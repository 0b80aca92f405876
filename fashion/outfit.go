package fashion

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Garment categories, the functional slots of an outfit.
const (
	CategoryTop       = "Top"
	CategoryBottom    = "Bottom"
	CategoryOuterwear = "Outerwear"
	CategoryFootwear  = "Footwear"
	CategoryAccessory = "Accessory"
)

// Item is the engine's read-only view of a wardrobe item. Callers map
// their storage records into this before recommending.
type Item struct {
	ID          uint   `json:"id"`
	Brand       string `json:"brand"`
	GarmentType string `json:"type"`
	Material    string `json:"material"`
	Color       string `json:"color"`
	WarmthLevel int    `json:"warmth_level"`
	Category    string `json:"category"`
}

// Outfit maps a category to the single item worn in that slot. Slots may
// be absent; an outfit never holds two items of one category.
type Outfit map[string]Item

func (o Outfit) Items() []Item {
	items := make([]Item, 0, len(o))
	for _, category := range []string{CategoryTop, CategoryBottom, CategoryOuterwear, CategoryFootwear, CategoryAccessory} {
		if item, ok := o[category]; ok {
			items = append(items, item)
		}
	}
	return items
}

// Fingerprint derives the preference-history key for an outfit from
// sorted category:itemID pairs, so the same logical outfit always hashes
// identically regardless of map iteration order.
func (o Outfit) Fingerprint() string {
	pairs := make([]string, 0, len(o))
	for category, item := range o {
		pairs = append(pairs, fmt.Sprintf("%s:%d", category, item.ID))
	}
	sort.Strings(pairs)
	sum := sha256.Sum256([]byte(strings.Join(pairs, "|")))
	return hex.EncodeToString(sum[:])
}
