package services

import (
	"context"
	"errors"

	"outfitapi/models"

	"gorm.io/gorm"
)

// WardrobeStoreProvider is the recommendation flow's read-only view of a
// user's wardrobe. An unknown user or empty closet yields an empty slice,
// not an error.
type WardrobeStoreProvider interface {
	LoadWardrobe(ctx context.Context, username string) ([]models.ClothingItem, error)
}

type GormWardrobeStore struct {
	DB *gorm.DB
}

func (s *GormWardrobeStore) LoadWardrobe(ctx context.Context, username string) ([]models.ClothingItem, error) {
	var user models.UserAccount
	result := s.DB.WithContext(ctx).Where("username = ?", username).Take(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return []models.ClothingItem{}, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	items := []models.ClothingItem{}
	if err := s.DB.WithContext(ctx).Where("owner_id = ?", user.ID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
