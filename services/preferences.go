package services

import (
	"context"
	"errors"

	"outfitapi/fashion"
	"outfitapi/models"

	"gorm.io/gorm"
)

// PreferenceStoreProvider persists a user's stated taste and their outfit
// rating history. Loads return defaults for users who never saved
// anything; rating writes are best-effort from the caller's point of view.
type PreferenceStoreProvider interface {
	LoadPreferences(ctx context.Context, username string) (*fashion.Preferences, error)
	UpdatePreferences(ctx context.Context, username string, prefs models.PreferencesIn) error
	RecordOutfitRating(ctx context.Context, username string, fingerprint string, rating float64) error
	OutfitRating(ctx context.Context, username string, fingerprint string) (float64, error)
}

type GormPreferenceStore struct {
	DB *gorm.DB
}

func (s *GormPreferenceStore) user(ctx context.Context, username string) (*models.UserAccount, error) {
	var user models.UserAccount
	result := s.DB.WithContext(ctx).Where("username = ?", username).Take(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *GormPreferenceStore) LoadPreferences(ctx context.Context, username string) (*fashion.Preferences, error) {
	preferences := fashion.DefaultPreferences()

	user, err := s.user(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return preferences, nil
	}
	if err != nil {
		return nil, err
	}

	var record models.UserPreference
	result := s.DB.WithContext(ctx).Where("user_account_id = ?", user.ID).Take(&record)
	if result.Error == nil {
		preferences.FavoriteColors = record.FavoriteColors
		preferences.FavoriteStyles = record.FavoriteStyles
		preferences.FavoritePatterns = record.FavoritePatterns
		preferences.DislikedColors = record.DislikedColors
		preferences.DislikedStyles = record.DislikedStyles
		preferences.DislikedPatterns = record.DislikedPatterns
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	var ratings []models.OutfitRating
	if err := s.DB.WithContext(ctx).Where("user_account_id = ?", user.ID).Find(&ratings).Error; err != nil {
		return nil, err
	}
	for _, rating := range ratings {
		preferences.OutfitRatings[rating.Fingerprint] = rating.Rating
	}
	return preferences, nil
}

func (s *GormPreferenceStore) UpdatePreferences(ctx context.Context, username string, prefs models.PreferencesIn) error {
	user, err := s.user(ctx, username)
	if err != nil {
		return err
	}

	var record models.UserPreference
	result := s.DB.WithContext(ctx).Where("user_account_id = ?", user.ID).Take(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		record = models.UserPreference{UserAccountID: user.ID}
	} else if result.Error != nil {
		return result.Error
	}

	record.FavoriteColors = emptyIfNil(prefs.FavoriteColors)
	record.FavoriteStyles = emptyIfNil(prefs.FavoriteStyles)
	record.FavoritePatterns = emptyIfNil(prefs.FavoritePatterns)
	record.DislikedColors = emptyIfNil(prefs.DislikedColors)
	record.DislikedStyles = emptyIfNil(prefs.DislikedStyles)
	record.DislikedPatterns = emptyIfNil(prefs.DislikedPatterns)
	return s.DB.WithContext(ctx).Save(&record).Error
}

func (s *GormPreferenceStore) RecordOutfitRating(ctx context.Context, username string, fingerprint string, rating float64) error {
	user, err := s.user(ctx, username)
	if err != nil {
		return err
	}

	var record models.OutfitRating
	result := s.DB.WithContext(ctx).Where("user_account_id = ? AND fingerprint = ?", user.ID, fingerprint).Take(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		record = models.OutfitRating{UserAccountID: user.ID, Fingerprint: fingerprint}
	} else if result.Error != nil {
		return result.Error
	}
	record.Rating = rating
	return s.DB.WithContext(ctx).Save(&record).Error
}

func (s *GormPreferenceStore) OutfitRating(ctx context.Context, username string, fingerprint string) (float64, error) {
	user, err := s.user(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0.5, nil
	}
	if err != nil {
		return 0.5, err
	}

	var record models.OutfitRating
	result := s.DB.WithContext(ctx).Where("user_account_id = ? AND fingerprint = ?", user.ID, fingerprint).Take(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return 0.5, nil
	}
	if result.Error != nil {
		return 0.5, result.Error
	}
	return record.Rating, nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
