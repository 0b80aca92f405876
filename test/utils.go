package test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"time"

	"outfitapi/fashion"
	"outfitapi/models"
	"outfitapi/services"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func JsonString(model interface{}) string {
	bytes, _ := json.Marshal(model)
	return string(bytes)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {

	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func GenerateUserToken(userPk string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userPk,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	t, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Fatalf("Error when signing user token for %s. Error %s ", userPk, err)
	}
	return t
}

func NewJSONAuthRequest(method string, target string, userPk string, param interface{}) *http.Request {
	log.Println(JsonString(param))
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	token := GenerateUserToken(userPk)
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", token))
	return req
}

const FakeUserPassword = "strongpassword1"

func FakeUser(db *gorm.DB) *models.UserAccount {
	hash, _ := bcrypt.GenerateFromPassword([]byte(FakeUserPassword), bcrypt.MinCost)
	user := &models.UserAccount{
		Username: "ournameuser",
		Password: string(hash),
		LastIp:   "123.122.122.122",
	}
	db.Create(&user)
	return user
}

func FakeUserNamed(db *gorm.DB, username string) *models.UserAccount {
	hash, _ := bcrypt.GenerateFromPassword([]byte(FakeUserPassword), bcrypt.MinCost)
	user := &models.UserAccount{
		Username: username,
		Password: string(hash),
		LastIp:   "123.122.122.122",
	}
	db.Create(&user)
	return user
}

func FakeClothingItem(db *gorm.DB, ownerID uint, garmentType string, color string, warmth int, category string) *models.ClothingItem {
	item := &models.ClothingItem{
		OwnerID:     ownerID,
		Brand:       "Acme",
		GarmentType: garmentType,
		Material:    "cotton",
		Color:       color,
		WarmthLevel: warmth,
		Category:    category,
	}
	db.Create(&item)
	return item
}

func Contains(items []string, lookFor string) bool {

	for i := 0; i < len(items); i++ {

		if items[i] == lookFor {
			return true
		}
	}
	return false
}

func NewRefString(data string) *string {
	return &data
}

type WeatherServiceMock struct {
	Reading  *services.WeatherReading
	Readings []services.WeatherReading
	Err      error
}

func (m WeatherServiceMock) CurrentWeather(ctx context.Context, city string) (*services.WeatherReading, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Reading, nil
}

func (m WeatherServiceMock) MajorCitiesWeather(ctx context.Context) ([]services.WeatherReading, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Readings, nil
}

type AWSProviderMock struct {
	MockUrl string
}

func (awsService AWSProviderMock) InitPresignClient(ctx context.Context) error {
	return nil
}

func (awsService AWSProviderMock) PresignLink(ctx context.Context, bucketName string, fileName string) (string, error) {

	return fmt.Sprintf("https://fakebucketurl.com/%s", fileName), nil
}

func (awsService AWSProviderMock) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	return awsService.MockUrl, nil
}

type URLCacheMock struct {
	MockUrl string
	Err     error
}

func (m URLCacheMock) GetReadURL(ctx context.Context, objectKey string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.MockUrl != "" {
		return m.MockUrl, nil
	}
	return fmt.Sprintf("https://fakebucketurl.com/%s", objectKey), nil
}

// InMemoryPreferenceStore keeps preferences and ratings in maps so the
// recommendation flow can be exercised without postgres.
type InMemoryPreferenceStore struct {
	mu          sync.Mutex
	Preferences map[string]*fashion.Preferences
	Ratings     map[string]map[string]float64
}

func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	return &InMemoryPreferenceStore{
		Preferences: map[string]*fashion.Preferences{},
		Ratings:     map[string]map[string]float64{},
	}
}

func (s *InMemoryPreferenceStore) LoadPreferences(ctx context.Context, username string) (*fashion.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.Preferences[username]
	if !ok {
		stored = fashion.DefaultPreferences()
	}
	result := *stored
	result.OutfitRatings = map[string]float64{}
	for fingerprint, rating := range stored.OutfitRatings {
		result.OutfitRatings[fingerprint] = rating
	}
	for fingerprint, rating := range s.Ratings[username] {
		result.OutfitRatings[fingerprint] = rating
	}
	return &result, nil
}

func (s *InMemoryPreferenceStore) UpdatePreferences(ctx context.Context, username string, prefs models.PreferencesIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := fashion.DefaultPreferences()
	stored.FavoriteColors = prefs.FavoriteColors
	stored.FavoriteStyles = prefs.FavoriteStyles
	stored.FavoritePatterns = prefs.FavoritePatterns
	stored.DislikedColors = prefs.DislikedColors
	stored.DislikedStyles = prefs.DislikedStyles
	stored.DislikedPatterns = prefs.DislikedPatterns
	s.Preferences[username] = stored
	return nil
}

func (s *InMemoryPreferenceStore) RecordOutfitRating(ctx context.Context, username string, fingerprint string, rating float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Ratings[username] == nil {
		s.Ratings[username] = map[string]float64{}
	}
	s.Ratings[username][fingerprint] = rating
	return nil
}

func (s *InMemoryPreferenceStore) OutfitRating(ctx context.Context, username string, fingerprint string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rating, ok := s.Ratings[username][fingerprint]; ok {
		return rating, nil
	}
	return 0.5, nil
}

type StaticWardrobeStore struct {
	Items []models.ClothingItem
	Err   error
}

func (s StaticWardrobeStore) LoadWardrobe(ctx context.Context, username string) ([]models.ClothingItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Items, nil
}
