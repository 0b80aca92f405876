package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"outfitapi/dbhelper"
	"outfitapi/fashion"
	"outfitapi/models"
	"outfitapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPreferencesDefaults(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	req := test.NewJSONAuthRequest("GET", "/preferences", UIntToStr(user.ID), "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "Expected status code 200 OK, got %d: %s", rec.Code, rec.Body.String())

	var response fashion.Preferences
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Empty(t, response.FavoriteColors)
	assert.Empty(t, response.DislikedPatterns)
	assert.Empty(t, response.OutfitRatings)
}

func TestUpdatePreferencesRoundtrip(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.PreferencesIn{
		FavoriteColors: []string{"navy", "white"},
		FavoriteStyles: []string{"minimalist"},
		DislikedColors: []string{"neon green"},
	}

	req := test.NewJSONAuthRequest("PUT", "/preferences", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "Expected status code 200 OK, got %d: %s", rec.Code, rec.Body.String())

	var response fashion.Preferences
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, []string{"navy", "white"}, response.FavoriteColors)
	assert.Equal(t, []string{"minimalist"}, response.FavoriteStyles)
	assert.Equal(t, []string{"neon green"}, response.DislikedColors)
	assert.Empty(t, response.FavoritePatterns)

	// persisted, not just echoed
	var record models.UserPreference
	require.NoError(t, db.Where("user_account_id = ?", user.ID).Take(&record).Error)
	assert.Equal(t, []string{"navy", "white"}, record.FavoriteColors)
}

func TestRateOutfitDirectWrite(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.OutfitRatingIn{
		Fingerprint: "abc123",
		Rating:      0.8,
	}

	req := test.NewJSONAuthRequest("POST", "/preferences/ratings", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "Expected status code 200 OK, got %d: %s", rec.Code, rec.Body.String())

	var record models.OutfitRating
	require.NoError(t, db.Where("user_account_id = ? AND fingerprint = ?", user.ID, "abc123").Take(&record).Error)
	assert.Equal(t, 0.8, record.Rating)
}

func TestRateOutfitUpsert(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	for _, rating := range []float64{0.3, 0.9} {
		reqBody := models.OutfitRatingIn{Fingerprint: "abc123", Rating: rating}
		req := test.NewJSONAuthRequest("POST", "/preferences/ratings", UIntToStr(user.ID), reqBody)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	var count int64
	db.Model(&models.OutfitRating{}).Where("user_account_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	var record models.OutfitRating
	require.NoError(t, db.Where("user_account_id = ?", user.ID).Take(&record).Error)
	assert.Equal(t, 0.9, record.Rating)
}

func TestRateOutfitInvalidRating(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.OutfitRatingIn{
		Fingerprint: "abc123",
		Rating:      1.5,
	}

	req := test.NewJSONAuthRequest("POST", "/preferences/ratings", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
