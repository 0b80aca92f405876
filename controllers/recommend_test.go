package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"outfitapi/dbhelper"
	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coldLondon() test.WeatherServiceMock {
	return test.WeatherServiceMock{
		Reading: &services.WeatherReading{City: "London", Temperature: 3, Conditions: "Clouds", Humidity: 80, WindSpeed: 5.5},
	}
}

func TestRecommendOk(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, coldLondon(), &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	test.FakeClothingItem(db, user.ID, "sweatshirt", "gray", 8, models.CategoryTop)
	test.FakeClothingItem(db, user.ID, "jeans", "navy", 7, models.CategoryBottom)
	test.FakeClothingItem(db, user.ID, "parka", "olive", 9, models.CategoryOuterwear)
	test.FakeClothingItem(db, user.ID, "boots", "brown", 8, models.CategoryFootwear)

	reqBody := models.RecommendIn{City: "London"}
	req := test.NewJSONAuthRequest("POST", "/recommend", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "Expected status code 200 OK, got %d: %s", rec.Code, rec.Body.String())

	var response RecommendationOut
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	require.NotEmpty(t, response.Outfit)
	require.NotEmpty(t, response.Fingerprint)
	require.NotNil(t, response.Scores)
	require.NotNil(t, response.Weather)
	assert.Equal(t, "London", response.Weather.City)
	assert.Empty(t, response.Message)

	// the winning outfit's rating is stored for the next recommendation
	var rating models.OutfitRating
	require.NoError(t, db.Where("user_account_id = ? AND fingerprint = ?", user.ID, response.Fingerprint).Take(&rating).Error)
	assert.InDelta(t, response.Total, rating.Rating, 1e-9)
}

func TestRecommendEmptyWardrobe(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, coldLondon(), &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.RecommendIn{City: "London"}
	req := test.NewJSONAuthRequest("POST", "/recommend", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response RecommendationOut
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Empty(t, response.Outfit)
	assert.NotNil(t, response.Weather)
	assert.Equal(t, "No suitable outfit found for your wardrobe.", response.Message)
}

func TestRecommendWeatherUnavailable(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{Err: services.ErrWeatherUnavailable}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.RecommendIn{City: "Atlantis"}
	req := test.NewJSONAuthRequest("POST", "/recommend", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRecommendInvalidOccasion(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, coldLondon(), &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.RecommendIn{City: "London", Occasion: "wedding"}
	req := test.NewJSONAuthRequest("POST", "/recommend", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendWithOccasion(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, coldLondon(), &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	test.FakeClothingItem(db, user.ID, "dress shirt", "white", 8, models.CategoryTop)
	test.FakeClothingItem(db, user.ID, "dress pants", "black", 7, models.CategoryBottom)

	reqBody := models.RecommendIn{City: "London", Occasion: "work"}
	req := test.NewJSONAuthRequest("POST", "/recommend", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "Expected status code 200 OK, got %d: %s", rec.Code, rec.Body.String())

	var response RecommendationOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.NotEmpty(t, response.Outfit)
}

func TestRecommendMissingCity(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, coldLondon(), &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.RecommendIn{}
	req := test.NewJSONAuthRequest("POST", "/recommend", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMajorCitiesWeather(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	mock := test.WeatherServiceMock{
		Readings: []services.WeatherReading{
			{City: "New York", Temperature: 12},
			{City: "London", Temperature: 3},
		},
	}
	e := SetupServer(db, mock, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)

	req := test.NewJSONRequest("GET", "/weather/major-cities", "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response map[string][]services.WeatherReading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response["cities"], 2)
	assert.Equal(t, "New York", response["cities"][0].City)
}
