package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"outfitapi/dbhelper"
	"outfitapi/models"
	"outfitapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItemOk(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.ClothingItemIn{
		Brand:       "Acme",
		GarmentType: "t-shirt",
		Material:    "cotton",
		Color:       "white",
		WarmthLevel: 2,
		Category:    models.CategoryTop,
	}

	req := test.NewJSONAuthRequest("POST", "/wardrobe/items", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, "Expected status code 201 Created, got %d: %s", rec.Code, rec.Body.String())

	var response ClothingItemCreatedResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Equal(t, reqBody.GarmentType, response.Item.GarmentType)
	require.Equal(t, reqBody.Category, response.Item.Category)
	require.Empty(t, response.FileUploadUrl)
}

func TestCreateItemWithImageReturnsUploadUrl(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.ClothingItemIn{
		GarmentType: "blazer",
		Color:       "navy",
		WarmthLevel: 5,
		Category:    models.CategoryOuterwear,
		FileName:    StrPointer("blazer.jpg"),
	}

	req := test.NewJSONAuthRequest("POST", "/wardrobe/items", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response ClothingItemCreatedResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("https://fakebucketurl.com/wardrobe/%v/blazer.jpg", user.ID), response.FileUploadUrl)

	var item models.ClothingItem
	require.NoError(t, db.Where("id = ?", response.Item.ID).Take(&item).Error)
	require.NotNil(t, item.ImageURL)
	assert.Equal(t, fmt.Sprintf("wardrobe/%v/blazer.jpg", user.ID), *item.ImageURL)
}

func TestCreateItemInvalidCategory(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)

	reqBody := models.ClothingItemIn{
		GarmentType: "t-shirt",
		Color:       "white",
		Category:    "Headwear",
	}

	req := test.NewJSONAuthRequest("POST", "/wardrobe/items", UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var response map[string]string
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], "Category")
}

func TestCreateItemUnauthorized(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)

	reqBody := models.ClothingItemIn{
		GarmentType: "t-shirt",
		Color:       "white",
		Category:    models.CategoryTop,
	}

	req := test.NewJSONRequest("POST", "/wardrobe/items", reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListItemsGroupedByCategory(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)
	other := test.FakeUserNamed(db, "otheruser")

	test.FakeClothingItem(db, user.ID, "t-shirt", "white", 2, models.CategoryTop)
	test.FakeClothingItem(db, user.ID, "jeans", "navy", 4, models.CategoryBottom)
	test.FakeClothingItem(db, user.ID, "parka", "olive", 9, models.CategoryOuterwear)
	test.FakeClothingItem(db, other.ID, "suit", "black", 5, models.CategoryTop)

	req := test.NewJSONAuthRequest("GET", "/wardrobe/items", UIntToStr(user.ID), "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "Expected status code 200 OK, got %d: %s", rec.Code, rec.Body.String())

	var response WardrobeListResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response.Tops, 1)
	require.Len(t, response.Bottoms, 1)
	require.Len(t, response.Outerwear, 1)
	require.Empty(t, response.Footwear)
	require.Equal(t, "t-shirt", response.Tops[0].GarmentType)
}

func TestListItemsPresignedImages(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{MockUrl: "https://cached.example.com/file"}, nil)
	user := test.FakeUser(db)

	item := test.FakeClothingItem(db, user.ID, "t-shirt", "white", 2, models.CategoryTop)
	db.Model(&item).Update("image_url", "wardrobe/1/shirt.jpg")

	req := test.NewJSONAuthRequest("GET", "/wardrobe/items", UIntToStr(user.ID), "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response WardrobeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Tops, 1)
	require.NotNil(t, response.Tops[0].Uri)
	assert.Equal(t, "https://cached.example.com/file", *response.Tops[0].Uri)
}

func TestListItemsCacheFallback(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{},
		&test.AWSProviderMock{MockUrl: "https://direct.example.com/file"},
		&test.URLCacheMock{Err: fmt.Errorf("cache exploded")}, nil)
	user := test.FakeUser(db)

	item := test.FakeClothingItem(db, user.ID, "t-shirt", "white", 2, models.CategoryTop)
	db.Model(&item).Update("image_url", "wardrobe/1/shirt.jpg")

	req := test.NewJSONAuthRequest("GET", "/wardrobe/items", UIntToStr(user.ID), "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response WardrobeListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Tops, 1)
	require.NotNil(t, response.Tops[0].Uri)
	assert.Equal(t, "https://direct.example.com/file", *response.Tops[0].Uri)
}

func TestUpdateItemOk(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)
	item := test.FakeClothingItem(db, user.ID, "t-shirt", "white", 2, models.CategoryTop)

	reqBody := models.ClothingItemIn{
		Brand:       "Acme",
		GarmentType: "polo shirt",
		Color:       "navy",
		WarmthLevel: 3,
		Category:    models.CategoryTop,
	}

	req := test.NewJSONAuthRequest("PUT", fmt.Sprintf("/wardrobe/items/%v", item.ID), UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "Expected status code 200 OK, got %d: %s", rec.Code, rec.Body.String())

	var updated models.ClothingItem
	require.NoError(t, db.Take(&updated, item.ID).Error)
	assert.Equal(t, "polo shirt", updated.GarmentType)
	assert.Equal(t, "navy", updated.Color)
	assert.Equal(t, 3, updated.WarmthLevel)
}

func TestUpdateForeignItemNotFound(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)
	other := test.FakeUserNamed(db, "otheruser")
	item := test.FakeClothingItem(db, other.ID, "suit", "black", 5, models.CategoryTop)

	reqBody := models.ClothingItemIn{
		GarmentType: "suit",
		Color:       "gray",
		WarmthLevel: 5,
		Category:    models.CategoryTop,
	}

	req := test.NewJSONAuthRequest("PUT", fmt.Sprintf("/wardrobe/items/%v", item.ID), UIntToStr(user.ID), reqBody)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteItemOk(t *testing.T) {
	db := dbhelper.SetupTestDB()
	cleaner := dbhelper.SetupCleaner(db)
	defer cleaner()
	e := SetupServer(db, test.WeatherServiceMock{}, &test.AWSProviderMock{}, &test.URLCacheMock{}, nil)
	user := test.FakeUser(db)
	item := test.FakeClothingItem(db, user.ID, "t-shirt", "white", 2, models.CategoryTop)

	req := test.NewJSONAuthRequest("DELETE", fmt.Sprintf("/wardrobe/items/%v", item.ID), UIntToStr(user.ID), "")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)

	var count int64
	db.Model(&models.ClothingItem{}).Where("id = ?", item.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}
