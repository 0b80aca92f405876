package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"

	"outfitapi/models"
	"outfitapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Response structs
type ClothingItemResponse struct {
	ID          uint    `json:"id"`
	Brand       string  `json:"brand"`
	GarmentType string  `json:"type"`
	Material    string  `json:"material"`
	Color       string  `json:"color"`
	WarmthLevel int     `json:"warmth_level"`
	Category    string  `json:"category"`
	Uri         *string `json:"uri,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ClothingItemCreatedResponse struct {
	Item          ClothingItemResponse `json:"item"`
	FileUploadUrl string               `json:"file_upload_url,omitempty"`
}

type WardrobeListResponse struct {
	Tops        []ClothingItemResponse `json:"tops"`
	Bottoms     []ClothingItemResponse `json:"bottoms"`
	Outerwear   []ClothingItemResponse `json:"outerwear"`
	Footwear    []ClothingItemResponse `json:"footwear"`
	Accessories []ClothingItemResponse `json:"accessories"`
}

type WardrobeController struct {
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
}

func (controller *WardrobeController) WardrobeRoutes(g *echo.Group) {
	g.POST("/items", controller.CreateItem)
	g.GET("/items", controller.ListItems)
	g.PUT("/items/:id", controller.UpdateItem)
	g.DELETE("/items/:id", controller.DeleteItem)
}

func itemResponse(item models.ClothingItem, uri *string) ClothingItemResponse {
	return ClothingItemResponse{
		ID:          item.ID,
		Brand:       item.Brand,
		GarmentType: item.GarmentType,
		Material:    item.Material,
		Color:       item.Color,
		WarmthLevel: item.WarmthLevel,
		Category:    item.Category,
		Uri:         uri,
		CreatedAt:   item.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   item.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func (controller *WardrobeController) CreateItem(c echo.Context) error {
	var req models.ClothingItemIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	item := models.ClothingItem{
		Brand:       req.Brand,
		GarmentType: req.GarmentType,
		Material:    req.Material,
		Color:       req.Color,
		WarmthLevel: req.WarmthLevel,
		Category:    req.Category,
		OwnerID:     user.ID,
	}

	var uploadUrl string
	if req.FileName != nil && *req.FileName != "" {
		bucketName := services.GetEnv("R2_BUCKET_NAME", "")
		safeFileName := fmt.Sprintf("wardrobe/%v/%s", user.ID, *req.FileName)
		url, presignErr := controller.AWSService.PresignLink(context.Background(), bucketName, safeFileName)
		if presignErr != nil {
			log.Printf("Unable to presign upload for %s, %s", item.GarmentType, presignErr)
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"message": "Error while creating item with attachment",
			})
		}
		item.ImageURL = &safeFileName
		uploadUrl = url
	}

	if err := db.Create(&item).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save item, please try again"})
	}

	return c.JSON(http.StatusCreated, ClothingItemCreatedResponse{
		Item:          itemResponse(item, nil),
		FileUploadUrl: uploadUrl,
	})
}

// populatePresignedItemImages takes raw wardrobe rows and enriches them with presigned URLs concurrently.
// Includes a failsafe for when the cache system itself fails.
func (controller *WardrobeController) populatePresignedItemImages(ctx context.Context, items []models.ClothingItem) []ClothingItemResponse {
	if len(items) == 0 {
		return []ClothingItemResponse{}
	}

	var wg sync.WaitGroup
	processedResponses := make([]ClothingItemResponse, len(items))
	bucketName := services.GetEnv("R2_BUCKET_NAME", "")

	for i, clothingItem := range items {
		wg.Add(1)
		go func(index int, item models.ClothingItem) {
			defer wg.Done()

			var imageUrl string
			if item.ImageURL != nil && *item.ImageURL != "" {
				objectKey := *item.ImageURL

				url, err := controller.URLCache.GetReadURL(ctx, objectKey)
				if err == nil {
					imageUrl = url
				} else {
					log.Printf("CACHE WARNING: Cache system failed for key '%s': %v. Triggering manual R2 fallback.", objectKey, err)
					sentry.WithScope(func(scope *sentry.Scope) {
						scope.SetTag("failure_type", "cache_system")
						scope.SetExtra("objectKey", objectKey)
						sentry.CaptureException(err)
					})

					fallbackUrl, fallbackErr := controller.AWSService.GetPresignedR2FileReadURL(ctx, bucketName, objectKey)
					if fallbackErr != nil {
						log.Printf("CRITICAL: Manual R2 fallback also failed for key '%s': %v", objectKey, fallbackErr)
						sentry.CaptureException(fallbackErr)
						// imageUrl stays empty, the item is still returned.
					} else {
						imageUrl = fallbackUrl
					}
				}
			}
			var uri *string
			if imageUrl != "" {
				uri = &imageUrl
			}
			processedResponses[index] = itemResponse(item, uri)
		}(i, clothingItem)
	}

	wg.Wait()
	return processedResponses
}

func (controller *WardrobeController) ListItems(c echo.Context) error {
	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var items []models.ClothingItem
	if err := db.Where("owner_id = ?", user.ID).Order("id").Find(&items).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch wardrobe"})
	}

	processedResponses := controller.populatePresignedItemImages(c.Request().Context(), items)

	response := WardrobeListResponse{
		Tops:        []ClothingItemResponse{},
		Bottoms:     []ClothingItemResponse{},
		Outerwear:   []ClothingItemResponse{},
		Footwear:    []ClothingItemResponse{},
		Accessories: []ClothingItemResponse{},
	}

	for _, resp := range processedResponses {
		switch resp.Category {
		case models.CategoryTop:
			response.Tops = append(response.Tops, resp)
		case models.CategoryBottom:
			response.Bottoms = append(response.Bottoms, resp)
		case models.CategoryOuterwear:
			response.Outerwear = append(response.Outerwear, resp)
		case models.CategoryFootwear:
			response.Footwear = append(response.Footwear, resp)
		case models.CategoryAccessory:
			response.Accessories = append(response.Accessories, resp)
		}
	}

	return c.JSON(http.StatusOK, response)
}

func (controller *WardrobeController) UpdateItem(c echo.Context) error {
	var req models.ClothingItemIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var item models.ClothingItem
	result := db.Where("id = ? AND owner_id = ?", c.Param("id"), user.ID).Take(&item)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	}
	if result.Error != nil {
		sentry.CaptureException(result.Error)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch item"})
	}

	item.Brand = req.Brand
	item.GarmentType = req.GarmentType
	item.Material = req.Material
	item.Color = req.Color
	item.WarmthLevel = req.WarmthLevel
	item.Category = req.Category
	if err := db.Save(&item).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update item, please try again"})
	}

	return c.JSON(http.StatusOK, itemResponse(item, nil))
}

func (controller *WardrobeController) DeleteItem(c echo.Context) error {
	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var item models.ClothingItem
	result := db.Where("id = ? AND owner_id = ?", c.Param("id"), user.ID).Take(&item)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Item not found"})
	}
	if result.Error != nil {
		sentry.CaptureException(result.Error)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch item"})
	}

	if err := db.Delete(&item).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete item, please try again"})
	}

	return c.NoContent(http.StatusNoContent)
}
