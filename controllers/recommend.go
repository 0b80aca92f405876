package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"outfitapi/fashion"
	"outfitapi/models"
	"outfitapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type RecommendationOut struct {
	Outfit      map[string]fashion.Item `json:"outfit"`
	Fingerprint string                  `json:"fingerprint,omitempty"`
	Scores      *fashion.Scores         `json:"scores,omitempty"`
	Total       float64                 `json:"total_score"`
	Weather     *services.WeatherReading `json:"weather"`
	Message     string                  `json:"message,omitempty"`
}

type RecommendController struct {
	Recommender *services.RecommendationService
}

func (controller *RecommendController) RecommendRoutes(g *echo.Group) {
	g.POST("", controller.Recommend)
}

func (controller *RecommendController) Recommend(c echo.Context) error {
	var req models.RecommendIn
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

	var occasion *fashion.Occasion
	if req.Occasion != "" {
		parsed, err := fashion.ParseOccasion(req.Occasion)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		occasion = &parsed
	}

	result, err := controller.Recommender.Recommend(c.Request().Context(), req.City, user.Username, occasion)
	if errors.Is(err, services.ErrWeatherUnavailable) {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Weather data is unavailable right now, please try again"})
	}
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to build a recommendation, please try again"})
	}

	if result.Outfit == nil {
		return c.JSON(http.StatusOK, RecommendationOut{
			Weather: result.Weather,
			Message: "No suitable outfit found for your wardrobe.",
		})
	}

	return c.JSON(http.StatusOK, RecommendationOut{
		Outfit:      result.Outfit,
		Fingerprint: result.Fingerprint,
		Scores:      &result.Scores,
		Total:       result.Total,
		Weather:     result.Weather,
	})
}

type WeatherController struct {
	Weather services.WeatherServiceProvider
}

func (controller *WeatherController) WeatherRoutes(g *echo.Group) {
	g.GET("/major-cities", controller.MajorCities)
}

// MajorCities serves the cached weather strip for the app home screen.
func (controller *WeatherController) MajorCities(c echo.Context) error {
	readings, err := controller.Weather.MajorCitiesWeather(c.Request().Context())
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Weather data is unavailable right now, please try again"})
	}
	return c.JSON(http.StatusOK, map[string][]services.WeatherReading{"cities": readings})
}
