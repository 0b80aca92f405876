package controllers

import (
	"net/http"
	"os"

	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/tasks"

	"github.com/go-playground/validator"
	"github.com/hibiken/asynq"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func SetupServer(
	db *gorm.DB,
	weatherService services.WeatherServiceProvider,
	awsService services.AWSServiceProvider,
	urlCache services.URLCacheServiceProvider,
	asynqClient *asynq.Client,
) *echo.Echo {

	e := echo.New()
	v := validator.New()
	v.RegisterValidation("category", models.ValidateCategory)
	v.RegisterValidation("occasion", models.ValidateOccasion)
	e.Validator = &CustomValidator{validator: v}

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("__db", db)
			c.Set("__asynqclient", asynqClient)
			return next(c)
		}
	})

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	preferenceStore := &services.GormPreferenceStore{DB: db}
	wardrobeStore := &services.GormWardrobeStore{DB: db}
	var recorder services.RatingRecorder = preferenceStore
	if asynqClient != nil {
		recorder = &tasks.AsynqRatingRecorder{Client: asynqClient}
	}
	recommender := services.NewRecommendationService(weatherService, wardrobeStore, preferenceStore, recorder)

	authController := AuthController{}
	authController.AuthRoutes(e.Group("/auth"))

	weatherController := WeatherController{Weather: weatherService}
	weatherController.WeatherRoutes(e.Group("/weather"))

	jwtMiddleware := echojwt.JWT([]byte(os.Getenv("JWT_SECRET")))

	wardrobeController := WardrobeController{AWSService: awsService, URLCache: urlCache}
	wardrobeGroup := e.Group("/wardrobe", jwtMiddleware, UserMiddleware)
	wardrobeController.WardrobeRoutes(wardrobeGroup)

	preferencesController := PreferencesController{Prefs: preferenceStore}
	preferencesGroup := e.Group("/preferences", jwtMiddleware, UserMiddleware)
	preferencesController.PreferencesRoutes(preferencesGroup)

	recommendController := RecommendController{Recommender: recommender}
	recommendGroup := e.Group("/recommend", jwtMiddleware, UserMiddleware)
	recommendController.RecommendRoutes(recommendGroup)

	return e
}
