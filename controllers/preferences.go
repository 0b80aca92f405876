package controllers

import (
	"fmt"
	"net/http"

	"outfitapi/models"
	"outfitapi/services"
	"outfitapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

type PreferencesController struct {
	Prefs services.PreferenceStoreProvider
}

func (controller *PreferencesController) PreferencesRoutes(g *echo.Group) {
	g.GET("", controller.GetPreferences)
	g.PUT("", controller.UpdatePreferences)
	g.POST("/ratings", controller.RateOutfit)
}

func (controller *PreferencesController) GetPreferences(c echo.Context) error {
	user, ok := c.Get("currentUser").(models.UserAccount)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
	}

	preferences, err := controller.Prefs.LoadPreferences(c.Request().Context(), user.Username)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch preferences"})
	}

	return c.JSON(http.StatusOK, preferences)
}

func (controller *PreferencesController) UpdatePreferences(c echo.Context) error {
	var req models.PreferencesIn
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

	if err := controller.Prefs.UpdatePreferences(c.Request().Context(), user.Username, req); err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save preferences, please try again"})
	}

	preferences, err := controller.Prefs.LoadPreferences(c.Request().Context(), user.Username)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch preferences"})
	}
	return c.JSON(http.StatusOK, preferences)
}

// RateOutfit stores an explicit user rating for a previously recommended
// outfit. With a queue client present the write goes through asynq, same as
// the automatic rating from the recommender.
func (controller *PreferencesController) RateOutfit(c echo.Context) error {
	var req models.OutfitRatingIn
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

	if asynqClient, ok := c.Get("__asynqclient").(*asynq.Client); ok && asynqClient != nil {
		task, err := tasks.NewRecordOutfitRatingTask(user.Username, req.Fingerprint, req.Rating)
		if err != nil {
			sentry.CaptureException(err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save rating, please try again"})
		}
		info, err := asynqClient.Enqueue(task, asynq.MaxRetry(3), asynq.Queue("ratings"))
		if err != nil {
			sentry.CaptureException(err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save rating, please try again"})
		}
		fmt.Println("[Queue] Outfit rating task submitted, Task ID: ", info.ID)
		return c.JSON(http.StatusAccepted, map[string]string{"status": "queued"})
	}

	if err := controller.Prefs.RecordOutfitRating(c.Request().Context(), user.Username, req.Fingerprint, req.Rating); err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save rating, please try again"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "saved"})
}
