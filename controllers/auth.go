package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"outfitapi/models"

	"github.com/getsentry/sentry-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
}

func (controller *AuthController) AuthRoutes(g *echo.Group) {
	g.POST("/register", controller.Register)
	g.POST("/login", controller.Login)
}

func (controller *AuthController) Register(c echo.Context) error {
	var req models.RegisterIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var existing models.UserAccount
	result := db.Where("username = ?", req.Username).Take(&existing)
	if result.Error == nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": "Username already exists"})
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		sentry.CaptureException(result.Error)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account, please try again"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account, please try again"})
	}

	user := models.UserAccount{
		Username: req.Username,
		Password: string(hash),
		LastIp:   c.RealIP(),
	}
	if err := db.Create(&user).Error; err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create account, please try again"})
	}
	// Every account starts with an empty preference record so the first
	// recommendation has something to read.
	preference := models.UserPreference{
		UserAccountID:    user.ID,
		FavoriteColors:   []string{},
		FavoriteStyles:   []string{},
		FavoritePatterns: []string{},
		DislikedColors:   []string{},
		DislikedStyles:   []string{},
		DislikedPatterns: []string{},
	}
	if err := db.Create(&preference).Error; err != nil {
		sentry.CaptureException(err)
		log.Printf("Failed to create default preferences for user %v: %v", user.ID, err)
	}

	return c.JSON(http.StatusCreated, models.UserInfoOut{Id: user.ID, Username: user.Username})
}

func (controller *AuthController) Login(c echo.Context) error {
	var req models.LoginIn
	if err := c.Bind(&req); err != nil {
		fmt.Println(err)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	db, ok := c.Get("__db").(*gorm.DB)
	if !ok {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Database connection error"})
	}

	var user models.UserAccount
	result := db.Where("username = ?", req.Username).Take(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
	}
	if result.Error != nil {
		sentry.CaptureException(result.Error)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to log in, please try again"})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid username or password"})
	}
	if user.Banned {
		return c.JSON(http.StatusLocked, map[string]string{"error": "Account is locked"})
	}

	db.Model(&user).Update("last_ip", c.RealIP())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprint(user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to log in, please try again"})
	}

	return c.JSON(http.StatusOK, models.TokenOut{Token: signed})
}
