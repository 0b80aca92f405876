package main

import (
	"context"
	"log"
	"os"
	"time"

	"outfitapi/controllers"
	"outfitapi/dbhelper"
	"outfitapi/services"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	weatherApiKey := os.Getenv("OPENWEATHER_API_KEY")
	if weatherApiKey == "" {
		log.Fatal("OPENWEATHER_API_KEY environment variable is not set!")
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("SENTRY_DSN"),
		Environment:      services.GetEnv("ENV", "local"),
		Release:          "outfitapi@1.0.0",
		Debug:            false,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer sentry.Recover()
	defer sentry.Flush(2 * time.Second)

	db := dbhelper.SetupDB()

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")})
	bucketName := services.GetEnv("R2_BUCKET_NAME", "")
	awsService := &services.AWSService{}
	if err := awsService.InitPresignClient(context.Background()); err != nil {
		log.Fatal("Failed to initialize AWS provider: S3")
	}
	urlCache, err := services.NewURLCacheService(awsService, bucketName)
	if err != nil {
		log.Fatal("Failed to initialize URL cache service")
	}

	weatherService, err := services.NewOpenWeatherService(weatherApiKey, services.DefaultWeatherCacheTTL)
	if err != nil {
		log.Fatalf("Failed to initialize weather service: %v", err)
	}

	e := controllers.SetupServer(db, weatherService, awsService, urlCache, asynqClient)
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(3)))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	e.Logger.Fatal(e.Start(":8083"))
}
