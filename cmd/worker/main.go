package main

import (
	"context"
	"log"
	"os"

	"outfitapi/dbhelper"
	"outfitapi/services"
	"outfitapi/tasks"

	"github.com/hibiken/asynq"
)

func main() {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")},
		asynq.Config{Concurrency: 10, Queues: map[string]int{
			"ratings": 7,
		}},
	)

	db := dbhelper.SetupDB()
	store := &services.GormPreferenceStore{DB: db}

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRecordOutfitRating, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleRecordOutfitRatingTask(ctx, t, store)
	})

	if err := srv.Run(mux); err != nil {
		log.Fatal(err)
	}
}
