package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"outfitapi/services"

	"github.com/hibiken/asynq"
)

const TypeRecordOutfitRating = "preferences:record_rating"

type RecordOutfitRatingPayload struct {
	Username    string  `json:"username"`
	Fingerprint string  `json:"fingerprint"`
	Rating      float64 `json:"rating"`
}

func NewRecordOutfitRatingTask(username string, fingerprint string, rating float64) (*asynq.Task, error) {
	payload, err := json.Marshal(RecordOutfitRatingPayload{
		Username:    username,
		Fingerprint: fingerprint,
		Rating:      rating,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRecordOutfitRating, payload), nil
}

// AsynqRatingRecorder moves the rating write off the request path. The
// recommendation still succeeds when enqueueing fails; the caller treats
// the error as best-effort.
type AsynqRatingRecorder struct {
	Client *asynq.Client
}

func (r *AsynqRatingRecorder) RecordOutfitRating(ctx context.Context, username string, fingerprint string, rating float64) error {
	task, err := NewRecordOutfitRatingTask(username, fingerprint, rating)
	if err != nil {
		return err
	}
	info, err := r.Client.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Queue("ratings"))
	if err != nil {
		return err
	}
	fmt.Println("[Queue] Outfit rating task submitted, Task ID: ", info.ID)
	return nil
}

func HandleRecordOutfitRatingTask(ctx context.Context, t *asynq.Task, store services.PreferenceStoreProvider) error {
	var payload RecordOutfitRatingPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal rating payload: %w", err)
	}
	return store.RecordOutfitRating(ctx, payload.Username, payload.Fingerprint, payload.Rating)
}
