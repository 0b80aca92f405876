package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"outfitapi/fashion"

	"github.com/getsentry/sentry-go"
)

// RatingRecorder receives the winning outfit's score. The preference store
// satisfies it directly; production wires an asynq-backed recorder instead
// so the write happens off the request path.
type RatingRecorder interface {
	RecordOutfitRating(ctx context.Context, username string, fingerprint string, rating float64) error
}

// RecommendationResult distinguishes the two non-error outcomes: a nil
// Outfit with a non-nil Weather means the wardrobe had nothing to offer
// for this weather, which is not the same as weather being unavailable.
type RecommendationResult struct {
	Outfit      fashion.Outfit
	Fingerprint string
	Scores      fashion.Scores
	Total       float64
	Weather     *WeatherReading
}

type RecommendationService struct {
	Weather        WeatherServiceProvider
	Wardrobe       WardrobeStoreProvider
	Preferences    PreferenceStoreProvider
	Recorder       RatingRecorder
	CandidateCount int

	rng   *rand.Rand
	rngMu sync.Mutex
}

func NewRecommendationService(
	weather WeatherServiceProvider,
	wardrobe WardrobeStoreProvider,
	preferences PreferenceStoreProvider,
	recorder RatingRecorder,
) *RecommendationService {
	return &RecommendationService{
		Weather:        weather,
		Wardrobe:       wardrobe,
		Preferences:    preferences,
		Recorder:       recorder,
		CandidateCount: fashion.DefaultCandidateCount,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed resets the random source, for reproducible candidate generation in
// tests.
func (s *RecommendationService) Seed(seed int64) {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	s.rng = rand.New(rand.NewSource(seed))
}

// Recommend picks the best-scoring outfit from the user's wardrobe for the
// city's current weather. A weather failure returns ErrWeatherUnavailable
// with no result; an unfillable wardrobe returns a result holding the
// weather reading but no outfit.
func (s *RecommendationService) Recommend(ctx context.Context, city string, username string, occasion *fashion.Occasion) (*RecommendationResult, error) {
	weather, err := s.Weather.CurrentWeather(ctx, city)
	if err != nil {
		log.Printf("[Recommend] Weather fetch failed for %s: %v", city, err)
		return nil, fmt.Errorf("%w", ErrWeatherUnavailable)
	}

	tempCategory := fashion.ClassifyTemperature(weather.Temperature)
	fmt.Printf("[Recommend] Temperature: %.1f°C, Category: %s\n", weather.Temperature, tempCategory)

	records, err := s.Wardrobe.LoadWardrobe(ctx, username)
	if err != nil {
		// Treat a wardrobe read failure like an empty closet rather than
		// failing the whole request.
		sentry.CaptureException(err)
		log.Printf("[Recommend] Wardrobe load failed for %s: %v", username, err)
		records = nil
	}

	preferences, err := s.Preferences.LoadPreferences(ctx, username)
	if err != nil {
		sentry.CaptureException(err)
		log.Printf("[Recommend] Preference load failed for %s: %v", username, err)
		preferences = fashion.DefaultPreferences()
	}

	items := make([]fashion.Item, len(records))
	for i, record := range records {
		items[i] = fashion.Item{
			ID:          record.ID,
			Brand:       record.Brand,
			GarmentType: record.GarmentType,
			Material:    record.Material,
			Color:       record.Color,
			WarmthLevel: record.WarmthLevel,
			Category:    record.Category,
		}
	}

	s.rngMu.Lock()
	candidates := fashion.GenerateCandidates(items, tempCategory.Categories(), tempCategory.TargetWarmth(), preferences, s.CandidateCount, s.rng)
	s.rngMu.Unlock()

	if len(candidates) == 0 {
		return &RecommendationResult{Weather: weather}, nil
	}

	// Stable by first-seen order, so ties go to the earliest candidate.
	best := candidates[0]
	bestScores := fashion.ScoreOutfit(best, occasion, preferences)
	bestTotal := bestScores.Total()
	for _, candidate := range candidates[1:] {
		scores := fashion.ScoreOutfit(candidate, occasion, preferences)
		if total := scores.Total(); total > bestTotal {
			best = candidate
			bestScores = scores
			bestTotal = total
		}
	}

	fingerprint := best.Fingerprint()
	s.recordRating(ctx, username, fingerprint, bestTotal)

	return &RecommendationResult{
		Outfit:      best,
		Fingerprint: fingerprint,
		Scores:      bestScores,
		Total:       bestTotal,
		Weather:     weather,
	}, nil
}

// recordRating appends the winner to the user's history. Best-effort: a
// failed write is reported and swallowed, never surfaced to the caller.
func (s *RecommendationService) recordRating(ctx context.Context, username string, fingerprint string, rating float64) {
	if s.Recorder == nil {
		return
	}
	if err := s.Recorder.RecordOutfitRating(ctx, username, fingerprint, rating); err != nil {
		sentry.CaptureException(fmt.Errorf("failed to record outfit rating for %s: %w", username, err))
		log.Printf("[Recommend] Failed to record outfit rating for %s: %v", username, err)
	}
}

var _ RatingRecorder = (*GormPreferenceStore)(nil)
var _ WardrobeStoreProvider = (*GormWardrobeStore)(nil)
var _ PreferenceStoreProvider = (*GormPreferenceStore)(nil)
