package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrWeatherUnavailable covers every upstream fetch or parse failure. The
// recommendation flow treats it as one outcome and never exposes the raw
// cause to the end user.
var ErrWeatherUnavailable = errors.New("weather data unavailable")

const DefaultWeatherCacheTTL = 10 * time.Minute

// Major city IDs shown on the home weather strip.
var majorCityIds = []int{
	5128581, // New York
	2643743, // London
	2988507, // Paris
	1850147, // Tokyo
	2147714, // Sydney
	524901,  // Moscow
	292223,  // Dubai
	1880252, // Singapore
	2950159, // Berlin
	6167865, // Toronto
}

type WeatherReading struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"` // Celsius
	Conditions  string  `json:"conditions"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type WeatherServiceProvider interface {
	CurrentWeather(ctx context.Context, city string) (*WeatherReading, error)
	MajorCitiesWeather(ctx context.Context) ([]WeatherReading, error)
}

// OpenWeatherService fetches readings from OpenWeatherMap and keeps them
// in a loadable Ristretto cache for the configured TTL, so repeated
// recommendations for the same city within the window reuse one fetch.
type OpenWeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cityCache  *cache.LoadableCache[*WeatherReading]
	groupCache *cache.LoadableCache[[]WeatherReading]
	titleCaser cases.Caser
}

func NewOpenWeatherService(apiKey string, ttl time.Duration) (*OpenWeatherService, error) {
	if ttl <= 0 {
		ttl = DefaultWeatherCacheTTL
	}
	service := &OpenWeatherService{
		apiKey:     apiKey,
		baseURL:    "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		titleCaser: cases.Title(language.English),
	}

	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)

	service.cityCache = cache.NewLoadable[*WeatherReading](
		func(ctx context.Context, key any) (*WeatherReading, []store.Option, error) {
			city, ok := key.(string)
			if !ok {
				return nil, nil, fmt.Errorf("invalid key type provided to weather cache: expected string, got %T", key)
			}
			log.Printf("CACHE MISS for city: %s. Fetching current weather.", city)
			reading, err := service.fetchCurrent(ctx, city)
			return reading, []store.Option{store.WithExpiration(ttl)}, err
		},
		cache.New[*WeatherReading](ristrettoStore),
	)
	service.groupCache = cache.NewLoadable[[]WeatherReading](
		func(ctx context.Context, key any) ([]WeatherReading, []store.Option, error) {
			log.Println("CACHE MISS for major cities weather. Fetching group data.")
			readings, err := service.fetchGroup(ctx)
			return readings, []store.Option{store.WithExpiration(ttl)}, err
		},
		cache.New[[]WeatherReading](ristrettoStore),
	)
	return service, nil
}

func (s *OpenWeatherService) CurrentWeather(ctx context.Context, city string) (*WeatherReading, error) {
	normalized := strings.ToLower(strings.TrimSpace(city))
	if normalized == "" {
		return nil, ErrWeatherUnavailable
	}
	reading, err := s.cityCache.Get(ctx, "city:"+normalized)
	if err != nil {
		return nil, err
	}
	return reading, nil
}

func (s *OpenWeatherService) MajorCitiesWeather(ctx context.Context) ([]WeatherReading, error) {
	return s.groupCache.Get(ctx, "major_cities")
}

type openWeatherData struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (s *OpenWeatherService) fetchCurrent(ctx context.Context, city string) (*WeatherReading, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric", s.baseURL, url.QueryEscape(city), s.apiKey)
	body, err := s.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	var data openWeatherData
	if err := json.Unmarshal(body, &data); err != nil {
		log.Printf("Error parsing weather data for %s: %v", city, err)
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	reading := s.parseReading(data)
	if reading.City == "" {
		reading.City = s.titleCaser.String(city)
	}
	return &reading, nil
}

func (s *OpenWeatherService) fetchGroup(ctx context.Context) ([]WeatherReading, error) {
	ids := make([]string, len(majorCityIds))
	for i, id := range majorCityIds {
		ids[i] = fmt.Sprint(id)
	}
	endpoint := fmt.Sprintf("%s/group?id=%s&appid=%s&units=metric", s.baseURL, strings.Join(ids, ","), s.apiKey)
	body, err := s.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	var data struct {
		List []openWeatherData `json:"list"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		log.Printf("Error parsing group weather data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	readings := make([]WeatherReading, 0, len(data.List))
	for _, cityData := range data.List {
		readings = append(readings, s.parseReading(cityData))
	}
	return readings, nil
}

func (s *OpenWeatherService) parseReading(data openWeatherData) WeatherReading {
	reading := WeatherReading{
		City:        data.Name,
		Temperature: data.Main.Temp,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
	}
	if len(data.Weather) > 0 {
		reading.Conditions = data.Weather[0].Main
	}
	return reading
}

func (s *OpenWeatherService) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Error fetching weather data: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("Weather API error: status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrWeatherUnavailable, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	return body, nil
}
