package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/maypok86/otter/v2"

	"github.com/yanqian/weather-assistant/internal/domain/weather"
)

const (
	defaultBaseURL       = "https://api.openweathermap.org"
	defaultTimeout       = 10 * time.Second
	defaultRetryAttempts = 2
	defaultRetryDelay    = 300 * time.Millisecond
	defaultCacheTTL      = 10 * time.Minute
	defaultCacheSize     = 1000
)

// Config controls the OpenWeatherMap client.
type Config struct {
	APIKey        string
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts uint
	RetryDelay    time.Duration
	CacheTTL      time.Duration
	CacheSize     int
}

// Client fetches current conditions, forecasts and air quality from
// OpenWeatherMap. Responses are cached per kind and city.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
	cache      *otter.Cache[string, any]
	logger     *slog.Logger
}

// NewClient builds an API client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openweather api key cannot be empty")
	}
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryAttempts == 0 {
		cfg.RetryAttempts = defaultRetryAttempts
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	return &Client{
		cfg:     cfg,
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cache: otter.Must(&otter.Options[string, any]{
			MaximumSize:      cfg.CacheSize,
			ExpiryCalculator: otter.ExpiryWriting[string, any](cfg.CacheTTL),
		}),
		logger: logger.With("component", "openweather.client"),
	}, nil
}

// Current returns the latest observation for city.
func (c *Client) Current(ctx context.Context, city string) (weather.Snapshot, error) {
	return cached(c, "current", city, func() (weather.Snapshot, error) {
		var raw currentResponse
		if err := c.get(ctx, "/data/2.5/weather", url.Values{"q": {city}, "units": {"metric"}}, &raw); err != nil {
			return weather.Snapshot{}, err
		}
		return raw.snapshot(), nil
	})
}

// Forecast returns the 5 day / 3 hour forecast for city.
func (c *Client) Forecast(ctx context.Context, city string) (weather.Forecast, error) {
	return cached(c, "forecast", city, func() (weather.Forecast, error) {
		var raw forecastResponse
		if err := c.get(ctx, "/data/2.5/forecast", url.Values{"q": {city}, "units": {"metric"}}, &raw); err != nil {
			return weather.Forecast{}, err
		}
		return raw.forecast(), nil
	})
}

// AirQuality geocodes city and returns its current pollution reading.
func (c *Client) AirQuality(ctx context.Context, city string) (weather.AirQuality, error) {
	return cached(c, "air", city, func() (weather.AirQuality, error) {
		var places []geoResult
		if err := c.get(ctx, "/geo/1.0/direct", url.Values{"q": {city}, "limit": {"1"}}, &places); err != nil {
			return weather.AirQuality{}, err
		}
		if len(places) == 0 {
			return weather.AirQuality{}, fmt.Errorf("geocode %q: %w", city, weather.ErrNotFound)
		}
		place := places[0]

		var raw airResponse
		params := url.Values{
			"lat": {fmt.Sprintf("%f", place.Lat)},
			"lon": {fmt.Sprintf("%f", place.Lon)},
		}
		if err := c.get(ctx, "/data/2.5/air_pollution", params, &raw); err != nil {
			return weather.AirQuality{}, err
		}
		if len(raw.List) == 0 {
			return weather.AirQuality{}, fmt.Errorf("air pollution for %q: empty list: %w", city, weather.ErrProvider)
		}
		return raw.airQuality(place.Name), nil
	})
}

func cached[T any](c *Client, kind, city string, fetch func() (T, error)) (T, error) {
	key := kind + ":" + strings.ToLower(strings.TrimSpace(city))
	if hit, ok := c.cache.GetIfPresent(key); ok {
		if value, ok := hit.(T); ok {
			c.logger.Debug("cache hit", "key", key)
			return value, nil
		}
	}
	value, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	c.cache.Set(key, value)
	return value, nil
}

// get performs a GET with retries on transport errors and 5xx replies. 404
// maps to weather.ErrNotFound; everything else to weather.ErrProvider.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("appid", c.cfg.APIKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	var lastErr error
	err := retry.Do(
		func() error {
			var retryable bool
			retryable, lastErr = c.attempt(ctx, path, endpoint, out)
			if lastErr != nil && !retryable {
				return retry.Unrecoverable(lastErr)
			}
			return lastErr
		},
		retry.Attempts(c.cfg.RetryAttempts),
		retry.Delay(c.cfg.RetryDelay),
		retry.MaxDelay(5*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("retrying openweather request", "path", path, "attempt", n+1, "error", err)
		}),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err == nil {
		return nil
	}
	if lastErr == nil {
		lastErr = err
	}
	if errors.Is(lastErr, weather.ErrNotFound) || errors.Is(lastErr, weather.ErrProvider) {
		return lastErr
	}
	return fmt.Errorf("openweather %s: %v: %w", path, lastErr, weather.ErrProvider)
}

// attempt performs one request and reports whether a failure may be retried.
func (c *Client) attempt(ctx context.Context, path, endpoint string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build openweather request: %v: %w", err, weather.ErrProvider)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// drop the request URL, it carries the api key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return true, fmt.Errorf("openweather request failed: %v: %w", err, weather.ErrProvider)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, fmt.Errorf("openweather %s: %w", path, weather.ErrNotFound)
	}
	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		err := fmt.Errorf("openweather %s: status=%d body=%s: %w", path, resp.StatusCode, string(payload), weather.ErrProvider)
		return resp.StatusCode >= 500, err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode openweather %s: %v: %w", path, err, weather.ErrProvider)
	}
	return true, nil
}
