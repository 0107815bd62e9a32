package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const owDefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherConfig controls the OpenWeather client.
type OpenWeatherConfig struct {
	// APIKey is the OpenWeather credential. Empty means the service is
	// disabled; Current fails fast with ErrServiceDisabled.
	APIKey string

	// BaseURL overrides the API endpoint, for tests.
	BaseURL string

	// Timeout bounds each request. Default 10s.
	Timeout time.Duration

	Logger *slog.Logger
}

// OpenWeather fetches current conditions from the OpenWeather API.
type OpenWeather struct {
	cfg    OpenWeatherConfig
	client *http.Client
	log    *slog.Logger
}

// NewOpenWeather creates an OpenWeather client. Zero-value config fields
// get defaults.
func NewOpenWeather(cfg OpenWeatherConfig) *OpenWeather {
	if cfg.BaseURL == "" {
		cfg.BaseURL = owDefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &OpenWeather{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log,
	}
}

// owResponse is the subset of the current-conditions payload we read.
type owResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"` // m/s in metric units
	} `json:"wind"`
	Message string `json:"message"`
}

// Current fetches current conditions for loc in metric units. A missing
// or rejected API key maps to ErrServiceDisabled; other failures wrap the
// transport or status error.
func (o *OpenWeather) Current(ctx context.Context, loc Location) (Snapshot, error) {
	if o.cfg.APIKey == "" {
		return Snapshot{}, fmt.Errorf("no API key: %w", ErrServiceDisabled)
	}

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.4f", loc.Latitude))
	q.Set("lon", fmt.Sprintf("%.4f", loc.Longitude))
	q.Set("appid", o.cfg.APIKey)
	q.Set("units", "metric")

	reqURL := o.cfg.BaseURL + "/weather?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Snapshot{}, fmt.Errorf("read weather response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized ||
		strings.Contains(strings.ToLower(string(body)), "invalid api key") {
		return Snapshot{}, fmt.Errorf("credential rejected: %w", ErrServiceDisabled)
	}
	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("weather API status %d", resp.StatusCode)
	}

	var parsed owResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Snapshot{}, fmt.Errorf("decode weather response: %w", err)
	}

	snap := Snapshot{
		City:         parsed.Name,
		TemperatureC: parsed.Main.Temp,
		HumidityPct:  parsed.Main.Humidity,
		WindSpeedKmh: parsed.Wind.Speed * 3.6,
		FetchedAt:    time.Now(),
		Attribution: []Source{
			{URI: "https://openweathermap.org", Title: "OpenWeather"},
		},
	}
	if loc.City != "" {
		snap.City = loc.City
	}
	if len(parsed.Weather) > 0 {
		snap.Condition = parsed.Weather[0].Description
		if snap.Condition == "" {
			snap.Condition = parsed.Weather[0].Main
		}
		snap.IconGlyph = owGlyph(parsed.Weather[0].ID)
	}

	o.log.Debug("weather fetched", "city", snap.City, "temp_c", snap.TemperatureC)
	return snap, nil
}
