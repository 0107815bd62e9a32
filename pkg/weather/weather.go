// Package weather wraps the two external collaborators the weather card
// depends on: geolocation and current-conditions lookup. Both are small
// interfaces with production HTTP implementations; tests substitute
// httptest servers via the BaseURL overrides. Failures are classified
// into sentinel errors so the UI can show a distinct message per kind.
package weather

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the failure kinds the UI distinguishes.
var (
	// ErrServiceDisabled means the weather service has no usable
	// credential (missing or rejected API key).
	ErrServiceDisabled = errors.New("weather service disabled")

	// ErrPermissionDenied means the geolocation lookup was refused.
	ErrPermissionDenied = errors.New("geolocation permission denied")

	// ErrPositionUnavailable means no position could be determined.
	ErrPositionUnavailable = errors.New("position unavailable")

	// ErrLocateTimeout means the geolocation lookup timed out.
	ErrLocateTimeout = errors.New("geolocation timed out")
)

// Snapshot is one fetched weather reading, displayed as-is. It is
// JSON-tagged so the cache can persist the last reading between runs.
type Snapshot struct {
	City         string    `json:"city"`
	TemperatureC float64   `json:"temperature_c"`
	Condition    string    `json:"condition"`
	HumidityPct  int       `json:"humidity_pct"`
	WindSpeedKmh float64   `json:"wind_speed_kmh"`
	IconGlyph    string    `json:"icon_glyph"`
	Attribution  []Source  `json:"attribution,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// Source is one attribution entry shown under the weather card.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Location is a resolved position. City may be empty.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city,omitempty"`
}

// Client fetches current conditions for a location.
type Client interface {
	Current(ctx context.Context, loc Location) (Snapshot, error)
}

// Locator resolves the current position.
type Locator interface {
	Locate(ctx context.Context) (Location, error)
}

// UserMessage maps an error to the user-facing message the weather card
// displays next to its retry hint. Unclassified errors get a generic line.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrServiceDisabled):
		return "weather service is not configured"
	case errors.Is(err, ErrPermissionDenied):
		return "location lookup was refused"
	case errors.Is(err, ErrPositionUnavailable):
		return "your position could not be determined"
	case errors.Is(err, ErrLocateTimeout):
		return "location lookup timed out"
	default:
		return "weather lookup failed"
	}
}
