package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gitlab.com/tinyland/lab/clock-deck/pkg/cache"
)

const ipDefaultBaseURL = "http://ip-api.com"

// IPLocatorConfig controls the IP-based geolocator.
type IPLocatorConfig struct {
	// BaseURL overrides the API endpoint, for tests.
	BaseURL string

	// Timeout bounds the lookup. Default 5s.
	Timeout time.Duration
}

// IPLocator resolves the current position from the caller's public IP
// via an ip-api.com style JSON endpoint.
type IPLocator struct {
	cfg    IPLocatorConfig
	client *http.Client
}

// NewIPLocator creates an IPLocator. Zero-value config fields get defaults.
func NewIPLocator(cfg IPLocatorConfig) *IPLocator {
	if cfg.BaseURL == "" {
		cfg.BaseURL = ipDefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &IPLocator{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// ipResponse is the ip-api.com JSON payload.
type ipResponse struct {
	Status  string  `json:"status"` // "success" or "fail"
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}

// Locate resolves the current position. Error kinds: a 403 maps to
// ErrPermissionDenied, a deadline or client timeout to ErrLocateTimeout,
// and a failed or incomplete payload to ErrPositionUnavailable.
func (l *IPLocator) Locate(ctx context.Context) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.BaseURL+"/json", nil)
	if err != nil {
		return Location{}, fmt.Errorf("build locate request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return Location{}, fmt.Errorf("locate: %w", ErrLocateTimeout)
		}
		return Location{}, fmt.Errorf("locate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return Location{}, fmt.Errorf("locate: %w", ErrPermissionDenied)
	}
	if resp.StatusCode != http.StatusOK {
		return Location{}, fmt.Errorf("locate status %d: %w", resp.StatusCode, ErrPositionUnavailable)
	}

	var parsed ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Location{}, fmt.Errorf("decode locate response: %w", ErrPositionUnavailable)
	}
	if parsed.Status != "success" || (parsed.Lat == 0 && parsed.Lon == 0) {
		return Location{}, fmt.Errorf("locate failed %q: %w", parsed.Message, ErrPositionUnavailable)
	}

	return Location{Latitude: parsed.Lat, Longitude: parsed.Lon, City: parsed.City}, nil
}

// isTimeout reports whether err is a net-level timeout.
func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// FixedLocator returns a Locator pinned to one position, used when the
// config supplies coordinates directly.
func FixedLocator(loc Location) Locator {
	return fixedLocator{loc: loc}
}

type fixedLocator struct {
	loc Location
}

func (f fixedLocator) Locate(_ context.Context) (Location, error) {
	return f.loc, nil
}

// locationCacheKey is where CachedLocator remembers the last position.
const locationCacheKey = "location.json"

// CachedLocator wraps a Locator with the snapshot cache so an IP lookup
// from a previous run carries over. A cached position never expires on
// its own; it is replaced whenever the inner locator succeeds again. Do
// not wrap FixedLocator: a pin from config must win over any remembered
// position.
func CachedLocator(inner Locator, store *cache.Store) Locator {
	if store == nil {
		return inner
	}
	return &cachedLocator{inner: inner, store: store}
}

type cachedLocator struct {
	inner Locator
	store *cache.Store
}

func (c *cachedLocator) Locate(ctx context.Context) (Location, error) {
	if loc, _, ok := cache.GetTyped[Location](c.store, locationCacheKey, 0); ok {
		return loc, nil
	}
	loc, err := c.inner.Locate(ctx)
	if err != nil {
		return Location{}, err
	}
	// best-effort; a failed write means another lookup next run
	_ = cache.PutTyped(c.store, locationCacheKey, loc)
	return loc, nil
}
