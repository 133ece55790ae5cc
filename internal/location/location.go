package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ai-travel-buddy/internal/travel"
)

const defaultEndpoint = "http://ip-api.com/json"

// Locator resolves a best-effort device position. Failure means "no location
// available" and never blocks startup.
type Locator interface {
	Current(ctx context.Context) (*travel.LatLng, error)
}

// ipLocator approximates the device position from its public IP address.
type ipLocator struct {
	endpoint   string
	httpClient *http.Client
}

// NewIPLocator creates a Locator backed by the ip-api.com JSON endpoint.
func NewIPLocator() Locator {
	return &ipLocator{
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Current performs a one-shot lookup of the device's coordinates.
func (l *ipLocator) Current(ctx context.Context) (*travel.LatLng, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation lookup failed: status=%d", resp.StatusCode)
	}

	var payload struct {
		Status string  `json:"status"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.Status != "success" {
		return nil, fmt.Errorf("geolocation lookup failed: status=%q", payload.Status)
	}

	return &travel.LatLng{Lat: payload.Lat, Lng: payload.Lon}, nil
}
