// Package geolocate provides the platform implementations of the
// Geolocator contract. Which one runs is decided at composition time:
// fixed coordinates when the user configured them, an IP lookup
// otherwise.
package geolocate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// StaticProvider returns a fixed position, typically from configuration.
type StaticProvider struct {
	Location model.UserLocation
}

func NewStaticProvider(lat, lng float64) repository.Geolocator {
	return &StaticProvider{Location: model.UserLocation{Latitude: lat, Longitude: lng}}
}

func (p *StaticProvider) CurrentLocation(ctx context.Context) (*model.UserLocation, error) {
	loc := p.Location
	if !loc.Valid() {
		return nil, fmt.Errorf("configured coordinates are outside WGS84 bounds")
	}
	return &loc, nil
}

// IPProvider asks an IP-geolocation HTTP service for a rough position.
// Best effort only; the feed treats any failure as "location unknown".
type IPProvider struct {
	endpoint string
	client   *http.Client
}

func NewIPProvider(endpoint string) repository.Geolocator {
	return &IPProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *IPProvider) CurrentLocation(ctx context.Context) (*model.UserLocation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build geolocation request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation lookup: status %d", resp.StatusCode)
	}

	var body struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode geolocation response: %w", err)
	}

	loc := &model.UserLocation{Latitude: body.Latitude, Longitude: body.Longitude}
	if !loc.Valid() {
		return nil, fmt.Errorf("geolocation service returned invalid coordinates")
	}
	return loc, nil
}
