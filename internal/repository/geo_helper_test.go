package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

func TestCoordinateValid(t *testing.T) {
	assert.True(t, CoordinateValid(55.6761, 12.5683))
	assert.True(t, CoordinateValid(-90, -180))
	assert.True(t, CoordinateValid(90, 180))
	assert.False(t, CoordinateValid(90.1, 0))
	assert.False(t, CoordinateValid(0, 180.1))
}

func TestPostPoint(t *testing.T) {
	lat, lng := 55.6761, 12.5683
	post := &model.Post{Latitude: &lat, Longitude: &lng}

	p, ok := PostPoint(post)
	require.True(t, ok)
	assert.Equal(t, lng, p.Lon())
	assert.Equal(t, lat, p.Lat())

	// Partial coordinates count as no location.
	_, ok = PostPoint(&model.Post{Latitude: &lat})
	assert.False(t, ok)
}

func TestBoundAroundKm_ContainsCircle(t *testing.T) {
	loc := &model.UserLocation{Latitude: 55.6761, Longitude: 12.5683}
	bound := BoundAroundKm(loc, 5)

	// The center is inside and the box spans at least 5 km in each
	// direction (one degree of latitude is about 111 km).
	assert.True(t, bound.Min.Lat() < loc.Latitude)
	assert.True(t, bound.Max.Lat() > loc.Latitude)
	assert.InDelta(t, 5.0/111.32, loc.Latitude-bound.Min.Lat(), 1e-6)

	// Longitude padding must be wider than latitude padding this far
	// north.
	latPad := bound.Max.Lat() - bound.Min.Lat()
	lngPad := bound.Max.Lon() - bound.Min.Lon()
	assert.Greater(t, lngPad, latPad)
}

func TestBoundAroundKm_ClampsToWorld(t *testing.T) {
	loc := &model.UserLocation{Latitude: 89.9, Longitude: 179.9}
	bound := BoundAroundKm(loc, 100)

	assert.LessOrEqual(t, bound.Max.Lat(), 90.0)
	assert.LessOrEqual(t, bound.Max.Lon(), 180.0)
}
