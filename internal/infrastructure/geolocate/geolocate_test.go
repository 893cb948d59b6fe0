package geolocate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(55.6761, 12.5683)
	loc, err := p.CurrentLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 55.6761, loc.Latitude)
	assert.Equal(t, 12.5683, loc.Longitude)
}

func TestStaticProvider_InvalidCoordinates(t *testing.T) {
	p := NewStaticProvider(123, 456)
	_, err := p.CurrentLocation(context.Background())
	assert.Error(t, err)
}

func TestIPProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"latitude": 56.1629, "longitude": 10.2039, "city": "Aarhus"}`))
	}))
	defer srv.Close()

	p := NewIPProvider(srv.URL)
	loc, err := p.CurrentLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 56.1629, loc.Latitude)
	assert.Equal(t, 10.2039, loc.Longitude)
}

func TestIPProvider_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewIPProvider(srv.URL).CurrentLocation(context.Background())
	assert.Error(t, err)
}

func TestIPProvider_InvalidCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude": 9999, "longitude": 0}`))
	}))
	defer srv.Close()

	_, err := NewIPProvider(srv.URL).CurrentLocation(context.Background())
	assert.Error(t, err)
}
