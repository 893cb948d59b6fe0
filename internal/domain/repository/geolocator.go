package repository

import (
	"context"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

// Geolocator supplies a single best-effort position reading. Which
// implementation is used (fixed coordinates, IP lookup) is decided at
// composition time, never inside business logic.
type Geolocator interface {
	// CurrentLocation returns the device's position, or an error when no
	// reading is available. Callers treat failure as "location unknown"
	// and must not surface it to the user.
	CurrentLocation(ctx context.Context) (*model.UserLocation, error)
}
