package model

// UserLocation is the device's last known position. It is transient state:
// re-acquired every time the feed initializes, never persisted. A nil
// *UserLocation is a valid state and disables distance filtering.
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates are inside WGS84 bounds.
func (l *UserLocation) Valid() bool {
	if l == nil {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
