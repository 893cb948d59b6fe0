package repository

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

// worldBound is the WGS84 coordinate envelope.
var worldBound = orb.Bound{
	Min: orb.Point{-180, -90},
	Max: orb.Point{180, 90},
}

// kmPerDegreeLat is the approximate north-south span of one degree.
const kmPerDegreeLat = 111.32

// CoordinateValid reports whether a latitude/longitude pair lies inside
// the WGS84 envelope.
func CoordinateValid(lat, lng float64) bool {
	return worldBound.Contains(orb.Point{lng, lat})
}

// PostPoint returns the post's position as an orb.Point (lng, lat order)
// and whether the post has one.
func PostPoint(p *model.Post) (orb.Point, bool) {
	if !p.HasLocation() {
		return orb.Point{}, false
	}
	return orb.Point{*p.Longitude, *p.Latitude}, true
}

// BoundAroundKm builds a bounding box of radiusKm around loc, clamped to
// the world envelope. The box is a superset of the radius circle, so it
// is safe as a SQL prefilter ahead of the exact haversine check.
func BoundAroundKm(loc *model.UserLocation, radiusKm float64) orb.Bound {
	center := orb.Point{loc.Longitude, loc.Latitude}

	latPad := radiusKm / kmPerDegreeLat
	// Longitude degrees shrink with latitude; guard against the poles.
	cosLat := math.Cos(loc.Latitude * math.Pi / 180)
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lngPad := radiusKm / (kmPerDegreeLat * cosLat)

	bound := orb.Bound{Min: center, Max: center}
	bound = bound.Extend(orb.Point{center.Lon() - lngPad, center.Lat() - latPad})
	bound = bound.Extend(orb.Point{center.Lon() + lngPad, center.Lat() + latPad})

	return clampBound(bound)
}

func clampBound(b orb.Bound) orb.Bound {
	return orb.Bound{
		Min: orb.Point{
			math.Max(b.Min.Lon(), worldBound.Min.Lon()),
			math.Max(b.Min.Lat(), worldBound.Min.Lat()),
		},
		Max: orb.Point{
			math.Min(b.Max.Lon(), worldBound.Max.Lon()),
			math.Min(b.Max.Lat(), worldBound.Max.Lat()),
		},
	}
}
