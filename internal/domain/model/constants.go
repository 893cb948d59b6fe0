package model

// DefaultRadiusKm is the search radius used until the user picks one.
const DefaultRadiusKm = 3.0

// RadiusPreferenceKey is the preference-store key the chosen radius is
// persisted under. Shared with the mobile/web clients, so it must not
// change.
const RadiusPreferenceKey = "liguster_radius"

// Storage buckets.
const (
	BucketImages  = "images"
	BucketAvatars = "avatars"
)
