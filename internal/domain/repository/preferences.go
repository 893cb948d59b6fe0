package repository

import "errors"

// ErrPreferenceNotFound is returned by Get for keys never written.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceStore is a tiny persisted key/value store for user
// preferences. Only the search radius lives here today. Implementations
// must tolerate being unavailable; callers fall back to defaults.
type PreferenceStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
}
