package repository

import "context"

// AuthProvider resolves the identity of the current caller.
type AuthProvider interface {
	// CurrentUserID returns the authenticated user's id, or the empty
	// string when nobody is signed in. An error is returned only for
	// transport failures; unauthenticated browsing is not an error.
	CurrentUserID(ctx context.Context) (string, error)
}
