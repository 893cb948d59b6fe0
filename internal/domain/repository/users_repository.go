package repository

import (
	"context"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

// UsersRepository is the persistence contract for profile rows.
type UsersRepository interface {
	// GetByID returns a profile or model.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.User, error)

	// UpdateName changes the display name.
	UpdateName(ctx context.Context, id, name string) error

	// SetAvatarURL sets or clears (nil) the avatar URL.
	SetAvatarURL(ctx context.Context, id string, url *string) error

	// Delete removes the profile row. Deleting the auth user is the
	// account usecase's concern, not the repository's.
	Delete(ctx context.Context, id string) error
}
