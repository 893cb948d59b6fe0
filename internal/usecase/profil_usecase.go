package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// ProfilUseCase handles the signed-in user's profile.
type ProfilUseCase struct {
	users   repository.UsersRepository
	storage repository.ImageStorage
}

func NewProfilUseCase(users repository.UsersRepository, storage repository.ImageStorage) *ProfilUseCase {
	return &ProfilUseCase{users: users, storage: storage}
}

// Get returns the caller's profile.
func (u *ProfilUseCase) Get(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, model.ErrUnauthenticated
	}
	return u.users.GetByID(ctx, userID)
}

// UpdateName changes the display name.
func (u *ProfilUseCase) UpdateName(ctx context.Context, userID, name string) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ErrMissingField("name")
	}
	return u.users.UpdateName(ctx, userID, name)
}

// SetAvatar uploads a new avatar to the avatars bucket and records its
// public URL on the profile.
func (u *ProfilUseCase) SetAvatar(ctx context.Context, userID, filename string, data io.Reader, contentType string) (string, error) {
	if userID == "" {
		return "", model.ErrUnauthenticated
	}
	if u.storage == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	name := fmt.Sprintf("%s/%s%s", userID, uuid.NewString(), path.Ext(filename))
	url, err := u.storage.Upload(ctx, model.BucketAvatars, name, data, contentType)
	if err != nil {
		return "", err
	}
	if err := u.users.SetAvatarURL(ctx, userID, &url); err != nil {
		return "", err
	}
	return url, nil
}

// RemoveAvatar clears the avatar URL. The stored object is left behind;
// the bucket is periodically cleaned out of band.
func (u *ProfilUseCase) RemoveAvatar(ctx context.Context, userID string) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}
	return u.users.SetAvatarURL(ctx, userID, nil)
}

// DeleteAccount removes the profile row. Deleting the GoTrue auth user
// requires the service-role key and stays with the hosted delete-account
// function.
func (u *ProfilUseCase) DeleteAccount(ctx context.Context, userID string) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}
	return u.users.Delete(ctx, userID)
}
