package usecase

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
	"github.com/MuusmannMedia/liguster/internal/domain/service"
	repoimpl "github.com/MuusmannMedia/liguster/internal/repository"
)

// PostsUseCase is the server-side listing API: the same filtering rules
// as the feed hook, plus owner-guarded maintenance of individual posts.
type PostsUseCase struct {
	posts   repository.PostsRepository
	storage repository.ImageStorage
}

func NewPostsUseCase(posts repository.PostsRepository, storage repository.ImageStorage) *PostsUseCase {
	return &PostsUseCase{posts: posts, storage: storage}
}

// List returns the filtered feed view. When the repository can prefilter
// by bounding box (direct SQL) and a location is known, the cheap
// prefilter runs server-side; the exact haversine filter always runs
// after it.
func (u *PostsUseCase) List(ctx context.Context, criteria service.FilterCriteria, loc *model.UserLocation) ([]model.Post, error) {
	var (
		posts []model.Post
		err   error
	)
	if nearby, ok := u.posts.(repoimpl.NearbyLister); ok && loc != nil && criteria.RadiusKm > 0 {
		posts, err = nearby.ListNearby(ctx, loc, criteria.RadiusKm)
	} else {
		posts, err = u.posts.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return service.FilterPosts(posts, criteria, loc), nil
}

// GetByID returns one post.
func (u *PostsUseCase) GetByID(ctx context.Context, id string) (*model.Post, error) {
	return u.posts.GetByID(ctx, id)
}

// ListMine returns the caller's own posts, newest first.
func (u *PostsUseCase) ListMine(ctx context.Context, userID string) ([]model.Post, error) {
	if userID == "" {
		return nil, model.ErrUnauthenticated
	}
	return u.posts.ListByUser(ctx, userID)
}

// Create validates and inserts a post owned by userID.
func (u *PostsUseCase) Create(ctx context.Context, userID string, draft *model.PostDraft) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}
	if err := draft.Validate(); err != nil {
		return err
	}
	return u.posts.Insert(ctx, userID, draft)
}

// Update replaces a post's content. Only the owner may update.
func (u *PostsUseCase) Update(ctx context.Context, userID, id string, draft *model.PostDraft) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	existing, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return model.ErrNotOwner
	}
	return u.posts.Update(ctx, id, draft)
}

// Delete removes a post. Only the owner may delete.
func (u *PostsUseCase) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}

	existing, err := u.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return model.ErrNotOwner
	}
	return u.posts.Delete(ctx, id)
}

// UploadImage stores a post photo in the images bucket and returns the
// public URL to put on the draft. Object names are namespaced by user and
// randomized so uploads never collide.
func (u *PostsUseCase) UploadImage(ctx context.Context, userID, filename string, data io.Reader, contentType string) (string, error) {
	if userID == "" {
		return "", model.ErrUnauthenticated
	}
	if u.storage == nil {
		return "", fmt.Errorf("image storage is not configured")
	}

	name := fmt.Sprintf("%s/%s%s", userID, uuid.NewString(), path.Ext(filename))
	return u.storage.Upload(ctx, model.BucketImages, name, data, contentType)
}
