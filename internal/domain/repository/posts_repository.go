package repository

import (
	"context"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

// PostsRepository is the persistence contract for listings.
type PostsRepository interface {
	// List returns all posts ordered by created_at descending.
	List(ctx context.Context) ([]model.Post, error)

	// GetByID returns a single post or model.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Post, error)

	// ListByUser returns the posts owned by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]model.Post, error)

	// Insert stores a new post for userID. The server assigns id and
	// created_at.
	Insert(ctx context.Context, userID string, draft *model.PostDraft) error

	// Update replaces the editable fields of the post with the draft.
	Update(ctx context.Context, id string, draft *model.PostDraft) error

	// Delete removes a post by id.
	Delete(ctx context.Context, id string) error
}
