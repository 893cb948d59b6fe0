package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"github.com/MuusmannMedia/liguster/internal/database"
	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// SupabasePostsRepository reads and writes the posts table through
// PostgREST.
type SupabasePostsRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePostsRepository(client *database.SupabaseClient) repository.PostsRepository {
	return &SupabasePostsRepository{client: client}
}

// postRow is the insert/update payload. user_id is set by the repository,
// never taken from the caller's draft.
type postRow struct {
	Overskrift string   `json:"overskrift"`
	Omraade    string   `json:"omraade"`
	Text       string   `json:"text"`
	ImageURL   string   `json:"image_url,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Kategori   *string  `json:"kategori,omitempty"`
	UserID     string   `json:"user_id,omitempty"`
}

func draftToRow(draft *model.PostDraft, userID string) postRow {
	return postRow{
		Overskrift: draft.Overskrift,
		Omraade:    draft.Omraade,
		Text:       draft.Text,
		ImageURL:   draft.ImageURL,
		Latitude:   draft.Latitude,
		Longitude:  draft.Longitude,
		Kategori:   draft.Kategori,
		UserID:     userID,
	}
}

func (r *SupabasePostsRepository) List(ctx context.Context) ([]model.Post, error) {
	data, count, err := r.client.GetClient().From("posts").
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	_ = count

	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (r *SupabasePostsRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	data, count, err := r.client.GetClient().From("posts").
		Select("*", "exact", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch post %s: %w", id, err)
	}
	_ = count

	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode post: %w", err)
	}
	if len(posts) == 0 {
		return nil, model.ErrNotFound
	}
	return &posts[0], nil
}

func (r *SupabasePostsRepository) ListByUser(ctx context.Context, userID string) ([]model.Post, error) {
	data, count, err := r.client.GetClient().From("posts").
		Select("*", "exact", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch posts for user %s: %w", userID, err)
	}
	_ = count

	var posts []model.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (r *SupabasePostsRepository) Insert(ctx context.Context, userID string, draft *model.PostDraft) error {
	row := draftToRow(draft, userID)
	_, _, err := r.client.GetClient().From("posts").
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *SupabasePostsRepository) Update(ctx context.Context, id string, draft *model.PostDraft) error {
	row := draftToRow(draft, "")
	_, _, err := r.client.GetClient().From("posts").
		Update(row, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("update post %s: %w", id, err)
	}
	return nil
}

func (r *SupabasePostsRepository) Delete(ctx context.Context, id string) error {
	_, _, err := r.client.GetClient().From("posts").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}
