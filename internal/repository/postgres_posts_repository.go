package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MuusmannMedia/liguster/internal/database"
	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

const postColumns = `id, created_at, overskrift, omraade, text,
	coalesce(image_url, ''), user_id, latitude, longitude, kategori`

// PostgresPostsRepository is the direct-SQL implementation of
// PostsRepository, used when the server has a DATABASE_URL.
type PostgresPostsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPostsRepository(client *database.PostgreSQLClient) repository.PostsRepository {
	return &PostgresPostsRepository{client: client}
}

// NearbyLister is an optional upgrade over PostsRepository: a repository
// that can prefilter posts to a bounding box around the user before the
// exact in-memory radius filter runs. Unlocated posts are always kept.
type NearbyLister interface {
	ListNearby(ctx context.Context, loc *model.UserLocation, radiusKm float64) ([]model.Post, error)
}

func (r *PostgresPostsRepository) List(ctx context.Context) ([]model.Post, error) {
	rows, err := r.client.DB.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM posts ORDER BY created_at DESC`, postColumns))
	if err != nil {
		return nil, fmt.Errorf("fetch posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostgresPostsRepository) ListNearby(ctx context.Context, loc *model.UserLocation, radiusKm float64) ([]model.Post, error) {
	bound := BoundAroundKm(loc, radiusKm)
	rows, err := r.client.DB.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM posts
		 WHERE latitude IS NULL OR longitude IS NULL
		    OR (latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4)
		 ORDER BY created_at DESC`, postColumns),
		bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon())
	if err != nil {
		return nil, fmt.Errorf("fetch nearby posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostgresPostsRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	row := r.client.DB.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT %s FROM posts WHERE id = $1`, postColumns), id)

	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch post %s: %w", id, err)
	}
	return post, nil
}

func (r *PostgresPostsRepository) ListByUser(ctx context.Context, userID string) ([]model.Post, error) {
	rows, err := r.client.DB.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s FROM posts WHERE user_id = $1 ORDER BY created_at DESC`, postColumns), userID)
	if err != nil {
		return nil, fmt.Errorf("fetch posts for user %s: %w", userID, err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

func (r *PostgresPostsRepository) Insert(ctx context.Context, userID string, draft *model.PostDraft) error {
	_, err := r.client.DB.ExecContext(ctx,
		`INSERT INTO posts (overskrift, omraade, text, image_url, user_id, latitude, longitude, kategori)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)`,
		draft.Overskrift, draft.Omraade, draft.Text, draft.ImageURL,
		userID, draft.Latitude, draft.Longitude, draft.Kategori)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostgresPostsRepository) Update(ctx context.Context, id string, draft *model.PostDraft) error {
	res, err := r.client.DB.ExecContext(ctx,
		`UPDATE posts
		 SET overskrift = $1, omraade = $2, text = $3, image_url = NULLIF($4, ''),
		     latitude = $5, longitude = $6, kategori = $7
		 WHERE id = $8`,
		draft.Overskrift, draft.Omraade, draft.Text, draft.ImageURL,
		draft.Latitude, draft.Longitude, draft.Kategori, id)
	if err != nil {
		return fmt.Errorf("update post %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *PostgresPostsRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DB.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*model.Post, error) {
	var (
		post     model.Post
		kategori sql.NullString
	)
	err := row.Scan(&post.ID, &post.CreatedAt, &post.Overskrift, &post.Omraade,
		&post.Text, &post.ImageURL, &post.UserID,
		&post.Latitude, &post.Longitude, &kategori)
	if err != nil {
		return nil, err
	}
	if kategori.Valid {
		post.Kategori = &kategori.String
	}
	return &post, nil
}

func scanPosts(rows *sql.Rows) ([]model.Post, error) {
	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}
