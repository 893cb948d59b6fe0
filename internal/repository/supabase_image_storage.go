package repository

import (
	"context"
	"fmt"
	"io"

	"github.com/MuusmannMedia/liguster/internal/database"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// SupabaseImageStorage uploads media to Supabase Storage buckets.
type SupabaseImageStorage struct {
	client *database.SupabaseClient
}

func NewSupabaseImageStorage(client *database.SupabaseClient) repository.ImageStorage {
	return &SupabaseImageStorage{client: client}
}

func (s *SupabaseImageStorage) Upload(ctx context.Context, bucket, name string, data io.Reader, contentType string) (string, error) {
	storage := s.client.GetClient().Storage

	if _, err := storage.UploadFile(bucket, name, data); err != nil {
		return "", fmt.Errorf("upload %s to %s: %w", name, bucket, err)
	}

	res := storage.GetPublicUrl(bucket, name)
	if res.SignedURL == "" {
		return "", fmt.Errorf("no public url for %s/%s", bucket, name)
	}
	return res.SignedURL, nil
}

func (s *SupabaseImageStorage) Remove(ctx context.Context, bucket, name string) error {
	if _, err := s.client.GetClient().Storage.RemoveFile(bucket, []string{name}); err != nil {
		return fmt.Errorf("remove %s from %s: %w", name, bucket, err)
	}
	return nil
}
