package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MuusmannMedia/liguster/internal/database"
	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// SupabaseUsersRepository reads and writes profile rows in the users
// table.
type SupabaseUsersRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseUsersRepository(client *database.SupabaseClient) repository.UsersRepository {
	return &SupabaseUsersRepository{client: client}
}

func (r *SupabaseUsersRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	data, count, err := r.client.GetClient().From("users").
		Select("*", "exact", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", id, err)
	}
	_ = count

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	if len(users) == 0 {
		return nil, model.ErrNotFound
	}
	return &users[0], nil
}

func (r *SupabaseUsersRepository) UpdateName(ctx context.Context, id, name string) error {
	payload := map[string]string{"name": name}
	_, _, err := r.client.GetClient().From("users").
		Update(payload, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("update name for %s: %w", id, err)
	}
	return nil
}

func (r *SupabaseUsersRepository) SetAvatarURL(ctx context.Context, id string, url *string) error {
	payload := map[string]*string{"avatar_url": url}
	_, _, err := r.client.GetClient().From("users").
		Update(payload, "", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("update avatar for %s: %w", id, err)
	}
	return nil
}

func (r *SupabaseUsersRepository) Delete(ctx context.Context, id string) error {
	_, _, err := r.client.GetClient().From("users").
		Delete("", "").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
