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

// SupabaseForeningRepository stores associations in the foreninger table
// and memberships in foreningsmedlemmer.
type SupabaseForeningRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseForeningRepository(client *database.SupabaseClient) repository.ForeningRepository {
	return &SupabaseForeningRepository{client: client}
}

func (r *SupabaseForeningRepository) List(ctx context.Context, search string) ([]model.Forening, error) {
	query := r.client.GetClient().From("foreninger").
		Select("*", "exact", false).
		Order("navn", &postgrest.OrderOpts{Ascending: true})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Or(fmt.Sprintf("navn.ilike.%s,sted.ilike.%s", pattern, pattern), "")
	}

	data, count, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch foreninger: %w", err)
	}
	_ = count

	var foreninger []model.Forening
	if err := json.Unmarshal(data, &foreninger); err != nil {
		return nil, fmt.Errorf("decode foreninger: %w", err)
	}
	return foreninger, nil
}

func (r *SupabaseForeningRepository) GetByID(ctx context.Context, id string) (*model.Forening, error) {
	data, count, err := r.client.GetClient().From("foreninger").
		Select("*", "exact", false).
		Eq("id", id).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch forening %s: %w", id, err)
	}
	_ = count

	var foreninger []model.Forening
	if err := json.Unmarshal(data, &foreninger); err != nil {
		return nil, fmt.Errorf("decode forening: %w", err)
	}
	if len(foreninger) == 0 {
		return nil, model.ErrNotFound
	}
	return &foreninger[0], nil
}

func (r *SupabaseForeningRepository) Create(ctx context.Context, f *model.Forening) (string, error) {
	row := struct {
		Navn        string `json:"navn"`
		Sted        string `json:"sted"`
		Beskrivelse string `json:"beskrivelse"`
		OprettetAf  string `json:"oprettet_af"`
	}{f.Navn, f.Sted, f.Beskrivelse, f.OprettetAf}

	data, count, err := r.client.GetClient().From("foreninger").
		Insert(row, false, "", "representation", "").
		Execute()
	if err != nil {
		return "", fmt.Errorf("create forening: %w", err)
	}
	_ = count

	var created []model.Forening
	if err := json.Unmarshal(data, &created); err != nil {
		return "", fmt.Errorf("decode created forening: %w", err)
	}
	if len(created) == 0 {
		return "", fmt.Errorf("create forening: no row returned")
	}
	return created[0].ID, nil
}

func (r *SupabaseForeningRepository) AddMember(ctx context.Context, m *model.Foreningsmedlem) error {
	_, _, err := r.client.GetClient().From("foreningsmedlemmer").
		Insert(m, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

func (r *SupabaseForeningRepository) SetMemberStatus(ctx context.Context, foreningID, userID, status string) error {
	payload := map[string]string{"status": status}
	_, _, err := r.client.GetClient().From("foreningsmedlemmer").
		Update(payload, "", "").
		Eq("forening_id", foreningID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("set member status: %w", err)
	}
	return nil
}

func (r *SupabaseForeningRepository) RemoveMember(ctx context.Context, foreningID, userID string) error {
	_, _, err := r.client.GetClient().From("foreningsmedlemmer").
		Delete("", "").
		Eq("forening_id", foreningID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

func (r *SupabaseForeningRepository) ListMembers(ctx context.Context, foreningID string) ([]model.Foreningsmedlem, error) {
	data, count, err := r.client.GetClient().From("foreningsmedlemmer").
		Select("*", "exact", false).
		Eq("forening_id", foreningID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch members of %s: %w", foreningID, err)
	}
	_ = count

	var members []model.Foreningsmedlem
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("decode members: %w", err)
	}
	return members, nil
}

func (r *SupabaseForeningRepository) GetMember(ctx context.Context, foreningID, userID string) (*model.Foreningsmedlem, error) {
	data, count, err := r.client.GetClient().From("foreningsmedlemmer").
		Select("*", "exact", false).
		Eq("forening_id", foreningID).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch member: %w", err)
	}
	_ = count

	var members []model.Foreningsmedlem
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("decode member: %w", err)
	}
	if len(members) == 0 {
		return nil, model.ErrNotFound
	}
	return &members[0], nil
}
