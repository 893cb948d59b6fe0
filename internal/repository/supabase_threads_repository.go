package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/supabase-community/postgrest-go"

	"github.com/MuusmannMedia/liguster/internal/database"
	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// SupabaseThreadsRepository stores chat messages in the messages table.
// There is no threads table; a thread is the set of messages sharing a
// client-generated thread_id.
type SupabaseThreadsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseThreadsRepository(client *database.SupabaseClient) repository.ThreadsRepository {
	return &SupabaseThreadsRepository{client: client}
}

func (r *SupabaseThreadsRepository) ListThreads(ctx context.Context, userID string) ([]model.Thread, error) {
	data, count, err := r.client.GetClient().From("messages").
		Select("*", "exact", false).
		Or(fmt.Sprintf("sender_id.eq.%s,receiver_id.eq.%s", userID, userID), "").
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch messages for user %s: %w", userID, err)
	}
	_ = count

	var msgs []model.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}

	// Messages arrive newest first, so the first row seen per thread_id is
	// the latest message of that conversation.
	seen := make(map[string]bool, len(msgs))
	threads := make([]model.Thread, 0)
	for _, m := range msgs {
		if seen[m.ThreadID] {
			continue
		}
		seen[m.ThreadID] = true
		threads = append(threads, model.Thread{
			ThreadID:    m.ThreadID,
			PostID:      m.PostID,
			OtherUserID: m.OtherParty(userID),
			LastText:    m.Text,
			LastAt:      m.CreatedAt,
		})
	}

	if err := r.attachPostTitles(threads); err != nil {
		// Thread list is still useful without titles.
		log.Printf("kunne ikke hente opslagstitler: %v", err)
	}
	return threads, nil
}

// attachPostTitles resolves overskrift for the referenced posts in one
// extra query.
func (r *SupabaseThreadsRepository) attachPostTitles(threads []model.Thread) error {
	ids := make([]string, 0, len(threads))
	for _, t := range threads {
		if t.PostID != "" {
			ids = append(ids, t.PostID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	data, count, err := r.client.GetClient().From("posts").
		Select("id,overskrift", "exact", false).
		In("id", ids).
		Execute()
	if err != nil {
		return fmt.Errorf("fetch post titles: %w", err)
	}
	_ = count

	var rows []struct {
		ID         string `json:"id"`
		Overskrift string `json:"overskrift"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("decode post titles: %w", err)
	}

	titles := make(map[string]string, len(rows))
	for _, row := range rows {
		titles[row.ID] = row.Overskrift
	}
	for i := range threads {
		threads[i].PostOverskrift = titles[threads[i].PostID]
	}
	return nil
}

func (r *SupabaseThreadsRepository) ListMessages(ctx context.Context, threadID string) ([]model.Message, error) {
	data, count, err := r.client.GetClient().From("messages").
		Select("*", "exact", false).
		Eq("thread_id", threadID).
		Order("created_at", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetch thread %s: %w", threadID, err)
	}
	_ = count

	var msgs []model.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return msgs, nil
}

func (r *SupabaseThreadsRepository) SendMessage(ctx context.Context, msg *model.Message) error {
	row := struct {
		ThreadID   string `json:"thread_id"`
		SenderID   string `json:"sender_id"`
		ReceiverID string `json:"receiver_id"`
		Text       string `json:"text"`
		PostID     string `json:"post_id,omitempty"`
	}{
		ThreadID:   msg.ThreadID,
		SenderID:   msg.SenderID,
		ReceiverID: msg.ReceiverID,
		Text:       msg.Text,
		PostID:     msg.PostID,
	}

	_, _, err := r.client.GetClient().From("messages").
		Insert(row, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (r *SupabaseThreadsRepository) DeleteThread(ctx context.Context, threadID string) error {
	_, _, err := r.client.GetClient().From("messages").
		Delete("", "").
		Eq("thread_id", threadID).
		Execute()
	if err != nil {
		return fmt.Errorf("delete thread %s: %w", threadID, err)
	}
	return nil
}
