package repository

import (
	"context"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

// ThreadsRepository is the persistence contract for chat conversations.
type ThreadsRepository interface {
	// ListThreads returns the thread summaries (latest message per
	// thread_id) for every conversation userID takes part in, newest
	// activity first.
	ListThreads(ctx context.Context, userID string) ([]model.Thread, error)

	// ListMessages returns all messages of a thread, oldest first.
	ListMessages(ctx context.Context, threadID string) ([]model.Message, error)

	// SendMessage appends a message to a thread.
	SendMessage(ctx context.Context, msg *model.Message) error

	// DeleteThread removes every message with the given thread_id.
	DeleteThread(ctx context.Context, threadID string) error
}
