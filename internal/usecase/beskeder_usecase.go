package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
	"github.com/MuusmannMedia/liguster/internal/domain/repository"
)

// BeskederUseCase handles message threads: the inbox list, a single
// conversation, sending and deleting.
type BeskederUseCase struct {
	threads repository.ThreadsRepository
}

func NewBeskederUseCase(threads repository.ThreadsRepository) *BeskederUseCase {
	return &BeskederUseCase{threads: threads}
}

// Threads returns the caller's inbox, newest activity first.
func (u *BeskederUseCase) Threads(ctx context.Context, userID string) ([]model.Thread, error) {
	if userID == "" {
		return nil, model.ErrUnauthenticated
	}
	return u.threads.ListThreads(ctx, userID)
}

// Messages returns one conversation, oldest first. The caller must be a
// party to the thread.
func (u *BeskederUseCase) Messages(ctx context.Context, userID, threadID string) ([]model.Message, error) {
	if userID == "" {
		return nil, model.ErrUnauthenticated
	}

	msgs, err := u.threads.ListMessages(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if len(msgs) > 0 && !participates(msgs, userID) {
		return nil, model.ErrNotOwner
	}
	return msgs, nil
}

// Send appends a message. An empty threadID starts a new conversation
// about postID; the thread id is generated client-side so both parties
// key on the same conversation from the first message.
func (u *BeskederUseCase) Send(ctx context.Context, senderID, receiverID, threadID, postID, text string) (string, error) {
	if senderID == "" {
		return "", model.ErrUnauthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", model.ErrMissingField("text")
	}
	if receiverID == "" {
		return "", model.ErrMissingField("receiver_id")
	}

	if threadID == "" {
		threadID = uuid.NewString()
	}

	msg := &model.Message{
		ThreadID:   threadID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		PostID:     postID,
	}
	if err := u.threads.SendMessage(ctx, msg); err != nil {
		return "", err
	}
	return threadID, nil
}

// DeleteThread removes an entire conversation. Only a participant may
// delete it.
func (u *BeskederUseCase) DeleteThread(ctx context.Context, userID, threadID string) error {
	if userID == "" {
		return model.ErrUnauthenticated
	}

	msgs, err := u.threads.ListMessages(ctx, threadID)
	if err != nil {
		return err
	}
	if len(msgs) == 0 {
		return model.ErrNotFound
	}
	if !participates(msgs, userID) {
		return model.ErrNotOwner
	}
	return u.threads.DeleteThread(ctx, threadID)
}

func participates(msgs []model.Message, userID string) bool {
	for _, m := range msgs {
		if m.SenderID == userID || m.ReceiverID == userID {
			return true
		}
	}
	return false
}
