package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

type stubThreadsRepo struct {
	messages    map[string][]model.Message
	sent        []*model.Message
	deleted     []string
	listThreads []model.Thread
}

func newStubThreadsRepo() *stubThreadsRepo {
	return &stubThreadsRepo{messages: map[string][]model.Message{}}
}

func (s *stubThreadsRepo) ListThreads(ctx context.Context, userID string) ([]model.Thread, error) {
	return s.listThreads, nil
}

func (s *stubThreadsRepo) ListMessages(ctx context.Context, threadID string) ([]model.Message, error) {
	return s.messages[threadID], nil
}

func (s *stubThreadsRepo) SendMessage(ctx context.Context, msg *model.Message) error {
	s.sent = append(s.sent, msg)
	s.messages[msg.ThreadID] = append(s.messages[msg.ThreadID], *msg)
	return nil
}

func (s *stubThreadsRepo) DeleteThread(ctx context.Context, threadID string) error {
	s.deleted = append(s.deleted, threadID)
	delete(s.messages, threadID)
	return nil
}

func TestSend_NewConversationGeneratesThreadID(t *testing.T) {
	repo := newStubThreadsRepo()
	beskeder := NewBeskederUseCase(repo)

	threadID, err := beskeder.Send(context.Background(), "u-1", "u-2", "", "p-1", "Hej!")
	require.NoError(t, err)
	assert.NotEmpty(t, threadID)
	require.Len(t, repo.sent, 1)
	assert.Equal(t, threadID, repo.sent[0].ThreadID)
	assert.Equal(t, "u-1", repo.sent[0].SenderID)

	// Replies reuse the id.
	again, err := beskeder.Send(context.Background(), "u-2", "u-1", threadID, "p-1", "Hej igen")
	require.NoError(t, err)
	assert.Equal(t, threadID, again)
}

func TestSend_Validation(t *testing.T) {
	beskeder := NewBeskederUseCase(newStubThreadsRepo())

	_, err := beskeder.Send(context.Background(), "", "u-2", "", "p-1", "Hej")
	assert.ErrorIs(t, err, model.ErrUnauthenticated)

	_, err = beskeder.Send(context.Background(), "u-1", "u-2", "", "p-1", "   ")
	assert.Error(t, err)

	_, err = beskeder.Send(context.Background(), "u-1", "", "", "p-1", "Hej")
	assert.Error(t, err)
}

func TestMessages_RequiresParticipation(t *testing.T) {
	repo := newStubThreadsRepo()
	repo.messages["t-1"] = []model.Message{
		{ID: "m-1", ThreadID: "t-1", SenderID: "u-1", ReceiverID: "u-2", Text: "Hej"},
	}
	beskeder := NewBeskederUseCase(repo)

	msgs, err := beskeder.Messages(context.Background(), "u-2", "t-1")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	_, err = beskeder.Messages(context.Background(), "u-3", "t-1")
	assert.ErrorIs(t, err, model.ErrNotOwner)
}

func TestDeleteThread(t *testing.T) {
	repo := newStubThreadsRepo()
	repo.messages["t-1"] = []model.Message{
		{ID: "m-1", ThreadID: "t-1", SenderID: "u-1", ReceiverID: "u-2", Text: "Hej"},
	}
	beskeder := NewBeskederUseCase(repo)

	// Outsiders may not delete.
	err := beskeder.DeleteThread(context.Background(), "u-3", "t-1")
	assert.ErrorIs(t, err, model.ErrNotOwner)
	assert.Empty(t, repo.deleted)

	// Unknown threads report not found.
	err = beskeder.DeleteThread(context.Background(), "u-1", "t-404")
	assert.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, beskeder.DeleteThread(context.Background(), "u-1", "t-1"))
	assert.Equal(t, []string{"t-1"}, repo.deleted)
}
