package model

import "time"

// Message is one chat message in a thread. A thread is keyed by a
// client-generated thread_id shared by all messages in the conversation;
// post_id links the conversation back to the listing it started from.
type Message struct {
	ID         string    `json:"id"`
	ThreadID   string    `json:"thread_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Text       string    `json:"text"`
	PostID     string    `json:"post_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// OtherParty returns the id of the conversation partner seen from userID.
func (m *Message) OtherParty(userID string) string {
	if m.SenderID == userID {
		return m.ReceiverID
	}
	return m.SenderID
}

// Thread is the list-view summary of a conversation: the latest message
// plus the title of the referenced post, if any.
type Thread struct {
	ThreadID       string    `json:"thread_id"`
	PostID         string    `json:"post_id"`
	PostOverskrift string    `json:"post_overskrift"`
	OtherUserID    string    `json:"other_user_id"`
	LastText       string    `json:"last_text"`
	LastAt         time.Time `json:"last_at"`
}
