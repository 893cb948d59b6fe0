package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MuusmannMedia/liguster/internal/domain/model"
)

// Phoenix channel events used by Supabase Realtime.
const (
	eventJoin      = "phx_join"
	eventReply     = "phx_reply"
	eventHeartbeat = "heartbeat"
	eventPostgres  = "postgres_changes"

	topicHeartbeat = "phoenix"
)

// phoenixMessage is the envelope of every frame on the socket.
type phoenixMessage struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref"`
}

// joinPayload is sent with phx_join to subscribe to postgres changes on
// the messages table, filtered to one thread.
type joinPayload struct {
	Config joinConfig `json:"config"`
}

type joinConfig struct {
	PostgresChanges []postgresChangeSpec `json:"postgres_changes"`
}

type postgresChangeSpec struct {
	Event  string `json:"event"`
	Schema string `json:"schema"`
	Table  string `json:"table"`
	Filter string `json:"filter,omitempty"`
}

// changePayload is the payload of a postgres_changes event.
type changePayload struct {
	Data changeData `json:"data"`
}

type changeData struct {
	Type      string          `json:"type"` // INSERT or DELETE
	Table     string          `json:"table"`
	Record    json.RawMessage `json:"record,omitempty"`
	OldRecord json.RawMessage `json:"old_record,omitempty"`
	CommitAt  time.Time       `json:"commit_timestamp"`
}

// MessageEvent is the decoded change handed to the subscriber's callback.
type MessageEvent struct {
	// Type is "INSERT" or "DELETE".
	Type string

	// Message is set for inserts.
	Message *model.Message

	// DeletedID is set for deletes (only the primary key survives).
	DeletedID string
}

// parseMessageEvent decodes a postgres_changes frame into a MessageEvent.
// Frames for other events return (nil, nil).
func parseMessageEvent(raw []byte) (*MessageEvent, error) {
	var envelope phoenixMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	if envelope.Event != eventPostgres {
		return nil, nil
	}

	var payload changePayload
	if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode change payload: %w", err)
	}

	switch payload.Data.Type {
	case "INSERT":
		var msg model.Message
		if err := json.Unmarshal(payload.Data.Record, &msg); err != nil {
			return nil, fmt.Errorf("decode inserted message: %w", err)
		}
		return &MessageEvent{Type: "INSERT", Message: &msg}, nil

	case "DELETE":
		var old struct {
			ID string `json:"id"`
		}
		if len(payload.Data.OldRecord) > 0 {
			if err := json.Unmarshal(payload.Data.OldRecord, &old); err != nil {
				return nil, fmt.Errorf("decode deleted message: %w", err)
			}
		}
		return &MessageEvent{Type: "DELETE", DeletedID: old.ID}, nil

	default:
		return nil, nil
	}
}
