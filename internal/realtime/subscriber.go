// Package realtime subscribes to Supabase Realtime for live chat
// updates. It speaks the Phoenix channel protocol over a websocket:
// join a topic, answer heartbeats, decode postgres_changes frames.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	heartbeatInterval = 25 * time.Second
	reconnectDelay    = 5 * time.Second
)

// Handler receives decoded message events for the subscribed thread.
type Handler func(event *MessageEvent)

// Subscriber maintains a websocket connection to a single thread's
// message channel and forwards events to the handler.
type Subscriber struct {
	endpoint string
	apiKey   string
	threadID string
	handler  Handler
	logger   *slog.Logger
}

// NewSubscriber creates a subscriber for one thread. supabaseURL is the
// project URL; the websocket endpoint is derived from it unless
// realtimeURL overrides it.
func NewSubscriber(supabaseURL, realtimeURL, apiKey, threadID string, handler Handler, logger *slog.Logger) *Subscriber {
	endpoint := realtimeURL
	if endpoint == "" {
		endpoint = deriveEndpoint(supabaseURL)
	}
	return &Subscriber{
		endpoint: endpoint,
		apiKey:   apiKey,
		threadID: threadID,
		handler:  handler,
		logger:   logger,
	}
}

// deriveEndpoint turns https://xxx.supabase.co into the realtime
// websocket URL.
func deriveEndpoint(supabaseURL string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(supabaseURL, "https://"), "http://")
	return fmt.Sprintf("wss://%s/realtime/v1/websocket", host)
}

// Start connects and processes events until the context is cancelled,
// reconnecting on transient errors.
func (s *Subscriber) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if err := s.subscribe(ctx); err != nil {
				s.logger.Error("realtime connection error, reconnecting", "error", err)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(reconnectDelay):
				}
			}
		}
	}
}

func (s *Subscriber) buildURL() string {
	u, _ := url.Parse(s.endpoint)
	q := u.Query()
	q.Set("apikey", s.apiKey)
	q.Set("vsn", "1.0.0")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *Subscriber) topic() string {
	return "realtime:messages:" + s.threadID
}

func (s *Subscriber) subscribe(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.buildURL(), nil)
	if err != nil {
		return fmt.Errorf("dial realtime: %w", err)
	}
	defer conn.Close()

	// ReadMessage has no context; closing the connection is the only way
	// to unblock it when the caller shuts down.
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if err := s.join(conn); err != nil {
		return err
	}
	s.logger.Info("subscribed to thread", "thread_id", s.threadID)

	// Heartbeats keep the Phoenix connection alive; without them the
	// server drops us after a minute.
	heartbeatCtx, stopHeartbeat := context.WithCancel(ctx)
	defer stopHeartbeat()
	go s.heartbeatLoop(heartbeatCtx, conn)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		_, raw, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read frame: %w", err)
		}

		event, err := parseMessageEvent(raw)
		if err != nil {
			s.logger.Error("failed to parse realtime frame", "error", err)
			continue
		}
		if event != nil {
			s.handler(event)
		}
	}
}

func (s *Subscriber) join(conn *websocket.Conn) error {
	payload := joinPayload{
		Config: joinConfig{
			PostgresChanges: []postgresChangeSpec{
				{
					Event:  "INSERT",
					Schema: "public",
					Table:  "messages",
					Filter: "thread_id=eq." + s.threadID,
				},
				{
					Event:  "DELETE",
					Schema: "public",
					Table:  "messages",
					Filter: "thread_id=eq." + s.threadID,
				},
			},
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode join payload: %w", err)
	}

	join := phoenixMessage{
		Topic:   s.topic(),
		Event:   eventJoin,
		Payload: data,
		Ref:     "1",
	}
	if err := conn.WriteJSON(join); err != nil {
		return fmt.Errorf("join channel: %w", err)
	}
	return nil
}

func (s *Subscriber) heartbeatLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	ref := 2
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hb := phoenixMessage{
				Topic:   topicHeartbeat,
				Event:   eventHeartbeat,
				Payload: json.RawMessage("{}"),
				Ref:     fmt.Sprintf("%d", ref),
			}
			ref++
			if err := conn.WriteJSON(hb); err != nil {
				s.logger.Warn("heartbeat failed", "error", err)
				return
			}
		}
	}
}
