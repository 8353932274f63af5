package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gorilla/websocket"
	"github.com/taskboard/taskboard-api/internal/events"
)

// Subscriber connects to the server's broadcast channel and feeds every
// received event into a TaskCache.
//
// The channel offers no replay: events missed while disconnected are
// lost, and reconnecting does not trigger a reconciliation fetch. The
// cache stays stale until the caller performs the next full fetch.
type Subscriber struct {
	url    string
	cache  *TaskCache
	logger *slog.Logger
}

// NewSubscriber creates a Subscriber for the WebSocket endpoint at url
// (e.g. "ws://host:8080/ws").
func NewSubscriber(url string, cache *TaskCache, logger *slog.Logger) *Subscriber {
	return &Subscriber{
		url:    url,
		cache:  cache,
		logger: logger.With("component", "ws_subscriber"),
	}
}

// Listen connects to the broadcast channel and applies events to the
// cache until the context is canceled or the connection fails. It
// returns nil on context cancellation and the connection error
// otherwise.
func (s *Subscriber) Listen(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to broadcast channel: %w", err)
	}
	defer func() { _ = conn.Close() }()

	// Close the connection when the context ends so the read loop
	// unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("broadcast channel read failed: %w", err)
		}

		var event events.TaskEvent
		if err := json.Unmarshal(message, &event); err != nil {
			s.logger.Warn("discarding undecodable broadcast message", "error", err)
			continue
		}

		if err := s.cache.Apply(&event); err != nil {
			s.logger.Warn("failed to apply broadcast event",
				"event_type", event.Type,
				"error", err)
		}
	}
}
