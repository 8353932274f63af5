package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/taskboard/taskboard-api/internal/events"
)

// Hub maintains the set of connected clients and fans broadcast events
// out to them. The channel itself carries no authentication: any client
// connected to the transport receives all events.
type Hub struct {
	logger *slog.Logger

	register   chan *client
	unregister chan *client
	broadcast  chan []byte

	// done is closed when Run returns so connection goroutines never
	// block sending to a hub that no longer drains its channels.
	done chan struct{}

	clients map[*client]struct{}

	upgrader websocket.Upgrader
}

// Ensure Hub implements events.Publisher.
var _ events.Publisher = (*Hub)(nil)

// NewHub creates a Hub. Run must be called before clients connect.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger.With("component", "ws_hub"),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, broadcastQueueSize),
		done:       make(chan struct{}),
		clients:    make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The board is open to any origin, matching the permissive
			// CORS policy of the HTTP API.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// broadcastQueueSize bounds the hub's inbound event queue so publishers
// never block on fan-out.
const broadcastQueueSize = 256

// Run processes registrations and broadcasts until the context is
// canceled. It owns the clients map; all mutation happens on this
// goroutine.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug("client connected",
				"remote_addr", c.conn.RemoteAddr().String(),
				"client_count", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}

		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// The client's send buffer is full; drop it
					// rather than block the fan-out.
					h.logger.Warn("dropping slow client",
						"remote_addr", c.conn.RemoteAddr().String())
					h.drop(c)
				}
			}
		}
	}
}

// drop removes a client and closes its send channel, which terminates
// its write pump.
func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.logger.Debug("client disconnected", "client_count", len(h.clients))
}

// Publish implements events.Publisher. It serializes the event and queues
// it for fan-out without blocking; if the hub's queue is full the event
// is dropped and logged, never retried.
func (h *Hub) Publish(ctx context.Context, event *events.TaskEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal broadcast event",
			"event_type", event.Type,
			"error", err)
		return
	}

	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn("broadcast queue full, dropping event",
			"event_type", event.Type)
	}
}

// ServeHTTP upgrades the request to a WebSocket connection and registers
// the client with the hub.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error response.
		h.logger.Debug("websocket upgrade failed", "error", err)
		return
	}

	c := newClient(h, conn)
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}
