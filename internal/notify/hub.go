// Package notify fans record-change events out to subscribed clients over
// websockets. This is the "real-time" half of the sync model: the server
// does not push data, only a signal that a table changed; clients re-fetch
// the full record set and recompute their projections.
package notify

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// Event tells subscribers that records in a table changed. Carries no
// record payload on purpose: eventual consistency comes from re-fetching,
// not from applying deltas in order.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	At     int64  `json:"at"`
}

const (
	// writeWait bounds how long a slow client can block a send.
	writeWait = 5 * time.Second

	// sendBuffer is the per-client queue; clients that fall further
	// behind are dropped rather than backing up the hub.
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Single shared identity, no credentials: any origin may subscribe.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub tracks subscribed clients and broadcasts events to all of them.
type Hub struct {
	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	clients    map[*client]bool
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates a hub. Call Run in its own goroutine before serving.
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan []byte, 64),
		clients:    make(map[*client]bool),
	}
}

// Run owns the client set; all membership changes and broadcasts pass
// through this loop, so no locking is needed elsewhere.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			slog.Debug("client subscribed", "clients", len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// Publish broadcasts a change event for a table to every subscriber.
// It never blocks the caller: writes are fire-and-forget, matching the
// rest of the sync model.
func (h *Hub) Publish(table, action string) {
	msg, err := json.Marshal(Event{Table: table, Action: action, At: time.Now().Unix()})
	if err != nil {
		slog.Error("failed to marshal change event", "table", table, "error", err)
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		slog.Warn("change event dropped, broadcast queue full", "table", table)
	}
}

// ServeHTTP upgrades the request to a websocket and subscribes it.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	h.register <- c

	go c.writeLoop()
	go c.readLoop()
}

func (c *client) writeLoop() {
	defer c.conn.Close()
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readLoop discards inbound frames; the socket is one-way. Its job is to
// notice disconnects and unregister the client.
func (c *client) readLoop() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
