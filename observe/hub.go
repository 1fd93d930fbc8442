// Package observe streams simulation snapshots to browser viewers over
// websockets. The engine publishes; each client has its own writer
// goroutine, so a slow viewer never blocks a tick.
package observe

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pthm-cable/evolve/telemetry"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// Message types sent to viewers.
const (
	TypeConfig = "config"
	TypeFrame  = "frame"
)

// ConfigMessage is sent once to every viewer on connect.
type ConfigMessage struct {
	Type      string `json:"type"`
	GridSize  int    `json:"grid_size"`
	CellSize  int    `json:"cell_size"`
	FoodCount int    `json:"food_count"`
	DayLength int    `json:"day_length"`
	Seed      int64  `json:"seed"`
}

// FrameMessage wraps a snapshot; its fields are inlined next to "type".
type FrameMessage struct {
	Type string `json:"type"`
	*telemetry.Snapshot
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans snapshots out to connected viewers.
type Hub struct {
	config     ConfigMessage
	sendBuffer int

	mu      sync.Mutex
	clients map[*client]struct{}
	dropped int64
}

// NewHub creates a hub that greets viewers with cfg and queues up to
// sendBuffer frames per viewer before dropping.
func NewHub(cfg ConfigMessage, sendBuffer int) *Hub {
	if sendBuffer < 1 {
		sendBuffer = 1
	}
	cfg.Type = TypeConfig
	return &Hub{
		config:     cfg,
		sendBuffer: sendBuffer,
		clients:    make(map[*client]struct{}),
	}
}

// Publish encodes s once and queues it for every viewer. Frames for a
// viewer whose queue is full are dropped.
func (h *Hub) Publish(s *telemetry.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(FrameMessage{Type: TypeFrame, Snapshot: s})
	if err != nil {
		slog.Error("failed to encode frame", "error", err)
		return
	}

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped++
		}
	}
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns the number of frames dropped for slow viewers.
func (h *Hub) Dropped() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// ServeHTTP upgrades the request to a websocket and streams frames until
// the viewer disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, h.sendBuffer)}
	h.register(c)

	// Frames queue in c.send until the writer starts, so the config
	// message always arrives first.
	if err := conn.WriteJSON(h.config); err != nil {
		h.unregister(c)
		conn.Close()
		return
	}
	slog.Info("viewer connected", "remote", r.RemoteAddr)

	done := make(chan struct{})
	go func() {
		defer close(done)
		h.writeLoop(c)
	}()

	// Viewers are read-only; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.unregister(c)
	<-done
	conn.Close()
	slog.Info("viewer disconnected", "remote", r.RemoteAddr)
}

func (h *Hub) writeLoop(c *client) {
	for data := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			slog.Warn("viewer send failed", "error", err)
			// Unblock the read loop; it unregisters and closes send.
			c.conn.Close()
			for range c.send {
			}
			return
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.conn.Close()
	}
}
