package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"idea-marketplace-backend/internal/database/models"
	"idea-marketplace-backend/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	sendBuffer = 32
)

// Message is the frame pushed to a connected client
type Message struct {
	Type         string               `json:"type"`
	Notification *models.Notification `json:"notification"`
}

type client struct {
	email string
	conn  *websocket.Conn
	send  chan []byte
}

// Hub tracks websocket connections per user email and pushes stored notifications to them
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{}
	upgrader websocket.Upgrader
	enabled  bool
}

// NewHub creates a hub. allowedOrigins empty accepts any origin; enabled=false turns Push into a no-op.
func NewHub(allowedOrigins []string, enabled bool) *Hub {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[strings.TrimRight(o, "/")] = struct{}{}
	}
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		enabled: enabled,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if len(origins) == 0 || origin == "" {
					return true
				}
				_, ok := origins[strings.TrimRight(origin, "/")]
				return ok
			},
		},
	}
}

// Push sends notification to every open connection of its recipient.
// A full client buffer drops the frame instead of blocking the caller.
func (h *Hub) Push(ctx context.Context, notification *models.Notification) error {
	if !h.enabled || notification == nil {
		return nil
	}
	payload, err := json.Marshal(Message{Type: "notification", Notification: notification})
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[strings.ToLower(notification.RecipientEmail)] {
		select {
		case c.send <- payload:
		default:
			logger.WithContext(ctx).WithField("recipient", c.email).Debug("dropping push for slow client")
		}
	}
	return nil
}

// Connections returns the number of open connections for email
func (h *Hub) Connections(email string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[strings.ToLower(email)])
}

// Stats reports whether pushing is enabled and how many users and connections are registered
func (h *Hub) Stats() (enabled bool, users, connections int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, conns := range h.clients {
		connections += len(conns)
	}
	return h.enabled, len(h.clients), connections
}

// Serve upgrades the request and keeps the connection registered until the peer goes away
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, email string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{email: strings.ToLower(email), conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(c)
	go h.writePump(c)
	h.readPump(c)
	return nil
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.email] == nil {
		h.clients[c.email] = make(map[*client]struct{})
	}
	h.clients[c.email][c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[c.email]; ok {
		if _, ok := conns[c]; ok {
			delete(conns, c)
			close(c.send)
		}
		if len(conns) == 0 {
			delete(h.clients, c.email)
		}
	}
}

// readPump only watches for the peer closing; clients never send data
func (h *Hub) readPump(c *client) {
	defer func() {
		h.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.New().WithError(err).WithField("user", c.email).Warn("websocket closed unexpectedly")
			}
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
