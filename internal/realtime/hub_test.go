package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"idea-marketplace-backend/internal/database/models"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, hub *Hub, email string) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, email)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.Connections(email) == 1 }, time.Second, 10*time.Millisecond)
	return conn
}

func TestPushDeliversToRecipient(t *testing.T) {
	hub := NewHub(nil, true)
	conn := dial(t, hub, "dev@example.com")

	err := hub.Push(context.Background(), &models.Notification{
		RecipientEmail: "Dev@Example.com",
		Type:           models.NotificationClaimApproved,
		Title:          "Claim approved",
	})
	require.NoError(t, err)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(payload, &msg))
	assert.Equal(t, "notification", msg.Type)
	assert.Equal(t, models.NotificationClaimApproved, msg.Notification.Type)
}

func TestPushWithoutConnectionsIsNoop(t *testing.T) {
	hub := NewHub(nil, true)
	err := hub.Push(context.Background(), &models.Notification{RecipientEmail: "nobody@example.com"})
	assert.NoError(t, err)
}

func TestDisabledHubSkipsPush(t *testing.T) {
	hub := NewHub(nil, false)
	conn := dial(t, hub, "dev@example.com")

	require.NoError(t, hub.Push(context.Background(), &models.Notification{RecipientEmail: "dev@example.com"}))

	_ = conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestConnectionUnregistersOnClose(t *testing.T) {
	hub := NewHub(nil, true)
	conn := dial(t, hub, "dev@example.com")

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.Connections("dev@example.com") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestOriginCheck(t *testing.T) {
	hub := NewHub([]string{"http://localhost:3000/"}, true)

	allowed := httptest.NewRequest(http.MethodGet, "/ws", nil)
	allowed.Header.Set("Origin", "http://localhost:3000")
	assert.True(t, hub.upgrader.CheckOrigin(allowed))

	denied := httptest.NewRequest(http.MethodGet, "/ws", nil)
	denied.Header.Set("Origin", "http://evil.example.com")
	assert.False(t, hub.upgrader.CheckOrigin(denied))
}

func TestStatsCountsUsersAndConnections(t *testing.T) {
	hub := NewHub(nil, true)
	dial(t, hub, "dev@example.com")
	dial(t, hub, "ops@example.com")

	enabled, users, connections := hub.Stats()
	assert.True(t, enabled)
	assert.Equal(t, 2, users)
	assert.Equal(t, 2, connections)
}
