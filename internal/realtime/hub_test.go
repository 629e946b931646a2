package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, hub *Hub, userID int64) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r, userID)
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool {
		return hub.ConnectionCount(UserRoom(userID)) == 1
	}, time.Second, 10*time.Millisecond)
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var env map[string]any
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestHub_EmitToUser(t *testing.T) {
	hub := NewHub([]string{"*"})
	conn := dial(t, hub, 7)

	require.NoError(t, hub.Emit(context.Background(), UserRoom(7), EventBalanceChanged, map[string]string{"balance": "1050"}))

	env := readEnvelope(t, conn)
	assert.Equal(t, "user:7", env["room"])
	assert.Equal(t, EventBalanceChanged, env["event"])
	assert.Equal(t, "1050", env["payload"].(map[string]any)["balance"])
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub([]string{"*"})
	a := dial(t, hub, 1)
	b := dial(t, hub, 2)

	require.NoError(t, hub.Emit(context.Background(), BroadcastRoom, EventNotificationCreated, "maintenance"))

	assert.Equal(t, "maintenance", readEnvelope(t, a)["payload"])
	assert.Equal(t, "maintenance", readEnvelope(t, b)["payload"])
}

func TestHub_EmitWithoutClients(t *testing.T) {
	hub := NewHub(nil)
	assert.NoError(t, hub.Emit(context.Background(), UserRoom(99), EventBalanceChanged, nil))
	assert.Equal(t, 0, hub.ConnectionCount(UserRoom(99)))
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://app.example.com"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://app.example.com")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(req))
}

func TestRoomOf(t *testing.T) {
	room, err := roomOf([]byte(`{"room":"user:3","event":"balance.changed"}`))
	require.NoError(t, err)
	assert.Equal(t, "user:3", room)

	_, err = roomOf([]byte(`not json`))
	assert.Error(t, err)
}
