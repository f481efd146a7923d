package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/linskybing/form-platform/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishOnlyReachesTargetUser(t *testing.T) {
	h := NewHub()
	a := h.Register(1)
	b := h.Register(2)

	h.Publish(1, notification.Event{Type: notification.EventCreated, Notification: notification.Notification{ID: 9, UserID: 1}})

	select {
	case msg := <-a.Messages():
		var ev notification.Event
		require.NoError(t, json.Unmarshal(msg, &ev))
		assert.Equal(t, uint(9), ev.Notification.ID)
	default:
		t.Fatal("expected a message for user 1")
	}
	select {
	case <-b.Messages():
		t.Fatal("user 2 should not receive user 1 events")
	default:
	}
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	h := NewHub()
	c := h.Register(5)
	assert.Equal(t, 1, h.Connected(5))

	h.Unregister(c)
	h.Unregister(c)
	_, ok := <-c.Messages()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Connected(5))
}

func TestHub_ServeWritesEvents(t *testing.T) {
	h := NewHub()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		h.Serve(conn, h.Register(3))
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return h.Connected(3) == 1 }, time.Second, 10*time.Millisecond)
	h.Publish(3, notification.Event{Type: notification.EventCreated, Notification: notification.Notification{Title: "hi"}})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), `"title":"hi"`)
}
