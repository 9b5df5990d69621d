package notify

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial hub: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubBroadcastsToSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	srv := httptest.NewServer(hub)
	defer srv.Close()

	first := dialHub(t, srv)
	second := dialHub(t, srv)

	// Give the hub a moment to register both clients.
	time.Sleep(50 * time.Millisecond)

	hub.Publish("split_expenses", "insert")

	for _, conn := range []*websocket.Conn{first, second} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("failed to read event: %v", err)
		}

		var event Event
		if err := json.Unmarshal(msg, &event); err != nil {
			t.Fatalf("failed to decode event %q: %v", msg, err)
		}
		if event.Table != "split_expenses" || event.Action != "insert" {
			t.Errorf("unexpected event %+v", event)
		}
		if event.At == 0 {
			t.Error("expected event timestamp to be set")
		}
	}
}

func TestHubSurvivesDisconnect(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	srv := httptest.NewServer(hub)
	defer srv.Close()

	gone := dialHub(t, srv)
	stays := dialHub(t, srv)
	time.Sleep(50 * time.Millisecond)

	gone.Close()
	time.Sleep(50 * time.Millisecond)

	hub.Publish("settlements", "insert")

	stays.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := stays.ReadMessage()
	if err != nil {
		t.Fatalf("surviving client failed to read: %v", err)
	}
	if !strings.Contains(string(msg), "settlements") {
		t.Errorf("unexpected message %q", msg)
	}
}
