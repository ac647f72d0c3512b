package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"estateBack/internal/models"
)

func hubTestServer(t *testing.T, hub *NotificationHub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.register <- Client{ID: r.URL.Query().Get("user"), Socket: conn}
	}))
}

func dialHub(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?user=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	// Give the hub a moment to process the registration.
	time.Sleep(200 * time.Millisecond)
	return conn
}

func TestHubDeliversToOwner(t *testing.T) {
	hub := NewNotificationHub()
	go hub.Run()

	srv := hubTestServer(t, hub)
	defer srv.Close()

	conn := dialHub(t, srv, "owner-1")
	defer conn.Close()

	hub.Notify("owner-1", models.Notification{
		Type:   "property_status",
		Title:  "Test Villa",
		Status: "available",
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var note models.Notification
	if err := conn.ReadJSON(&note); err != nil {
		t.Fatalf("read notification: %v", err)
	}
	if note.Status != "available" || note.Title != "Test Villa" {
		t.Fatalf("unexpected notification: %+v", note)
	}
}

func TestHubDropsMessageForAbsentUser(t *testing.T) {
	hub := NewNotificationHub()
	go hub.Run()

	// Must not block or panic with nobody connected.
	done := make(chan struct{})
	go func() {
		hub.Notify("nobody", models.Notification{Type: "property_status"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("notify blocked with no connected client")
	}
}

func TestHubReplacesOldConnection(t *testing.T) {
	hub := NewNotificationHub()
	go hub.Run()

	srv := hubTestServer(t, hub)
	defer srv.Close()

	first := dialHub(t, srv, "owner-1")
	defer first.Close()
	second := dialHub(t, srv, "owner-1")
	defer second.Close()

	hub.Notify("owner-1", models.Notification{Type: "property_status", Status: "rejected"})

	second.SetReadDeadline(time.Now().Add(2 * time.Second))
	var note models.Notification
	if err := second.ReadJSON(&note); err != nil {
		t.Fatalf("read on replacement connection: %v", err)
	}
	if note.Status != "rejected" {
		t.Fatalf("unexpected notification: %+v", note)
	}

	// The superseded connection was closed by the hub.
	first.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := first.ReadMessage(); err == nil {
		t.Fatal("expected the first connection to be closed")
	}
}
