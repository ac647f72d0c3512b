package main

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"estateBack/internal/models"
)

const (
	readLimit     = 1 << 20
	readDeadline  = 120 * time.Second
	writeDeadline = 5 * time.Second
	pingInterval  = 15 * time.Second
)

type Client struct {
	ID     string
	Socket *websocket.Conn
}

type unreg struct {
	userID string
	conn   *websocket.Conn
}

type directMsg struct {
	userID string
	note   models.Notification
}

// NotificationHub delivers approval/rejection events to the owner's open
// websocket connection. One connection per user; a new one replaces the old.
type NotificationHub struct {
	clients    map[string]*websocket.Conn
	direct     chan directMsg
	register   chan Client
	unregister chan unreg
}

func NewNotificationHub() *NotificationHub {
	return &NotificationHub{
		clients:    make(map[string]*websocket.Conn),
		direct:     make(chan directMsg),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

func (h *NotificationHub) Run() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case client := <-h.register:
			if old, ok := h.clients[client.ID]; ok {
				old.Close()
			}
			h.clients[client.ID] = client.Socket
		case u := <-h.unregister:
			// Only drop the entry if it still belongs to this connection.
			if conn, ok := h.clients[u.userID]; ok && conn == u.conn {
				conn.Close()
				delete(h.clients, u.userID)
			}
		case d := <-h.direct:
			conn, ok := h.clients[d.userID]
			if !ok {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := conn.WriteJSON(d.note); err != nil {
				conn.Close()
				delete(h.clients, d.userID)
			}
		case <-ticker.C:
			for id, conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					conn.Close()
					delete(h.clients, id)
				}
			}
		}
	}
}

// Notify implements services.Notifier.
func (h *NotificationHub) Notify(userID string, n models.Notification) {
	h.direct <- directMsg{userID: userID, note: n}
}

func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := models.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("websocket upgrade: %v", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(readDeadline))
	})

	app.wsManager.register <- Client{ID: claims.UserID, Socket: conn}

	go func() {
		defer func() {
			app.wsManager.unregister <- unreg{userID: claims.UserID, conn: conn}
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
