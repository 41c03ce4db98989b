package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gamelibrary/models"

	"github.com/gorilla/websocket"
)

const broadcastBuffer = 64

// defaultWriteWait bounds a single write to a client
const defaultWriteWait = 10 * time.Second

// Hub pushes notification intents to every connected presentation client
type Hub struct {
	clients   map[*websocket.Conn]bool // Connected clients
	broadcast chan models.Notification // Broadcast channel for notifications
	mutex     sync.Mutex               // Protects clients
	writeWait time.Duration            // Deadline for a single write
	logger    *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan models.Notification, broadcastBuffer),
		writeWait: defaultWriteWait,
		logger:    logger.With("component", "realtime"),
	}
}

// RegisterClient adds a WebSocket client
func (h *Hub) RegisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	h.clients[conn] = true
	h.mutex.Unlock()
}

// UnregisterClient removes a WebSocket client
func (h *Hub) UnregisterClient(conn *websocket.Conn) {
	h.mutex.Lock()
	delete(h.clients, conn)
	h.mutex.Unlock()
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Notify queues a notification for broadcast. It never blocks the caller:
// when the queue is full the notification is dropped.
func (h *Hub) Notify(n models.Notification) {
	select {
	case h.broadcast <- n:
	default:
		h.logger.Warn("Notification dropped, broadcast queue full", "notification_id", n.ID)
	}
}

// Run delivers queued notifications until ctx is done
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case n := <-h.broadcast:
			h.deliver(n)
		}
	}
}

// deliver writes n to every client. Writes happen outside the lock and are
// bounded by the write wait, so a stalled client is dropped instead of holding up
// the others.
func (h *Hub) deliver(n models.Notification) {
	h.mutex.Lock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mutex.Unlock()

	for _, client := range clients {
		err := client.SetWriteDeadline(time.Now().Add(h.writeWait))
		if err == nil {
			err = client.WriteJSON(n)
		}
		if err != nil {
			h.logger.Warn("WebSocket write error", "error", err)
			h.UnregisterClient(client)
			client.Close()
		}
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}
