package sse

import (
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Hub fans roster events out to every connected page
type Hub struct {
	clients map[string]*Client
	mu      sync.RWMutex
	logger  *slog.Logger

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once
}

// NewHub creates a Hub. Call Run in its own goroutine before serving clients.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		logger:     logger.With(slog.String("component", "sse")),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

// Run is the hub's event loop; it returns after Close
func (h *Hub) Run() {
	h.logger.Info("sse hub started")
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.id] = client
			count := len(h.clients)
			h.mu.Unlock()
			h.logger.Info("sse client registered",
				slog.String("client_id", client.id),
				slog.Int("total_clients", count))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.id]; ok {
				delete(h.clients, client.id)
				close(client.send)
				count := len(h.clients)
				h.mu.Unlock()
				h.logger.Info("sse client unregistered",
					slog.String("client_id", client.id),
					slog.Duration("connection_duration", time.Since(client.connectedAt)),
					slog.Int("total_clients", count))
			} else {
				h.mu.Unlock()
			}

		case message := <-h.broadcast:
			h.mu.RLock()
			dropped := 0
			for _, client := range h.clients {
				select {
				case client.send <- message:
				default:
					dropped++
					h.logger.Warn("sse message dropped, client buffer full",
						slog.String("client_id", client.id))
				}
			}
			h.mu.RUnlock()
			if dropped > 0 {
				h.logger.Warn("sse broadcast partial failure", slog.Int("dropped", dropped))
			}

		case <-h.done:
			h.mu.Lock()
			count := len(h.clients)
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			h.logger.Info("sse hub stopped", slog.Int("disconnected_clients", count))
			return
		}
	}
}

// Register adds a client to the hub. It returns false once the hub is closed.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastEvent queues a named event for every client. Events are dropped
// when the hub's queue is full.
func (h *Hub) BroadcastEvent(eventName, data string) {
	select {
	case h.broadcast <- formatSSEMessage(eventName, data):
	default:
		h.logger.Warn("sse broadcast dropped, hub buffer full", slog.String("event", eventName))
	}
}

// Close stops the hub and disconnects every client
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// formatSSEMessage formats a named event; every line of data gets its own
// "data: " prefix
func formatSSEMessage(eventName, data string) []byte {
	var b strings.Builder
	b.WriteString("event: " + eventName + "\n")
	for _, line := range splitLines(data) {
		b.WriteString("data: " + line + "\n")
	}
	b.WriteString("\n")
	return []byte(b.String())
}

// splitLines splits on \n, drops \r and ignores a trailing newline.
// Empty input yields a single empty line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
