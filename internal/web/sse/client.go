package sse

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// Time between keepalive comments
	pingPeriod = 30 * time.Second

	// Outgoing messages buffered per client before drops start
	sendBufferSize = 16
)

// Client is one open /events stream
type Client struct {
	id          string
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a client with a fresh random id
func NewClient() *Client {
	return &Client{
		id:          uuid.NewString(),
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// ID returns the client's id
func (c *Client) ID() string {
	return c.id
}

// ServeSSE streams hub events to the request until the client goes away
// or the hub closes
func ServeSSE(w http.ResponseWriter, r *http.Request, hub *Hub) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	client := NewClient()
	if !hub.Register(client) {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}
	defer hub.Unregister(client)

	_, _ = w.Write([]byte("event: connected\ndata: " + client.id + "\n\n"))
	flusher.Flush()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				return
			}
			if _, err := w.Write(message); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			if _, err := w.Write([]byte(": keepalive\n\n")); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
