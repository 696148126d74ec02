package broadcast

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"bidding-dashboard/internal/models"
	"bidding-dashboard/utils"
)

const (
	// broadcastQueueSize bounds updates waiting for the run loop
	broadcastQueueSize = 256
	// clientBufferSize bounds messages waiting for one client's write pump
	clientBufferSize = 256
)

// Hub fans dashboard updates out to every connected client.
// Delivery is best-effort and at-most-once: nothing is replayed or acknowledged.
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	connected atomic.Int64
}

// NewHub creates a hub. Run must be started before clients connect.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, broadcastQueueSize),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is cancelled, then disconnects everyone
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		for client := range h.clients {
			h.removeClient(client)
		}
		close(h.done)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.connected.Store(int64(len(h.clients)))
			utils.Debug("hub: client connected", map[string]any{"client_id": client.ID, "clients": len(h.clients)})

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.removeClient(client)
			}

		case payload := <-h.broadcast:
			h.fanOut(payload)
		}
	}
}

// Publish queues an update for every client without blocking the caller.
// The update is dropped when the hub is saturated or stopped.
func (h *Hub) Publish(update models.Update) {
	payload, err := json.Marshal(update)
	if err != nil {
		utils.Error("hub: failed to encode update", map[string]any{"error": err.Error()})
		return
	}

	select {
	case <-h.done:
		return
	default:
	}

	select {
	case h.broadcast <- payload:
	default:
		utils.Warn("hub: broadcast queue full, update dropped", map[string]any{"slots": len(update.Slots), "events": len(update.Events)})
	}
}

// Register adds a client to the fan-out. It reports false when the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client; unknown clients are ignored
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount returns the number of registered clients
func (h *Hub) ClientCount() int {
	return int(h.connected.Load())
}

// fanOut hands the payload to each client. A client whose buffer is full is disconnected
// so that it cannot hold back the others.
func (h *Hub) fanOut(payload []byte) {
	delivered := 0
	for client := range h.clients {
		select {
		case client.send <- payload:
			delivered++
		default:
			utils.Warn("hub: client too slow, disconnecting", map[string]any{"client_id": client.ID})
			h.removeClient(client)
		}
	}
	utils.Debug("hub: update broadcast", map[string]any{"clients": delivered})
}

// removeClient forgets the client and closes its queue. Caller is the run loop.
func (h *Hub) removeClient(client *Client) {
	delete(h.clients, client)
	close(client.send)
	h.connected.Store(int64(len(h.clients)))
	utils.Debug("hub: client disconnected", map[string]any{"client_id": client.ID, "clients": len(h.clients)})
}
