package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"slices"

	"bidding-dashboard/internal/models"
	"bidding-dashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// SnapshotSource builds the bootstrap payload of a new dashboard
type SnapshotSource interface {
	BuildSnapshot(ctx context.Context, size int) (models.Update, error)
}

// Handler upgrades dashboard connections and attaches them to the hub
type Handler struct {
	hub       *Hub
	snapshots SnapshotSource
	upgrader  websocket.Upgrader
}

// NewHandler creates a Handler. An empty origin list or "*" accepts any origin.
func NewHandler(hub *Hub, snapshots SnapshotSource, allowedOrigins []string) *Handler {
	return &Handler{
		hub:       hub,
		snapshots: snapshots,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// Connect handles GET /ws. The client joins the hub before the snapshot is built,
// so an update published meanwhile is delivered right after the snapshot.
func (h *Handler) Connect(c *gin.Context) {
	client := newClient(h.hub)
	if !h.hub.Register(client) {
		utils.JSONError(c, http.StatusServiceUnavailable, errors.New("hub stopped"), "Dashboard state unavailable")
		return
	}

	snapshot, err := h.snapshots.BuildSnapshot(c.Request.Context(), 0)
	if err != nil {
		h.hub.Unregister(client)
		utils.Error("hub: snapshot failed", map[string]any{"error": err.Error()})
		utils.JSONError(c, http.StatusServiceUnavailable, errors.New("snapshot unavailable"), "Dashboard state unavailable")
		return
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		h.hub.Unregister(client)
		utils.JSONError(c, http.StatusInternalServerError, err, "Dashboard state unavailable")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the error response
		h.hub.Unregister(client)
		utils.Warn("hub: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	client.conn = conn
	go client.writePump(payload)
	go client.readPump()
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if slices.Contains(allowed, origin) {
			return true
		}
		u, err := url.Parse(origin)
		return err == nil && u.Host == r.Host
	}
}
