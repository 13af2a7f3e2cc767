// Package preview serves a live render-progress feed over a websocket, so
// a host UI can show partial renders without polling the HDR file on disk.
package preview

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ProgressEvent reports one render pass's progress to connected viewers.
type ProgressEvent struct {
	Pass              int     `json:"pass"`
	AverageLuminosity float32 `json:"averageLuminosity"`
	Done              bool    `json:"done"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans ProgressEvents out to every connected websocket client. The
// zero value is not usable; construct with NewHub.
type Hub struct {
	log   *zap.Logger
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub returns a Hub that logs with log.
func NewHub(log *zap.Logger) *Hub {
	return &Hub{log: log, conns: map[*websocket.Conn]struct{}{}}
}

// ServeHTTP upgrades the request to a websocket and registers it for
// broadcasts until the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("preview upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	// Viewers are receive-only; keep reading so gorilla/websocket processes
	// control frames, and unregister once a read fails (client gone).
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcast sends ev to every connected client, dropping any client whose
// write fails.
func (h *Hub) Broadcast(ev ProgressEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("marshal progress event", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Debug("dropping preview client", zap.Error(err))
			conn.Close()
			delete(h.conns, conn)
		}
	}
}
