// Package wshub pushes order notifications to the kitchen screens over websockets.
package wshub

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"kitchen/internal/adapters/out/notify"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/ports"

	"github.com/gorilla/websocket"
)

const (
	broadcastBuffer = 256
	clientBuffer    = 16
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
)

var (
	ErrHubIsBusy    = errors.New("notification hub is busy")
	ErrHubIsStopped = errors.New("notification hub is stopped")
)

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub keeps the connected kitchen screens and broadcasts notifications to them.
// Run must be running for broadcasts to be delivered.
type Hub struct {
	clients   map[*client]struct{}
	broadcast chan []byte
	done      chan struct{}
	stopOnce  sync.Once
	mutex     sync.RWMutex
	upgrader  websocket.Upgrader
	logger    *slog.Logger
}

var _ ports.Notifier = (*Hub)(nil)

func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:   make(map[*client]struct{}),
		broadcast: make(chan []byte, broadcastBuffer),
		done:      make(chan struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger.With("component", "notification_hub"),
	}
}

// Run broadcasts queued messages until ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer h.stop()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-h.broadcast:
			h.mutex.RLock()
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Drop screens that fall behind.
					go h.remove(c)
				}
			}
			h.mutex.RUnlock()
		}
	}
}

// Notify queues the notification for broadcast without blocking.
func (h *Hub) Notify(_ context.Context, notification order.Notification) error {
	data, err := json.Marshal(notify.NewMessage(notification))
	if err != nil {
		return err
	}

	select {
	case <-h.done:
		return ErrHubIsStopped
	default:
	}

	select {
	case h.broadcast <- data:
		return nil
	default:
		return ErrHubIsBusy
	}
}

// ServeWS upgrades the request and keeps the connection registered until it closes.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, clientBuffer)}
	if !h.add(c) {
		_ = conn.Close()
		return
	}
	h.logger.InfoContext(r.Context(), "kitchen screen connected", "remote_addr", r.RemoteAddr)

	go h.writePump(c)
	h.readPump(c)
}

// ClientCount returns the number of connected screens.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) bool {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	select {
	case <-h.done:
		return false
	default:
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) remove(c *client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) stop() {
	h.stopOnce.Do(func() {
		h.mutex.Lock()
		defer h.mutex.Unlock()
		close(h.done)
		for c := range h.clients {
			delete(h.clients, c)
			close(c.send)
		}
	})
}

// readPump discards incoming frames; it exists to process control frames and
// notice disconnects.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
