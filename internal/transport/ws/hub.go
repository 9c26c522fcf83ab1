package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// Message is the WebSocket envelope format.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans interview events out to connected host monitors. Sends are
// best-effort: a monitor with a full buffer misses the event.
type Hub struct {
	mu       sync.RWMutex
	monitors map[*Connection]struct{}

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
	done       chan struct{}
	closeOnce  sync.Once

	log *zap.Logger
}

// Connection represents one monitor connection.
type Connection struct {
	HostID string
	Send   chan []byte
}

// NewHub creates a hub and starts its event loop.
func NewHub(log *zap.Logger) *Hub {
	h := &Hub{
		monitors:   make(map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		log:        log,
	}
	go h.run()
	return h
}

// Close stops the event loop. Pending events are dropped.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.monitors[conn] = struct{}{}
			h.mu.Unlock()
			h.log.Info("monitor connected", zap.String("host_id", conn.HostID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.monitors[conn]; ok {
				delete(h.monitors, conn)
				close(conn.Send)
				h.log.Info("monitor disconnected", zap.String("host_id", conn.HostID))
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.monitors {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a monitor connection. No-op after Close.
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
	}
}

// Unregister removes a monitor connection. No-op after Close.
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// BroadcastEvent sends an event to every connected monitor (implements
// service.Broadcaster).
func (h *Hub) BroadcastEvent(event string, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.log.Warn("monitor payload marshal failed", zap.String("event", event), zap.Error(err))
		return
	}
	data, _ := json.Marshal(&Message{Type: event, Payload: body})

	select {
	case h.broadcast <- data:
	default:
		// Never block interview handling on a slow hub.
	}
}
