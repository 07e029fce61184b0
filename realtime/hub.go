package realtime

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Publisher is what mutation handlers depend on to push change events.
// The hub implements it; tests substitute a recording fake.
type Publisher interface {
	Publish(eventType string, data interface{})
}

// Event is the JSON envelope sent to every connected client
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub owns the set of connected WebSocket clients and fans events out to
// them. Delivery is fire-and-forget: no acks, no retry, no backlog — a
// disconnected client recovers by re-fetching state after it reconnects.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]string // conn -> client id
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Transport-level handshake only; the socket carries no
			// client-to-server application messages.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]string),
	}
}

// Register adds a connection to the active set and returns its id
func (h *Hub) Register(conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.clients[conn] = id
	h.mu.Unlock()
	log.Printf("WebSocket client connected: %s", id)
	return id
}

// Unregister removes a connection; invoked on transport close or error
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	id, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		log.Printf("WebSocket client disconnected: %s", id)
	}
}

// ClientCount reports how many connections are currently registered
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish serializes {type, data} and sends it to every registered
// connection. A send failure to one connection must not prevent delivery
// to the others; the failed connection is cleaned up by its read loop.
func (h *Hub) Publish(eventType string, data interface{}) {
	payload, err := json.Marshal(Event{Type: eventType, Data: data})
	if err != nil {
		log.Printf("Failed to encode %s event: %v", eventType, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, id := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("Failed to send %s event to client %s: %v", eventType, id, err)
		}
	}
}

// HandleWS upgrades the request and keeps the connection registered until
// the client goes away. Incoming messages are discarded.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.Register(conn)
	defer func() {
		h.Unregister(conn)
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
