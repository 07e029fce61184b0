package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message is a decoded broadcast event as seen by a subscriber
type Message struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Client maintains a subscription to the hub's socket endpoint. On close it
// reconnects after a fixed delay, forever — no backoff growth, no retry cap.
type Client struct {
	url       string
	retryWait time.Duration
	onMessage func(Message)

	mu   sync.Mutex
	conn *websocket.Conn

	closeOnce sync.Once
	done      chan struct{}
}

func NewClient(url string, onMessage func(Message)) *Client {
	return &Client{
		url:       url,
		retryWait: 3 * time.Second,
		onMessage: onMessage,
		done:      make(chan struct{}),
	}
}

// Run connects and dispatches messages until Close is called. Intended to
// be run on its own goroutine.
func (c *Client) Run() {
	for {
		select {
		case <-c.done:
			return
		default:
		}

		conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
		if err != nil {
			log.Printf("WebSocket connect failed: %v", err)
			c.wait()
			continue
		}
		log.Println("WebSocket connected")

		c.mu.Lock()
		c.conn = conn
		c.mu.Unlock()

		c.readLoop(conn)

		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()
		conn.Close()
		log.Println("WebSocket disconnected")
		c.wait()
	}
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("Error parsing WebSocket message: %v", err)
			continue
		}
		if c.onMessage != nil {
			c.onMessage(msg)
		}
	}
}

func (c *Client) wait() {
	select {
	case <-time.After(c.retryWait):
	case <-c.done:
	}
}

// Close stops the reconnect loop and unblocks any inflight read
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.mu.Lock()
		if c.conn != nil {
			c.conn.Close()
		}
		c.mu.Unlock()
	})
}
