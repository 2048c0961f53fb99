package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Conn is the part of a websocket connection the hub needs.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Event is the envelope pushed to every client.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type Hub struct {
	Clients    map[Conn]bool
	Register   chan Conn
	Unregister chan Conn
	Broadcast  chan []byte
	mutex      sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[Conn]bool),
		Register:   make(chan Conn),
		Unregister: make(chan Conn),
		Broadcast:  make(chan []byte, 64),
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for conn := range h.Clients {
				conn.Close()
				delete(h.Clients, conn)
			}
			h.mutex.Unlock()
			return

		case conn := <-h.Register:
			h.mutex.Lock()
			h.Clients[conn] = true
			h.mutex.Unlock()
			log.Println("New WS Client Connected")

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.Clients[conn]; ok {
				delete(h.Clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn := range h.Clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.Clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Notify queues a change event for all clients. It never blocks: when the
// queue is full the event is dropped.
func (h *Hub) Notify(event string, payload interface{}) {
	message, err := json.Marshal(Event{Event: event, Data: payload})
	if err != nil {
		log.Printf("ws: failed to encode %s event: %v", event, err)
		return
	}

	select {
	case h.Broadcast <- message:
	default:
		log.Printf("ws: broadcast queue full, dropping %s event", event)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.Clients)
}

// Serve keeps a client registered until it disconnects. Incoming messages
// are read only to detect the close.
func (h *Hub) Serve(c *websocket.Conn) {
	h.Register <- c
	defer func() { h.Unregister <- c }()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
