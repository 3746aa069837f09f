package ws

import (
	"encoding/json"
	"log"
	"sync"

	"teampulse/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgCheckinReceived MessageType = "checkin_received"
	MsgEarlySignal     MessageType = "early_signal"
	MsgError           MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages the admin live feed connections. Every connected admin
// receives every event.
type Hub struct {
	conns map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents a WebSocket connection
type Connection struct {
	AdminID string
	Send    chan []byte
	Hub     *Hub
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = true
			h.mu.Unlock()
			log.Printf("Admin %s connected to live feed", conn.AdminID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.conns[conn] {
				delete(h.conns, conn)
				close(conn.Send)
				log.Printf("Admin %s disconnected from live feed", conn.AdminID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg)
			h.mu.RLock()
			for conn := range h.conns {
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

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastCheckinReceived notifies admins that a user submitted
// answers (implements service.Broadcaster)
func (h *Hub) BroadcastCheckinReceived(userID string, count int) {
	h.send(MsgCheckinReceived, map[string]interface{}{
		"userId":      userID,
		"answerCount": count,
	})
}

// BroadcastEarlySignal notifies admins that the detector fired for a
// user (implements service.Broadcaster)
func (h *Hub) BroadcastEarlySignal(userID string, signal model.EarlySignal) {
	h.send(MsgEarlySignal, map[string]interface{}{
		"userId": userID,
		"signal": signal,
	})
}

func (h *Hub) send(msgType MessageType, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &Message{
		Type:    msgType,
		Payload: data,
	}
}
